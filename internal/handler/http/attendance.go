package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	Recent(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
	MonthlyStats(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// PunchIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.PunchIn(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punched in successfully", record)
}

// PunchOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.PunchOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punched out successfully", record)
}

// Today implements AttendanceHandler. Data is null when there is no record yet.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.GetToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// Recent implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 {
			response.ValidationError(w, map[string]string{"limit": "limit must be a positive integer"})
			return
		}
		limit = l
	}

	records, err := h.attendanceService.ListRecent(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Calendar implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	calendar, err := h.attendanceService.GetCalendar(r.Context(), attendanceFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calendar)
}

// MonthlyStats implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.attendanceService.GetMonthlyStats(r.Context(), attendanceFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

func attendanceFilterFromQuery(r *http.Request) attendance.AttendanceFilter {
	query := r.URL.Query()
	return attendance.AttendanceFilter{
		EmployeeID: query.Get("employee_id"),
		Month:      query.Get("month"),
	}
}
