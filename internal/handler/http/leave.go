package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	ListRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// ListRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := leave.LeaveRequestFilter{
		Status: query.Get("status"),
		Type:   query.Get("type"),
	}

	requests, err := l.leaveService.ListLeaveRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// GetRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	request, err := l.leaveService.GetLeaveRequest(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, request)
}

// CreateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest

	if !response.Decode(w, r, &req) {
		return
	}

	leaveRequest, err := l.leaveService.ApplyLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created successfully", leaveRequest)
}

// ApproveRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	l.decide(w, r, leave.LeaveRequestStatusApproved, "Leave request approved successfully")
}

// RejectRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	l.decide(w, r, leave.LeaveRequestStatusRejected, "Leave request rejected successfully")
}

func (l *LeaveHandlerImpl) decide(w http.ResponseWriter, r *http.Request, decision leave.LeaveRequestStatus, message string) {
	req := leave.DecideLeaveRequestRequest{
		ID:       chi.URLParam(r, "id"),
		Decision: string(decision),
	}

	decided, err := l.leaveService.DecideLeaveRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, decided)
}
