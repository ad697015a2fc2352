package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	// Required when an admin files on behalf of an employee; ignored for employees.
	EmployeeID string `json:"employee_id,omitempty"`
	Type       string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !LeaveType(r.Type).IsValid() {
		errs.Add("leave_type", "leave_type must be one of sick, casual, annual, maternity, paternity")
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}
	if startOK && endOK && end.Before(start) {
		errs.Add("end_date", "end_date must be on or after start_date")
	}

	if validator.IsEmpty(r.Reason) {
		errs.Add("reason", "reason is required")
	}

	return errs.Err()
}

// ToLeaveRequest maps a validated request onto a new pending LeaveRequest without an ID.
func (r *CreateLeaveRequestRequest) ToLeaveRequest(employeeID string, today time.Time) LeaveRequest {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return LeaveRequest{
		EmployeeID:  employeeID,
		Type:        LeaveType(r.Type),
		StartDate:   start,
		EndDate:     end,
		Reason:      strings.TrimSpace(r.Reason),
		Status:      LeaveRequestStatusPending,
		AppliedDate: today,
	}
}

type DecideLeaveRequestRequest struct {
	ID       string `json:"-"`
	Decision string `json:"decision"`
}

func (r *DecideLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if !LeaveRequestStatus(r.Decision).IsTerminal() {
		errs = append(errs, ErrInvalidDecision...)
	}

	return errs.Err()
}

// LeaveRequestFilter holds the list selectors. "all" or empty disables a selector.
type LeaveRequestFilter struct {
	Status string `json:"status,omitempty"`
	Type   string `json:"type,omitempty"`
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	AppliedDate  string  `json:"applied_date"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	ApprovedDate *string `json:"approved_date,omitempty"`
}

func NewLeaveRequestResponse(r LeaveRequest, employeeName string) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: employeeName,
		LeaveType:    string(r.Type),
		StartDate:    r.StartDate.Format(time.DateOnly),
		EndDate:      r.EndDate.Format(time.DateOnly),
		Days:         r.Days(),
		Reason:       r.Reason,
		Status:       string(r.Status),
		AppliedDate:  r.AppliedDate.Format(time.DateOnly),
		ApprovedBy:   r.ApprovedBy,
	}
	if r.ApprovedDate != nil {
		on := r.ApprovedDate.Format(time.DateOnly)
		resp.ApprovedDate = &on
	}
	return resp
}

type ListLeaveRequestResponse struct {
	TotalCount int                    `json:"total_count"`
	Stats      LeaveStats             `json:"stats"`
	Requests   []LeaveRequestResponse `json:"requests"`
}
