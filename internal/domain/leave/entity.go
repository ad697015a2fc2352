package leave

import (
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
)

type LeaveType string

const (
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypeCasual    LeaveType = "casual"
	LeaveTypeAnnual    LeaveType = "annual"
	LeaveTypeMaternity LeaveType = "maternity"
	LeaveTypePaternity LeaveType = "paternity"
)

// LeaveTypes lists every leave type in display order.
var LeaveTypes = []LeaveType{
	LeaveTypeSick,
	LeaveTypeCasual,
	LeaveTypeAnnual,
	LeaveTypeMaternity,
	LeaveTypePaternity,
}

func (t LeaveType) IsValid() bool {
	for _, known := range LeaveTypes {
		if t == known {
			return true
		}
	}
	return false
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s LeaveRequestStatus) IsTerminal() bool {
	return s == LeaveRequestStatusApproved || s == LeaveRequestStatusRejected
}

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       LeaveType

	// Inclusive calendar range
	StartDate time.Time
	EndDate   time.Time

	Reason string

	Status       LeaveRequestStatus
	AppliedDate  time.Time
	ApprovedBy   *string
	ApprovedDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy so stored records never share pointers with callers.
func (r LeaveRequest) Clone() LeaveRequest {
	c := r
	if r.ApprovedBy != nil {
		by := *r.ApprovedBy
		c.ApprovedBy = &by
	}
	if r.ApprovedDate != nil {
		on := *r.ApprovedDate
		c.ApprovedDate = &on
	}
	return c
}

// Days counts the calendar days covered, both ends included.
func (r LeaveRequest) Days() int {
	return utils.DaysBetweenInclusive(r.StartDate, r.EndDate)
}

// Covers reports whether day falls inside the request's range.
func (r LeaveRequest) Covers(day time.Time) bool {
	return utils.WithinRange(day, r.StartDate, r.EndDate)
}
