package leave

import (
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
)

// Decide moves a pending request to approved or rejected and stamps the audit fields.
// Decisions happen exactly once; r is left untouched on error.
// It does not check who decides: callers must verify the admin role first.
func (r *LeaveRequest) Decide(decision LeaveRequestStatus, decidedBy string, today time.Time) error {
	if !decision.IsTerminal() {
		return ErrInvalidDecision
	}
	if r.Status != LeaveRequestStatusPending {
		return ErrInvalidTransition
	}

	by := decidedBy
	on := utils.DateOf(today)
	r.Status = decision
	r.ApprovedBy = &by
	r.ApprovedDate = &on
	return nil
}
