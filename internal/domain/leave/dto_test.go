package leave

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLeaveRequestRequest_Validate(t *testing.T) {
	cases := []struct {
		name   string
		req    CreateLeaveRequestRequest
		fields []string
	}{
		{
			name: "valid single day",
			req:  CreateLeaveRequestRequest{Type: "sick", StartDate: "2024-06-10", EndDate: "2024-06-10", Reason: "Flu"},
		},
		{
			name:   "unknown type",
			req:    CreateLeaveRequestRequest{Type: "sabbatical", StartDate: "2024-06-10", EndDate: "2024-06-10", Reason: "Rest"},
			fields: []string{"leave_type"},
		},
		{
			name:   "end before start",
			req:    CreateLeaveRequestRequest{Type: "annual", StartDate: "2024-06-10", EndDate: "2024-06-09", Reason: "Trip"},
			fields: []string{"end_date"},
		},
		{
			name:   "bad dates and blank reason",
			req:    CreateLeaveRequestRequest{Type: "casual", StartDate: "10-06-2024", EndDate: "", Reason: "   "},
			fields: []string{"start_date", "end_date", "reason"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if len(c.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var validationErrs validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			for _, field := range c.fields {
				assert.Contains(t, validationErrs.ToMap(), field)
			}
		})
	}
}

func TestCreateLeaveRequestRequest_ToLeaveRequest(t *testing.T) {
	req := CreateLeaveRequestRequest{Type: "annual", StartDate: "2024-06-10", EndDate: "2024-06-15", Reason: " Annual vacation "}
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	r := req.ToLeaveRequest("4", today)

	assert.Equal(t, "4", r.EmployeeID)
	assert.Equal(t, LeaveTypeAnnual, r.Type)
	assert.Equal(t, LeaveRequestStatusPending, r.Status)
	assert.Equal(t, "Annual vacation", r.Reason)
	assert.Equal(t, today, r.AppliedDate)
	assert.Equal(t, 6, r.Days())
	assert.Nil(t, r.ApprovedBy)
}

func TestDecideLeaveRequestRequest_Validate(t *testing.T) {
	assert.NoError(t, (&DecideLeaveRequestRequest{ID: "1", Decision: "approved"}).Validate())
	assert.NoError(t, (&DecideLeaveRequestRequest{ID: "1", Decision: "rejected"}).Validate())
	assert.Error(t, (&DecideLeaveRequestRequest{ID: "1", Decision: "pending"}).Validate())
	assert.Error(t, (&DecideLeaveRequestRequest{Decision: "approved"}).Validate())
}

func TestNewLeaveRequestResponse(t *testing.T) {
	r := pendingRequest()
	require.NoError(t, r.Decide(LeaveRequestStatusApproved, "Admin User", time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)))

	resp := NewLeaveRequestResponse(r, "John Doe")

	assert.Equal(t, "John Doe", resp.EmployeeName)
	assert.Equal(t, "2024-06-10", resp.StartDate)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, "approved", resp.Status)
	require.NotNil(t, resp.ApprovedDate)
	assert.Equal(t, "2024-06-02", *resp.ApprovedDate)
}
