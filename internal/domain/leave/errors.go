package leave

import (
	"errors"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidTransition    = errors.New("leave request already processed")

	ErrInvalidDecision = validator.ValidationErrors{
		{Field: "decision", Message: "decision must be approved or rejected"},
	}
)
