package attendance

import (
	"errors"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

// Attendance domain errors
var (
	// Punch errors
	ErrAlreadyPunchedIn  = errors.New("you have already punched in today")
	ErrNotPunchedIn      = errors.New("you have not punched in yet")
	ErrAlreadyPunchedOut = errors.New("you have already punched out")

	// ErrPunchOutBeforePunchIn is a validation failure: the clock went backwards.
	ErrPunchOutBeforePunchIn = validator.ValidationErrors{
		{Field: "punch_out", Message: "punch_out must not be before punch_in"},
	}

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
