package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
)

type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	PunchIn      *time.Time
	PunchOut     *time.Time
	Status       Status
	WorkingHours *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay:
		return true
	}
	return false
}

// IsPresent reports whether the status counts as showing up for work.
func (s Status) IsPresent() bool {
	return s == StatusPresent || s == StatusLate
}

// Clone returns a deep copy so stored records never share pointers with callers.
func (a Attendance) Clone() Attendance {
	c := a
	if a.PunchIn != nil {
		in := *a.PunchIn
		c.PunchIn = &in
	}
	if a.PunchOut != nil {
		out := *a.PunchOut
		c.PunchOut = &out
	}
	if a.WorkingHours != nil {
		hours := *a.WorkingHours
		c.WorkingHours = &hours
	}
	return c
}

// Policy decides the status of a punch. Zero values disable the late and half-day rules.
type Policy struct {
	// LateAfter is the time of day after which a punch-in counts as late.
	LateAfter time.Duration
	// HalfDayBelow marks a completed day as half-day when fewer hours were worked.
	HalfDayBelow time.Duration
}

// PunchInStatus returns the status a punch-in at t receives.
func (p Policy) PunchInStatus(t time.Time) Status {
	if p.LateAfter > 0 && utils.SinceMidnight(t) > p.LateAfter {
		return StatusLate
	}
	return StatusPresent
}

// NewPunchIn creates the record for an employee's first punch of the day.
func NewPunchIn(employeeID string, at time.Time, policy Policy) Attendance {
	in := at
	return Attendance{
		EmployeeID: employeeID,
		Date:       utils.DateOf(at),
		PunchIn:    &in,
		Status:     policy.PunchInStatus(at),
	}
}

// RecordPunchOut closes the day. The record is left untouched on error.
func (a *Attendance) RecordPunchOut(at time.Time, policy Policy) error {
	if a.PunchIn == nil {
		return ErrNotPunchedIn
	}
	if a.PunchOut != nil {
		return ErrAlreadyPunchedOut
	}
	if at.Before(*a.PunchIn) {
		return ErrPunchOutBeforePunchIn
	}

	worked := at.Sub(*a.PunchIn)
	hours := utils.Round(worked.Hours(), 2)
	out := at
	a.PunchOut = &out
	a.WorkingHours = &hours
	if policy.HalfDayBelow > 0 && worked < policy.HalfDayBelow {
		a.Status = StatusHalfDay
	}
	return nil
}
