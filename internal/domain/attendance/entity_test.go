package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultPolicy = Policy{LateAfter: 9 * time.Hour, HalfDayBelow: 4 * time.Hour}

func at(hour, minute int) time.Time {
	return time.Date(2024, 6, 3, hour, minute, 0, 0, time.UTC)
}

func TestPolicy_PunchInStatus(t *testing.T) {
	assert.Equal(t, StatusPresent, defaultPolicy.PunchInStatus(at(8, 45)))
	assert.Equal(t, StatusPresent, defaultPolicy.PunchInStatus(at(9, 0)))
	assert.Equal(t, StatusLate, defaultPolicy.PunchInStatus(at(9, 1)))
	assert.Equal(t, StatusPresent, Policy{}.PunchInStatus(at(13, 0)))
}

func TestNewPunchIn(t *testing.T) {
	a := NewPunchIn("1", at(9, 30), defaultPolicy)

	assert.Equal(t, "1", a.EmployeeID)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), a.Date)
	require.NotNil(t, a.PunchIn)
	assert.Equal(t, at(9, 30), *a.PunchIn)
	assert.Nil(t, a.PunchOut)
	assert.Equal(t, StatusLate, a.Status)
}

func TestAttendance_RecordPunchOut_Success(t *testing.T) {
	a := NewPunchIn("1", at(9, 0), defaultPolicy)

	err := a.RecordPunchOut(at(17, 30), defaultPolicy)

	require.NoError(t, err)
	require.NotNil(t, a.PunchOut)
	require.NotNil(t, a.WorkingHours)
	assert.Equal(t, 8.5, *a.WorkingHours)
	assert.Equal(t, StatusPresent, a.Status)
}

func TestAttendance_RecordPunchOut_ShortDayIsHalfDay(t *testing.T) {
	a := NewPunchIn("1", at(9, 30), defaultPolicy)

	require.NoError(t, a.RecordPunchOut(at(12, 0), defaultPolicy))

	assert.Equal(t, StatusHalfDay, a.Status)
	assert.Equal(t, 2.5, *a.WorkingHours)
}

func TestAttendance_RecordPunchOut_Errors(t *testing.T) {
	t.Run("not punched in", func(t *testing.T) {
		a := Attendance{EmployeeID: "3", Status: StatusAbsent}
		assert.ErrorIs(t, a.RecordPunchOut(at(17, 0), defaultPolicy), ErrNotPunchedIn)
	})

	t.Run("already punched out", func(t *testing.T) {
		a := NewPunchIn("1", at(9, 0), defaultPolicy)
		require.NoError(t, a.RecordPunchOut(at(17, 0), defaultPolicy))

		assert.ErrorIs(t, a.RecordPunchOut(at(18, 0), defaultPolicy), ErrAlreadyPunchedOut)
		assert.Equal(t, at(17, 0), *a.PunchOut)
	})

	t.Run("clock went backwards", func(t *testing.T) {
		a := NewPunchIn("1", at(9, 0), defaultPolicy)

		err := a.RecordPunchOut(at(8, 0), defaultPolicy)

		assert.Error(t, err)
		assert.Nil(t, a.PunchOut)
		assert.Nil(t, a.WorkingHours)
	})
}

func TestStatus_IsPresent(t *testing.T) {
	assert.True(t, StatusPresent.IsPresent())
	assert.True(t, StatusLate.IsPresent())
	assert.False(t, StatusHalfDay.IsPresent())
	assert.False(t, StatusAbsent.IsPresent())
}
