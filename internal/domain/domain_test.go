package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestHistoricalSetAt(t *testing.T) {
	ex := &Exercise{
		LastWorkout: &LastWorkout{
			Date: testNow,
			Sets: []HistoricalSet{{Weight: 135, Reps: 8}, {Weight: 145, Reps: 6, RPE: IntPtr(9)}},
		},
	}

	cases := []struct {
		i      int
		ok     bool
		weight float64
	}{
		{0, true, 135},
		{1, true, 145},
		{2, false, 0},
		{-1, false, 0},
	}
	for _, tc := range cases {
		h, ok := ex.HistoricalSetAt(tc.i)
		assert.Equal(t, tc.ok, ok, "i=%d", tc.i)
		assert.Equal(t, tc.weight, h.Weight, "i=%d", tc.i)
	}

	_, ok := (&Exercise{}).HistoricalSetAt(0)
	assert.False(t, ok, "no history")
}

func TestVolume(t *testing.T) {
	assert.Equal(t, 1080.0, WorkoutSet{Weight: 135, Reps: 8}.Volume())
	assert.Equal(t, 925.0, PersonalRecord{Weight: 185, Reps: 5, Date: testNow}.Volume())
	assert.Equal(t, 0.0, HistoricalSet{Weight: 0, Reps: 12}.Volume())
}

func TestRestTimerSettingsClone(t *testing.T) {
	s := DefaultRestTimerSettings()
	s.CustomRestTimes["squat"] = 180

	c := s.Clone()
	c.CustomRestTimes["squat"] = 60
	c.CustomRestTimes["bench"] = 120

	assert.Equal(t, 180, s.CustomRestTimes["squat"])
	assert.NotContains(t, s.CustomRestTimes, "bench")
	assert.Equal(t, s.DefaultRestTime, c.DefaultRestTime)
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", CoalesceStr("", "b", "c"))
	assert.Equal(t, "", CoalesceStr("", ""))

	assert.Equal(t, 7, IntFromPtrWithDefault(7, nil, nil))
	assert.Equal(t, 3, IntFromPtrWithDefault(7, nil, IntPtr(3)))

	w := 42.5
	assert.Equal(t, 42.5, Float64FromPtrWithDefault(0, &w))
	assert.Equal(t, 0.0, Float64FromPtrWithDefault(0))
}
