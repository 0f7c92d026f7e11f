package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/spotter/internal/catalog"
	"github.com/alexanderramin/spotter/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatPlanList(t *testing.T) {
	entries := []catalog.Entry{
		{
			Index:  1,
			Path:   "/home/lifter/.spotter/plans/arms.yaml",
			Source: "/home/lifter/.spotter/plans/arms.yaml",
			Schema: &catalog.PlanSchema{Name: "Arm Blaster", Exercises: []catalog.ExerciseSchema{{Sets: 3}, {Sets: 4}}},
		},
		{
			Index:  2,
			Path:   "plans/push-day.yaml",
			Source: catalog.BuiltinSource,
			Schema: &catalog.PlanSchema{Name: "Push Day", Exercises: []catalog.ExerciseSchema{{Sets: 4}}},
		},
	}

	got := FormatPlanList(entries)
	assert.Contains(t, got, "Arm Blaster")
	assert.Contains(t, got, "7", "total sets")
	assert.Contains(t, got, "arms.yaml")
	assert.Contains(t, got, catalog.BuiltinSource)
	assert.NotContains(t, got, "plans/push-day.yaml", "builtins show their source, not the embedded path")

	assert.Contains(t, FormatPlanList(nil), "No plans found")
}

func TestFormatPlan(t *testing.T) {
	rest := 150
	plan := &catalog.Plan{
		Name:        "Push Day",
		Description: "Chest, shoulders and triceps.",
		Exercises: []domain.Exercise{
			{
				ID: "bench", Name: "Bench Press", Sets: 4, Reps: 8, Weight: 135, RestTime: &rest,
				Difficulty:     domain.DifficultyIntermediate,
				PersonalRecord: &domain.PersonalRecord{Weight: 185, Reps: 5, Date: time.Now()},
			},
			{ID: "dips", Name: "Dips", Sets: 3, Reps: 12},
		},
	}

	got := FormatPlan(plan, 90)
	assert.Contains(t, got, "PUSH DAY")
	assert.Contains(t, got, "Chest, shoulders and triceps.")
	assert.Contains(t, got, "4 x 8")
	assert.Contains(t, got, "2:30")
	assert.Contains(t, got, "1:30", "exercises without a rest time use the default")
	assert.Contains(t, got, "● Intermediate")
	assert.Contains(t, got, "● --")
	assert.Contains(t, got, "185 x 5")
}
