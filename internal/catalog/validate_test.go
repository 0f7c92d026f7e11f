package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrInt(i int) *int           { return &i }
func ptrFloat(f float64) *float64 { return &f }

func validMinimalSchema() *PlanSchema {
	return &PlanSchema{
		Name: "Test Plan",
		Exercises: []ExerciseSchema{
			{Name: "Bench Press", Sets: 3, Reps: 8},
		},
	}
}

func TestValidatePlanSchema_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidatePlanSchema(validMinimalSchema()))
}

func TestValidatePlanSchema_ValidFull(t *testing.T) {
	schema := &PlanSchema{
		ID:   "push",
		Name: "Push",
		Exercises: []ExerciseSchema{
			{
				ID: "bench", Name: "Bench Press", Sets: 4, Reps: 8,
				Weight: ptrFloat(135), RestTime: ptrInt(150),
				Difficulty:     "Advanced",
				MuscleGroups:   []string{"Chest", "triceps"},
				PersonalRecord: &RecordSchema{Weight: 225, Reps: 3, Date: "2026-01-10"},
				LastWorkout: &LastWorkoutSchema{
					Date: "2026-03-01",
					Sets: []SetSchema{{Weight: 135, Reps: 8, RPE: ptrInt(7)}, {Weight: 135, Reps: 7}},
				},
			},
		},
	}
	assert.Empty(t, ValidatePlanSchema(schema))
}

func TestValidatePlanSchema_MissingName(t *testing.T) {
	schema := validMinimalSchema()
	schema.Name = "  "
	errs := ValidatePlanSchema(schema)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "name is required")
}

func TestValidatePlanSchema_NoExercises(t *testing.T) {
	schema := validMinimalSchema()
	schema.Exercises = nil
	errs := ValidatePlanSchema(schema)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "at least one exercise")
}

func TestValidatePlanSchema_ExerciseFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(ex *ExerciseSchema)
		want   string
	}{
		{"missing name", func(ex *ExerciseSchema) { ex.Name = "" }, "exercises[0].name is required"},
		{"zero sets", func(ex *ExerciseSchema) { ex.Sets = 0 }, "exercises[0].sets must be at least 1"},
		{"zero reps", func(ex *ExerciseSchema) { ex.Reps = 0 }, "exercises[0].reps must be at least 1"},
		{"negative weight", func(ex *ExerciseSchema) { ex.Weight = ptrFloat(-5) }, "weight must not be negative"},
		{"negative rest", func(ex *ExerciseSchema) { ex.RestTime = ptrInt(-1) }, "rest_time must not be negative"},
		{"bad difficulty", func(ex *ExerciseSchema) { ex.Difficulty = "Expert" }, `invalid value "Expert"`},
		{"unknown muscle", func(ex *ExerciseSchema) { ex.MuscleGroups = []string{"chset"} }, `unknown group "chset"`},
		{"bad record date", func(ex *ExerciseSchema) {
			ex.PersonalRecord = &RecordSchema{Weight: 100, Reps: 5, Date: "03/01/2026"}
		}, "personal_record.date: invalid date format"},
		{"record reps", func(ex *ExerciseSchema) {
			ex.PersonalRecord = &RecordSchema{Weight: 100, Reps: 0, Date: "2026-03-01"}
		}, "personal_record.reps must be at least 1"},
		{"history rpe", func(ex *ExerciseSchema) {
			ex.LastWorkout = &LastWorkoutSchema{Date: "2026-03-01", Sets: []SetSchema{{Weight: 100, Reps: 5, RPE: ptrInt(11)}}}
		}, "last_workout.sets[0].rpe must be between 1 and 10"},
		{"history date", func(ex *ExerciseSchema) {
			ex.LastWorkout = &LastWorkoutSchema{Date: "yesterday"}
		}, "last_workout.date: invalid date format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := validMinimalSchema()
			tt.mutate(&schema.Exercises[0])
			errs := ValidatePlanSchema(schema)
			if assert.Len(t, errs, 1) {
				assert.Contains(t, errs[0].Error(), tt.want)
			}
		})
	}
}

func TestValidatePlanSchema_DuplicateIDs(t *testing.T) {
	schema := validMinimalSchema()
	schema.Exercises = append(schema.Exercises,
		ExerciseSchema{Name: "bench press", Sets: 3, Reps: 5},
		ExerciseSchema{ID: "row", Name: "Row", Sets: 3, Reps: 5},
		ExerciseSchema{ID: "row", Name: "Other Row", Sets: 3, Reps: 5},
	)
	errs := ValidatePlanSchema(schema)
	assert.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), `exercises[1]: duplicate id "bench-press" (also exercises[0])`)
	assert.Contains(t, errs[1].Error(), `exercises[3]: duplicate id "row" (also exercises[2])`)
}

func TestValidatePlanSchema_AccumulatesErrors(t *testing.T) {
	schema := &PlanSchema{
		Exercises: []ExerciseSchema{
			{Name: "A", Sets: 0, Reps: 0},
			{Name: "", Sets: 1, Reps: 1},
		},
	}
	assert.Len(t, ValidatePlanSchema(schema), 4)
}
