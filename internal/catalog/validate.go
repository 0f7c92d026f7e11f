package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/spotter/internal/domain"
)

const dateLayout = "2006-01-02"

// ValidatePlanSchema checks the plan for errors before conversion.
// Returns a slice of all validation errors found.
func ValidatePlanSchema(schema *PlanSchema) []error {
	var errs []error

	if strings.TrimSpace(schema.Name) == "" {
		errs = append(errs, fmt.Errorf("name is required"))
	}
	if len(schema.Exercises) == 0 {
		errs = append(errs, fmt.Errorf("exercises: at least one exercise is required"))
	}

	ids := make(map[string]int)
	for i := range schema.Exercises {
		ex := &schema.Exercises[i]
		prefix := fmt.Sprintf("exercises[%d]", i)

		errs = append(errs, validateExercise(prefix, ex)...)

		id := exerciseID(ex)
		if id == "" {
			continue
		}
		if first, dup := ids[id]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q (also exercises[%d])", prefix, id, first))
			continue
		}
		ids[id] = i
	}

	return errs
}

func validateExercise(prefix string, ex *ExerciseSchema) []error {
	var errs []error

	if strings.TrimSpace(ex.Name) == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	}
	if ex.Sets < 1 {
		errs = append(errs, fmt.Errorf("%s.sets must be at least 1", prefix))
	}
	if ex.Reps < 1 {
		errs = append(errs, fmt.Errorf("%s.reps must be at least 1", prefix))
	}
	if ex.Weight != nil && *ex.Weight < 0 {
		errs = append(errs, fmt.Errorf("%s.weight must not be negative", prefix))
	}
	if ex.RestTime != nil && *ex.RestTime < 0 {
		errs = append(errs, fmt.Errorf("%s.rest_time must not be negative", prefix))
	}
	if ex.Difficulty != "" && !domain.ValidDifficulties[ex.Difficulty] {
		errs = append(errs, fmt.Errorf("%s.difficulty: invalid value %q (expected Beginner, Intermediate or Advanced)", prefix, ex.Difficulty))
	}
	for _, mg := range ex.MuscleGroups {
		if !domain.MuscleGroups[strings.ToLower(mg)] {
			errs = append(errs, fmt.Errorf("%s.muscle_groups: unknown group %q", prefix, mg))
		}
	}

	if pr := ex.PersonalRecord; pr != nil {
		if pr.Weight < 0 {
			errs = append(errs, fmt.Errorf("%s.personal_record.weight must not be negative", prefix))
		}
		if pr.Reps < 1 {
			errs = append(errs, fmt.Errorf("%s.personal_record.reps must be at least 1", prefix))
		}
		if _, err := time.Parse(dateLayout, pr.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.personal_record.date: invalid date format %q (expected YYYY-MM-DD)", prefix, pr.Date))
		}
	}

	if lw := ex.LastWorkout; lw != nil {
		if _, err := time.Parse(dateLayout, lw.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.last_workout.date: invalid date format %q (expected YYYY-MM-DD)", prefix, lw.Date))
		}
		for j, s := range lw.Sets {
			setPrefix := fmt.Sprintf("%s.last_workout.sets[%d]", prefix, j)
			if s.Weight < 0 {
				errs = append(errs, fmt.Errorf("%s.weight must not be negative", setPrefix))
			}
			if s.Reps < 1 {
				errs = append(errs, fmt.Errorf("%s.reps must be at least 1", setPrefix))
			}
			if s.RPE != nil && (*s.RPE < 1 || *s.RPE > 10) {
				errs = append(errs, fmt.Errorf("%s.rpe must be between 1 and 10", setPrefix))
			}
		}
	}

	return errs
}
