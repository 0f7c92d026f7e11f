package catalog

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/alexanderramin/spotter/internal/domain"
)

// Plan is a converted, ready-to-run workout plan.
type Plan struct {
	ID          string
	Name        string
	Description string
	Source      string // file path, or "builtin"
	Exercises   []domain.Exercise
}

// Convert transforms a validated PlanSchema into domain exercises.
// Call ValidatePlanSchema first; Convert assumes the schema is valid.
func Convert(schema *PlanSchema) (*Plan, error) {
	plan := &Plan{
		ID:          domain.CoalesceStr(schema.ID, slugify(schema.Name)),
		Name:        schema.Name,
		Description: schema.Description,
		Exercises:   make([]domain.Exercise, 0, len(schema.Exercises)),
	}

	for i := range schema.Exercises {
		s := &schema.Exercises[i]
		ex := domain.Exercise{
			ID:           exerciseID(s),
			Name:         s.Name,
			Sets:         s.Sets,
			Reps:         s.Reps,
			Weight:       domain.Float64FromPtrWithDefault(0, s.Weight),
			Difficulty:   domain.Difficulty(domain.CoalesceStr(s.Difficulty, string(domain.DifficultyIntermediate))),
			Instructions: strings.TrimSpace(s.Instructions),
			Alternatives: s.Alternatives,
		}
		if s.RestTime != nil {
			ex.RestTime = domain.IntPtr(*s.RestTime)
		}
		for _, mg := range s.MuscleGroups {
			ex.MuscleGroups = append(ex.MuscleGroups, strings.ToLower(mg))
		}

		if pr := s.PersonalRecord; pr != nil {
			date, err := time.Parse(dateLayout, pr.Date)
			if err != nil {
				return nil, fmt.Errorf("parsing %s personal_record.date: %w", s.Name, err)
			}
			ex.PersonalRecord = &domain.PersonalRecord{Weight: pr.Weight, Reps: pr.Reps, Date: date}
		}

		if lw := s.LastWorkout; lw != nil {
			date, err := time.Parse(dateLayout, lw.Date)
			if err != nil {
				return nil, fmt.Errorf("parsing %s last_workout.date: %w", s.Name, err)
			}
			hist := &domain.LastWorkout{Date: date}
			for _, set := range lw.Sets {
				h := domain.HistoricalSet{Weight: set.Weight, Reps: set.Reps}
				if set.RPE != nil {
					h.RPE = domain.IntPtr(*set.RPE)
				}
				hist.Sets = append(hist.Sets, h)
			}
			ex.LastWorkout = hist
		}

		plan.Exercises = append(plan.Exercises, ex)
	}

	return plan, nil
}

func exerciseID(s *ExerciseSchema) string {
	return domain.CoalesceStr(s.ID, slugify(s.Name))
}

// slugify lowercases name and joins its alphanumeric runs with dashes:
// "Incline DB Press (30°)" becomes "incline-db-press-30".
func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
