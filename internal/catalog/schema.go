package catalog

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PlanSchema is the top-level YAML structure of a workout plan file.
type PlanSchema struct {
	ID          string           `yaml:"id,omitempty"`
	Name        string           `yaml:"name"`
	Description string           `yaml:"description,omitempty"`
	Exercises   []ExerciseSchema `yaml:"exercises"`
}

// ExerciseSchema defines one exercise of a plan. ID defaults to a slug of the
// name so that history stays attached when the file is edited.
type ExerciseSchema struct {
	ID             string             `yaml:"id,omitempty"`
	Name           string             `yaml:"name"`
	Sets           int                `yaml:"sets"`
	Reps           int                `yaml:"reps"`
	Weight         *float64           `yaml:"weight,omitempty"`
	RestTime       *int               `yaml:"rest_time,omitempty"`
	Difficulty     string             `yaml:"difficulty,omitempty"`
	MuscleGroups   []string           `yaml:"muscle_groups,omitempty"`
	Instructions   string             `yaml:"instructions,omitempty"`
	Alternatives   []string           `yaml:"alternatives,omitempty"`
	PersonalRecord *RecordSchema      `yaml:"personal_record,omitempty"`
	LastWorkout    *LastWorkoutSchema `yaml:"last_workout,omitempty"`
}

// RecordSchema is a personal record supplied by the plan file.
type RecordSchema struct {
	Weight float64 `yaml:"weight"`
	Reps   int     `yaml:"reps"`
	Date   string  `yaml:"date"`
}

// LastWorkoutSchema is last-workout history supplied by the plan file.
type LastWorkoutSchema struct {
	Date string      `yaml:"date"`
	Sets []SetSchema `yaml:"sets"`
}

// SetSchema is one historical set.
type SetSchema struct {
	Weight float64 `yaml:"weight"`
	Reps   int     `yaml:"reps"`
	RPE    *int    `yaml:"rpe,omitempty"`
}

// LoadPlanSchema reads and parses a plan YAML file.
func LoadPlanSchema(path string) (*PlanSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePlanSchema(data)
}

// ParsePlanSchema parses plan YAML. Unknown keys are rejected.
func ParsePlanSchema(data []byte) (*PlanSchema, error) {
	var schema PlanSchema
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &schema, nil
}
