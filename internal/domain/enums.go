package domain

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[string]bool{
	"Beginner": true, "Intermediate": true, "Advanced": true,
}

// Comparison classifies a set against the matching set of the previous workout.
type Comparison string

const (
	NoComparison  Comparison = ""
	CompareBetter Comparison = "better"
	CompareSame   Comparison = "same"
	CompareWorse  Comparison = "worse"
)

// MuscleGroups recognised by plan validation. Unknown groups are rejected so
// that typos in plan files surface early.
var MuscleGroups = map[string]bool{
	"chest": true, "back": true, "shoulders": true, "biceps": true,
	"triceps": true, "forearms": true, "core": true, "quads": true,
	"hamstrings": true, "glutes": true, "calves": true, "traps": true,
	"lats": true, "full body": true,
}
