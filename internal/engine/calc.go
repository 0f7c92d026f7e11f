package engine

import (
	"math"

	"github.com/alexanderramin/spotter/internal/domain"
)

// DefaultBarWeight is the empty Olympic bar, in pounds.
const DefaultBarWeight = 45.0

// PlateDenominations are the plates available per side, largest first.
var PlateDenominations = []float64{45, 35, 25, 10, 5, 2.5}

// PlateLoading describes the plates to load on each side of the bar.
type PlateLoading struct {
	PerSide   float64
	Plates    []float64
	Remaining float64 // per side, rounded to the nearest 0.25
}

// CalculatePlateLoading picks plates greedily, largest first. Greedy is optimal
// for this denomination set.
func CalculatePlateLoading(total, bar float64) PlateLoading {
	perSide := (total - bar) / 2
	if perSide <= 0 {
		return PlateLoading{}
	}

	const eps = 1e-9
	rem := perSide
	var plates []float64
	for _, p := range PlateDenominations {
		for rem+eps >= p {
			plates = append(plates, p)
			rem -= p
		}
	}

	if rem < 0 {
		rem = 0
	}

	return PlateLoading{
		PerSide:   perSide,
		Plates:    plates,
		Remaining: math.Round(rem*4) / 4,
	}
}

// CheckPersonalRecord reports whether weight x reps beats the recorded best.
// With no record on file every set is a record.
func CheckPersonalRecord(pr *domain.PersonalRecord, weight float64, reps int) bool {
	if pr == nil {
		return true
	}
	return weight*float64(reps) > pr.Volume()
}

// BaseRestTime returns the rest duration in seconds for a difficulty tier.
func BaseRestTime(d domain.Difficulty) int {
	switch d {
	case domain.DifficultyBeginner:
		return 60
	case domain.DifficultyAdvanced:
		return 120
	default:
		return 90
	}
}

// SmartRestTime scales the difficulty base by recent exertion.
func SmartRestTime(d domain.Difficulty, rpe int) int {
	mult := 1.0
	switch {
	case rpe >= 8:
		mult = 1.5
	case rpe >= 6:
		mult = 1.2
	}
	return int(math.Round(float64(BaseRestTime(d)) * mult))
}

var rpeLabels = [...]string{
	1:  "Very Easy",
	2:  "Easy",
	3:  "Light",
	4:  "Moderate",
	5:  "Somewhat Hard",
	6:  "Hard",
	7:  "Very Hard",
	8:  "Extremely Hard",
	9:  "Near Maximum",
	10: "Maximum Effort",
}

// RPEDescription returns the label for an RPE value, or "" outside 1..10.
func RPEDescription(rpe int) string {
	if rpe < 1 || rpe > 10 {
		return ""
	}
	return rpeLabels[rpe]
}

// CompareVolumes classifies current against previous volume.
func CompareVolumes(current, previous float64) domain.Comparison {
	switch {
	case current > previous:
		return domain.CompareBetter
	case current < previous:
		return domain.CompareWorse
	default:
		return domain.CompareSame
	}
}

// SuggestWeight proposes the next working weight from the previous set's RPE.
// Easy sets (RPE <= 6) go up 5, sets near failure (RPE >= 9) go down 5 but
// never below the empty bar.
func SuggestWeight(prevWeight float64, prevRPE int) float64 {
	switch {
	case prevRPE <= 6:
		return prevWeight + 5
	case prevRPE >= 9:
		return math.Max(prevWeight-5, DefaultBarWeight)
	default:
		return prevWeight
	}
}

// EstimateOneRepMax uses the Epley formula.
func EstimateOneRepMax(weight float64, reps int) float64 {
	if reps <= 1 {
		return weight
	}
	return weight * (1 + float64(reps)/30)
}
