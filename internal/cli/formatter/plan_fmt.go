package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/spotter/internal/catalog"
	"github.com/alexanderramin/spotter/internal/domain"
)

// FormatPlanList renders catalog entries with their numeric selectors.
func FormatPlanList(entries []catalog.Entry) string {
	if len(entries) == 0 {
		return Dim("No plans found.")
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		source := Dim(catalog.BuiltinSource)
		if e.Source != catalog.BuiltinSource {
			source = Dim(e.Path)
		}
		sets := 0
		for _, ex := range e.Schema.Exercises {
			sets += ex.Sets
		}
		rows = append(rows, []string{
			StyleBlue.Render(fmt.Sprintf("%d", e.Index)),
			Bold(e.Schema.Name),
			fmt.Sprintf("%d", len(e.Schema.Exercises)),
			fmt.Sprintf("%d", sets),
			source,
		})
	}
	return strings.TrimRight(RenderTable([]string{"#", "PLAN", "EXERCISES", "SETS", "SOURCE"}, rows), "\n")
}

// FormatPlan renders a plan's exercises with their targets and history.
func FormatPlan(plan *catalog.Plan, defaultRest int) string {
	var b strings.Builder
	if plan.Description != "" {
		b.WriteString(Dim(plan.Description) + "\n\n")
	}

	rows := make([][]string, 0, len(plan.Exercises))
	for _, ex := range plan.Exercises {
		weight := Dim("--")
		if ex.Weight > 0 {
			weight = FormatWeight(ex.Weight)
		}
		rest := Dim(FormatClock(defaultRest))
		if ex.RestTime != nil {
			rest = FormatClock(*ex.RestTime)
		}
		rows = append(rows, []string{
			Bold(ex.Name),
			fmt.Sprintf("%d x %d", ex.Sets, ex.Reps),
			weight,
			rest,
			DifficultyBadge(ex.Difficulty),
			formatRecord(ex.PersonalRecord),
		})
	}
	b.WriteString(RenderTable([]string{"EXERCISE", "SETS", "WEIGHT", "REST", "LEVEL", "PR"}, rows))
	return RenderBox(plan.Name, strings.TrimRight(b.String(), "\n"))
}

func formatRecord(pr *domain.PersonalRecord) string {
	if pr == nil {
		return Dim("--")
	}
	return StylePurple.Render(WeightReps(pr.Weight, pr.Reps))
}
