package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/spotter/internal/domain"
	"github.com/alexanderramin/spotter/internal/engine"
)

// FormatSessionTotals renders the totals block shared by the completion
// screen and `history show`.
func FormatSessionTotals(s domain.WorkoutSession) string {
	rows := [][2]string{
		{"Duration", FormatDuration(s.TotalTime)},
		{"Volume", FormatVolume(s.TotalVolume)},
		{"Sets", fmt.Sprintf("%d", s.CompletedSets)},
		{"Exercises", fmt.Sprintf("%d", s.ExercisesCompleted)},
		{"Rest", FormatDuration(s.TotalRestTime)},
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-10s", r[0])), Bold(r[1]))
	}
	if s.PersonalRecords > 0 {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-10s", "Records")),
			StylePurple.Bold(true).Render(fmt.Sprintf("★ %d", s.PersonalRecords)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatCompletion renders the end-of-session summary with the best set of
// each exercise and its estimated one-rep max.
func FormatCompletion(s domain.WorkoutSession, exercises []domain.Exercise, sets map[string][]domain.WorkoutSet) string {
	var b strings.Builder
	b.WriteString(FormatSessionTotals(s))

	var rows [][]string
	for _, ex := range exercises {
		best, ok := bestSet(sets[ex.ID])
		if !ok {
			continue
		}
		rows = append(rows, []string{
			ex.Name,
			WeightReps(best.Weight, best.Reps),
			FormatWeight(roundTo(engine.EstimateOneRepMax(best.Weight, best.Reps), 0.5)),
		})
	}
	if len(rows) > 0 {
		b.WriteString("\n\n")
		b.WriteString(RenderTable([]string{"EXERCISE", "BEST SET", "EST 1RM"}, rows))
	}
	return RenderBox("Workout Complete", strings.TrimRight(b.String(), "\n"))
}

// FormatSessionList renders stored sessions, newest first.
func FormatSessionList(sessions []*domain.WorkoutSession, now time.Time) string {
	if len(sessions) == 0 {
		return Dim("No workouts recorded yet. Start one with `spotter workout start`.")
	}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		prs := Dim("--")
		if s.PersonalRecords > 0 {
			prs = StylePurple.Render(fmt.Sprintf("★ %d", s.PersonalRecords))
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			Bold(domain.CoalesceStr(s.PlanName, "Workout")),
			RelativeDateFrom(s.StartTime, now),
			FormatDuration(s.TotalTime),
			fmt.Sprintf("%d", s.CompletedSets),
			FormatVolume(s.TotalVolume),
			prs,
		})
	}
	return strings.TrimRight(RenderTable([]string{"ID", "PLAN", "WHEN", "TIME", "SETS", "VOLUME", "PRS"}, rows), "\n")
}

// FormatSessionDetail renders one stored session and its sets grouped by exercise.
func FormatSessionDetail(s *domain.WorkoutSession, sets []*domain.RecordedSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(domain.CoalesceStr(s.PlanName, "Workout")), Dim(s.StartTime.Local().Format("Mon Jan 2, 2006 15:04")))
	b.WriteString(Dim(s.ID) + "\n\n")
	b.WriteString(FormatSessionTotals(*s))

	var order []string
	grouped := make(map[string][]*domain.RecordedSet)
	names := make(map[string]string)
	for _, set := range sets {
		if _, seen := grouped[set.ExerciseID]; !seen {
			order = append(order, set.ExerciseID)
		}
		grouped[set.ExerciseID] = append(grouped[set.ExerciseID], set)
		names[set.ExerciseID] = domain.CoalesceStr(set.ExerciseName, set.ExerciseID)
	}

	for _, id := range order {
		b.WriteString("\n\n" + Header(names[id]) + "\n")
		for _, set := range grouped[id] {
			b.WriteString(formatRecordedSet(set) + "\n")
		}
	}
	return RenderBox("Workout", strings.TrimRight(b.String(), "\n"))
}

func formatRecordedSet(set *domain.RecordedSet) string {
	line := fmt.Sprintf("  %s  %s", Dim(fmt.Sprintf("Set %d", set.SetIndex+1)), WeightReps(set.Weight, set.Reps))
	if set.RPE != nil {
		line += Dim(fmt.Sprintf("  RPE %d", *set.RPE))
	}
	var tags []string
	if set.Warmup {
		tags = append(tags, "warmup")
	}
	if set.DropSet {
		tags = append(tags, "drop set")
	}
	if len(tags) > 0 {
		line += "  " + StyleBlue.Render("["+strings.Join(tags, ", ")+"]")
	}
	if set.Notes != "" {
		line += "  " + Dim(set.Notes)
	}
	return line
}

// FormatRecords renders the personal record table.
func FormatRecords(records []*domain.ExerciseRecord, now time.Time) string {
	if len(records) == 0 {
		return Dim("No personal records yet.")
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			Bold(r.ExerciseName),
			WeightReps(r.Weight, r.Reps),
			FormatVolume(r.Volume()),
			FormatWeight(roundTo(engine.EstimateOneRepMax(r.Weight, r.Reps), 0.5)),
			RelativeDateFrom(r.Date, now),
		})
	}
	return strings.TrimRight(RenderTable([]string{"EXERCISE", "BEST", "VOLUME", "EST 1RM", "WHEN"}, rows), "\n")
}

func bestSet(sets []domain.WorkoutSet) (domain.WorkoutSet, bool) {
	var best domain.WorkoutSet
	found := false
	for _, s := range sets {
		if !s.Completed || s.Warmup {
			continue
		}
		if !found || s.Volume() > best.Volume() {
			best, found = s, true
		}
	}
	return best, found
}

func roundTo(v, step float64) float64 {
	return float64(int64(v/step+0.5)) * step
}
