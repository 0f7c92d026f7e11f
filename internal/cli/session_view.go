package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/spotter/internal/cli/formatter"
	"github.com/alexanderramin/spotter/internal/domain"
	"github.com/alexanderramin/spotter/internal/engine"
)

func (m *sessionModel) View() string {
	s := m.eng.Snapshot()
	if s.ShowCompleted {
		return m.viewCompleted()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader(s) + "\n")
	b.WriteString(formatter.Dim(strings.Repeat("─", max(m.width, 20))) + "\n\n")
	b.WriteString(m.viewExercise(s) + "\n\n")
	b.WriteString(m.viewSets(s) + "\n\n")
	b.WriteString(m.viewInputs(s) + "\n")

	if s.IsResting {
		b.WriteString("\n" + formatter.Bold("Rest  ") +
			formatter.RenderRestBar(s.TimeLeft, s.RestDuration, s.RestWarning, s.IsPaused, 30) + "\n")
	}
	if m.editing {
		b.WriteString("\n" + m.notes.View() + "\n")
	}
	if m.flash != "" {
		b.WriteString("\n" + formatter.StyleYellow.Render(m.flash) + "\n")
	}

	b.WriteString("\n" + m.viewTotals(s) + "\n")
	b.WriteString(m.viewHelp())
	return b.String()
}

func (m *sessionModel) viewHeader(s engine.Snapshot) string {
	header := formatter.StyleHeader.Render(strings.ToUpper(m.planName)) +
		formatter.Dim(fmt.Sprintf("  exercise %d/%d", s.ExerciseIndex+1, s.ExerciseCount)) +
		"  " + formatter.Bold(formatter.FormatClock(s.TotalWorkoutTime))
	if s.IsPaused {
		header += "  " + formatter.StyleYellow.Render("[PAUSED]")
	}
	if s.Muted {
		header += "  " + formatter.Dim("[MUTED]")
	}

	done := 0.0
	if m.totalSets > 0 {
		done = float64(s.Session.CompletedSets) / float64(m.totalSets)
	}
	return header + "\n" + formatter.RenderProgress(done, 20)
}

func (m *sessionModel) viewExercise(s engine.Snapshot) string {
	ex := s.Exercise
	line := formatter.Bold(ex.Name) + "  " + formatter.DifficultyBadge(ex.Difficulty)
	if len(ex.MuscleGroups) > 0 {
		line += "  " + formatter.Dim(strings.Join(ex.MuscleGroups, ", "))
	}

	target := fmt.Sprintf("Set %d of %d  target %d reps", s.SetIndex+1, ex.Sets, ex.Reps)
	if ex.Weight > 0 {
		target += " @ " + formatter.FormatWeight(ex.Weight)
	}
	if ex.PersonalRecord != nil {
		target += formatter.Dim("  PR " + formatter.WeightReps(ex.PersonalRecord.Weight, ex.PersonalRecord.Reps))
	}
	line += "\n" + target

	if ex.Instructions != "" {
		line += "\n" + formatter.Dim(strings.TrimSpace(ex.Instructions))
	}
	if len(ex.Alternatives) > 0 {
		line += "\n" + formatter.Dim("alternatives: "+strings.Join(ex.Alternatives, ", "))
	}
	return line
}

func (m *sessionModel) viewSets(s engine.Snapshot) string {
	lines := make([]string, 0, len(s.Sets))
	for i, set := range s.Sets {
		lines = append(lines, formatSetLine(i, set, i == s.SetIndex, historyAt(s.Exercise, i)))
	}
	return strings.Join(lines, "\n")
}

func historyAt(ex domain.Exercise, i int) string {
	h, ok := ex.HistoricalSetAt(i)
	if !ok {
		return ""
	}
	return "last " + formatter.WeightReps(h.Weight, h.Reps)
}

func formatSetLine(i int, set domain.WorkoutSet, current bool, last string) string {
	marker := formatter.Dim("·")
	body := formatter.Dim(formatter.WeightReps(set.Weight, set.Reps))
	switch {
	case set.Completed:
		marker = formatter.StyleGreen.Render("✔")
		body = formatter.WeightReps(set.Weight, set.Reps)
		if set.RPE != nil {
			body += formatter.Dim(fmt.Sprintf(" @%d", *set.RPE))
		}
		if set.Warmup {
			body += formatter.StyleBlue.Render(" warmup")
		}
		if set.DropSet {
			body += formatter.StyleBlue.Render(" drop")
		}
	case current:
		marker = formatter.StyleHeader.Render("›")
	}

	line := fmt.Sprintf(" %s %s  %s", marker, formatter.Dim(fmt.Sprintf("Set %d", i+1)), body)
	if last != "" {
		line += "  " + formatter.Dim(last)
	}
	return line
}

func (m *sessionModel) viewInputs(s engine.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s   %s %d   %s %d %s",
		formatter.Dim("Weight"), formatter.Bold(formatter.FormatWeight(s.CurrentWeight)),
		formatter.Dim("Reps"), s.CurrentReps,
		formatter.Dim("RPE"), s.CurrentRPE, formatter.Dim("("+s.RPELabel+")"))
	if s.Warmup {
		b.WriteString("  " + formatter.StyleBlue.Render("[warmup]"))
	}
	if s.DropSet {
		b.WriteString("  " + formatter.StyleBlue.Render("[drop set]"))
	}
	if s.IsNewRecord && s.Exercise.PersonalRecord != nil {
		b.WriteString("  " + formatter.RecordBadge())
	}
	b.WriteString("\n" + formatter.Dim("Plates ") + formatter.FormatPlates(s.Plates))

	if c := formatter.ComparisonIndicator(s.Comparison); c != "" {
		b.WriteString("\n" + c)
	}
	if s.HasSuggestion {
		b.WriteString("\n" + formatter.Dim("Suggested weight ") + formatter.Bold(formatter.FormatWeight(s.SuggestedWeight)))
	}
	if s.Notes != "" && !m.editing {
		b.WriteString("\n" + formatter.Dim("note: "+s.Notes))
	}
	return b.String()
}

func (m *sessionModel) viewTotals(s engine.Snapshot) string {
	parts := []string{
		formatter.Dim("volume ") + formatter.FormatVolume(s.Session.TotalVolume),
		formatter.Dim("sets ") + fmt.Sprintf("%d/%d", s.Session.CompletedSets, m.totalSets),
		formatter.Dim("rest ") + formatter.FormatDuration(s.Session.TotalRestTime),
	}
	if s.Session.PersonalRecords > 0 {
		parts = append(parts, formatter.StylePurple.Render(fmt.Sprintf("★ %d", s.Session.PersonalRecords)))
	}
	return strings.Join(parts, "   ")
}

func (m *sessionModel) viewHelp() string {
	var hints []string
	for _, k := range m.keys.ShortHelp() {
		hints = append(hints, formatter.Dim(k.Help().Key+": "+k.Help().Desc))
	}
	return formatter.Dim(strings.Repeat("─", max(m.width, 20))) + "\n" + strings.Join(hints, "  ")
}

func (m *sessionModel) viewCompleted() string {
	session := m.eng.Session()
	var b strings.Builder
	b.WriteString(formatter.FormatCompletion(session, m.eng.Exercises(), m.eng.WorkoutSets()) + "\n\n")

	switch {
	case m.saving:
		b.WriteString(formatter.Dim("Saving workout...") + "\n")
	case m.saveErr != nil:
		b.WriteString(formatter.StyleRed.Render("Could not save workout: "+m.saveErr.Error()) + "\n")
	case m.saved != nil:
		b.WriteString(formatter.StyleGreen.Render("Saved workout ") + formatter.TruncID(m.saved.Session.ID) + "\n")
		for _, rec := range m.saved.NewRecords {
			b.WriteString(formatter.RecordBadge() + "  " + formatter.Bold(rec.ExerciseName) + "  " +
				formatter.WeightReps(rec.Weight, rec.Reps) + "\n")
		}
	case m.discarded:
		b.WriteString(formatter.Dim("No sets completed; nothing saved.") + "\n")
	}

	b.WriteString("\n" + formatter.Dim("q: exit"))
	return b.String()
}
