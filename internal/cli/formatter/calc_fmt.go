package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/spotter/internal/domain"
	"github.com/alexanderramin/spotter/internal/engine"
)

// FormatPlates renders the per-side plate breakdown, e.g. "45 + 35 + 10 per side".
func FormatPlates(p engine.PlateLoading) string {
	if p.PerSide <= 0 {
		return Dim("empty bar")
	}
	parts := make([]string, len(p.Plates))
	for i, plate := range p.Plates {
		parts[i] = FormatWeight(plate)
	}
	out := Dim("nothing loadable")
	if len(parts) > 0 {
		out = strings.Join(parts, " + ") + Dim(" per side")
	}
	if p.Remaining > 0 {
		out += StyleYellow.Render(fmt.Sprintf("  (%s short)", FormatWeight(p.Remaining)))
	}
	return out
}

// FormatPlateReport renders the `plates` command output.
func FormatPlateReport(total, bar float64, p engine.PlateLoading) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-9s", "Total")), Bold(FormatWeight(total)))
	fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-9s", "Bar")), FormatWeight(bar))
	fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-9s", "Per side")), FormatWeight(max(p.PerSide, 0)))
	fmt.Fprintf(&b, "%s %s", Dim(fmt.Sprintf("%-9s", "Plates")), FormatPlates(p))
	return RenderBox("Plate Loading", b.String())
}

// FormatSmartRest renders the `rest` command output.
func FormatSmartRest(d domain.Difficulty, rpe int) string {
	rest := engine.SmartRestTime(d, rpe)
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-6s", "Level")), DifficultyBadge(d))
	fmt.Fprintf(&b, "%s %d %s\n", Dim(fmt.Sprintf("%-6s", "RPE")), rpe, Dim(engine.RPEDescription(rpe)))
	fmt.Fprintf(&b, "%s %s %s", Dim(fmt.Sprintf("%-6s", "Rest")), Bold(FormatClock(rest)),
		Dim(fmt.Sprintf("(base %s)", FormatClock(engine.BaseRestTime(d)))))
	return RenderBox("Smart Rest", b.String())
}
