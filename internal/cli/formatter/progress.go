package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
func RenderProgress(pct float64, width int) string {
	return fmt.Sprintf("[%s] %3.0f%%", StyleGreen.Render(bar(pct, width)), clamp01(pct)*100)
}

// RenderRestBar renders the rest countdown as a draining bar with the time
// left. The bar turns yellow once the warning has fired and dims while paused.
func RenderRestBar(timeLeft, duration int, warned, paused bool, width int) string {
	pct := 0.0
	if duration > 0 {
		pct = float64(timeLeft) / float64(duration)
	}

	style := StyleBlue
	switch {
	case paused:
		style = StyleDim
	case warned:
		style = StyleYellow
	}

	label := FormatClock(timeLeft)
	if paused {
		label += " paused"
	}
	return fmt.Sprintf("%s %s", style.Render(bar(pct, width)), style.Bold(true).Render(label))
}

func bar(pct float64, width int) string {
	pct = clamp01(pct)
	if width < 2 {
		width = 2
	}
	filled := int(pct * float64(width))
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func clamp01(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
