package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/psen/funcquest/internal/ui/theme"
)

// lowTimeFraction is the remaining fraction below which the bar turns red.
const lowTimeFraction = 0.2

// TimerBar displays a countdown as a draining bar with a m:ss readout.
type TimerBar struct {
	Remaining time.Duration
	Total     time.Duration
	Width     int
}

// NewTimerBar creates a timer bar for a countdown of total duration.
func NewTimerBar(remaining, total time.Duration, width int) TimerBar {
	return TimerBar{Remaining: remaining, Total: total, Width: width}
}

// View renders the timer bar.
func (t TimerBar) View() string {
	frac := 0.0
	if t.Total > 0 {
		frac = float64(t.Remaining) / float64(t.Total)
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	mins := int(t.Remaining.Minutes())
	secs := int(t.Remaining.Seconds()) % 60
	readout := fmt.Sprintf(" %d:%02d", mins, secs)

	barWidth := t.Width - lipgloss.Width(readout)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * frac)
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	fillStyle := theme.ProgressFilled
	readoutStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if frac <= lowTimeFraction {
		fillStyle = lipgloss.NewStyle().Background(theme.Error)
		readoutStyle = theme.TimerLow
	}

	bar := fillStyle.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	return bar + readoutStyle.Render(readout)
}
