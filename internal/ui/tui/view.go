package tui

import (
	"fmt"
	"strings"
	"time"
)

func renderView(m Model, elapsed time.Duration) string {
	var b strings.Builder

	switch {
	case m.Done:
		b.WriteString(readyStyle.Render(checkMark))
	case m.Err != nil, m.Interrupted:
		b.WriteString(failedStyle.Render(crossMark))
	default:
		b.WriteString(dimStyle.Render(currentSpinner(m.SpinnerFrame)))
	}

	b.WriteString(" ")
	b.WriteString(titleStyle.Render(m.Title))
	b.WriteString(dimStyle.Render(fmt.Sprintf(" (%s)", formatDuration(elapsed))))
	b.WriteString("\n")

	return b.String()
}

func currentSpinner(frame int) string {
	if frame < 0 {
		frame = -frame
	}
	return spinnerFrames[frame%len(spinnerFrames)]
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
