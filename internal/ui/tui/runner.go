package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/ymir/internal/console"
	"github.com/imamik/ymir/internal/resource"
)

var _ resource.Runner = (*Runner)(nil)

// Runner shows a spinner while a creation call runs. When the output is not
// interactive the call runs without any display.
type Runner struct {
	out         io.Writer
	interactive bool
	// options are appended to the program options, for tests.
	options []tea.ProgramOption
}

// NewRunner creates a runner writing to out.
func NewRunner(out io.Writer, interactive bool) *Runner {
	return &Runner{out: out, interactive: interactive}
}

// Run implements resource.Runner. Pressing ctrl+c cancels the call and
// returns console.ErrAborted.
func (r *Runner) Run(ctx context.Context, title string, fn func(context.Context) error) error {
	if !r.interactive {
		return fn(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewModel(title), append([]tea.ProgramOption{tea.WithOutput(r.out)}, r.options...)...)

	result := make(chan error, 1)
	go func() {
		err := fn(ctx)
		result <- err
		if err != nil {
			p.Send(ErrMsg{Err: err})
			return
		}
		p.Send(DoneMsg{})
	}()

	finalModel, err := p.Run()
	if err != nil {
		cancel()
		<-result
		return fmt.Errorf("progress display failed: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Interrupted {
		cancel()
		<-result
		return console.ErrAborted
	}
	return <-result
}
