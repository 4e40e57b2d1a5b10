package tui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/ymir/internal/console"
)

// interactiveRunner returns an interactive runner reading keys from in.
func interactiveRunner(out io.Writer, in io.Reader) *Runner {
	r := NewRunner(out, true)
	r.options = []tea.ProgramOption{tea.WithInput(in), tea.WithoutSignalHandler()}
	return r
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m30s"},
		{3600 * time.Second, "1h0m"},
		{3661 * time.Second, "1h1m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.d), tt.d.String())
	}
}

func TestCurrentSpinner_Wraps(t *testing.T) {
	assert.Equal(t, spinnerFrames[0], currentSpinner(0))
	assert.Equal(t, spinnerFrames[1], currentSpinner(len(spinnerFrames)+1))
	assert.Equal(t, spinnerFrames[2], currentSpinner(-2))
}

func TestModelUpdate(t *testing.T) {
	m := NewModel("Creating network")

	next, cmd := m.Update(TickMsg{})
	assert.Equal(t, 1, next.(Model).SpinnerFrame)
	assert.NotNil(t, cmd)

	next, _ = next.Update(DoneMsg{})
	assert.True(t, next.(Model).Done)

	boom := errors.New("boom")
	next, _ = NewModel("x").Update(ErrMsg{Err: boom})
	assert.Same(t, boom, next.(Model).Err)

	next, _ = NewModel("x").Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, next.(Model).Interrupted)
}

func TestModelUpdate_TickStopsWhenFinished(t *testing.T) {
	m := NewModel("x")
	m.Done = true

	_, cmd := m.Update(TickMsg{})
	assert.Nil(t, cmd)
}

func TestRenderView(t *testing.T) {
	m := NewModel("Creating database server")

	running := renderView(m, 3*time.Second)
	assert.Contains(t, running, "Creating database server")
	assert.Contains(t, running, "(3s)")

	m.Done = true
	assert.Contains(t, renderView(m, time.Minute), checkMark)

	m.Done = false
	m.Err = errors.New("failed")
	assert.Contains(t, renderView(m, time.Minute), crossMark)
}

func TestRunner_NonInteractiveRunsDirectly(t *testing.T) {
	var out bytes.Buffer
	called := false

	err := NewRunner(&out, false).Run(context.Background(), "Creating network", func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Empty(t, out.String())
}

func TestRunner_NonInteractiveReturnsError(t *testing.T) {
	boom := errors.New("boom")
	err := NewRunner(&bytes.Buffer{}, false).Run(context.Background(), "x", func(context.Context) error {
		return boom
	})
	assert.Same(t, boom, err)
}

func TestRenderView_SingleLine(t *testing.T) {
	view := renderView(NewModel("Creating team"), 0)
	assert.Equal(t, 1, strings.Count(view, "\n"))
}

func TestRunner_InteractiveSucceeds(t *testing.T) {
	called := false

	err := interactiveRunner(io.Discard, nil).Run(context.Background(), "Creating network", func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestRunner_InteractiveReturnsError(t *testing.T) {
	boom := errors.New("boom")
	err := interactiveRunner(io.Discard, nil).Run(context.Background(), "x", func(context.Context) error {
		return boom
	})
	assert.Same(t, boom, err)
}

func TestRunner_InterruptCancelsCall(t *testing.T) {
	var callErr error

	// 0x03 is ctrl+c.
	err := interactiveRunner(io.Discard, strings.NewReader("\x03")).Run(context.Background(), "x", func(ctx context.Context) error {
		<-ctx.Done()
		callErr = ctx.Err()
		return callErr
	})
	assert.ErrorIs(t, err, console.ErrAborted)
	assert.ErrorIs(t, callErr, context.Canceled)
}
