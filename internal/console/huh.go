package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/util/naming"
)

var _ Console = (*Huh)(nil)

// Huh is the terminal Console backed by charmbracelet/huh forms.
type Huh struct {
	out         io.Writer
	interactive bool
}

// NewHuh creates a console writing to out. When interactive is false no
// prompt is rendered and defaults are returned instead.
func NewHuh(out io.Writer, interactive bool) *Huh {
	return &Huh{out: out, interactive: interactive}
}

// IsTerminal reports whether both stdin and stdout are attached to a terminal.
func IsTerminal() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Interactive implements Console.
func (h *Huh) Interactive() bool {
	return h.interactive
}

func (h *Huh) run(ctx context.Context, field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).WithShowHelp(false).RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	if err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

// Ask implements Console.
func (h *Huh) Ask(ctx context.Context, question, defaultValue string, validate Validator) (string, error) {
	if !h.interactive {
		if validate != nil {
			if err := validate(defaultValue); err != nil {
				return "", err
			}
		}
		return defaultValue, nil
	}

	value := defaultValue
	input := huh.NewInput().
		Title(question).
		Placeholder(defaultValue).
		Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}
	if err := h.run(ctx, input); err != nil {
		return "", err
	}
	return value, nil
}

// AskHidden implements Console.
func (h *Huh) AskHidden(ctx context.Context, question string) (string, error) {
	if !h.interactive {
		return "", nil
	}

	var value string
	input := huh.NewInput().
		Title(question).
		EchoMode(huh.EchoModePassword).
		Value(&value)
	if err := h.run(ctx, input); err != nil {
		return "", err
	}
	return value, nil
}

// AskSlug implements Console.
func (h *Huh) AskSlug(ctx context.Context, question, defaultValue string, validate Validator) (string, error) {
	slugValidate := validate
	if validate != nil {
		slugValidate = func(s string) error { return validate(naming.Slug(s)) }
	}
	value, err := h.Ask(ctx, question, defaultValue, slugValidate)
	if err != nil {
		return "", err
	}
	return naming.Slug(value), nil
}

// Confirm implements Console.
func (h *Huh) Confirm(ctx context.Context, question string, defaultValue bool) (bool, error) {
	if !h.interactive {
		return defaultValue, nil
	}

	value := defaultValue
	confirm := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&value)
	if err := h.run(ctx, confirm); err != nil {
		return false, err
	}
	return value, nil
}

// Choice implements Console.
func (h *Huh) Choice(ctx context.Context, question string, options []Option, defaultKey string) (string, error) {
	if !h.interactive {
		return defaultKey, nil
	}

	value := defaultKey
	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o.Label, o.Key))
	}
	sel := huh.NewSelect[string]().
		Title(question).
		Options(opts...).
		Value(&value)
	if err := h.run(ctx, sel); err != nil {
		return "", err
	}
	return value, nil
}

// ChoiceWithID implements Console.
func (h *Huh) ChoiceWithID(ctx context.Context, question string, resources []model.Resource) (int, error) {
	if !h.interactive {
		return 0, nil
	}

	var value int
	opts := make([]huh.Option[int], 0, len(resources))
	for _, r := range resources {
		opts = append(opts, huh.NewOption(r.Name(), r.ID()))
	}
	sel := huh.NewSelect[int]().
		Title(question).
		Options(opts...).
		Value(&value)
	if err := h.run(ctx, sel); err != nil {
		return 0, err
	}
	return value, nil
}

// ChoiceWithResourceDetails implements Console.
func (h *Huh) ChoiceWithResourceDetails(ctx context.Context, question string, resources []model.Resource) (string, error) {
	options := make([]Option, 0, len(resources))
	for _, r := range resources {
		options = append(options, Option{Key: ResourceKey(r), Label: ResourceDetails(r)})
	}
	return h.Choice(ctx, question, options, "")
}

// Multichoice implements Console.
func (h *Huh) Multichoice(ctx context.Context, question string, options []Option, defaults []string) ([]string, error) {
	if !h.interactive {
		return defaults, nil
	}

	selected := make(map[string]bool, len(defaults))
	for _, d := range defaults {
		selected[d] = true
	}
	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o.Label, o.Key).Selected(selected[o.Key]))
	}

	var values []string
	sel := huh.NewMultiSelect[string]().
		Title(question).
		Options(opts...).
		Value(&values)
	if err := h.run(ctx, sel); err != nil {
		return nil, err
	}
	return values, nil
}

// Info implements Console.
func (h *Huh) Info(format string, args ...any) {
	_, _ = fmt.Fprintln(h.out, fmt.Sprintf(format, args...))
}

// Success implements Console.
func (h *Huh) Success(format string, args ...any) {
	_, _ = fmt.Fprintln(h.out, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Warn implements Console.
func (h *Huh) Warn(format string, args ...any) {
	_, _ = fmt.Fprintln(h.out, warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Error implements Console.
func (h *Huh) Error(format string, args ...any) {
	_, _ = fmt.Fprintln(h.out, errorStyle.Render(fmt.Sprintf(format, args...)))
}

// Table implements Console.
func (h *Huh) Table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, _ = fmt.Fprintln(h.out, t.Render())
}

// Newline implements Console.
func (h *Huh) Newline() {
	_, _ = fmt.Fprintln(h.out)
}

// FormatBool renders a boolean for tables.
func FormatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// FormatInt renders an integer for tables, leaving zero values blank.
func FormatInt(i int) string {
	if i == 0 {
		return ""
	}
	return strconv.Itoa(i)
}
