package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/util/naming"
)

var _ Console = (*Scripted)(nil)

// Scripted is a Console that replays canned answers in order. Every prompt
// consumes one answer and records its question in Asked; a prompt with no
// answer left fails. The keys offered by each choice prompt are recorded in
// Offered. Output is captured in Output.
type Scripted struct {
	answers []any
	Asked   []string
	Offered [][]string
	Output  strings.Builder
}

// NewScripted creates a scripted console. Answers are strings for Ask,
// AskHidden, AskSlug, Choice and ChoiceWithResourceDetails, bools for
// Confirm, ints for ChoiceWithID and string slices for Multichoice.
func NewScripted(answers ...any) *Scripted {
	return &Scripted{answers: answers}
}

// Remaining returns the number of unused answers.
func (s *Scripted) Remaining() int {
	return len(s.answers)
}

// Interactive implements Console.
func (s *Scripted) Interactive() bool {
	return true
}

func next[T any](s *Scripted, question string) (T, error) {
	var zero T
	s.Asked = append(s.Asked, question)
	if len(s.answers) == 0 {
		return zero, fmt.Errorf("unexpected prompt: %q", question)
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]

	value, ok := answer.(T)
	if !ok {
		return zero, fmt.Errorf("scripted answer for %q is %T, expected %T", question, answer, zero)
	}
	return value, nil
}

// Ask implements Console.
func (s *Scripted) Ask(_ context.Context, question, _ string, validate Validator) (string, error) {
	value, err := next[string](s, question)
	if err != nil {
		return "", err
	}
	if validate != nil {
		if err := validate(value); err != nil {
			return "", err
		}
	}
	return value, nil
}

// AskHidden implements Console.
func (s *Scripted) AskHidden(_ context.Context, question string) (string, error) {
	return next[string](s, question)
}

// AskSlug implements Console.
func (s *Scripted) AskSlug(ctx context.Context, question, defaultValue string, validate Validator) (string, error) {
	value, err := s.Ask(ctx, question, defaultValue, nil)
	if err != nil {
		return "", err
	}
	value = naming.Slug(value)
	if validate != nil {
		if err := validate(value); err != nil {
			return "", err
		}
	}
	return value, nil
}

// Confirm implements Console.
func (s *Scripted) Confirm(_ context.Context, question string, _ bool) (bool, error) {
	return next[bool](s, question)
}

// Choice implements Console.
func (s *Scripted) Choice(_ context.Context, question string, options []Option, _ string) (string, error) {
	s.offer(options)
	return next[string](s, question)
}

// ChoiceWithID implements Console.
func (s *Scripted) ChoiceWithID(_ context.Context, question string, resources []model.Resource) (int, error) {
	s.offerResources(resources)
	return next[int](s, question)
}

// ChoiceWithResourceDetails implements Console.
func (s *Scripted) ChoiceWithResourceDetails(_ context.Context, question string, resources []model.Resource) (string, error) {
	s.offerResources(resources)
	return next[string](s, question)
}

// Multichoice implements Console.
func (s *Scripted) Multichoice(_ context.Context, question string, options []Option, _ []string) ([]string, error) {
	s.offer(options)
	return next[[]string](s, question)
}

func (s *Scripted) offer(options []Option) {
	keys := make([]string, 0, len(options))
	for _, o := range options {
		keys = append(keys, o.Key)
	}
	s.Offered = append(s.Offered, keys)
}

func (s *Scripted) offerResources(resources []model.Resource) {
	keys := make([]string, 0, len(resources))
	for _, r := range resources {
		keys = append(keys, ResourceKey(r))
	}
	s.Offered = append(s.Offered, keys)
}

func (s *Scripted) printf(format string, args ...any) {
	s.Output.WriteString(fmt.Sprintf(format, args...))
	s.Output.WriteByte('\n')
}

// Info implements Console.
func (s *Scripted) Info(format string, args ...any) { s.printf(format, args...) }

// Success implements Console.
func (s *Scripted) Success(format string, args ...any) { s.printf(format, args...) }

// Warn implements Console.
func (s *Scripted) Warn(format string, args ...any) { s.printf(format, args...) }

// Error implements Console.
func (s *Scripted) Error(format string, args ...any) { s.printf(format, args...) }

// Table implements Console.
func (s *Scripted) Table(headers []string, rows [][]string) {
	s.printf("%s", strings.Join(headers, " | "))
	for _, row := range rows {
		s.printf("%s", strings.Join(row, " | "))
	}
}

// Newline implements Console.
func (s *Scripted) Newline() {
	s.Output.WriteByte('\n')
}
