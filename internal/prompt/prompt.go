// Package prompt implements the interactive collaborators on top of survey.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/Petemir/2do-txt/internal/service"
)

// Prompter asks questions on the terminal.
type Prompter struct {
	opts []survey.AskOpt
}

// New creates a Prompter. opts are passed to every survey question.
func New(opts ...survey.AskOpt) *Prompter {
	return &Prompter{opts: opts}
}

// Ask shows the confirmation's options as a select list.
// Interrupting the prompt (Ctrl+C) is treated as choosing Cancel.
func (p *Prompter) Ask(ctx context.Context, c service.Confirmation) (service.Choice, error) {
	if err := ctx.Err(); err != nil {
		return service.ChoiceCancel, err
	}
	if len(c.Options) == 0 {
		return service.ChoiceCancel, nil
	}

	labels := make([]string, len(c.Options))
	for i, opt := range c.Options {
		labels[i] = opt.Label
	}

	var selected int
	q := &survey.Select{
		Message: c.Message,
		Options: labels,
	}
	if err := survey.AskOne(q, &selected, p.opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return service.ChoiceCancel, nil
		}
		return service.ChoiceCancel, fmt.Errorf("prompt failed: %w", err)
	}
	return c.Options[selected].Choice, nil
}

// Input asks for a line of text, pre-filled with def.
func (p *Prompter) Input(ctx context.Context, message, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var result string
	q := &survey.Input{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(q, &result, p.opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", nil
		}
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return result, nil
}

// YesNo asks a yes/no question.
func (p *Prompter) YesNo(ctx context.Context, message string, def bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var result bool
	q := &survey.Confirm{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(q, &result, p.opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return false, nil
		}
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return result, nil
}

// Auto answers every confirmation with a fixed choice.
type Auto struct {
	Answer service.Choice
}

// Ask returns a.Answer if it is one of the offered options, otherwise Cancel.
func (a Auto) Ask(ctx context.Context, c service.Confirmation) (service.Choice, error) {
	for _, opt := range c.Options {
		if opt.Choice == a.Answer {
			return a.Answer, nil
		}
	}
	return service.ChoiceCancel, nil
}
