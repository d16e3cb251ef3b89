package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/vortex-fintech/go-contactform/form"
	errs "github.com/vortex-fintech/go-contactform/foundation/errors"
	"github.com/vortex-fintech/go-contactform/messages"
)

// Runner drives a form.Controller from terminal prompts: each answer is an
// update followed by a blur, and a field is asked again while it has an error,
// up to MaxAttempts times before moving on.
type Runner struct {
	driver  Driver
	ctrl    *form.Controller
	catalog messages.Catalog
	pattern string

	// MaxAttempts bounds answers per field and pass; zero means ask until valid.
	MaxAttempts int
}

const DefaultMaxAttempts = 3

// NewRunner wires a driver to a controller. pattern is the phone mask shown as help.
func NewRunner(d Driver, c *form.Controller, catalog messages.Catalog, pattern string) *Runner {
	return &Runner{driver: d, ctrl: c, catalog: catalog, pattern: pattern, MaxAttempts: DefaultMaxAttempts}
}

// Run collects every field and submits. When the submission is rejected the
// user may go through the form again; declining returns the rejection.
func (r *Runner) Run(ctx context.Context) (form.Submission, error) {
	for {
		for _, f := range form.Fields() {
			if err := r.fill(ctx, f); err != nil {
				return form.Submission{}, err
			}
		}

		sub, err := r.ctrl.Submit()
		if err == nil {
			return sub, nil
		}

		var resp errs.ErrorResponse
		if !errors.As(err, &resp) {
			return form.Submission{}, err
		}
		if err := r.report(ctx, resp); err != nil {
			return form.Submission{}, err
		}

		again, err := r.driver.Confirm(ctx, ConfirmConfig{Message: r.catalog.Text(messages.PromptRetry), Default: true})
		if err != nil {
			return form.Submission{}, err
		}
		if !again {
			return form.Submission{}, resp
		}
	}
}

func (r *Runner) fill(ctx context.Context, f form.Field) error {
	for attempt := 1; ; attempt++ {
		raw, err := r.ask(ctx, f)
		if err != nil {
			return err
		}

		r.ctrl.UpdateField(f, raw)
		r.ctrl.HandleBlur(f)

		msg := r.ctrl.VisibleError(f)
		if msg == "" {
			return nil
		}
		if err := r.driver.Info(ctx, "  ✗ "+msg); err != nil {
			return err
		}
		if r.MaxAttempts > 0 && attempt >= r.MaxAttempts {
			return nil
		}
	}
}

func (r *Runner) ask(ctx context.Context, f form.Field) (string, error) {
	label := r.catalog.Text(messages.Label(string(f)))
	current := r.ctrl.Value(f)

	switch f {
	case form.Message:
		return r.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: current})
	case form.Phone:
		return r.driver.Input(ctx, InputConfig{
			Message: label,
			Default: current,
			Help:    r.catalog.Text(messages.PromptPhone, r.pattern),
		})
	default:
		return r.driver.Input(ctx, InputConfig{Message: label, Default: current})
	}
}

func (r *Runner) report(ctx context.Context, resp errs.ErrorResponse) error {
	if err := r.driver.Info(ctx, resp.Message); err != nil {
		return err
	}
	for _, v := range resp.Violations {
		label := r.catalog.Text(messages.Label(v.Field))
		if err := r.driver.Info(ctx, fmt.Sprintf("  %s: %s", label, v.Description)); err != nil {
			return err
		}
	}
	return nil
}
