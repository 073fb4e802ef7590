package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-qrform/pkg/generator"
	"github.com/goliatone/go-qrform/pkg/model"
	"github.com/goliatone/go-qrform/pkg/render"
)

// Renderer implements render.Renderer as a sequential prompt session: one
// question per layout row, each answer validated before moving on.
type Renderer struct {
	driver      PromptDriver
	theme       Theme
	maxAttempts int
	review      bool
	logger      *zap.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, no attempt
// limit, no review step).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		theme:  DefaultTheme(),
		logger: zap.NewNop(),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render prompts for every row of the generator layout, starting at the
// generator's focus field, and returns the generated payload.
func (r *Renderer) Render(ctx context.Context, gen generator.Generator, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, errors.New("tui: generator is required")
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	opts = render.Prefill(gen, opts)
	for _, msg := range opts.FormErrors {
		_ = r.driver.Info(ctx, r.theme.InfoPrefix+msg)
	}

	layout := gen.Layout()
	order := promptOrder(layout, gen.Focus())

	for {
		for _, id := range order {
			field, _ := layout.Field(id)
			if err := r.promptField(ctx, gen, field, opts.Errors[id]); err != nil {
				return nil, err
			}
		}

		text, err := gen.Text()
		if err != nil {
			// Values can still change between prompts through other
			// listeners; report and go around again.
			mapping := render.MapValidationError(layout, err)
			opts = mapping.Apply(render.RenderOptions{})
			_ = r.driver.Info(ctx, r.theme.ErrorPrefix+err.Error())
			continue
		}

		if !r.review {
			r.logger.Debug("payload generated", zap.String("generator", gen.Name()), zap.Int("bytes", len(text)))
			return []byte(text), nil
		}

		_ = r.driver.Info(ctx, text)
		ok, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: "Use this payload?",
			Default: true,
		})
		if err != nil {
			return nil, err
		}
		if ok {
			return []byte(text), nil
		}
		opts = render.RenderOptions{}
	}
}

func (r *Renderer) promptField(ctx context.Context, gen generator.Generator, field model.Field, serverErrs []string) error {
	label := r.displayLabel(field)
	help := displayHelp(field)
	form := gen.Form()

	for _, msg := range serverErrs {
		_ = r.driver.Info(ctx, fmt.Sprintf("%s%s: %s", r.theme.ErrorPrefix, field.ID, msg))
	}

	for attempt := 1; ; attempt++ {
		response, err := r.driver.Input(ctx, InputConfig{
			Message: label,
			Default: form.Get(field.ID),
			Help:    help,
		})
		if err != nil {
			return err
		}

		if err := form.Set(field.ID, response); err != nil {
			return fmt.Errorf("tui: %w", err)
		}

		verr := gen.Validate(field.ID)
		if verr == nil {
			return nil
		}

		message := verr.Error()
		if v, ok := generator.AsValidationError(verr); ok {
			message = v.Message
		}
		r.logger.Debug("prompt rejected", zap.String("field", field.ID.String()), zap.Int("attempt", attempt))
		_ = r.driver.Info(ctx, fmt.Sprintf("%s%s: %s", r.theme.ErrorPrefix, field.ID, message))

		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			return fmt.Errorf("%w: %s", ErrTooManyAttempts, field.ID)
		}
	}
}

func (r *Renderer) displayLabel(field model.Field) string {
	label := field.Label
	if label == "" {
		label = model.DefaultLabeler(string(field.ID))
	}
	if field.Required {
		label += r.theme.RequiredSuffix
	}
	return label
}

func displayHelp(field model.Field) string {
	if field.Help != "" {
		return field.Help
	}
	var hints []string
	for _, rule := range field.Validations {
		switch rule.Kind {
		case model.ValidationRulePhone:
			hints = append(hints, "digits, optionally with a leading +")
		case model.ValidationRuleEmail:
			hints = append(hints, "an address like name@example.com")
		case model.ValidationRuleURL:
			hints = append(hints, "a web address like https://example.com")
		case model.ValidationRuleNoSemicolon:
			hints = append(hints, "no ; characters")
		}
	}
	return strings.Join(hints, ", ")
}

// promptOrder rotates the layout so the focus field is asked first.
func promptOrder(layout *model.Layout, focus model.FieldID) []model.FieldID {
	ids := layout.IDs()
	start := layout.Index(focus)
	if start <= 0 {
		return ids
	}
	return append(ids[start:], ids[:start]...)
}
