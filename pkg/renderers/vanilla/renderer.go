package vanilla

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io/fs"
	"os"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-qrform/pkg/generator"
	"github.com/goliatone/go-qrform/pkg/model"
	"github.com/goliatone/go-qrform/pkg/render"
)

const formTemplate = "templates/form.tmpl"

type Option func(*config)

type config struct {
	templateFS fs.FS
	policy     *bluemonday.Policy
	action     string
	validate   bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must contain templates/form.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithPolicy replaces the sanitizing policy applied to labels and help text.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// WithAction sets the form action URL. Without it the form has no action
// and is expected to be handled client side.
func WithAction(action string) Option {
	return func(cfg *config) {
		cfg.action = strings.TrimSpace(action)
	}
}

// WithInlineValidation validates every field of the generator at render time
// and shows the failures next to their inputs.
func WithInlineValidation(enabled bool) Option {
	return func(cfg *config) {
		cfg.validate = enabled
	}
}

// Renderer writes a generator layout as an HTML table form.
type Renderer struct {
	engine   *engine
	policy   *bluemonday.Policy
	action   string
	validate bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.policy == nil {
		cfg.policy = bluemonday.StrictPolicy()
	}

	eng, err := newEngine(cfg.templateFS)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: configure template engine: %w", err)
	}

	return &Renderer{
		engine:   eng,
		policy:   cfg.policy,
		action:   cfg.action,
		validate: cfg.validate,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render prefills the generator from opts and writes the form markup.
func (r *Renderer) Render(ctx context.Context, gen generator.Generator, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("vanilla renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, errors.New("vanilla renderer: generator is required")
	}
	if r.engine == nil {
		return nil, errors.New("vanilla renderer: template engine is nil")
	}

	opts = render.Prefill(gen, opts)
	if r.validate {
		opts = render.ValidateAll(gen).Apply(opts)
	}

	result, err := r.engine.render(formTemplate, pongo2.Context{
		"form": r.formData(gen, opts),
	})
	if err != nil {
		return nil, err
	}
	return []byte(result), nil
}

func (r *Renderer) formData(gen generator.Generator, opts render.RenderOptions) map[string]any {
	layout := gen.Layout()
	focus := gen.Focus()
	form := gen.Form()

	rows := make([]map[string]any, 0, len(layout.Rows))
	for _, row := range layout.Rows {
		field := row.Field
		rows = append(rows, map[string]any{
			"id":         string(field.ID),
			"label":      r.clean(row.Label()),
			"input_type": inputType(field),
			"value":      form.Get(field.ID),
			"required":   field.Required,
			"class":      field.Metadata["class"],
			"help":       r.clean(field.Help),
			"autofocus":  field.ID == focus,
			"errors":     opts.Errors[field.ID],
		})
	}

	return map[string]any{
		"name":    gen.Name(),
		"title":   r.clean(layout.Title),
		"action":  r.action,
		"columns": layout.Columns,
		"rows":    rows,
		"errors":  opts.FormErrors,
	}
}

// clean strips markup; the template escapes what is left.
func (r *Renderer) clean(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(r.policy.Sanitize(s)))
}

func inputType(field model.Field) string {
	if field.InputType == "" {
		return "text"
	}
	return field.InputType
}
