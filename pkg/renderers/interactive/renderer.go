package interactive

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-qrform/pkg/generator"
	"github.com/goliatone/go-qrform/pkg/render"
)

// Option configures the interactive renderer.
type Option func(*Renderer)

// WithStyles overrides the default palette.
func WithStyles(styles Styles) Option {
	return func(r *Renderer) {
		r.styles = styles
	}
}

// WithProgramOptions forwards options to tea.NewProgram, e.g. alternate
// input and output streams.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(r *Renderer) {
		r.programOptions = append(r.programOptions, opts...)
	}
}

// Renderer implements render.Renderer by running a bubbletea program.
type Renderer struct {
	styles         Styles
	programOptions []tea.ProgramOption
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the interactive renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{styles: DefaultStyles()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "interactive"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render prefills the generator and runs the form until it is submitted or
// cancelled.
func (r *Renderer) Render(ctx context.Context, gen generator.Generator, opts render.RenderOptions) ([]byte, error) {
	if gen == nil {
		return nil, errors.New("interactive: generator is required")
	}
	render.Prefill(gen, opts)

	text, err := Run(ctx, NewModel(gen, r.styles), r.programOptions...)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// Run executes m in a bubbletea program bound to ctx and returns the form
// result.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) (string, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return "", fmt.Errorf("interactive: run program: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("interactive: unexpected model %T", final)
	}
	return fm.Result()
}
