package qrform

import (
	"context"
	"fmt"

	"github.com/goliatone/go-qrform/pkg/generator"
	"github.com/goliatone/go-qrform/pkg/model"
	"github.com/goliatone/go-qrform/pkg/orchestrator"
	"github.com/goliatone/go-qrform/pkg/render"
	"github.com/goliatone/go-qrform/pkg/renderers/interactive"
	"github.com/goliatone/go-qrform/pkg/renderers/tui"
	"github.com/goliatone/go-qrform/pkg/renderers/vanilla"
)

// RenderOptions describes per-request values and errors; alias exported via
// the root package for convenience.
type RenderOptions = render.RenderOptions

// Generator aliases generator.Generator.
type Generator = generator.Generator

// Contact aliases the contact generator.
type Contact = generator.Contact

// FieldID aliases model.FieldID.
type FieldID = model.FieldID

// Field identifiers of the contact form.
const (
	FieldName     = model.FieldName
	FieldCompany  = model.FieldCompany
	FieldTel      = model.FieldTel
	FieldURL      = model.FieldURL
	FieldEmail    = model.FieldEmail
	FieldAddress  = model.FieldAddress
	FieldAddress2 = model.FieldAddress2
	FieldMemo     = model.FieldMemo
)

// NewContact exposes the contact generator constructor from the top-level
// module.
func NewContact(options ...generator.Option) *Contact {
	return generator.NewContact(options...)
}

// NewOrchestrator exposes the orchestrator constructor.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// DefaultRenderers returns a registry holding the tui, interactive and
// vanilla renderers with their default settings.
func DefaultRenderers() (*render.Registry, error) {
	registry := render.NewRegistry()

	prompts, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("qrform: tui renderer: %w", err)
	}
	html, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("qrform: vanilla renderer: %w", err)
	}

	for _, r := range []render.Renderer{prompts, interactive.New(), html} {
		if err := registry.Register(r); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// Generate renders gen with the named renderer from DefaultRenderers. For
// the prompting renderers the result is the payload text; for vanilla it is
// the form markup.
func Generate(ctx context.Context, gen Generator, rendererName string, opts RenderOptions) ([]byte, error) {
	registry, err := DefaultRenderers()
	if err != nil {
		return nil, err
	}
	orch := orchestrator.New(orchestrator.WithRegistry(registry))
	return orch.Generate(ctx, orchestrator.Request{
		Generator:     gen,
		Renderer:      rendererName,
		RenderOptions: opts,
	})
}
