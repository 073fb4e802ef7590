package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-qrform/pkg/model"
	"github.com/goliatone/go-qrform/pkg/orchestrator"
	"github.com/goliatone/go-qrform/pkg/render"
	"github.com/goliatone/go-qrform/pkg/renderers/interactive"
	"github.com/goliatone/go-qrform/pkg/renderers/tui"
	"github.com/goliatone/go-qrform/pkg/renderers/vanilla"
)

// renderFlags are shared by the commands that run a renderer.
type renderFlags struct {
	values map[string]string

	review      bool
	maxAttempts int

	action   string
	validate bool
}

func (f *renderFlags) bindValues(cmd *cobra.Command) {
	cmd.Flags().StringToStringVar(&f.values, "set", nil, "prefill a field, e.g. --set name=Ada")
}

func (f *renderFlags) options() render.RenderOptions {
	if len(f.values) == 0 {
		return render.RenderOptions{}
	}
	values := make(map[model.FieldID]string, len(f.values))
	for id, v := range f.values {
		values[model.FieldID(id)] = v
	}
	return render.RenderOptions{Values: values}
}

func newPromptCmd(a *app) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Ask for each field in turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRenderer(cmd, "tui", f)
		},
	}
	f.bindValues(cmd)
	cmd.Flags().BoolVar(&f.review, "review", false, "confirm the payload before printing it")
	cmd.Flags().IntVar(&f.maxAttempts, "max-attempts", 0, "give up after this many invalid answers per field (0 = unlimited)")
	return cmd
}

func newInteractiveCmd(a *app) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Edit all fields in a full-screen form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRenderer(cmd, "interactive", f)
		},
	}
	f.bindValues(cmd)
	return cmd
}

func newFormCmd(a *app) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Write the contact form as HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRenderer(cmd, "vanilla", f)
		},
	}
	f.bindValues(cmd)
	cmd.Flags().StringVar(&f.action, "action", "", "form action URL")
	cmd.Flags().BoolVar(&f.validate, "validate", false, "show validation messages for prefilled values")
	return cmd
}

// registry builds the renderers configured from the loaded settings.
func (a *app) registry(f *renderFlags) (*render.Registry, error) {
	if f == nil {
		f = &renderFlags{}
	}
	theme := tui.Theme{
		RequiredSuffix: a.cfg.Theme.RequiredSuffix,
		InfoPrefix:     a.cfg.Theme.InfoPrefix,
		ErrorPrefix:    a.cfg.Theme.ErrorPrefix,
	}
	prompts, err := tui.New(
		tui.WithPromptDriver(tui.NewSurveyDriver(os.Stderr)),
		tui.WithTheme(theme),
		tui.WithReview(f.review),
		tui.WithMaxAttempts(f.maxAttempts),
		tui.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}
	html, err := vanilla.New(
		vanilla.WithAction(f.action),
		vanilla.WithInlineValidation(f.validate),
	)
	if err != nil {
		return nil, err
	}
	form := interactive.New(interactive.WithProgramOptions(tea.WithOutput(os.Stderr)))

	registry := render.NewRegistry()
	for _, r := range []render.Renderer{prompts, form, html} {
		if err := registry.Register(r); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func (a *app) runRenderer(cmd *cobra.Command, name string, f *renderFlags) error {
	registry, err := a.registry(f)
	if err != nil {
		return err
	}
	orch := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(a.cfg.Renderer),
		orchestrator.WithLogger(a.logger),
	)

	var opts render.RenderOptions
	if f != nil {
		opts = f.options()
	}
	out, err := orch.Generate(cmd.Context(), orchestrator.Request{
		Generator:     a.newGenerator(),
		Renderer:      name,
		RenderOptions: opts,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return a.write(cmd, out)
}
