package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-qrform/pkg/generator"
	"github.com/goliatone/go-qrform/pkg/model"
	"github.com/goliatone/go-qrform/pkg/render"
)

type stubDriver struct {
	inputs       []string
	confirm      []bool
	prompts      []InputConfig
	infoMessages []string
	inputPos     int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

// rows follow the layout: name, company, tel, email, address, address2, url, memo.
func answers(name, company, tel, email, address, address2, url, memo string) []string {
	return []string{name, company, tel, email, address, address2, url, memo}
}

func TestRender_PromptsEveryRowInLayoutOrder(t *testing.T) {
	driver := &stubDriver{
		inputs: answers("Ada", "", "(555) 123-4567", "", "123 Main", "Apt 4", "", ""),
	}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), generator.NewContact(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if diff := cmp.Diff("MECARD:N:Ada;TEL:5551234567;ADR:123 Main Apt 4;;", string(out)); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}

	var labels []string
	for _, p := range driver.prompts {
		labels = append(labels, p.Message)
	}
	want := []string{"Name *", "Company", "Phone number", "Email", "Address", "Address 2", "Website", "Memo"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_RepromptsInvalidField(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{"Ada", "", "abc", "555", "", "", "", "", ""},
	}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), generator.NewContact(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "MECARD:N:Ada;TEL:555;;" {
		t.Fatalf("unexpected payload %q", out)
	}
	if len(driver.infoMessages) != 1 {
		t.Fatalf("expected one validation message, got %v", driver.infoMessages)
	}
	if got := driver.infoMessages[0]; got != "Invalid tel: Phone number must be digits only." {
		t.Fatalf("unexpected message %q", got)
	}
	if driver.prompts[3].Default != "abc" {
		t.Fatalf("retry should default to the rejected value, got %q", driver.prompts[3].Default)
	}
}

func TestRender_MaxAttempts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"a;b", "c;d"}}
	r, err := New(WithPromptDriver(driver), WithMaxAttempts(2))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	_, err = r.Render(context.Background(), generator.NewContact(), render.RenderOptions{})
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestRender_PrefillBecomesDefault(t *testing.T) {
	driver := &stubDriver{
		inputs: answers("Ada", "Engines", "", "", "", "", "", ""),
	}
	r, _ := New(WithPromptDriver(driver))

	_, err := r.Render(context.Background(), generator.NewContact(), render.RenderOptions{
		Values: map[model.FieldID]string{model.FieldCompany: "Prefilled Co", "fax": "1"},
		Errors: map[model.FieldID][]string{model.FieldCompany: {"already taken"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if driver.prompts[1].Default != "Prefilled Co" {
		t.Fatalf("company default = %q", driver.prompts[1].Default)
	}
	joined := strings.Join(driver.infoMessages, "\n")
	if !strings.Contains(joined, "unknown field fax") || !strings.Contains(joined, "already taken") {
		t.Fatalf("expected prefill and server messages, got %v", driver.infoMessages)
	}
}

func TestRender_ReviewDeclinedStartsOver(t *testing.T) {
	first := answers("Ada", "", "", "", "", "", "", "")
	second := answers("Grace", "", "", "", "", "", "", "")
	driver := &stubDriver{
		inputs:  append(first, second...),
		confirm: []bool{false, true},
	}
	r, _ := New(WithPromptDriver(driver), WithReview(true))

	out, err := r.Render(context.Background(), generator.NewContact(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "MECARD:N:Grace;;" {
		t.Fatalf("unexpected payload %q", out)
	}
	if driver.prompts[8].Default != "Ada" {
		t.Fatalf("second pass should default to first answers, got %q", driver.prompts[8].Default)
	}
}

func TestRender_DriverErrorAborts(t *testing.T) {
	driver := &stubDriver{}
	r, _ := New(WithPromptDriver(driver))
	if _, err := r.Render(context.Background(), generator.NewContact(), render.RenderOptions{}); err == nil {
		t.Fatal("expected driver error")
	}
}

func TestRender_Preconditions(t *testing.T) {
	r, _ := New(WithPromptDriver(&stubDriver{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, generator.NewContact(), render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	if _, err := r.Render(context.Background(), nil, render.RenderOptions{}); err == nil {
		t.Fatal("expected nil generator error")
	}
}

func TestDisplayHelp(t *testing.T) {
	layout := generator.NewContact().Layout()
	tel, _ := layout.Field(model.FieldTel)
	if got := displayHelp(tel); !strings.Contains(got, "digits") {
		t.Fatalf("tel help = %q", got)
	}
	if got := displayHelp(model.Field{Help: "custom"}); got != "custom" {
		t.Fatalf("explicit help = %q", got)
	}
}

func TestPromptOrder(t *testing.T) {
	layout := model.NewLayout("t",
		model.Field{ID: "a"}, model.Field{ID: "b"}, model.Field{ID: "c"},
	)
	if diff := cmp.Diff([]model.FieldID{"b", "c", "a"}, promptOrder(layout, "b")); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]model.FieldID{"a", "b", "c"}, promptOrder(layout, "zzz")); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_Metadata(t *testing.T) {
	r, _ := New(WithPromptDriver(&stubDriver{}))
	if r.Name() != "tui" || !strings.HasPrefix(r.ContentType(), "text/plain") {
		t.Fatalf("unexpected metadata %q %q", r.Name(), r.ContentType())
	}
}
