package interactive

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-qrform/pkg/generator"
	"github.com/goliatone/go-qrform/pkg/model"
	"github.com/goliatone/go-qrform/pkg/render"
)

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(Model)
}

func press(t *testing.T, m Model, k tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: k})
	return updated.(Model), cmd
}

func TestNewModel_FocusesDefaultField(t *testing.T) {
	m := NewModel(generator.NewContact(), DefaultStyles())
	assert.Equal(t, model.FieldName, m.Focused())
	assert.Len(t, m.inputs, 8)
	assert.True(t, m.inputs[0].Focused())
}

func TestModel_TypingWritesThroughGenerator(t *testing.T) {
	gen := generator.NewContact()
	m := NewModel(gen, DefaultStyles())

	m = typeText(t, m, "Ada")
	assert.Equal(t, "Ada", gen.Get(model.FieldName))

	m, _ = press(t, m, tea.KeyTab)
	m, _ = press(t, m, tea.KeyTab)
	require.Equal(t, model.FieldTel, m.Focused())

	m = typeText(t, m, "abc")
	assert.Equal(t, "Phone number must be digits only.", m.FieldError(model.FieldTel))
	assert.Contains(t, m.View(), "Phone number must be digits only.")
}

func TestModel_FocusWraps(t *testing.T) {
	m := NewModel(generator.NewContact(), DefaultStyles())
	m, _ = press(t, m, tea.KeyShiftTab)
	assert.Equal(t, model.FieldMemo, m.Focused())
	m, _ = press(t, m, tea.KeyDown)
	assert.Equal(t, model.FieldName, m.Focused())
}

func TestModel_SubmitProducesPayload(t *testing.T) {
	m := NewModel(generator.NewContact(), DefaultStyles())
	m = typeText(t, m, "Ada")

	m, cmd := press(t, m, tea.KeyCtrlS)
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)

	out, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, "MECARD:N:Ada;;", out)
	assert.Empty(t, m.View())
}

func TestModel_SubmitMovesFocusToRejectedField(t *testing.T) {
	gen := generator.NewContact()
	_ = gen.Set(model.FieldMemo, "a;b")
	m := NewModel(gen, DefaultStyles())

	m, _ = press(t, m, tea.KeyCtrlS)

	assert.Equal(t, model.FieldMemo, m.Focused())
	assert.Equal(t, "Field must not contains ; characters", m.FieldError(model.FieldMemo))
	_, err := m.Result()
	require.Error(t, err)
	_, ok := generator.AsValidationError(err)
	assert.True(t, ok)
}

func TestModel_EnterOnLastFieldSubmits(t *testing.T) {
	m := NewModel(generator.NewContact(), DefaultStyles())
	m, _ = press(t, m, tea.KeyEnter)
	assert.Equal(t, model.FieldCompany, m.Focused())

	m, _ = press(t, m, tea.KeyShiftTab)
	m, _ = press(t, m, tea.KeyShiftTab)
	require.Equal(t, model.FieldMemo, m.Focused())
	m, _ = press(t, m, tea.KeyEnter)

	out, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, "MECARD:N:;;", out)
}

func TestModel_EscAborts(t *testing.T) {
	m := NewModel(generator.NewContact(), DefaultStyles())
	m, cmd := press(t, m, tea.KeyEsc)
	require.NotNil(t, cmd)
	_, err := m.Result()
	assert.ErrorIs(t, err, ErrAborted)
}

func TestModel_ViewShowsLayout(t *testing.T) {
	m := NewModel(generator.NewContact(), DefaultStyles())
	view := m.View()
	for _, label := range []string{"Contact information", "Name", "Phone number", "Address 2", "Website", "Memo"} {
		assert.Contains(t, view, label)
	}
}

func TestRenderer_Metadata(t *testing.T) {
	r := New(WithStyles(DefaultStyles()))
	assert.Equal(t, "interactive", r.Name())
	assert.Contains(t, r.ContentType(), "text/plain")

	_, err := r.Render(context.Background(), nil, render.RenderOptions{})
	assert.Error(t, err)
}
