// Package interactive renders a generator as a full-screen terminal form.
// Every keystroke is written through the generator's bound form, so the
// field's validation message updates while the user types; submitting runs
// the generator's full parse and either quits with the payload or moves focus
// to the first rejected field.
package interactive

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-qrform/pkg/generator"
	"github.com/goliatone/go-qrform/pkg/model"
)

// ErrAborted is returned by Result when the user cancelled the form.
var ErrAborted = errors.New("interactive: aborted")

// Model is the bubbletea model for a generator form.
type Model struct {
	gen    generator.Generator
	layout *model.Layout
	inputs []textinput.Model
	errors map[model.FieldID]string

	focus  int
	keys   formKeys
	help   help.Model
	styles Styles

	result  string
	err     error
	done    bool
	aborted bool
}

// NewModel builds one text input per layout row, seeded from the generator's
// current values, with focus on the generator's default field.
func NewModel(gen generator.Generator, styles Styles) Model {
	layout := gen.Layout()
	form := gen.Form()

	inputs := make([]textinput.Model, len(layout.Rows))
	for i, row := range layout.Rows {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = row.Field.Placeholder
		ti.SetValue(form.Get(row.Field.ID))
		inputs[i] = ti
	}

	m := Model{
		gen:    gen,
		layout: layout,
		inputs: inputs,
		errors: make(map[model.FieldID]string),
		keys:   defaultKeys(),
		help:   help.New(),
		styles: styles,
	}

	focus := layout.Index(gen.Focus())
	if focus < 0 {
		focus = 0
	}
	m.focus = focus
	if len(m.inputs) > 0 {
		m.inputs[m.focus].Focus()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.aborted = true
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Enter):
			if m.focus == len(m.inputs)-1 {
				return m.submit()
			}
			return m, m.moveFocus(1)
		case key.Matches(msg, m.keys.Next):
			return m, m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.moveFocus(-1)
		}
	}

	if len(m.inputs) == 0 {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.sync(m.focus)
	return m, cmd
}

// sync writes input i through the generator and refreshes its message.
func (m *Model) sync(i int) {
	id := m.layout.Rows[i].Field.ID
	_ = m.gen.Form().Set(id, m.inputs[i].Value())
	m.setError(id, m.gen.Validate(id))
}

func (m *Model) setError(id model.FieldID, err error) {
	if err == nil {
		delete(m.errors, id)
		return
	}
	if verr, ok := generator.AsValidationError(err); ok {
		m.errors[id] = verr.Message
		return
	}
	m.errors[id] = err.Error()
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	for i := range m.inputs {
		m.sync(i)
	}

	text, err := m.gen.Text()
	if err != nil {
		m.err = err
		if verr, ok := generator.AsValidationError(err); ok {
			m.setError(verr.Field, err)
			if idx := m.layout.Index(verr.Field); idx >= 0 && idx != m.focus {
				return m, m.moveFocus(idx - m.focus)
			}
		}
		return m, nil
	}

	m.err = nil
	m.result = text
	m.done = true
	return m, tea.Quit
}

// Result returns the generated payload once the form has been submitted.
func (m Model) Result() (string, error) {
	switch {
	case m.aborted:
		return "", ErrAborted
	case !m.done:
		if m.err != nil {
			return "", m.err
		}
		return "", errors.New("interactive: form not submitted")
	default:
		return m.result, nil
	}
}

// Focused returns the identifier of the focused field.
func (m Model) Focused() model.FieldID {
	if len(m.layout.Rows) == 0 {
		return ""
	}
	return m.layout.Rows[m.focus].Field.ID
}

// FieldError returns the message currently shown under id.
func (m Model) FieldError(id model.FieldID) string {
	return m.errors[id]
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.layout.Title))
	b.WriteByte('\n')

	for i, row := range m.layout.Rows {
		labelStyle := m.styles.Label
		if i == m.focus {
			labelStyle = m.styles.Focused
		}
		label := row.Label()
		if row.Field.Required {
			label += m.styles.Required.Render("*")
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString(m.inputs[i].View())
		b.WriteByte('\n')
		if msg := m.errors[row.Field.ID]; msg != "" {
			b.WriteString(m.styles.Error.Render(msg))
			b.WriteByte('\n')
		}
	}

	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}
