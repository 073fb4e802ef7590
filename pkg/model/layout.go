package model

// LayoutColumns is the fixed column count of a generator layout: one label
// column and one input column.
const LayoutColumns = 2

// Row binds a label cell to the input field rendered next to it.
type Row struct {
	Field Field `json:"field"`
}

// Label returns the text shown in the label column.
func (r Row) Label() string {
	if r.Field.Label != "" {
		return r.Field.Label
	}
	return DefaultLabeler(string(r.Field.ID))
}

// Layout is the table a generator exposes to renderers. It is built once per
// generator and shared by reference.
type Layout struct {
	Title   string `json:"title,omitempty"`
	Columns int    `json:"columns"`
	Rows    []Row  `json:"rows"`
}

// NewLayout builds a two-column layout with one row per field, in order.
func NewLayout(title string, fields ...Field) *Layout {
	rows := make([]Row, 0, len(fields))
	for _, field := range fields {
		rows = append(rows, Row{Field: field})
	}
	return &Layout{
		Title:   title,
		Columns: LayoutColumns,
		Rows:    rows,
	}
}

// Field looks up a row by field identifier.
func (l *Layout) Field(id FieldID) (Field, bool) {
	if l == nil {
		return Field{}, false
	}
	for _, row := range l.Rows {
		if row.Field.ID == id {
			return row.Field, true
		}
	}
	return Field{}, false
}

// IDs returns the field identifiers in row order.
func (l *Layout) IDs() []FieldID {
	if l == nil {
		return nil
	}
	out := make([]FieldID, 0, len(l.Rows))
	for _, row := range l.Rows {
		out = append(out, row.Field.ID)
	}
	return out
}

// Index returns the row index of id, or -1.
func (l *Layout) Index(id FieldID) int {
	if l == nil {
		return -1
	}
	for i, row := range l.Rows {
		if row.Field.ID == id {
			return i
		}
	}
	return -1
}
