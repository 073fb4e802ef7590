package model

// FieldID identifies one input of a generator form.
type FieldID string

// Contact form field identifiers.
const (
	FieldName     FieldID = "name"
	FieldCompany  FieldID = "company"
	FieldTel      FieldID = "tel"
	FieldURL      FieldID = "url"
	FieldEmail    FieldID = "email"
	FieldAddress  FieldID = "address"
	FieldAddress2 FieldID = "address2"
	FieldMemo     FieldID = "memo"
)

// String implements fmt.Stringer.
func (id FieldID) String() string {
	return string(id)
}

const (
	ValidationRuleNoNewline   = "noNewline"
	ValidationRuleNoSemicolon = "noSemicolon"
	ValidationRulePhone       = "phone"
	ValidationRuleEmail       = "email"
	ValidationRuleURL         = "url"
)

// ValidationRule names a constraint applied to a field. Renderers use the
// kinds as hints (input types, pattern attributes); the generator remains the
// authority on whether a value is accepted.
type ValidationRule struct {
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

// Field describes a single bound input.
type Field struct {
	ID          FieldID           `json:"id"`
	Label       string            `json:"label"`
	Required    bool              `json:"required"`
	InputType   string            `json:"inputType,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Help        string            `json:"help,omitempty"`
	Validations []ValidationRule  `json:"validations,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// HasRule reports whether the field carries a validation rule of kind.
func (f Field) HasRule(kind string) bool {
	for _, rule := range f.Validations {
		if rule.Kind == kind {
			return true
		}
	}
	return false
}
