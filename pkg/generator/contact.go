package generator

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-qrform/pkg/binding"
	"github.com/goliatone/go-qrform/pkg/mecard"
	"github.com/goliatone/go-qrform/pkg/model"
	"github.com/goliatone/go-qrform/pkg/validators"
)

// ContactName is the title of the contact generator.
const ContactName = "Contact information"

// RequiredClass is the style hint attached to required inputs.
const RequiredClass = "input-field-required"

// contactFields lists the inputs in parse order.
var contactFields = []model.FieldID{
	model.FieldName,
	model.FieldCompany,
	model.FieldTel,
	model.FieldURL,
	model.FieldEmail,
	model.FieldAddress,
	model.FieldAddress2,
	model.FieldMemo,
}

// contactRows lists the inputs in display order. The website row sits below
// the address lines even though it is parsed before them.
var contactRows = []model.FieldID{
	model.FieldName,
	model.FieldCompany,
	model.FieldTel,
	model.FieldEmail,
	model.FieldAddress,
	model.FieldAddress2,
	model.FieldURL,
	model.FieldMemo,
}

var defaultContactLabels = map[model.FieldID]string{
	model.FieldName:     "Name",
	model.FieldCompany:  "Company",
	model.FieldTel:      "Phone number",
	model.FieldEmail:    "Email",
	model.FieldAddress:  "Address",
	model.FieldAddress2: "Address 2",
	model.FieldURL:      "Website",
	model.FieldMemo:     "Memo",
}

// Contact collects contact-card fields and serializes them as MeCard text.
type Contact struct {
	form   *binding.Form
	logger *zap.Logger
	format mecard.Format
	labels map[model.FieldID]string

	strictEmptyURL  bool
	changeListeners []ChangeListener
	focusListeners  []FocusListener

	layoutOnce sync.Once
	layout     *model.Layout
}

var _ Generator = (*Contact)(nil)

// NewContact builds a contact generator with empty fields.
func NewContact(options ...Option) *Contact {
	c := &Contact{
		form:   binding.NewForm(contactFields...),
		logger: zap.NewNop(),
		format: mecard.FormatMeCard,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	c.form.OnFieldChange(func(id model.FieldID, _, _ string) {
		err := c.Validate(id)
		for _, fn := range c.changeListeners {
			fn(id, err)
		}
	})
	return c
}

// Name implements Generator.
func (c *Contact) Name() string {
	return ContactName
}

// Form implements Generator.
func (c *Contact) Form() *binding.Form {
	return c.form
}

// Set writes value into the field bound to id. Listeners run before Set
// returns.
func (c *Contact) Set(id model.FieldID, value string) error {
	if err := c.form.Set(id, value); err != nil {
		return fmt.Errorf("%w %q", ErrUnknownField, id)
	}
	return nil
}

// Get returns the raw value of id.
func (c *Contact) Get(id model.FieldID) string {
	return c.form.Get(id)
}

// Fill writes every value of record into the form.
func (c *Contact) Fill(record mecard.Contact) {
	_ = c.form.Set(model.FieldName, record.Name)
	_ = c.form.Set(model.FieldCompany, record.Company)
	_ = c.form.Set(model.FieldTel, record.Tel)
	_ = c.form.Set(model.FieldURL, record.URL)
	_ = c.form.Set(model.FieldEmail, record.Email)
	_ = c.form.Set(model.FieldAddress, record.Address)
	_ = c.form.Set(model.FieldAddress2, record.Address2)
	_ = c.form.Set(model.FieldMemo, record.Memo)
}

// OnChange registers fn for field changes after construction.
func (c *Contact) OnChange(fn ChangeListener) *binding.Subscription {
	if fn == nil {
		return &binding.Subscription{}
	}
	return c.form.OnFieldChange(func(id model.FieldID, _, _ string) {
		fn(id, c.Validate(id))
	})
}

// Validate implements Generator.
func (c *Contact) Validate(id model.FieldID) error {
	_, err := c.parse(id)
	return err
}

// Record parses every field in order and returns the validated record. The
// first failing field aborts parsing.
func (c *Contact) Record() (mecard.Contact, error) {
	values := make(map[model.FieldID]string, len(contactFields))
	for _, id := range contactFields {
		value, err := c.parse(id)
		if err != nil {
			return mecard.Contact{}, err
		}
		values[id] = value
	}
	return mecard.Contact{
		Name:     values[model.FieldName],
		Company:  values[model.FieldCompany],
		Tel:      values[model.FieldTel],
		URL:      values[model.FieldURL],
		Email:    values[model.FieldEmail],
		Address:  values[model.FieldAddress],
		Address2: values[model.FieldAddress2],
		Memo:     values[model.FieldMemo],
	}, nil
}

// Text implements Generator.
func (c *Contact) Text() (string, error) {
	record, err := c.Record()
	if err != nil {
		return "", err
	}
	out, err := mecard.EncodeAs(c.format, record)
	if err != nil {
		return "", fmt.Errorf("generator: %w", err)
	}
	return out, nil
}

// Layout implements Generator. The layout is built on first use.
func (c *Contact) Layout() *model.Layout {
	c.layoutOnce.Do(func() {
		fields := make([]model.Field, 0, len(contactRows))
		for _, id := range contactRows {
			fields = append(fields, c.describe(id))
		}
		c.layout = model.NewLayout(ContactName, fields...)
	})
	return c.layout
}

// Focus implements Generator. The name input always takes focus first.
func (c *Contact) Focus() model.FieldID {
	for _, fn := range c.focusListeners {
		fn(model.FieldName)
	}
	return model.FieldName
}

func (c *Contact) describe(id model.FieldID) model.Field {
	field := model.Field{
		ID:    id,
		Label: defaultContactLabels[id],
	}
	if label, ok := c.labels[id]; ok {
		field.Label = label
	}

	switch id {
	case model.FieldName:
		field.Required = true
		field.Metadata = map[string]string{"class": RequiredClass}
		field.Validations = textRules()
	case model.FieldTel:
		field.InputType = "tel"
		field.Validations = []model.ValidationRule{
			{Kind: model.ValidationRulePhone},
			{Kind: model.ValidationRuleNoSemicolon},
		}
	case model.FieldEmail:
		field.InputType = "email"
		field.Validations = []model.ValidationRule{
			{Kind: model.ValidationRuleEmail},
			{Kind: model.ValidationRuleNoSemicolon},
		}
	case model.FieldURL:
		field.InputType = "url"
		field.Validations = []model.ValidationRule{{Kind: model.ValidationRuleURL}}
	default:
		field.Validations = textRules()
	}
	if field.InputType == "" {
		field.InputType = "text"
	}
	return field
}

func textRules() []model.ValidationRule {
	return []model.ValidationRule{
		{Kind: model.ValidationRuleNoNewline},
		{Kind: model.ValidationRuleNoSemicolon},
	}
}

func (c *Contact) parse(id model.FieldID) (string, error) {
	var (
		value string
		err   error
	)
	switch id {
	case model.FieldName, model.FieldCompany, model.FieldAddress, model.FieldAddress2, model.FieldMemo:
		value, err = parseText(c.form.Get(id))
	case model.FieldTel:
		value, err = parseTel(c.form.Get(id))
	case model.FieldURL:
		value, err = c.parseURL(c.form.Get(id))
	case model.FieldEmail:
		value, err = parseEmail(c.form.Get(id))
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownField, id)
	}
	if err != nil {
		c.logger.Debug("field rejected",
			zap.String("generator", ContactName),
			zap.String("field", id.String()),
			zap.Error(err))
		return "", newValidationError(id, err)
	}
	return value, nil
}

func parseText(input string) (string, error) {
	if input == "" {
		return "", nil
	}
	if err := validators.ValidateText(input); err != nil {
		return "", err
	}
	return input, nil
}

var (
	errTelSemicolon   = errors.New("Tel must not contains ; characters")
	errEmailSemicolon = errors.New("Email must not contains ; characters")
)

func parseTel(input string) (string, error) {
	number := validators.FilterNumber(input)
	if number == "" {
		return "", nil
	}
	if err := validators.ValidateNumber(number); err != nil {
		return "", err
	}
	if strings.Contains(number, ";") {
		return "", errTelSemicolon
	}
	return number, nil
}

func (c *Contact) parseURL(input string) (string, error) {
	if input == "" && !c.strictEmptyURL {
		return "", nil
	}
	if err := validators.ValidateURL(input); err != nil {
		return "", err
	}
	if err := validators.ValidateText(input); err != nil {
		return "", err
	}
	return input, nil
}

func parseEmail(input string) (string, error) {
	if input == "" {
		return "", nil
	}
	if err := validators.ValidateEmail(input); err != nil {
		return "", err
	}
	if strings.Contains(input, ";") {
		return "", errEmailSemicolon
	}
	return input, nil
}
