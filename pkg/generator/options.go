package generator

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-qrform/pkg/mecard"
	"github.com/goliatone/go-qrform/pkg/model"
)

// Option configures a Contact generator.
type Option func(*Contact)

// WithLogger sets the logger used for validation diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Contact) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFormat selects the payload encoding produced by Text.
func WithFormat(format mecard.Format) Option {
	return func(c *Contact) {
		if format != "" {
			c.format = format
		}
	}
}

// WithStrictEmptyURL makes the URL rule run even when the field is empty. An
// empty URL then fails validation, which blocks output for any card without a
// website.
func WithStrictEmptyURL(strict bool) Option {
	return func(c *Contact) {
		c.strictEmptyURL = strict
	}
}

// WithLabels overrides row labels by field identifier.
func WithLabels(labels map[model.FieldID]string) Option {
	return func(c *Contact) {
		for id, label := range labels {
			if label == "" {
				continue
			}
			if c.labels == nil {
				c.labels = make(map[model.FieldID]string, len(labels))
			}
			c.labels[id] = label
		}
	}
}

// WithChangeListener registers fn to run after every field change.
func WithChangeListener(fn ChangeListener) Option {
	return func(c *Contact) {
		if fn != nil {
			c.changeListeners = append(c.changeListeners, fn)
		}
	}
}

// WithFocusListener registers fn to run when Focus is called.
func WithFocusListener(fn FocusListener) Option {
	return func(c *Contact) {
		if fn != nil {
			c.focusListeners = append(c.focusListeners, fn)
		}
	}
}
