package tui

import "go.uber.org/zap"

// Theme captures optional formatting hints the driver can apply when printing
// messages. Keep minimal to avoid coupling renderer logic to ANSI specifics.
type Theme struct {
	RequiredSuffix string
	InfoPrefix     string
	ErrorPrefix    string
}

// DefaultTheme marks required prompts with an asterisk.
func DefaultTheme() Theme {
	return Theme{
		RequiredSuffix: " *",
		ErrorPrefix:    "Invalid ",
	}
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithMaxAttempts bounds how many times a single field is re-prompted after
// failing validation. Zero or less means no limit.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		r.maxAttempts = n
	}
}

// WithReview asks the user to confirm the generated payload before it is
// returned; declining restarts the prompts with the current values as
// defaults.
func WithReview(enabled bool) Option {
	return func(r *Renderer) {
		r.review = enabled
	}
}

// WithLogger sets the logger used for session diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
