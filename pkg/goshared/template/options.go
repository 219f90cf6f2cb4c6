package template

// MissingAction specifies how to handle missing variables.
type MissingAction int

const (
	// MissingKeep keeps the placeholder as-is when the variable is not found.
	// This is the default behavior.
	MissingKeep MissingAction = iota

	// MissingEmpty replaces the placeholder with an empty string.
	MissingEmpty

	// MissingError returns an *UndefinedVariableError.
	MissingError
)

// Option configures an Expander.
type Option func(*Expander)

// WithMissingAction sets how missing variables are handled.
//
// Default: MissingKeep
func WithMissingAction(action MissingAction) Option {
	return func(e *Expander) {
		e.missingAction = action
	}
}

// WithBraceStyle enables or disables ${var} expansion.
//
// Default: true
func WithBraceStyle(enabled bool) Option {
	return func(e *Expander) {
		e.braceStyle = enabled
	}
}

// WithDollarStyle enables or disables $var expansion.
//
// Default: true
func WithDollarStyle(enabled bool) Option {
	return func(e *Expander) {
		e.dollarStyle = enabled
	}
}

// WithFormatStyle enables or disables {var} expansion with {{ and }} escapes.
//
// Format style is strict about braces: a lone "}" or an unclosed "{" makes
// Expand return a *SyntaxError. It is meant to be used on its own; see
// NewFormatter.
//
// Default: false
func WithFormatStyle(enabled bool) Option {
	return func(e *Expander) {
		e.formatStyle = enabled
	}
}
