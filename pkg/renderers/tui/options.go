package tui

// DebugFormat controls how the payload preview is serialised.
type DebugFormat string

const (
	// DebugFormatJSON prints indented JSON, the shape that is posted.
	DebugFormatJSON DebugFormat = "json"
	// DebugFormatYAML prints the same payload as YAML.
	DebugFormatYAML DebugFormat = "yaml"
)

// Theme captures optional message prefixes.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the Flow.
type Option func(*Flow)

// WithPromptDriver overrides the prompt driver used by the flow.
func WithPromptDriver(driver PromptDriver) Option {
	return func(f *Flow) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithDebugFormat selects the payload preview format.
func WithDebugFormat(format DebugFormat) Option {
	return func(f *Flow) {
		if format != "" {
			f.debugFormat = format
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(f *Flow) {
		f.theme = theme
	}
}

// WithMultilineAnswers asks each question with a multi-line editor instead
// of a single-line input.
func WithMultilineAnswers(enabled bool) Option {
	return func(f *Flow) {
		f.multiline = enabled
	}
}
