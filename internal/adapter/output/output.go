// Package output provides output formatters for audio sessions.
package output

import (
	"io"

	"github.com/jmylchreest/volctl/internal/model"
)

// Formatter formats sessions for output.
type Formatter interface {
	// Format writes formatted sessions to the writer.
	Format(w io.Writer, sessions []model.Session) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
	FormatDmenu FormatType = "dmenu"
)

// ParseFormat maps a user-supplied format name to a FormatType,
// defaulting to plain.
func ParseFormat(s string) FormatType {
	switch FormatType(s) {
	case FormatJSON:
		return FormatJSON
	case FormatYAML:
		return FormatYAML
	case FormatDmenu:
		return FormatDmenu
	default:
		return FormatPlain
	}
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts)
	case FormatYAML:
		return NewYAMLFormatter(opts)
	case FormatDmenu:
		return NewDmenuFormatter(opts)
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(opts)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Template  string // Custom template for plain/dmenu formats
	ShowIndex bool   // Show 1-based index prefix
	Separator string // Field separator for dmenu format
}

// DefaultFormatterOptions returns sensible defaults for plain output.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		ShowIndex: false,
		Separator: " | ",
	}
}
