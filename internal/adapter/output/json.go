package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/volctl/internal/model"
)

// JSONFormatter formats sessions as JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Format writes sessions as a JSON array.
func (f *JSONFormatter) Format(w io.Writer, sessions []model.Session) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(sessions)
}
