package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/volctl/internal/model"
)

// YAMLFormatter formats sessions as YAML.
type YAMLFormatter struct {
	opts FormatterOptions
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(opts FormatterOptions) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// Format writes sessions as a YAML document.
func (f *YAMLFormatter) Format(w io.Writer, sessions []model.Session) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(sessions)
}
