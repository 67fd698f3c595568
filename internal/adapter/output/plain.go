package output

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/jmylchreest/volctl/internal/core"
	"github.com/jmylchreest/volctl/internal/model"
)

// PlainFormatter formats sessions as human-readable text, one per line.
type PlainFormatter struct {
	opts     FormatterOptions
	template *template.Template
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	f := &PlainFormatter{opts: opts}

	// Parse custom template if provided
	if opts.Template != "" {
		tmpl, err := template.New("plain").Funcs(templateFuncs()).Parse(opts.Template)
		if err == nil {
			f.template = tmpl
		}
	}

	return f
}

// Format writes sessions as plain text.
func (f *PlainFormatter) Format(w io.Writer, sessions []model.Session) error {
	for i := range sessions {
		if err := f.formatSession(w, i+1, &sessions[i]); err != nil {
			return err
		}
	}
	return nil
}

// formatSession formats a single session line.
func (f *PlainFormatter) formatSession(w io.Writer, index int, s *model.Session) error {
	// Use custom template if available
	if f.template != nil {
		data := newTemplateData(index, s)
		if err := f.template.Execute(w, data); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}

	var sb strings.Builder

	if f.opts.ShowIndex {
		sb.WriteString(fmt.Sprintf("[%d] ", index))
	}

	sb.WriteString(s.DisplayName())
	sb.WriteString(": ")
	sb.WriteString(core.FormatPercent(s.Volume))

	if s.Muted {
		sb.WriteString(" (muted)")
	}
	if s.Corked {
		sb.WriteString(" (paused)")
	}

	sb.WriteString("\n")

	_, err := w.Write([]byte(sb.String()))
	return err
}
