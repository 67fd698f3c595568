package output

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/jmylchreest/volctl/internal/core"
	"github.com/jmylchreest/volctl/internal/model"
)

// DmenuFormatter formats sessions for dmenu/rofi/fuzzel pipelines:
// one line per session, fields joined by the separator, with a 1-based
// index so the selection can be fed back into volctl.
type DmenuFormatter struct {
	opts     FormatterOptions
	template *template.Template
}

// NewDmenuFormatter creates a new dmenu formatter.
func NewDmenuFormatter(opts FormatterOptions) *DmenuFormatter {
	f := &DmenuFormatter{opts: opts}

	// Parse custom template if provided
	if opts.Template != "" {
		tmpl, err := template.New("dmenu").Funcs(templateFuncs()).Parse(opts.Template)
		if err == nil {
			f.template = tmpl
		}
	}

	return f
}

// Format writes sessions in dmenu format (one per line).
func (f *DmenuFormatter) Format(w io.Writer, sessions []model.Session) error {
	for i := range sessions {
		line := f.formatLine(i+1, &sessions[i])
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// formatLine formats a single session line.
func (f *DmenuFormatter) formatLine(index int, s *model.Session) string {
	// Use custom template if available
	if f.template != nil {
		var buf strings.Builder
		if err := f.template.Execute(&buf, newTemplateData(index, s)); err == nil {
			return buf.String()
		}
	}

	sep := f.opts.Separator
	if sep == "" {
		sep = " | "
	}

	parts := []string{
		fmt.Sprintf("%d", index),
		s.DisplayName(),
		core.FormatPercent(s.Volume),
		s.MuteLabel(),
	}
	return strings.Join(parts, sep)
}

// templateData provides data for custom templates.
type templateData struct {
	Index   int
	Session *model.Session
	Percent string
	Mute    string
}

// newTemplateData builds template data for one session.
func newTemplateData(index int, s *model.Session) templateData {
	return templateData{
		Index:   index,
		Session: s,
		Percent: core.FormatPercent(s.Volume),
		Mute:    s.MuteLabel(),
	}
}

// templateFuncs returns template helper functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"truncate": func(s string, maxLen int) string {
			if maxLen <= 0 || len(s) <= maxLen {
				return s
			}
			if maxLen <= 3 {
				return s[:maxLen]
			}
			return s[:maxLen-3] + "..."
		},
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
	}
}
