// Package output renders formatted timestamps for the terminal.
package output

import (
	"fmt"
	"io"
)

// Format represents the output format
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Result is one formatted timestamp, or the reason it could not be formatted.
type Result struct {
	Input     string `json:"input"`
	Kind      string `json:"kind,omitempty"`
	Formatted string `json:"formatted"`
	Err       error  `json:"-"`
}

// Failed reports whether the result carries an error.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Formatter defines the interface for output formatters
type Formatter interface {
	Format(results []Result, w io.Writer) error
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatTable, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (must be text, table, or json)", s)
	}
}

// NewFormatter creates a formatter for the specified format
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatTable:
		return &TableFormatter{}
	default:
		return &TextFormatter{}
	}
}

// TextFormatter writes one formatted value per line. Failed results are
// skipped; the caller reports them.
type TextFormatter struct{}

// Format outputs the formatted values, one per line
func (f *TextFormatter) Format(results []Result, w io.Writer) error {
	for _, r := range results {
		if r.Failed() {
			continue
		}
		if _, err := fmt.Fprintln(w, r.Formatted); err != nil {
			return err
		}
	}
	return nil
}
