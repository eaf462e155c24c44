package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arisyntek/odate/internal/format"
	"github.com/fatih/color"
)

// Column limits
const (
	colInputMax = 32
	colKindMax  = 7
)

var (
	headerColor = color.New(color.Bold)
	errorColor  = color.New(color.FgRed)
	kindColor   = color.New(color.FgHiBlack)
)

// TableFormatter formats output as a terminal table
type TableFormatter struct{}

// Format outputs the results as an aligned INPUT / KIND / FORMATTED table
func (f *TableFormatter) Format(results []Result, w io.Writer) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No timestamps given.")
		return err
	}

	inputWidth := format.DisplayWidth("INPUT")
	kindWidth := format.DisplayWidth("KIND")
	for _, r := range results {
		inputWidth = max(inputWidth, min(format.DisplayWidth(r.Input), colInputMax))
		kindWidth = max(kindWidth, min(format.DisplayWidth(r.Kind), colKindMax))
	}

	header := fmt.Sprintf("%s  %s  %s",
		format.PadRight(headerColor.Sprint("INPUT"), inputWidth),
		format.PadRight(headerColor.Sprint("KIND"), kindWidth),
		headerColor.Sprint("FORMATTED"))
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", inputWidth+kindWidth+len("FORMATTED")+4)); err != nil {
		return err
	}

	var failed int
	for _, r := range results {
		input := format.Truncate(r.Input, colInputMax)
		kind := kindColor.Sprint(format.Truncate(r.Kind, colKindMax))
		value := r.Formatted
		if r.Failed() {
			failed++
			value = errorColor.Sprint(r.Err.Error())
		} else if value == "" {
			value = kindColor.Sprint("(empty)")
		}
		if _, err := fmt.Fprintf(w, "%s  %s  %s\n",
			format.PadRight(input, inputWidth),
			format.PadRight(kind, kindWidth),
			value); err != nil {
			return err
		}
	}

	if failed > 0 {
		_, err := fmt.Fprintf(w, "\n%d of %d timestamps could not be formatted\n", failed, len(results))
		return err
	}
	return nil
}
