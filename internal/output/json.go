package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	Pretty bool
}

type jsonResult struct {
	Input     string `json:"input"`
	Kind      string `json:"kind,omitempty"`
	Formatted string `json:"formatted"`
	Error     string `json:"error,omitempty"`
}

// Format outputs the results as a JSON array
func (f *JSONFormatter) Format(results []Result, w io.Writer) error {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		jr := jsonResult{
			Input:     r.Input,
			Kind:      r.Kind,
			Formatted: r.Formatted,
		}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		}
		out = append(out, jr)
	}

	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(out)
}
