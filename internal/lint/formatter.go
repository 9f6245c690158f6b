package lint

import (
	"encoding/json"
	"fmt"
	"io"
)

// Formatter formats linting results for output.
type Formatter interface {
	Format(w io.Writer, result *Result) error
}

// NewFormatter returns the formatter for "text" or "json".
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "", "text":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown lint format %q", format)
	}
}

// TextFormatter formats results as human-readable text.
type TextFormatter struct{}

// Format outputs one line per issue followed by a summary.
func (f *TextFormatter) Format(w io.Writer, result *Result) error {
	for _, issue := range result.Issues {
		location := issue.FilePath
		if issue.Line > 0 {
			location = fmt.Sprintf("%s:%d", issue.FilePath, issue.Line)
		}
		if _, err := fmt.Fprintf(w, "%s: %s [%s] %s\n", location, issue.Severity, issue.Rule, issue.Message); err != nil {
			return err
		}
	}

	errorCount := result.ErrorCount()
	warningCount := result.WarningCount()
	_, err := fmt.Fprintf(w, "%d file%s scanned, %d error%s, %d warning%s\n",
		result.FilesTotal, pluralize(result.FilesTotal),
		errorCount, pluralize(errorCount),
		warningCount, pluralize(warningCount))
	return err
}

// JSONFormatter formats results as indented JSON.
type JSONFormatter struct{}

// Format outputs the result as a JSON document.
func (f *JSONFormatter) Format(w io.Writer, result *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
