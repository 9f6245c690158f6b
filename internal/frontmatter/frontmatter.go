// Package frontmatter splits, parses and re-serializes the YAML frontmatter
// block (`---` delimited) at the top of generated documents.
package frontmatter

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// ErrMissingClosingDelimiter indicates the document opened a frontmatter block but never closed it.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Document is a document split into its frontmatter and body.
type Document struct {
	// Raw is the frontmatter text between the delimiters, without them.
	Raw string
	// Body is everything after the closing delimiter line.
	Body string
	// Had reports whether the input carried a frontmatter block at all.
	Had bool
	// Newline is the line ending detected in the input ("\n" or "\r\n").
	Newline string
}

// Split separates frontmatter from the body. Content that does not start with
// a delimiter line is returned entirely as Body with Had=false.
func Split(content string) (Document, error) {
	nl := detectNewline(content)
	doc := Document{Body: content, Newline: nl}

	open := delimiter + nl
	if !strings.HasPrefix(content, open) {
		return doc, nil
	}
	rest := content[len(open):]

	if strings.HasPrefix(rest, open) {
		return Document{Body: rest[len(open):], Had: true, Newline: nl}, nil
	}

	closing := nl + delimiter + nl
	idx := strings.Index(rest, closing)
	if idx < 0 {
		// A closing delimiter on the final line without a newline after it.
		if strings.HasSuffix(rest, nl+delimiter) {
			return Document{Raw: rest[:len(rest)-len(delimiter)], Had: true, Newline: nl}, nil
		}
		return Document{}, ErrMissingClosingDelimiter
	}

	return Document{
		Raw:     rest[:idx+len(nl)],
		Body:    rest[idx+len(closing):],
		Had:     true,
		Newline: nl,
	}, nil
}

// Join reassembles a document from serialized frontmatter and a body.
func Join(raw, body, nl string) string {
	if nl == "" {
		nl = "\n"
	}
	if raw != "" && !strings.HasSuffix(raw, nl) {
		raw += nl
	}
	return delimiter + nl + raw + delimiter + nl + body
}

// Parse decodes raw frontmatter into a map. Empty input yields an empty map.
func Parse(raw string) (map[string]any, error) {
	fields := map[string]any{}
	if strings.TrimSpace(raw) == "" {
		return fields, nil
	}
	if err := yaml.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

func detectNewline(content string) string {
	if i := strings.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
