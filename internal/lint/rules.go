package lint

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/vendordocs/internal/markdown"
	"git.home.luguber.info/inful/vendordocs/internal/transform"
)

// Document is a file prepared for rule checks.
type Document struct {
	Path    string
	Content string
	// Body is Content without frontmatter; BodyOffset is the number of lines
	// that precede it.
	Body       string
	BodyOffset int
}

// Rule checks one property of a document.
type Rule interface {
	Name() string
	Check(doc *Document) []Issue
}

// UnresolvedPlaceholderRule reports {{TOKEN}} markers left in generated output.
type UnresolvedPlaceholderRule struct{}

func (r *UnresolvedPlaceholderRule) Name() string { return "unresolved-placeholder" }

func (r *UnresolvedPlaceholderRule) Check(doc *Document) []Issue {
	var issues []Issue
	for i, line := range strings.Split(doc.Content, "\n") {
		for _, name := range transform.Unresolved(line) {
			issues = append(issues, Issue{
				FilePath: doc.Path,
				Severity: SeverityError,
				Rule:     r.Name(),
				Message:  fmt.Sprintf("placeholder {{%s}} was not resolved", name),
				Line:     i + 1,
			})
		}
	}
	return issues
}

// EmptyLinkRule reports links and images without a destination.
type EmptyLinkRule struct{}

func (r *EmptyLinkRule) Name() string { return "empty-link" }

func (r *EmptyLinkRule) Check(doc *Document) []Issue {
	var issues []Issue
	for _, link := range markdown.ExtractLinks([]byte(doc.Body)) {
		if strings.TrimSpace(link.Destination) != "" {
			continue
		}
		line := 0
		if link.Line > 0 {
			line = link.Line + doc.BodyOffset
		}
		issues = append(issues, Issue{
			FilePath: doc.Path,
			Severity: SeverityWarning,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("%s link has an empty destination", link.Kind),
			Line:     line,
		})
	}
	return issues
}
