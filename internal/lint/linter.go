package lint

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/vendordocs/internal/frontmatter"
	"git.home.luguber.info/inful/vendordocs/internal/util/sets"
)

// docExtensions lists the file types the linter inspects.
var docExtensions = sets.New(".mdx", ".md")

// Linter performs linting operations on documentation files.
type Linter struct {
	rules []Rule
}

// NewLinter creates a linter with the default rule set.
func NewLinter() *Linter {
	return &Linter{
		rules: []Rule{
			&UnresolvedPlaceholderRule{},
			&EmptyLinkRule{},
		},
	}
}

// LintPath lints a single file or every document below a directory.
// Issues are sorted by file, then line.
func (l *Linter) LintPath(path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	result := &Result{Issues: []Issue{}}

	if info.IsDir() {
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			// Skip hidden directories and files
			if d.Name() != "." && strings.HasPrefix(d.Name(), ".") && p != path {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !IsDocFile(p) {
				return nil
			}
			result.FilesTotal++
			return l.lintFile(p, result)
		})
	} else {
		result.FilesTotal = 1
		err = l.lintFile(path, result)
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(result.Issues, func(i, j int) bool {
		a, b := result.Issues[i], result.Issues[j]
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		return a.Line < b.Line
	})
	return result, nil
}

func (l *Linter) lintFile(path string, result *Result) error {
	// #nosec G304 -- path comes from walking the operator-provided directory.
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	doc := &Document{Path: path, Content: string(data), Body: string(data)}
	if split, err := frontmatter.Split(doc.Content); err == nil && split.Had {
		doc.Body = split.Body
		doc.BodyOffset = strings.Count(doc.Content[:len(doc.Content)-len(split.Body)], "\n")
	}

	for _, rule := range l.rules {
		result.Issues = append(result.Issues, rule.Check(doc)...)
	}
	return nil
}

// IsDocFile reports whether path has a documentation extension.
func IsDocFile(path string) bool {
	return docExtensions.Has(strings.ToLower(filepath.Ext(path)))
}
