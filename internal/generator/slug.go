package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/vendordocs/internal/config"
	derrors "git.home.luguber.info/inful/vendordocs/internal/errors"
	"git.home.luguber.info/inful/vendordocs/internal/sidebar"
)

// DocExt is the extension of generated documents.
const DocExt = ".mdx"

// NameSource selects what a generated document is named after.
type NameSource string

const (
	// NameFromTemplate names documents after the template file (without extension).
	NameFromTemplate NameSource = "template"
	// NameFromProduct names documents after the product display name.
	NameFromProduct NameSource = "product"
)

// ParseNameSource validates a name source given on the command line.
func ParseNameSource(s string) (NameSource, error) {
	switch NameSource(s) {
	case NameFromTemplate, NameFromProduct:
		return NameSource(s), nil
	default:
		return "", fmt.Errorf("unknown name source %q (want %q or %q)", s, NameFromTemplate, NameFromProduct)
	}
}

// Slug lower-cases name and replaces every space with a hyphen.
func Slug(name string) string {
	return strings.ReplaceAll(sidebar.Lower(name), " ", "-")
}

// TemplateBaseName returns the template file name without directory and final extension.
func TemplateBaseName(template string) string {
	base := filepath.Base(template)
	if name := strings.TrimSuffix(base, filepath.Ext(base)); name != "" {
		return name
	}
	return base
}

func (g *Generator) slugFor(p *config.Product) (string, error) {
	name := p.Name
	field := "name"
	if g.opts.NameFrom == NameFromTemplate {
		name = TemplateBaseName(p.Template)
		field = "template"
	}
	slug := Slug(name)
	if slug == "" || slug == "." {
		return "", derrors.ValidationFailed("products."+field, "cannot derive a document name").
			WithContext("product", p.Name)
	}
	return slug, nil
}
