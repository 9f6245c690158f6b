// Package sidebar renders the navigation manifest consumed by the static
// documentation site: one sidebar per vendor/company listing its documents.
package sidebar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	derrors "git.home.luguber.info/inful/vendordocs/internal/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Key returns the manifest key for a vendor/company pair, e.g. "vendor1AcmeSidebar".
func Key(vendor, company string) string {
	return vendor + company + "Sidebar"
}

// FileName returns the manifest file name, e.g. "vendor1-Acme.ts".
func FileName(vendor, company string) string {
	return vendor + "-" + company + ".ts"
}

// Lower lower-cases a path segment the way the site tooling expects.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// DocPath returns the site-relative document id, e.g. "vendor1/acme/widget".
func DocPath(vendor, company, slug string) string {
	return vendor + "/" + Lower(company) + "/" + slug
}

// Manifest is a single named sidebar with its ordered document ids.
type Manifest struct {
	Key   string
	Items []string
}

// New creates an empty manifest for vendor/company.
func New(vendor, company string) *Manifest {
	return &Manifest{Key: Key(vendor, company), Items: []string{}}
}

// Add appends a document id.
func (m *Manifest) Add(docPath string) {
	m.Items = append(m.Items, docPath)
}

// Render produces the module source: `module.exports = {...};` with the
// object serialized as two-space indented JSON.
func (m *Manifest) Render() ([]byte, error) {
	items := m.Items
	if items == nil {
		items = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string][]string{m.Key: items}); err != nil {
		return nil, fmt.Errorf("encode sidebar: %w", err)
	}

	out := make([]byte, 0, buf.Len()+len("module.exports = ;"))
	out = append(out, "module.exports = "...)
	out = append(out, bytes.TrimSuffix(buf.Bytes(), []byte("\n"))...)
	out = append(out, ';')
	return out, nil
}

// Write renders the manifest into dir/name, creating dir and replacing any
// existing file. It returns the written path.
func (m *Manifest) Write(dir, name string) (string, error) {
	data, err := m.Render()
	if err != nil {
		return "", derrors.InternalError("failed to render sidebar", err).WithContext("key", m.Key)
	}
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", derrors.WriteFailed(path, fmt.Errorf("create sidebar directory: %w", err))
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", derrors.WriteFailed(path, err)
	}
	return path, nil
}
