package transform

import (
	"strings"

	"git.home.luguber.info/inful/vendordocs/internal/frontmatter"
	"github.com/inful/mdfp"
)

// Fingerprint upserts a content fingerprint into the document frontmatter so
// downstream tooling can detect changed pages. The fingerprint covers every
// other frontmatter field plus the body, so it is stable across identical runs.
type Fingerprint struct{}

// NewFingerprint creates the fingerprint step.
func NewFingerprint() *Fingerprint {
	return &Fingerprint{}
}

// Name identifies the step in logs and errors.
func (f *Fingerprint) Name() string { return "fingerprint" }

// Transform implements Step.
func (f *Fingerprint) Transform(content string, _ *DocContext) (string, error) {
	doc, err := frontmatter.Split(content)
	if err != nil {
		return "", err
	}

	fields, err := frontmatter.Parse(doc.Raw)
	if err != nil {
		return "", err
	}

	fp, err := ComputeFingerprint(fields, doc.Body)
	if err != nil {
		return "", err
	}
	fields[mdfp.FingerprintField] = fp

	raw, err := frontmatter.Serialize(fields, doc.Newline)
	if err != nil {
		return "", err
	}
	return frontmatter.Join(raw, doc.Body, doc.Newline), nil
}

// ComputeFingerprint hashes the canonical frontmatter (without any existing
// fingerprint field, LF newlines, single trailing newline trimmed) and body.
func ComputeFingerprint(fields map[string]any, body string) (string, error) {
	hashed := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == mdfp.FingerprintField {
			continue
		}
		hashed[k] = v
	}

	serialized, err := frontmatter.Serialize(hashed, "\n")
	if err != nil {
		return "", err
	}
	return mdfp.CalculateFingerprintFromParts(strings.TrimSuffix(serialized, "\n"), body), nil
}
