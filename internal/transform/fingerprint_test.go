package transform

import (
	"testing"

	"git.home.luguber.info/inful/vendordocs/internal/frontmatter"
	"github.com/inful/mdfp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_AddsField(t *testing.T) {
	in := "---\ntitle: Widget\n---\n# Widget\n"

	out, err := NewFingerprint().Transform(in, nil)
	require.NoError(t, err)

	doc, err := frontmatter.Split(out)
	require.NoError(t, err)
	assert.Equal(t, "# Widget\n", doc.Body)

	fields, err := frontmatter.Parse(doc.Raw)
	require.NoError(t, err)
	assert.Equal(t, "Widget", fields["title"])
	fp, ok := fields[mdfp.FingerprintField].(string)
	require.True(t, ok)
	assert.NotEmpty(t, fp)
}

func TestFingerprint_Idempotent(t *testing.T) {
	step := NewFingerprint()
	in := "---\ntitle: Widget\n---\nbody\n"

	first, err := step.Transform(in, nil)
	require.NoError(t, err)
	second, err := step.Transform(first, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFingerprint_ChangesWithBody(t *testing.T) {
	a, err := ComputeFingerprint(map[string]any{"title": "x"}, "one")
	require.NoError(t, err)
	b, err := ComputeFingerprint(map[string]any{"title": "x"}, "two")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	withOld, err := ComputeFingerprint(map[string]any{"title": "x", mdfp.FingerprintField: "stale"}, "one")
	require.NoError(t, err)
	assert.Equal(t, a, withOld, "an existing fingerprint does not feed into the hash")
}

func TestFingerprint_NoFrontmatter(t *testing.T) {
	out, err := NewFingerprint().Transform("# Plain\n", nil)
	require.NoError(t, err)

	doc, err := frontmatter.Split(out)
	require.NoError(t, err)
	assert.True(t, doc.Had)
	assert.Equal(t, "# Plain\n", doc.Body)
}

func TestFingerprint_MalformedFrontmatter(t *testing.T) {
	_, err := NewFingerprint().Transform("---\ntitle: x\nno close\n", nil)
	require.ErrorIs(t, err, frontmatter.ErrMissingClosingDelimiter)
}
