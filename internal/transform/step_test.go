package transform

import (
	"errors"
	"strings"
	"testing"

	"git.home.luguber.info/inful/vendordocs/internal/config"
	derrors "git.home.luguber.info/inful/vendordocs/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_AppliesStepsInOrder(t *testing.T) {
	var seen []*DocContext
	record := func(suffix string) Step {
		return StepFunc(func(content string, dc *DocContext) (string, error) {
			seen = append(seen, dc)
			return content + suffix, nil
		})
	}

	p := NewProcessor(record("-a"))
	p.AddStep(record("-b"))
	p.AddStep(nil)
	p.AddStep(record("-c"))
	require.Len(t, p.Steps(), 3)

	dc := &DocContext{Vendor: "vendor1"}
	out, err := p.Process("x", dc)
	require.NoError(t, err)
	assert.Equal(t, "x-a-b-c", out)

	require.Len(t, seen, 3)
	for _, got := range seen {
		assert.Same(t, dc, got, "every step receives the same context")
	}
}

func TestProcessor_NoSteps(t *testing.T) {
	out, err := NewProcessor().Process("unchanged {{X}}", nil)
	require.NoError(t, err)
	assert.Equal(t, "unchanged {{X}}", out)
}

func TestProcessor_StopsAtFirstError(t *testing.T) {
	calls := 0
	failing := StepFunc(func(string, *DocContext) (string, error) {
		calls++
		return "", errors.New("boom")
	})
	after := StepFunc(func(c string, _ *DocContext) (string, error) {
		calls++
		return c, nil
	})

	p := NewProcessor(NewPlaceholderReplacement(), failing, after)
	_, err := p.Process("x", &DocContext{
		Vendor:     "vendor1",
		CompanyKey: "Acme",
		Company:    &config.Company{},
		Product:    &config.Product{},
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	de, ok := derrors.As(err)
	require.True(t, ok)
	assert.Equal(t, derrors.CategoryTransform, de.Category)
	assert.Equal(t, 1, de.Context["index"])
	assert.True(t, strings.Contains(de.Context["step"].(string), "StepFunc"))
	assert.Equal(t, "vendor1", de.Context["vendor"])
	assert.Equal(t, "Acme", de.Context["company"])
}

func TestProcessor_ErrorWithoutContext(t *testing.T) {
	failing := StepFunc(func(string, *DocContext) (string, error) {
		return "", errors.New("boom")
	})

	_, err := NewProcessor(failing).Process("x", nil)
	de, ok := derrors.As(err)
	require.True(t, ok)
	assert.NotContains(t, de.Context, "vendor")
	assert.Equal(t, 0, de.Context["index"])
}

func TestStepName(t *testing.T) {
	assert.Equal(t, "placeholders", StepName(NewPlaceholderReplacement()))
	assert.Equal(t, "fingerprint", StepName(NewFingerprint()))
	assert.Equal(t, "transform.StepFunc", StepName(StepFunc(nil)))
}
