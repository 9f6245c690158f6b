package transform

import (
	"testing"

	"git.home.luguber.info/inful/vendordocs/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acme() *config.Company {
	return &config.Company{Name: "Acme", Website: "acme.test", Email: "a@acme.test"}
}

func TestPlaceholderReplacement(t *testing.T) {
	dc := &DocContext{Company: acme(), Product: &config.Product{Name: "Widget"}}

	out, err := NewPlaceholderReplacement().Transform(
		"Hello {{COMPANY_NAME}}, visit {{COMPANY_WEBSITE}} or buy {{PRODUCT_NAME}}. {{UNKNOWN}}", dc)
	require.NoError(t, err)
	assert.Equal(t, "Hello Acme, visit acme.test or buy Widget. {{UNKNOWN}}", out)
}

func TestPlaceholderReplacement_Cases(t *testing.T) {
	cases := []struct {
		name    string
		product config.Product
		in      string
		want    string
	}{
		{
			name:    "email and repeated tokens",
			product: config.Product{Name: "Widget"},
			in:      "{{COMPANY_EMAIL}} {{COMPANY_EMAIL}}",
			want:    "a@acme.test a@acme.test",
		},
		{
			name:    "product placeholder overrides fixed key",
			product: config.Product{Name: "Widget", Placeholders: map[string]string{"PRODUCT_NAME": "Override"}},
			in:      "{{PRODUCT_NAME}}",
			want:    "Override",
		},
		{
			name:    "product placeholder adds key",
			product: config.Product{Name: "Widget", Placeholders: map[string]string{"SUPPORT_TIER": "Gold"}},
			in:      "Tier: {{SUPPORT_TIER}}",
			want:    "Tier: Gold",
		},
		{
			name:    "inserted values are not rescanned",
			product: config.Product{Name: "{{COMPANY_NAME}}"},
			in:      "{{PRODUCT_NAME}}",
			want:    "{{COMPANY_NAME}}",
		},
		{
			name:    "non word characters are not tokens",
			product: config.Product{Name: "Widget"},
			in:      "{{PRODUCT-NAME}} {{ PRODUCT_NAME }} {PRODUCT_NAME}",
			want:    "{{PRODUCT-NAME}} {{ PRODUCT_NAME }} {PRODUCT_NAME}",
		},
		{
			name:    "extra braces around a token",
			product: config.Product{Name: "Widget"},
			in:      "{{{PRODUCT_NAME}}}",
			want:    "{Widget}",
		},
		{
			name:    "empty value still replaces",
			product: config.Product{Name: "Widget", Placeholders: map[string]string{"NOTE": ""}},
			in:      "[{{NOTE}}]",
			want:    "[]",
		},
		{
			name:    "dollar signs are literal",
			product: config.Product{Name: "$1 Widget"},
			in:      "{{PRODUCT_NAME}}",
			want:    "$1 Widget",
		},
	}

	step := NewPlaceholderReplacement()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			product := tc.product
			out, err := step.Transform(tc.in, &DocContext{Company: acme(), Product: &product})
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders(acme(), &config.Product{
		Name:         "Widget",
		Placeholders: map[string]string{"COMPANY_NAME": "Acme EU"},
	})
	assert.Equal(t, map[string]string{
		"COMPANY_NAME":    "Acme EU",
		"COMPANY_WEBSITE": "acme.test",
		"COMPANY_EMAIL":   "a@acme.test",
		"PRODUCT_NAME":    "Widget",
	}, got)
}

func TestUnresolved(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, Unresolved("{{B}} {{A}} {{B}} {{not-a-token}}"))
	assert.Empty(t, Unresolved("plain text"))
}
