package transform

import (
	"regexp"

	"git.home.luguber.info/inful/vendordocs/internal/config"
	"git.home.luguber.info/inful/vendordocs/internal/util/sets"
)

// Fixed placeholder names derived from the company and product records.
const (
	KeyCompanyName    = "COMPANY_NAME"
	KeyCompanyWebsite = "COMPANY_WEBSITE"
	KeyCompanyEmail   = "COMPANY_EMAIL"
	KeyProductName    = "PRODUCT_NAME"
)

var tokenPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Placeholders builds the token -> value mapping for one product. Product
// placeholders are applied after the fixed keys and win on collision.
func Placeholders(company *config.Company, product *config.Product) map[string]string {
	values := make(map[string]string, 4)
	if company != nil {
		values[KeyCompanyName] = company.Name
		values[KeyCompanyWebsite] = company.Website
		values[KeyCompanyEmail] = company.Email
	}
	if product != nil {
		values[KeyProductName] = product.Name
		for k, v := range product.Placeholders {
			values[k] = v
		}
	}
	return values
}

// PlaceholderReplacement substitutes {{TOKEN}} markers. Unknown tokens are left
// verbatim and substituted values are never rescanned.
type PlaceholderReplacement struct{}

// NewPlaceholderReplacement creates the placeholder step.
func NewPlaceholderReplacement() *PlaceholderReplacement {
	return &PlaceholderReplacement{}
}

// Name identifies the step in logs and errors.
func (p *PlaceholderReplacement) Name() string { return "placeholders" }

// Transform implements Step. It never fails.
func (p *PlaceholderReplacement) Transform(content string, dc *DocContext) (string, error) {
	var values map[string]string
	if dc != nil {
		values = Placeholders(dc.Company, dc.Product)
	}
	return Replace(content, values), nil
}

// Replace performs a single non-recursive substitution pass over content.
func Replace(content string, values map[string]string) string {
	return tokenPattern.ReplaceAllStringFunc(content, func(match string) string {
		name := match[2 : len(match)-2]
		if v, ok := values[name]; ok {
			return v
		}
		return match
	})
}

// Unresolved lists the distinct token names still present in content, sorted.
func Unresolved(content string) []string {
	seen := sets.New[string]()
	for _, m := range tokenPattern.FindAllStringSubmatch(content, -1) {
		seen.Add(m[1])
	}
	return sets.Sorted(seen)
}
