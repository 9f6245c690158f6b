// Package config loads the vendor/company documentation configuration and
// resolves which company a generation run targets.
package config

import (
	"fmt"
	"os"
	"sort"

	derrors "git.home.luguber.info/inful/vendordocs/internal/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the generator looks for the configuration when no path is given.
const DefaultPath = "config/companies.yaml"

// Config maps vendor key -> company key -> company record. A key present with
// a null value decodes to a nil record.
type Config map[string]map[string]*Company

// Company carries the display/contact metadata and products of one company.
type Company struct {
	Name     string    `yaml:"name"`
	Website  string    `yaml:"website"`
	Email    string    `yaml:"email"`
	Products []Product `yaml:"products"`
}

// Product is one generated document: a display name, the template it is
// rendered from, and optional extra placeholder values.
type Product struct {
	Name         string            `yaml:"name"`
	Template     string            `yaml:"template"`
	Placeholders map[string]string `yaml:"placeholders,omitempty"`
}

// Parse decodes raw YAML into a Config. Only well-formedness is checked;
// missing fields surface later when they are used.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = Config{}
	}
	return cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (Config, error) {
	// #nosec G304 -- path is supplied by the operator.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, derrors.ConfigParse(path, fmt.Errorf("read config file: %w", err))
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, derrors.ConfigParse(path, fmt.Errorf("unmarshal config: %w", err))
	}
	return cfg, nil
}

// Lookup returns the company record at cfg[vendor][company]. Keys are
// case-sensitive; a missing key and a null record are both not found.
func (c Config) Lookup(vendor, company string) (*Company, error) {
	rec := c[vendor][company]
	if rec == nil {
		return nil, derrors.ConfigNotFound(vendor, company)
	}
	return rec, nil
}

// Vendors returns the vendor keys in sorted order.
func (c Config) Vendors() []string {
	out := make([]string, 0, len(c))
	for v := range c {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Companies returns the company keys of vendor in sorted order.
func (c Config) Companies(vendor string) []string {
	companies := c[vendor]
	out := make([]string, 0, len(companies))
	for k := range companies {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
