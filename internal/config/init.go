package config

import (
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/vendordocs/internal/util/sets"
	"gopkg.in/yaml.v3"
)

// Example returns the configuration written by Init.
func Example() Config {
	return Config{
		"vendor1": {
			"Acme": {
				Name:    "Acme Corporation",
				Website: "https://acme.example.com",
				Email:   "support@acme.example.com",
				Products: []Product{
					{Name: "Widget", Template: "widget.mdx"},
					{
						Name:     "Widget Pro",
						Template: "widget-pro.mdx",
						Placeholders: map[string]string{
							"SUPPORT_TIER": "Premium",
						},
					},
				},
			},
		},
	}
}

// Templates returns the distinct template references of cfg in sorted order.
func (c Config) Templates() []string {
	seen := sets.New[string]()
	for _, companies := range c {
		for _, company := range companies {
			if company == nil {
				continue
			}
			for _, p := range company.Products {
				seen.Add(p.Template)
			}
		}
	}
	return sets.Sorted(seen)
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	data, err := yaml.Marshal(Example())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
