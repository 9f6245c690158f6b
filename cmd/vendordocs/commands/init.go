package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/vendordocs/internal/config"
)

// exampleTemplate is written for every template the example configuration references.
const exampleTemplate = `---
title: {{PRODUCT_NAME}}
---

# {{PRODUCT_NAME}}

{{PRODUCT_NAME}} is provided by [{{COMPANY_NAME}}]({{COMPANY_WEBSITE}}).

Questions? Write to {{COMPANY_EMAIL}}.
`

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration and template files"`
}

func (i *InitCmd) Run(global *Global, root *CLI) error {
	out := global.out()
	cfgPath := root.resolve(root.Config)

	_, _ = fmt.Fprintln(out, "Initializing vendordocs project")
	_, _ = fmt.Fprintf(out, "Writing configuration to %s\n", cfgPath)
	if err := config.Init(cfgPath, i.Force); err != nil {
		_, _ = fmt.Fprintln(out, "Initialization failed")
		return err
	}

	for _, name := range config.Example().Templates() {
		tplPath := root.resolve(filepath.Join("templates", name))
		if _, err := os.Stat(tplPath); err == nil && !i.Force {
			_, _ = fmt.Fprintf(out, "Keeping existing template %s\n", tplPath)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(tplPath), 0o750); err != nil {
			return fmt.Errorf("create template directory: %w", err)
		}
		if err := os.WriteFile(tplPath, []byte(exampleTemplate), 0o600); err != nil {
			return fmt.Errorf("write example template: %w", err)
		}
		_, _ = fmt.Fprintf(out, "Writing template to %s\n", tplPath)
	}

	_, _ = fmt.Fprintln(out, "initialized successfully")
	return nil
}
