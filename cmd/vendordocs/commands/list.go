package commands

import (
	"fmt"

	"git.home.luguber.info/inful/vendordocs/internal/config"
)

// ListCmd implements the 'list' command.
type ListCmd struct{}

func (l *ListCmd) Run(global *Global, root *CLI) error {
	cfg, err := config.Load(root.resolve(root.Config))
	if err != nil {
		return err
	}

	out := global.out()
	for _, vendor := range cfg.Vendors() {
		_, _ = fmt.Fprintln(out, vendor)
		for _, key := range cfg.Companies(vendor) {
			company, err := cfg.Lookup(vendor, key)
			if err != nil {
				_, _ = fmt.Fprintf(out, "  %s\t(empty)\n", key)
				continue
			}
			_, _ = fmt.Fprintf(out, "  %s\t%s\t%d products\n", key, company.Name, len(company.Products))
		}
	}
	return nil
}
