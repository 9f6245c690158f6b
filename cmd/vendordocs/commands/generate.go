package commands

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/vendordocs/internal/config"
	derrors "git.home.luguber.info/inful/vendordocs/internal/errors"
	"git.home.luguber.info/inful/vendordocs/internal/generator"
	"git.home.luguber.info/inful/vendordocs/internal/logfields"
)

// GenerateCmd implements the 'generate' command (the default).
type GenerateCmd struct {
	Vendor      string `help:"Vendor key (overrides $VENDOR)"`
	Company     string `help:"Company key, case-sensitive (overrides $COMPANY)"`
	Templates   string `name:"templates-dir" help:"Template directory" default:"templates"`
	Docs        string `name:"docs-dir" help:"Documentation output root" default:"docs"`
	Sidebars    string `name:"sidebars-dir" help:"Sidebar manifest directory" default:"sidebars"`
	CSS         string `name:"css-dir" help:"Custom stylesheet root" default:"src/css"`
	NameFrom    string `name:"name-from" help:"Name documents after the template file or the product name" enum:"template,product" default:"template"`
	Fingerprint bool   `help:"Add a content fingerprint to each document's frontmatter"`
	NoEnvFile   bool   `name:"no-env-file" help:"Do not load .env/.env.local from the project root"`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	if !g.NoEnvFile {
		loaded, err := config.LoadEnvFiles(root.Root)
		if err != nil {
			return derrors.Wrap(err, derrors.CategoryConfig, derrors.SeverityFatal, "failed to load environment file")
		}
		if loaded != "" {
			slog.Debug("Loaded environment file", logfields.Path(loaded))
		}
	}

	nameFrom, err := generator.ParseNameSource(g.NameFrom)
	if err != nil {
		return derrors.ValidationFailed("name-from", err.Error())
	}

	gen := generator.New(generator.Options{
		Root:         root.Root,
		ConfigPath:   root.Config,
		TemplatesDir: g.Templates,
		DocsDir:      g.Docs,
		SidebarsDir:  g.Sidebars,
		CSSDir:       g.CSS,
		NameFrom:     nameFrom,
		Fingerprint:  g.Fingerprint,
		Out:          global.out(),
		Logger:       slog.Default(),
	})

	cfg, err := gen.LoadConfig()
	if err != nil {
		return err
	}

	sel, err := config.SelectorFromEnv(g.lookup)
	if err != nil {
		return err
	}

	_, err = gen.Run(cfg, sel)
	return err
}

// lookup prefers command-line flags over the process environment.
func (g *GenerateCmd) lookup(key string) (string, bool) {
	switch {
	case key == config.EnvVendor && g.Vendor != "":
		return g.Vendor, true
	case key == config.EnvCompany && g.Company != "":
		return g.Company, true
	}
	return os.LookupEnv(key)
}
