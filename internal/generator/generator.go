// Package generator drives a documentation run: it resolves one company from
// the configuration, renders every product template through the transform
// pipeline, and writes the documents, sidebar manifest and stylesheet stub.
package generator

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/vendordocs/internal/config"
	derrors "git.home.luguber.info/inful/vendordocs/internal/errors"
	"git.home.luguber.info/inful/vendordocs/internal/logfields"
	"git.home.luguber.info/inful/vendordocs/internal/sidebar"
	"git.home.luguber.info/inful/vendordocs/internal/transform"
	"github.com/google/uuid"
)

// Default locations, relative to Options.Root.
const (
	DefaultTemplatesDir = "templates"
	DefaultDocsDir      = "docs"
	DefaultSidebarsDir  = "sidebars"
	DefaultCSSDir       = "src/css"
)

// Options configures a Generator. Zero values fall back to the defaults above.
type Options struct {
	Root         string
	ConfigPath   string
	TemplatesDir string
	DocsDir      string
	SidebarsDir  string
	CSSDir       string
	NameFrom     NameSource
	// Fingerprint appends the frontmatter fingerprint step to the pipeline.
	Fingerprint bool
	// Out receives one progress line per generated artifact.
	Out    io.Writer
	Logger *slog.Logger
}

// Result describes the artifacts a successful run produced.
type Result struct {
	RunID             string
	DocsDir           string
	Documents         []string
	SidebarPath       string
	StylesheetPath    string
	StylesheetCreated bool
}

// Generator renders documentation for a single vendor/company per Run.
type Generator struct {
	opts   Options
	logger *slog.Logger
}

// New creates a generator, filling in defaults.
func New(opts Options) *Generator {
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = config.DefaultPath
	}
	if opts.TemplatesDir == "" {
		opts.TemplatesDir = DefaultTemplatesDir
	}
	if opts.DocsDir == "" {
		opts.DocsDir = DefaultDocsDir
	}
	if opts.SidebarsDir == "" {
		opts.SidebarsDir = DefaultSidebarsDir
	}
	if opts.CSSDir == "" {
		opts.CSSDir = DefaultCSSDir
	}
	if opts.NameFrom == "" {
		opts.NameFrom = NameFromTemplate
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{opts: opts, logger: logger}
}

// Options returns the effective options after defaults were applied.
func (g *Generator) Options() Options {
	return g.opts
}

// path resolves p against the root unless it is absolute.
func (g *Generator) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(g.opts.Root, p)
}

// ConfigPath returns the resolved configuration file location.
func (g *Generator) ConfigPath() string {
	return g.path(g.opts.ConfigPath)
}

// LoadConfig loads the configuration file from ConfigPath.
func (g *Generator) LoadConfig() (config.Config, error) {
	return config.Load(g.ConfigPath())
}

// NewProcessor builds the transform pipeline used for every product.
func (g *Generator) NewProcessor() *transform.Processor {
	p := transform.NewProcessor(transform.NewPlaceholderReplacement())
	if g.opts.Fingerprint {
		p.AddStep(transform.NewFingerprint())
	}
	return p
}

// Run generates all documents for sel. Lookup failures are reported before
// anything is written; any later failure aborts the run and leaves files
// already written in place.
func (g *Generator) Run(cfg config.Config, sel config.Selector) (*Result, error) {
	company, err := cfg.Lookup(sel.Vendor, sel.Company)
	if err != nil {
		return nil, err
	}

	res := &Result{RunID: uuid.NewString()}
	log := g.logger.With(
		logfields.RunID(res.RunID),
		logfields.Vendor(sel.Vendor),
		logfields.Company(sel.Company),
	)
	log.Info("Starting documentation generation", logfields.Count(len(company.Products)))

	companyDir := sidebar.Lower(sel.Company)
	res.DocsDir = filepath.Join(g.path(g.opts.DocsDir), sel.Vendor, companyDir)
	if err := os.MkdirAll(res.DocsDir, 0o750); err != nil {
		return res, derrors.WriteFailed(res.DocsDir, err)
	}

	processor := g.NewProcessor()
	manifest := sidebar.New(sel.Vendor, sel.Company)
	written := make(map[string]int, len(company.Products))

	for i := range company.Products {
		product := &company.Products[i]
		plog := log.With(logfields.Product(product.Name), logfields.Template(product.Template))

		content, err := g.render(processor, &transform.DocContext{
			Vendor:     sel.Vendor,
			CompanyKey: sel.Company,
			Company:    company,
			Product:    product,
		})
		if err != nil {
			return res, err
		}
		if unresolved := transform.Unresolved(content); len(unresolved) > 0 {
			plog.Debug("Template has unresolved placeholders", "placeholders", unresolved)
		}

		slug, err := g.slugFor(product)
		if err != nil {
			return res, err
		}

		outPath := filepath.Join(res.DocsDir, slug+DocExt)
		if prev, dup := written[outPath]; dup {
			plog.Warn("Product overwrites a document generated earlier in this run",
				logfields.Path(outPath), "previous_index", prev)
		}
		if err := writeFile(outPath, content); err != nil {
			return res, err
		}
		written[outPath] = i

		res.Documents = append(res.Documents, outPath)
		manifest.Add(sidebar.DocPath(sel.Vendor, sel.Company, slug))
		g.progress("Generated: %s", outPath)
		plog.Debug("Document generated", logfields.Path(outPath))
	}

	sidebarsDir := g.path(g.opts.SidebarsDir)
	sidebarName := sidebar.FileName(sel.Vendor, sel.Company)
	sidebarPath, err := manifest.Write(sidebarsDir, sidebarName)
	if err != nil {
		return res, err
	}
	res.SidebarPath = sidebarPath
	g.progress("Generated sidebar configuration: %s", sidebarPath)

	cssDir := filepath.Join(g.path(g.opts.CSSDir), sel.Vendor, companyDir)
	cssPath, created, err := EnsureStylesheet(cssDir)
	if err != nil {
		return res, err
	}
	res.StylesheetPath = cssPath
	res.StylesheetCreated = created
	if created {
		g.progress("Created empty custom CSS: %s", cssPath)
	}

	log.Info("Documentation generation completed",
		logfields.Count(len(res.Documents)),
		logfields.Path(res.DocsDir))
	return res, nil
}

func (g *Generator) render(p *transform.Processor, dc *transform.DocContext) (string, error) {
	templatePath := filepath.Join(g.path(g.opts.TemplatesDir), dc.Product.Template)
	// #nosec G304 -- templates are referenced by the operator's configuration.
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return "", derrors.TemplateRead(templatePath, err).
			WithContext("product", dc.Product.Name)
	}

	out, err := p.Process(string(data), dc)
	if err != nil {
		if de, ok := derrors.As(err); ok {
			de.WithContext("product", dc.Product.Name)
			step, _ := de.Context["step"].(string)
			g.logger.Debug("Transform step failed",
				logfields.Product(dc.Product.Name),
				logfields.Step(step),
				logfields.Error(de.Cause))
		}
		return "", err
	}
	return out, nil
}

func (g *Generator) progress(format string, args ...any) {
	_, _ = fmt.Fprintf(g.opts.Out, format+"\n", args...)
}
