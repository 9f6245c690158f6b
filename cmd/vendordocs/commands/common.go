package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
)

// Global carries state shared by every subcommand.
type Global struct {
	// Stdout receives user-facing progress output.
	Stdout io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (relative to --root)" default:"config/companies.yaml"`
	Root    string           `help:"Project root all relative paths resolve against" default:"."`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate documents, sidebar and stylesheet for one vendor/company"`
	Init     InitCmd     `cmd:"" help:"Create an example configuration and template"`
	List     ListCmd     `cmd:"" help:"List vendors and companies in the configuration"`
	Lint     LintCmd     `cmd:"" help:"Check generated documents for unresolved placeholders and empty links"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// resolve joins p onto the root unless it is absolute.
func (c *CLI) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	root := c.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, p)
}
