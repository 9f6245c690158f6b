package commands

import (
	"fmt"
	"log/slog"

	derrors "git.home.luguber.info/inful/vendordocs/internal/errors"
	"git.home.luguber.info/inful/vendordocs/internal/lint"
	"git.home.luguber.info/inful/vendordocs/internal/logfields"
)

// LintCmd implements the 'lint' command.
type LintCmd struct {
	Path   string `arg:"" optional:"" help:"File or directory to lint (defaults to the docs directory)"`
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Strict bool   `help:"Treat warnings as failures"`
}

func (l *LintCmd) Run(global *Global, root *CLI) error {
	path := l.Path
	if path == "" {
		path = root.resolve("docs")
	}

	formatter, err := lint.NewFormatter(l.Format)
	if err != nil {
		return derrors.ValidationFailed("format", err.Error())
	}

	slog.Debug("Linting documentation", logfields.Path(path))
	result, err := lint.NewLinter().LintPath(path)
	if err != nil {
		return derrors.Wrap(err, derrors.CategoryFileSystem, derrors.SeverityFatal, "failed to lint documentation").
			WithContext("path", path)
	}

	if err := formatter.Format(global.out(), result); err != nil {
		return err
	}

	failing := result.ErrorCount()
	if l.Strict {
		failing += result.WarningCount()
	}
	if failing > 0 {
		return derrors.ValidationFailed("documents", fmt.Sprintf("%d issue(s) found", failing)).
			WithContext("path", path)
	}
	return nil
}
