package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"git.home.luguber.info/inful/vendordocs/internal/logfields"
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	stderr  io.Writer
	exit    func(int)
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		stderr:  os.Stderr,
		exit:    os.Exit,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if de, ok := As(err); ok {
		return a.exitCodeFromDocError(de)
	}

	return 1
}

// exitCodeFromDocError maps DocError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromDocError(err *DocError) int {
	switch err.Category {
	case CategoryConfig:
		return 1
	case CategoryValidation:
		return 2
	case CategoryTemplate, CategoryTransform, CategoryFileSystem:
		return 11
	case CategoryInternal:
		return 10
	default:
		return 1
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if de, ok := As(err); ok {
		return a.formatDocError(de)
	}

	return fmt.Sprintf("Error: %v", err)
}

func (a *CLIErrorAdapter) formatDocError(err *DocError) string {
	if a.verbose {
		return err.Error()
	}

	msg := err.Message
	if ctx := formatContext(err.Context); ctx != "" {
		msg += " (" + ctx + ")"
	}

	switch err.Category {
	case CategoryConfig, CategoryValidation:
		if err.Cause != nil {
			return fmt.Sprintf("%s: %v", msg, err.Cause)
		}
		return msg
	default:
		if err.Cause != nil {
			return fmt.Sprintf("%s: %s: %v", err.Category, msg, err.Cause)
		}
		return fmt.Sprintf("%s: %s", err.Category, msg)
	}
}

func formatContext(ctx ContextFields) string {
	if len(ctx) == 0 {
		return ""
	}
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		switch v := ctx[k].(type) {
		case []string:
			parts = append(parts, fmt.Sprintf("%s=%s", k, strings.Join(v, ",")))
		default:
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
	}
	return strings.Join(parts, " ")
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	exitCode := a.ExitCodeFor(err)
	message := a.FormatError(err)

	if a.shouldLog(err) {
		a.logError(err)
	}

	_, _ = fmt.Fprintf(a.stderr, "%s\n", message)
	a.exit(exitCode)
}

// shouldLog determines if an error should be logged in addition to the stderr message.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	return a.verbose || GetCategory(err) == CategoryInternal
}

func (a *CLIErrorAdapter) logError(err error) {
	if de, ok := As(err); ok {
		level := a.slogLevelFromSeverity(de.Severity)
		attrs := []slog.Attr{
			slog.String("category", string(de.Category)),
		}
		if de.Cause != nil {
			attrs = append(attrs, slog.String("cause", de.Cause.Error()))
		}

		a.logger.LogAttrs(context.Background(), level, de.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", logfields.Error(err))
}

func (a *CLIErrorAdapter) slogLevelFromSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
