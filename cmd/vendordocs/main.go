package main

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/vendordocs/cmd/vendordocs/commands"
	derrors "git.home.luguber.info/inful/vendordocs/internal/errors"
	"git.home.luguber.info/inful/vendordocs/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("vendordocs"),
		kong.Description("Generate per-vendor, per-company documentation pages, sidebars and stylesheets from templates."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	err := parser.Run(&commands.Global{Stdout: os.Stdout}, cli)
	derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
