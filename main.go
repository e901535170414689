package main

import (
	"github.com/alecthomas/kong"

	"saborlocal.pe/SaborLocal/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Sabor Local"), kong.Description("SaborLocal is a restaurant dish discovery and review service."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
