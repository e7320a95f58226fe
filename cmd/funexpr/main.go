package main

import (
	"github.com/alecthomas/kong"

	"github.com/funvibe/funexpr/pkg/cli"
)

func main() {
	c := &cli.CLI{}

	ctx := kong.Parse(c,
		kong.Name("funexpr"),
		kong.Description("Parse and evaluate funexpr expressions."),
		kong.UsageOnError(),
	)

	ctx.FatalIfErrorf(ctx.Run(&c.Globals))
}
