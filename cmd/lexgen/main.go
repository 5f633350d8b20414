// Command lexgen compiles a .lx lexer specification into a Go source
// file: syntax.Parse -> compile.Compile -> emit.Emit -> write.
package main

import (
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"lexgen/internal/runner"
)

func main() {
	opts := runner.ParseFlags()

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	if err := runner.Run(opts); err != nil {
		gologger.Error().Msgf("%v", err)
		os.Exit(1)
	}
}
