// Package runner wires the lexgen CLI's flags to the compilation
// pipeline: read a .lx source file, parse, compile, emit, and write
// the generated Go source to disk.
package runner

import (
	"fmt"
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"

	"lexgen/compile"
	"lexgen/config"
	"lexgen/diag"
	"lexgen/emit"
	"lexgen/syntax"
)

// Options holds the parsed CLI flags.
type Options struct {
	Input       string
	Output      string
	ConfigFile  string
	Unicode     bool
	WarnAsError bool
	Verbose     bool
	Silent      bool
}

// ParseFlags builds the lexgen flag set and parses os.Args.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Generates a Go lexical scanner from a .lx specification.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Input, "input", "i", "", "path to the .lx lexer specification"),
		flagSet.StringVar(&opts.ConfigFile, "config", "", "path to a YAML compilation options file"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "path to write the generated Go source (default lexer.go)"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	flagSet.CreateGroup("compilation", "Compilation",
		flagSet.BoolVar(&opts.Unicode, "unicode", false, "compile against the Unicode/BMP character universe instead of ASCII"),
		flagSet.BoolVarP(&opts.WarnAsError, "warn-as-error", "wae", false, "treat warnings as errors (every diagnostic is already fatal)"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}
	return opts
}

// Run executes the full input -> output pipeline described by opts.
func Run(opts *Options) error {
	if opts.Input == "" {
		return fmt.Errorf("runner: -input is required")
	}

	compOpts := config.Default()
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			return fmt.Errorf("runner: loading config: %w", err)
		}
		compOpts = loaded
	}
	if opts.Unicode {
		compOpts.Unicode = true
	}
	if opts.WarnAsError {
		compOpts.WarnAsError = true
	}
	if opts.Output != "" {
		compOpts.OutputPath = opts.Output
	}

	in, err := os.Open(opts.Input)
	if err != nil {
		return fmt.Errorf("runner: opening %s: %w", opts.Input, err)
	}
	defer in.Close()

	spec, diags := syntax.Parse(in)
	if diag.HasErrors(diags) {
		return reportDiagnostics("parsing", diags)
	}

	gologger.Info().Msgf("parsed %d rule(s) from %s", spec.Rules.Len(), opts.Input)

	compiled, diags := compile.Compile(spec, compOpts)
	if diag.HasErrors(diags) {
		return reportDiagnostics("compiling", diags)
	}

	src, err := emit.Emit(compiled)
	if err != nil {
		return fmt.Errorf("runner: emitting source: %w", err)
	}

	if err := os.WriteFile(compOpts.OutputPath, src, 0o644); err != nil {
		return fmt.Errorf("runner: writing %s: %w", compOpts.OutputPath, err)
	}
	gologger.Info().Msgf("wrote %s", compOpts.OutputPath)
	return nil
}

func reportDiagnostics(stage string, diags []diag.Diagnostic) error {
	for _, d := range diags {
		gologger.Error().Msgf("%s: %s", stage, d.Error())
	}
	return fmt.Errorf("runner: %s failed with %d diagnostic(s)", stage, len(diags))
}
