// Package config implements the YAML-backed compilation options that
// control how the compiler interprets patterns.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// CompilationOptions controls how the compiler interprets patterns
// (the active character universe) and carries the WarnAsError setting
// and default output path. CLI flags in cmd/lexgen override values
// loaded from a file.
type CompilationOptions struct {
	// Unicode selects the BMP universe [0x0000, 0xFFFF] instead of
	// the default ASCII universe [0x00, 0xFF].
	Unicode bool `yaml:"unicode"`
	// WarnAsError is loaded and carried through, but no compilation
	// stage reads it: no stage produces warning-level diagnostics, and
	// every diagnostic already stops compilation (diag.HasErrors).
	WarnAsError bool `yaml:"warnAsError"`
	// OutputPath is the default generated-file path, overridden by
	// the -o CLI flag when set.
	OutputPath string `yaml:"outputPath"`
}

// Default returns ASCII-universe options with WarnAsError off and
// OutputPath "lexer.go".
func Default() CompilationOptions {
	return CompilationOptions{OutputPath: "lexer.go"}
}

// Load reads CompilationOptions from a YAML file at path.
func Load(path string) (CompilationOptions, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return CompilationOptions{}, err
	}
	opts := Default()
	if err := yaml.Unmarshal(bin, &opts); err != nil {
		return CompilationOptions{}, err
	}
	return opts, nil
}

// GenerateSample writes a sample configuration file to path.
func GenerateSample(path string) error {
	bin, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, bin, 0o644)
}
