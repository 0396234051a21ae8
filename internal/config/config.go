// Package config defines girgen's configuration surface and
// loads it from an optional girgen.yaml project file merged under
// explicit CLI flags.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Environment selects the primitive-type and signal-helper templates.
type Environment string

const (
	EnvironmentGJS  Environment = "gjs"
	EnvironmentNode Environment = "node"
)

// BuildType toggles the `declare namespace` wrapper around emitted
// declarations.
type BuildType string

const (
	BuildTypeTypes BuildType = "types"
	BuildTypeLib   BuildType = "lib"
)

// Config is the full configuration surface girgen exposes.
type Config struct {
	Environment    Environment `yaml:"environment"`
	BuildType      BuildType   `yaml:"buildType"`
	Inheritance    bool        `yaml:"inheritance"`
	OutDir         string      `yaml:"outdir"`
	GirDirectories []string    `yaml:"girDirectories"`
	Verbose        bool        `yaml:"verbose"`
}

// Default returns the configuration girgen uses when neither a project
// file nor flags override a field.
func Default() Config {
	return Config{
		Environment: EnvironmentGJS,
		BuildType:   BuildTypeTypes,
		Inheritance: false,
		OutDir:      ".",
	}
}

// LoadFile reads a girgen.yaml project file, if present, and merges it
// underneath Default(). Returns Default() unchanged if path does not
// exist; a project file is optional, never required.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that Environment and BuildType each hold one of their
// allowed values and that at least one GIR directory is configured.
func (c Config) Validate() error {
	switch c.Environment {
	case EnvironmentGJS, EnvironmentNode:
	default:
		return fmt.Errorf("config: invalid environment %q (want %q or %q)", c.Environment, EnvironmentGJS, EnvironmentNode)
	}
	switch c.BuildType {
	case BuildTypeTypes, BuildTypeLib:
	default:
		return fmt.Errorf("config: invalid buildType %q (want %q or %q)", c.BuildType, BuildTypeTypes, BuildTypeLib)
	}
	if len(c.GirDirectories) == 0 {
		return fmt.Errorf("config: at least one girDirectories entry is required")
	}
	return nil
}

// Merge overrides fields of c with any non-zero field set in override,
// used to layer CLI flags on top of a loaded project file. GirDirectories
// is the exception: override's directories are appended after c's
// rather than replacing them.
func (c Config) Merge(override Config) Config {
	out := c
	if override.Environment != "" {
		out.Environment = override.Environment
	}
	if override.BuildType != "" {
		out.BuildType = override.BuildType
	}
	if override.Inheritance {
		out.Inheritance = true
	}
	if override.OutDir != "" {
		out.OutDir = override.OutDir
	}
	if len(override.GirDirectories) > 0 {
		out.GirDirectories = append(out.GirDirectories, override.GirDirectories...)
	}
	if override.Verbose {
		out.Verbose = true
	}
	return out
}
