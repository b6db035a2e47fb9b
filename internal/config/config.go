// Package config loads the optional project file (mx.yaml) the CLI
// consults for defaults that would otherwise have to be repeated on every
// invocation: the entrypoint file, the interpreter's step budget, and a
// list of additional predeclared names. It is layered the same way the
// teacher's own mainer.Parser layers CLI flags over env vars: the YAML file
// sets the base, and MX_-prefixed environment variables overlay it. Of the
// decoded fields, the CLI currently reads only MaxSteps (for the run
// command); Entry and Predeclared are decoded but not consulted.
package config

import (
	"os"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// DefaultMaxSteps bounds interpreter execution when neither the config file
// nor --max-steps nor MX_MAX_STEPS says otherwise. Zero would mean
// unbounded, which a misbehaving MX program could turn into a CLI that
// never returns.
const DefaultMaxSteps = 1_000_000

// Config is the decoded shape of mx.yaml, overlaid with MX_* env vars.
type Config struct {
	Entry       string   `yaml:"entry"        env:"MX_ENTRY"`
	MaxSteps    int      `yaml:"max_steps"     env:"MX_MAX_STEPS"`
	Predeclared []string `yaml:"predeclared,omitempty"`
}

// Load reads and decodes the YAML file at path, then overlays MX_*
// environment variables on top. A missing file is not an error: it just
// means every field keeps its zero value (the caller applies its own
// defaults, e.g. DefaultMaxSteps). A present-but-malformed file is.
func Load(path string) (Config, error) {
	var c Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &c); err != nil {
				return Config{}, err
			}
		case os.IsNotExist(err):
			// no project file: defaults only, env can still apply below.
		default:
			return Config{}, err
		}
	}

	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	if c.MaxSteps == 0 {
		c.MaxSteps = DefaultMaxSteps
	}
	return c, nil
}
