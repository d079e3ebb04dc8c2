// Package config loads bearlint configuration from files, environment
// variables and command-line flags, in that order of increasing
// precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/bearlint/pkg/lint"
)

// Config is the on-disk configuration shape, bearlint.yaml:
//
//	extend_select: [B901]
//	extend_ignore: [B007]
//	max_complexity: 10
//	severities:
//	  B006: error
//	rules:
//	  B008:
//	    extend-immutable-calls: [fastapi.Depends]
type Config struct {
	ExtendSelect  []string                  `koanf:"extend_select"`
	ExtendIgnore  []string                  `koanf:"extend_ignore"`
	MaxComplexity int                       `koanf:"max_complexity"`
	Severities    map[string]string         `koanf:"severities"`
	Rules         map[string]map[string]any `koanf:"rules"`
}

// findConfigFile picks the config file to use.
// Priority: explicit path > bearlint.yaml > bearlint.yml > .bearlint.yaml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"bearlint.yaml", "bearlint.yml", ".bearlint.yaml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load reads configuration with the precedence flags > env > file >
// defaults. It returns the loaded config and the path of the config file
// used, if any.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"extend_select":  []string{},
		"extend_ignore":  []string{},
		"max_complexity": 0,
	}, "."), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load defaults: %w", err)
	}

	configFileUsed := findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// BEARLINT_MAX_COMPLEXITY -> max_complexity
	if err := k.Load(env.Provider("BEARLINT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "BEARLINT_"))
	}), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			// kebab-case flags map to snake_case config keys
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, "", fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, configFileUsed, nil
}

// ToLint converts the loaded file shape into the engine's configuration.
// Unknown severity strings are rejected rather than silently defaulted.
func (c *Config) ToLint() (*lint.Config, error) {
	out := lint.NewConfig()
	out.Select(c.ExtendSelect...)
	out.Ignore(c.ExtendIgnore...)
	out.SetMaxComplexity(c.MaxComplexity)
	for code, name := range c.Severities {
		sev, ok := lint.ParseSeverity(name)
		if !ok {
			return nil, fmt.Errorf("config: unknown severity %q for rule %s", name, code)
		}
		out.SetSeverity(code, sev)
	}
	for code, opts := range c.Rules {
		out.SetRuleOptions(code, opts)
	}
	return out, nil
}
