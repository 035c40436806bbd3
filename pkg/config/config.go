// Package config defines the pricepatch configuration model
package config

import (
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// 🎯 DefaultTarget is the file patched when no configuration file is present
const DefaultTarget = "app/api/expert-sessions/route.ts"

// 🔄 Rule represents a substitution rule applied to target files
type Rule struct {
	Pattern string  `json:"pattern" yaml:"pattern" hcl:"pattern"`
	Replace string  `json:"replace" yaml:"replace" hcl:"replace"`
	Guard   string  `json:"guard,omitempty" yaml:"guard,omitempty" hcl:"guard,optional"`
	File    *string `json:"file,omitempty" yaml:"file,omitempty" hcl:"file,optional"` // Optional specific file to apply to
}

// 📚 Config represents the complete configuration
type Config struct {
	Targets []string `json:"targets" yaml:"targets" hcl:"targets"`
	Rules   []Rule   `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rule,block"`
	DryRun  bool     `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"`
	Async   bool     `json:"async,omitempty" yaml:"async,omitempty" hcl:"async,optional"`
}

// 🏭 Default returns the configuration used when no config file exists:
// the built-in price mapping ruleset applied to the expert-sessions route.
func Default() *Config {
	return &Config{
		Targets: []string{DefaultTarget},
	}
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if len(cfg.Targets) == 0 {
		return errors.Errorf("at least one target is required")
	}

	for i, rule := range cfg.Rules {
		if rule.Pattern == "" {
			return errors.Errorf("rule %d: pattern is required", i)
		}
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return errors.Errorf("rule %d: invalid pattern: %w", i, err)
		}
		if rule.Guard != "" {
			if _, err := regexp.Compile(rule.Guard); err != nil {
				return errors.Errorf("rule %d: invalid guard: %w", i, err)
			}
		}
	}

	return nil
}
