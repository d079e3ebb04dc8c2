package lint

// Config controls which rules run and how they behave for one or more
// Analyze calls. It is read-only during a run.
type Config struct {
	// ExtendSelect force-enables rules that are disabled by default.
	ExtendSelect map[string]bool

	// ExtendIgnore force-disables rules by code.
	ExtendIgnore map[string]bool

	// MaxComplexity is the cyclomatic complexity threshold for the
	// complexity rule; zero or negative leaves the rule inert.
	MaxComplexity int

	// SeverityOverrides changes the default severity of rules.
	SeverityOverrides map[string]Severity

	// RuleOptions holds rule-specific options keyed by rule code.
	RuleOptions map[string]map[string]any
}

// NewConfig creates a default configuration: default-enabled rules on,
// opt-in rules off, no overrides.
func NewConfig() *Config {
	return &Config{
		ExtendSelect:      make(map[string]bool),
		ExtendIgnore:      make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
		RuleOptions:       make(map[string]map[string]any),
	}
}

// Enabled reports whether a rule should run under this configuration.
func (c *Config) Enabled(def *RuleDef) bool {
	if c == nil {
		return !def.DisabledByDefault
	}
	if c.ExtendIgnore[def.Code] {
		return false
	}
	if def.DisabledByDefault {
		return c.ExtendSelect[def.Code]
	}
	return true
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(code string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[code]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetRuleOptions returns the options map for a rule, or nil.
func (c *Config) GetRuleOptions(code string) map[string]any {
	if c == nil {
		return nil
	}
	opts := c.RuleOptions[code]
	if c.MaxComplexity > 0 {
		// max-complexity is a top-level option; surface it to rules that
		// declared the key without requiring per-rule plumbing.
		if _, ok := opts["max-complexity"]; !ok {
			merged := make(map[string]any, len(opts)+1)
			for k, v := range opts {
				merged[k] = v
			}
			merged["max-complexity"] = c.MaxComplexity
			return merged
		}
	}
	return opts
}

// Select force-enables rules by code.
func (c *Config) Select(codes ...string) *Config {
	for _, code := range codes {
		c.ExtendSelect[code] = true
	}
	return c
}

// Ignore force-disables rules by code.
func (c *Config) Ignore(codes ...string) *Config {
	for _, code := range codes {
		c.ExtendIgnore[code] = true
	}
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(code string, severity Severity) *Config {
	c.SeverityOverrides[code] = severity
	return c
}

// SetRuleOptions replaces the options for a rule.
func (c *Config) SetRuleOptions(code string, opts map[string]any) *Config {
	c.RuleOptions[code] = opts
	return c
}

// SetMaxComplexity sets the complexity threshold.
func (c *Config) SetMaxComplexity(n int) *Config {
	c.MaxComplexity = n
	return c
}
