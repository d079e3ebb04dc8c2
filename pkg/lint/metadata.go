package lint

// RuleInfo provides metadata about a rule for documentation/tooling.
// This is a DTO - it carries data without behavior.
type RuleInfo struct {
	Code              string   `json:"code" yaml:"code"`
	Name              string   `json:"name" yaml:"name"`
	Group             string   `json:"group" yaml:"group"`
	Description       string   `json:"description" yaml:"description"`
	DefaultSeverity   string   `json:"default_severity" yaml:"default_severity"`
	ConfigKeys        []string `json:"config_keys,omitempty" yaml:"config_keys,omitempty"`
	DisabledByDefault bool     `json:"disabled_by_default,omitempty" yaml:"disabled_by_default,omitempty"`
	NodeKinds         []string `json:"node_kinds" yaml:"node_kinds"`

	// Documentation fields
	Rationale   string `json:"rationale,omitempty" yaml:"rationale,omitempty"`
	BadExample  string `json:"bad_example,omitempty" yaml:"bad_example,omitempty"`
	GoodExample string `json:"good_example,omitempty" yaml:"good_example,omitempty"`
	Fix         string `json:"fix,omitempty" yaml:"fix,omitempty"`
}

// GetRuleInfo extracts metadata from a rule definition for documentation/tooling.
func GetRuleInfo(def RuleDef) RuleInfo {
	kinds := make([]string, 0, len(def.Kinds))
	for _, k := range def.Kinds {
		kinds = append(kinds, k.String())
	}
	return RuleInfo{
		Code:              def.Code,
		Name:              def.Name,
		Group:             def.Group,
		Description:       def.Description,
		DefaultSeverity:   def.Severity.String(),
		ConfigKeys:        def.ConfigKeys,
		DisabledByDefault: def.DisabledByDefault,
		NodeKinds:         kinds,
		Rationale:         def.Rationale,
		BadExample:        def.BadExample,
		GoodExample:       def.GoodExample,
		Fix:               def.Fix,
	}
}
