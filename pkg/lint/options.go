package lint

// Rule options arrive as map[string]any, decoded from a config file or
// built in code. The getters coerce the loose shapes those sources
// produce; a missing key or a value of the wrong type yields the
// fallback. Indexing a nil map is fine, so a nil options map behaves
// like an empty one.

// GetIntOption reads an integer option. Generic decoders deliver
// numbers as float64 or int64 depending on the source format, and both
// count as integers here.
func GetIntOption(opts map[string]any, key string, fallback int) int {
	switch n := opts[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return fallback
}

// GetStringSliceOption reads a []string option, accepting the []any
// shape generic decoders produce. Elements that are not strings are
// dropped.
func GetStringSliceOption(opts map[string]any, key string, fallback []string) []string {
	switch v := opts[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return fallback
}
