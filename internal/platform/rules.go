package platform

import "strings"

// SettingsRule maps a keyword set to one settings target. Rules are evaluated
// top to bottom; the first rule with any keyword appearing inside the target
// string wins.
type SettingsRule struct {
	Keywords []string
	Target   string
}

// RuleTable is an ordered rule list with a default target for when no rule
// matches. The order is part of the contract, not an implementation accident.
type RuleTable struct {
	Rules   []SettingsRule
	Default string
}

// Resolve returns the target for a raw, lower-cased settings phrase.
func (t RuleTable) Resolve(target string) string {
	for _, r := range t.Rules {
		for _, kw := range r.Keywords {
			if strings.Contains(target, kw) {
				return r.Target
			}
		}
	}
	return t.Default
}
