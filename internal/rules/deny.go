package rules

import (
	"github.com/fnzv/security-hook/internal/decision"
	"github.com/fnzv/security-hook/internal/policy"
)

// CheckDenyRules evaluates the explicit deny list scoped to tool, in
// declaration order. Unlike custom rules there is no allow action: a deny
// rule exists only to block.
func CheckDenyRules(tool, content string, cfg *policy.Compiled) decision.Verdict {
	for _, d := range cfg.DenyRulesForTool(tool) {
		if d.Compiled.MatchString(content) {
			reason := d.Rule.Reason
			if reason == "" {
				reason = "matches a configured deny rule"
			}
			return decision.NewBlock("deny."+tool, reason)
		}
	}
	return decision.NewAllow()
}
