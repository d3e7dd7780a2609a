package rules

import (
	"fmt"

	"github.com/fnzv/security-hook/internal/decision"
	"github.com/fnzv/security-hook/internal/policy"
)

// CheckCustomRules iterates over the configured custom rules in declaration
// order, skipping any whose tool-kind doesn't match or whose pattern failed
// to compile. The first match decides: action "allow" short-circuits to
// Allow (even pre-empting a later built-in block), action "block" returns
// Block with the rule's own reason or a default, and an unknown action is
// ignored as if the rule didn't match at all.
func CheckCustomRules(tool, content string, cfg *policy.Compiled) decision.Verdict {
	for _, cr := range cfg.CustomRules() {
		if cr.Rule.Tool != tool || cr.Compiled == nil {
			continue
		}
		if !cr.Compiled.MatchString(content) {
			continue
		}
		switch cr.Rule.Action {
		case "allow":
			return decision.NewAllow()
		case "block":
			reason := cr.Rule.Reason
			if reason == "" {
				reason = fmt.Sprintf("blocked by custom rule '%s'", cr.Rule.Name)
			}
			return decision.NewBlock(cr.Rule.Name, reason)
		default:
			continue
		}
	}
	return decision.NewAllow()
}
