package rules

import (
	"github.com/fnzv/security-hook/internal/decision"
	"github.com/fnzv/security-hook/internal/policy"
)

// CheckParanoid scans raw, unsplit text against the paranoid-mode pattern
// superset. A no-op when paranoid mode is disabled.
func CheckParanoid(text string, cfg *policy.Compiled) decision.Verdict {
	if pattern, ok := cfg.MatchesParanoid(text); ok {
		return decision.NewBlock("paranoid.match", "paranoid mode: text matches pattern "+pattern)
	}
	return decision.NewAllow()
}
