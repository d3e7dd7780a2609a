package rules

import (
	"strings"

	"github.com/fnzv/security-hook/internal/decision"
)

// AnalyzeParallel implements the parallel per-command analyzer: words[0] ==
// "parallel". Unlike xargs, parallel's command can appear anywhere in its
// argument tail, so the whole tail is scanned rather than walking an
// option/command split.
func AnalyzeParallel(words []string) decision.Verdict {
	args := words[1:]

	foundRm := false
	recursive := false
	for _, a := range args {
		if a == "rm" || strings.HasSuffix(a, "/rm") {
			foundRm = true
		}
		if a == "-r" || a == "-R" || a == "--recursive" || (strings.HasPrefix(a, "-") && !strings.HasPrefix(a, "--") && strings.ContainsAny(a, "rR")) {
			recursive = true
		}
	}

	if !foundRm {
		return decision.NewAllow()
	}

	reason := "parallel invokes rm"
	rule := "parallel.rm"
	if recursive {
		reason = "parallel invokes rm recursively, compounding the blast radius of matched items"
		rule = "parallel.rm_rf"
	}
	return decision.NewBlock(rule, reason)
}
