// Package rules holds the rule engine: the sensitive-path matcher, the
// custom-rule evaluator, and the per-command-family analyzers for git, rm,
// find, xargs, parallel, aws, gcloud, heroku, and uv.
package rules

import (
	"fmt"
	"strings"

	"github.com/fnzv/security-hook/internal/decision"
	"github.com/fnzv/security-hook/internal/policy"
)

// envTip guides the agent to use scaffolding files instead of attempting
// workarounds, attached whenever the triggering pattern mentions ".env".
const envTip = "Tip: .env.example, .env.sample, .env.template, and .env.dist are allowed by default"

// CheckSensitivePath checks whether path matches a configured sensitive
// pattern. On a match, the block carries the env scaffold hint whenever the
// triggering pattern's source text contains the literal substring "\.env".
func CheckSensitivePath(path string, cfg *policy.Compiled) decision.Verdict {
	pattern, ok := cfg.IsSensitivePath(path)
	if !ok {
		return decision.NewAllow()
	}
	v := decision.NewBlock("secrets.sensitive_file", fmt.Sprintf("access to sensitive file matching '%s'", pattern))
	if strings.Contains(pattern, `\.env`) {
		v = v.WithDetails(envTip)
	}
	return v
}

// CheckGitAddSensitive checks whether any of paths (the non-option
// arguments of a "git add" invocation) matches a sensitive pattern, gated
// on the git.block_add_sensitive policy flag.
func CheckGitAddSensitive(paths []string, cfg *policy.Compiled) decision.Verdict {
	if !cfg.Raw.Git.BlockAddSensitive {
		return decision.NewAllow()
	}
	for _, path := range paths {
		pattern, ok := cfg.IsSensitivePath(path)
		if !ok {
			continue
		}
		v := decision.NewBlock("git.add.sensitive", fmt.Sprintf("git add on sensitive file matching '%s'", pattern))
		if strings.Contains(pattern, `\.env`) {
			v = v.WithDetails(envTip)
		}
		return v
	}
	return decision.NewAllow()
}
