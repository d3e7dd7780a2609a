package hookio

import (
	"github.com/fnzv/security-hook/internal/decision"
	"github.com/fnzv/security-hook/internal/policy"
	"github.com/fnzv/security-hook/internal/rules"
)

// Evaluate runs inv through the fixed per-tool stage order (SPEC_FULL.md
// §4.8) and returns the first non-Allow verdict, or Allow if every stage
// passed through.
func Evaluate(inv Invocation, cfg *policy.Compiled) decision.Verdict {
	switch inv.Tool {
	case Exec:
		return evaluateExec(inv, cfg)
	case Read:
		return evaluateRead(inv, cfg)
	case Write:
		return evaluateWriteOrEdit(inv, cfg)
	case Edit:
		return evaluateWriteOrEdit(inv, cfg)
	default:
		return decision.NewAllow()
	}
}

func evaluateExec(inv Invocation, cfg *policy.Compiled) decision.Verdict {
	command := inv.Params.Command

	return decision.FirstNonAllow(
		rules.CheckBuiltinSafeguards(command),
		rules.CheckDenyRules("Bash", command, cfg),
		rules.CheckCustomRules("Bash", command, cfg),
		rules.CheckParanoid(command, cfg),
		rules.CheckReadLikeSensitivePaths(command, cfg),
		rules.CheckGitAddSensitiveSegments(command, cfg),
		rules.AnalyzeCommand(command, cfg, inv.Cwd),
	)
}

func evaluateRead(inv Invocation, cfg *policy.Compiled) decision.Verdict {
	path := inv.Params.FilePath

	return decision.FirstNonAllow(
		rules.CheckDenyRules("Read", path, cfg),
		rules.CheckCustomRules("Read", path, cfg),
		rules.CheckParanoid(path, cfg),
		rules.CheckSensitivePath(path, cfg),
	)
}

func evaluateWriteOrEdit(inv Invocation, cfg *policy.Compiled) decision.Verdict {
	tool := inv.Tool.String()
	path := inv.Params.FilePath

	if v := rules.CheckDenyRules(tool, path, cfg); v.IsBlocked() {
		return v
	}
	if v := rules.CheckCustomRules(tool, path, cfg); !v.IsAllow() {
		return v
	}
	if cfg.IsDependencyFile(path) {
		suggestion := cfg.DependencySuggestion()
		reason := "editing a dependency manifest directly skips the package manager's lockfile and resolution step"
		v := decision.NewAsk("dependencies.manifest_edit", reason)
		if suggestion != "" {
			v = v.WithSuggestion(suggestion)
		}
		return v
	}
	return decision.NewAllow()
}
