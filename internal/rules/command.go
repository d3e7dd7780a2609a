package rules

import (
	"github.com/fnzv/security-hook/internal/decision"
	"github.com/fnzv/security-hook/internal/policy"
	"github.com/fnzv/security-hook/internal/shellparse"
)

// AnalyzeCommand splits a raw command string into segments, strips wrappers
// and tokenizes each one, and dispatches on the first word to the matching
// per-command analyzer. The first non-Allow verdict across all segments
// wins.
func AnalyzeCommand(command string, cfg *policy.Compiled, cwd string) decision.Verdict {
	for _, segment := range shellparse.SplitCommands(command) {
		stripped := shellparse.StripWrappers(segment.Command)
		words := shellparse.Words(shellparse.Tokenize(stripped))
		if len(words) == 0 {
			continue
		}

		var v decision.Verdict
		switch words[0] {
		case "git":
			v = AnalyzeGit(words, cfg)
		case "rm":
			v = AnalyzeRm(words, cfg, cwd)
		case "find":
			v = AnalyzeFind(words)
		case "xargs":
			v = AnalyzeXargs(words)
		case "parallel":
			v = AnalyzeParallel(words)
		case "aws":
			v = AnalyzeAws(words)
		case "gcloud":
			v = AnalyzeGcloud(words)
		case "heroku":
			v = AnalyzeHeroku(words)
		case "uv":
			v = AnalyzeUv(words)
		default:
			v = decision.NewAllow()
		}

		if !v.IsAllow() {
			return v
		}
	}
	return decision.NewAllow()
}
