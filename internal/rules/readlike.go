package rules

import (
	"github.com/fnzv/security-hook/internal/decision"
	"github.com/fnzv/security-hook/internal/policy"
	"github.com/fnzv/security-hook/internal/shellparse"
)

// CheckReadLikeSensitivePaths implements Exec stage 4: when command matches
// the configured read-like regex, every non-option word of every segment is
// checked through the sensitive-path matcher.
func CheckReadLikeSensitivePaths(command string, cfg *policy.Compiled) decision.Verdict {
	if !cfg.IsReadCommand(command) {
		return decision.NewAllow()
	}

	for _, segment := range shellparse.SplitCommands(command) {
		stripped := shellparse.StripWrappers(segment.Command)
		for _, w := range shellparse.Words(shellparse.Tokenize(stripped)) {
			if isOption(w) {
				continue
			}
			if v := CheckSensitivePath(w, cfg); v.IsBlocked() {
				return v
			}
		}
	}
	return decision.NewAllow()
}

// CheckGitAddSensitiveSegments implements Exec stage 5: for every segment
// whose first two words are "git add", check the remaining non-option
// arguments through the sensitive-path matcher.
func CheckGitAddSensitiveSegments(command string, cfg *policy.Compiled) decision.Verdict {
	for _, segment := range shellparse.SplitCommands(command) {
		stripped := shellparse.StripWrappers(segment.Command)
		words := shellparse.Words(shellparse.Tokenize(stripped))
		if len(words) < 2 || words[0] != "git" || words[1] != "add" {
			continue
		}
		var paths []string
		for _, a := range words[2:] {
			if !isOption(a) {
				paths = append(paths, a)
			}
		}
		if v := CheckGitAddSensitive(paths, cfg); v.IsBlocked() {
			return v
		}
	}
	return decision.NewAllow()
}
