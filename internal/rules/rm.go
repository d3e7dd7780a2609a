package rules

import (
	"fmt"
	"path"
	"strings"

	"github.com/fnzv/security-hook/internal/decision"
	"github.com/fnzv/security-hook/internal/policy"
)

var dangerousRmPaths = []string{
	"/", "/home", "/etc", "/usr", "/var", "/root", "/boot", "/sys", "/proc",
}

// AnalyzeRm implements the rm per-command analyzer: words[0] == "rm".
func AnalyzeRm(words []string, cfg *policy.Compiled, cwd string) decision.Verdict {
	if len(words) == 0 {
		return decision.NewAllow()
	}

	hasRecursive := false
	var paths []string
	pastDoubleDash := false

	for _, w := range words[1:] {
		if pastDoubleDash {
			paths = append(paths, w)
			continue
		}
		switch {
		case w == "--":
			pastDoubleDash = true
		case w == "-r" || w == "-R" || w == "--recursive":
			hasRecursive = true
		case w == "-f" || w == "--force":
			// Tracked but not independently blocking.
		case strings.HasPrefix(w, "--"):
			// Other long options: ignored.
		case strings.HasPrefix(w, "-"):
			if strings.ContainsAny(w, "rR") {
				hasRecursive = true
			}
		default:
			paths = append(paths, w)
		}
	}

	if !hasRecursive {
		return decision.NewAllow()
	}

	for _, p := range paths {
		if v, blocked := checkRmPath(p, cfg, cwd); blocked {
			return v
		}
	}

	return decision.NewAllow()
}

func checkRmPath(p string, cfg *policy.Compiled, cwd string) (decision.Verdict, bool) {
	normalized := p
	if !path.IsAbs(p) && cwd != "" {
		normalized = path.Join(cwd, p)
	}

	for _, dangerous := range dangerousRmPaths {
		if normalized == dangerous || (strings.HasPrefix(normalized, dangerous+"/") && len(normalized) <= len(dangerous)+2) {
			return decision.NewBlock("rm.dangerous_path", fmt.Sprintf("rm -rf on system path '%s' is blocked", p)), true
		}
	}

	if cfg.Raw.Rm.BlockOutsideCwd && cwd != "" {
		if !isPathWithinCwd(p, cwd, cfg) {
			return decision.NewBlock("rm.outside_cwd", fmt.Sprintf("rm -rf outside working directory: '%s'", p)), true
		}
	}

	return decision.Verdict{}, false
}

// isPathWithinCwd implements SPEC_FULL.md §4.6's rm containment predicate:
// absolute paths are within cwd iff they are a string-prefix of cwd or are
// covered by the rm allow-list (literal prefix or glob); relative paths are
// within cwd iff walking their components never drives a signed depth
// counter negative (a ".." that would escape the starting directory).
func isPathWithinCwd(p, cwd string, cfg *policy.Compiled) bool {
	if path.IsAbs(p) {
		if strings.HasPrefix(p, cwd) {
			return true
		}
		return cfg.RmPathAllowed(p)
	}

	depth := 0
	for _, component := range strings.Split(p, "/") {
		switch component {
		case "..":
			depth--
			if depth < 0 {
				return false
			}
		case ".", "":
			// no-op
		default:
			depth++
		}
	}
	return true
}
