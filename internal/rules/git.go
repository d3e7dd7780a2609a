package rules

import (
	"fmt"

	"github.com/fnzv/security-hook/internal/decision"
	"github.com/fnzv/security-hook/internal/policy"
)

var protectedBranches = map[string]bool{
	"main": true, "master": true, "develop": true, "release": true,
}

// AnalyzeGit implements the git per-command analyzer: words is the full
// word list of one segment with words[0] == "git".
func AnalyzeGit(words []string, cfg *policy.Compiled) decision.Verdict {
	if len(words) < 2 {
		return decision.NewAllow()
	}

	sub := words[1]
	args := words[2:]

	if sub == "add" {
		var paths []string
		for _, a := range args {
			if !isOption(a) {
				paths = append(paths, a)
			}
		}
		return CheckGitAddSensitive(paths, cfg)
	}

	if !cfg.Raw.Git.BlockDestructive {
		return decision.NewAllow()
	}

	switch sub {
	case "checkout":
		for _, a := range args {
			if a == "--" {
				return decision.NewBlock("git.checkout", "git checkout -- discards working copy changes")
			}
			if a == "-f" || a == "--force" {
				return decision.NewBlock("git.checkout.force", "git checkout --force discards working copy changes")
			}
		}
	case "reset":
		for _, a := range args {
			if a == "--hard" {
				return decision.NewBlock("git.reset.hard", "git reset --hard discards working copy changes")
			}
		}
	case "push":
		return analyzeGitPush(args, cfg)
	case "branch":
		for _, a := range args {
			if a == "-D" {
				branch := ""
				for _, b := range args {
					if b != "-D" && !isOption(b) {
						branch = b
						break
					}
				}
				reason := "git branch -D force-deletes a branch"
				if branch != "" {
					reason = fmt.Sprintf("git branch -D force-deletes branch '%s'", branch)
				}
				return decision.NewBlock("git.branch.force_delete", reason)
			}
		}
	case "stash":
		if len(args) > 0 && (args[0] == "drop" || args[0] == "clear") {
			return decision.NewBlock("git.stash.drop", fmt.Sprintf("git stash %s discards stashed changes", args[0]))
		}
	case "clean":
		hasForce := false
		strong := false
		for _, a := range args {
			if a == "-f" || a == "--force" {
				hasForce = true
			}
			if a == "-d" || a == "-x" || a == "-X" {
				strong = true
			}
		}
		if hasForce {
			if strong {
				return decision.NewBlock("git.clean.force", "git clean -f combined with -d/-x/-X removes untracked and ignored files irrecoverably")
			}
			return decision.NewBlock("git.clean", "git clean -f removes untracked files irrecoverably")
		}
	}

	return decision.NewAllow()
}

func analyzeGitPush(args []string, cfg *policy.Compiled) decision.Verdict {
	force := false
	for _, a := range args {
		if a == "-f" || a == "--force" || a == "--force-with-lease" ||
			(len(a) > len("--force-with-lease=") && a[:len("--force-with-lease=")] == "--force-with-lease=") {
			force = true
			break
		}
	}
	if !force {
		return decision.NewAllow()
	}

	var positional []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if isOption(a) {
			continue
		}
		positional = append(positional, a)
	}

	var branch string
	if len(positional) >= 2 {
		branch = positional[1]
	}

	if branch == "" || !protectedBranches[branch] {
		return decision.NewAllow()
	}
	for _, allowed := range cfg.Raw.Git.ForcePushAllowedBranches {
		if allowed == branch {
			return decision.NewAllow()
		}
	}

	return decision.NewBlock("git.push.force", fmt.Sprintf("force push to protected branch '%s'", branch))
}

func isOption(word string) bool {
	return len(word) > 0 && word[0] == '-'
}
