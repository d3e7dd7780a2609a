package rules

import (
	"strings"

	"github.com/fnzv/security-hook/internal/decision"
)

var xargsOptionsWithArg = map[string]bool{
	"-I": true, "-L": true, "-n": true, "-P": true, "-s": true, "-a": true, "-E": true, "-d": true,
	"--delimiter": true, "--max-args": true, "--max-procs": true, "--replace": true,
	"--max-lines": true, "--arg-file": true, "--eof": true, "--max-chars": true,
}

// AnalyzeXargs implements the xargs per-command analyzer: words[0] ==
// "xargs". Walks xargs' own options to find the command it invokes; if that
// command is rm (or */rm), blocks.
func AnalyzeXargs(words []string) decision.Verdict {
	args := words[1:]

	i := 0
	for i < len(args) {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			break
		}
		i++
		if xargsOptionsWithArg[a] {
			i++
		}
	}

	if i >= len(args) {
		return decision.NewAllow()
	}

	cmd := args[i]
	if cmd != "rm" && !strings.HasSuffix(cmd, "/rm") {
		return decision.NewAllow()
	}

	recursive := false
	for _, a := range args[i+1:] {
		if a == "-r" || a == "-R" || a == "--recursive" || (strings.HasPrefix(a, "-") && !strings.HasPrefix(a, "--") && strings.ContainsAny(a, "rR")) {
			recursive = true
			break
		}
	}

	reason := "xargs invokes rm"
	if recursive {
		reason = "xargs invokes rm recursively, compounding the blast radius of matched items"
	}
	rule := "xargs.rm"
	if recursive {
		rule = "xargs.rm_rf"
	}
	return decision.NewBlock(rule, reason)
}
