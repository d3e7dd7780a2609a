package rules

import (
	"strings"

	"github.com/fnzv/security-hook/internal/decision"
)

// AnalyzeFind implements the find per-command analyzer: words[0] == "find".
func AnalyzeFind(words []string) decision.Verdict {
	args := words[1:]

	for _, a := range args {
		if a == "-delete" {
			return decision.NewBlock("find.delete", "find -delete removes matched files irrecoverably")
		}
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-exec", "-execdir":
			span, _ := spanUntilTerminator(args, i+1)
			if spanContainsRm(span) {
				return decision.NewBlock("find.exec_rm", "find -exec ... rm removes matched files irrecoverably")
			}
		case "-ok", "-okdir":
			span, _ := spanUntilTerminator(args, i+1)
			if spanContainsRm(span) {
				return decision.NewBlock("find.ok_rm", "find -ok ... rm removes matched files (interactive confirmation can still be scripted past)")
			}
		}
	}

	return decision.NewAllow()
}

// spanUntilTerminator collects words starting at start up to (not
// including) the first terminator ";", "+", or the literal two-character
// "\;", returning the span and the index just past the terminator.
func spanUntilTerminator(args []string, start int) ([]string, int) {
	var span []string
	i := start
	for ; i < len(args); i++ {
		if args[i] == ";" || args[i] == "+" || args[i] == `\;` {
			return span, i + 1
		}
		span = append(span, args[i])
	}
	return span, i
}

func spanContainsRm(span []string) bool {
	for _, w := range span {
		if w == "rm" || strings.HasSuffix(w, "/rm") {
			return true
		}
	}
	return false
}
