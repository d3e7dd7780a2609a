package shellparse

import "strings"

// maxStripDepth bounds the wrapper stripper's recursion so that adversarial
// input like "sudo sudo sudo ..." cannot spin the analyzer forever.
const maxStripDepth = 5

// shellInterpreters are commands that take "-c <payload>" and execute the
// payload as a new command line.
var shellInterpreters = map[string]bool{
	"bash": true, "sh": true, "zsh": true, "dash": true,
}

// wrapperCommands take another command as their tail, optionally preceded by
// their own flags.
var wrapperCommands = map[string]bool{
	"sudo": true, "doas": true, "su": true, "env": true, "nohup": true,
	"nice": true, "ionice": true, "timeout": true, "time": true,
	"strace": true, "ltrace": true, "watch": true,
}

// StripWrappers recursively peels recognized wrapper commands (sudo, env,
// timeout, bash -c '...', etc.) to reveal the true target command, bounded
// to maxStripDepth levels. Anything it does not recognize is returned
// unchanged.
func StripWrappers(input string) string {
	return stripWrappersRecursive(input, 0)
}

func stripWrappersRecursive(input string, depth int) string {
	if depth >= maxStripDepth {
		return input
	}

	tokens := Tokenize(input)

	// Skip leading assignments (FOO=bar cmd ...).
	idx := 0
	for idx < len(tokens) && tokens[idx].Kind == Assignment {
		idx++
	}

	var firstWordIdx = -1
	for i := idx; i < len(tokens); i++ {
		if tokens[i].Kind == Word {
			firstWordIdx = i
			break
		}
	}
	if firstWordIdx == -1 {
		return input
	}

	cmd := tokens[firstWordIdx].Text
	rest := tokens[firstWordIdx+1:]

	if shellInterpreters[cmd] {
		if payload, ok := handleShellC(rest); ok {
			return stripWrappersRecursive(payload, depth+1)
		}
		return input
	}

	if wrapperCommands[cmd] {
		inner := handleWrapper(cmd, rest)
		if inner == "" {
			return input
		}
		return stripWrappersRecursive(inner, depth+1)
	}

	return input
}

// handleShellC scans for a "-c" flag and returns the Word immediately
// following it as the payload to re-parse.
func handleShellC(tokens []Token) (string, bool) {
	for i, t := range tokens {
		if t.Kind == Word && t.Text == "-c" && i+1 < len(tokens) {
			next := tokens[i+1]
			if next.Kind == Word {
				return next.Text, true
			}
		}
	}
	return "", false
}

// handleWrapper applies the per-wrapper option-skipping rules and
// reconstructs the remaining words into a command string.
func handleWrapper(cmd string, tokens []Token) string {
	words := tokensToWords(tokens)
	var remaining []string

	switch cmd {
	case "sudo":
		argOpts := map[string]bool{
			"-u": true, "-g": true, "-C": true, "-D": true,
			"-h": true, "-p": true, "-r": true, "-t": true,
		}
		i := 0
		for i < len(words) {
			w := words[i]
			if !strings.HasPrefix(w, "-") {
				break
			}
			i++
			if argOpts[w] {
				i++
			}
		}
		remaining = words[i:]

	case "env":
		i := 0
		for i < len(words) {
			w := words[i]
			if strings.HasPrefix(w, "-") || strings.Contains(w, "=") {
				i++
				continue
			}
			break
		}
		remaining = words[i:]

	case "timeout":
		argOpts := map[string]bool{
			"-s": true, "--signal": true, "-k": true, "--kill-after": true,
		}
		i := 0
		for i < len(words) {
			w := words[i]
			if !strings.HasPrefix(w, "-") {
				break
			}
			i++
			if argOpts[w] {
				i++
			}
		}
		// Consume exactly one non-option word as the duration argument.
		if i < len(words) {
			i++
		}
		remaining = words[i:]

	case "nice", "ionice":
		argOpts := map[string]bool{"-n": true, "-c": true}
		i := 0
		for i < len(words) {
			w := words[i]
			if !strings.HasPrefix(w, "-") {
				break
			}
			i++
			if argOpts[w] {
				i++
			}
		}
		remaining = words[i:]

	default:
		i := 0
		for i < len(words) && strings.HasPrefix(words[i], "-") {
			i++
		}
		remaining = words[i:]
	}

	return strings.Join(remaining, " ")
}

func tokensToWords(tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		switch t.Kind {
		case Word:
			out = append(out, t.Text)
		case Assignment:
			out = append(out, t.Name+"="+t.Value)
		}
	}
	return out
}

// ExtractOptions pulls (flag, value) pairs out of a token list: a long
// option splits on its first '=' or consumes the following non-dash word as
// its value; a short-option cluster yields one pair per character.
func ExtractOptions(tokens []Token) []struct{ Flag, Value string } {
	words := tokensToWords(tokens)
	var out []struct{ Flag, Value string }

	for i := 0; i < len(words); i++ {
		w := words[i]
		if !strings.HasPrefix(w, "-") {
			continue
		}
		if strings.HasPrefix(w, "--") {
			if eq := strings.IndexByte(w, '='); eq >= 0 {
				out = append(out, struct{ Flag, Value string }{w[:eq], w[eq+1:]})
				continue
			}
			value := ""
			if i+1 < len(words) && !strings.HasPrefix(words[i+1], "-") {
				value = words[i+1]
				i++
			}
			out = append(out, struct{ Flag, Value string }{w, value})
			continue
		}
		for _, r := range w[1:] {
			out = append(out, struct{ Flag, Value string }{"-" + string(r), ""})
		}
	}
	return out
}
