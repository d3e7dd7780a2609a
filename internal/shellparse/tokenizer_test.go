package shellparse

import "testing"

func TestTokenizeWords(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		want []string
	}{
		{"simple", "ls -la /tmp", []string{"ls", "-la", "/tmp"}},
		{"single_quoted", "echo 'hello world'", []string{"echo", "hello world"}},
		{"double_quoted", `echo "hello world"`, []string{"echo", "hello world"}},
		{"escaped_space", `echo foo\ bar`, []string{"echo", "foo bar"}},
		{"mixed_quotes", `echo 'it'"'"'s'`, []string{"echo", "it's"}},
		{"empty", "", nil},
		{"trailing_space", "ls   ", []string{"ls"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Words(Tokenize(tc.cmd))
			if len(got) != len(tc.want) {
				t.Fatalf("Tokenize(%q) = %#v, want %#v", tc.cmd, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("word %d: got %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestTokenizeAssignment(t *testing.T) {
	tokens := Tokenize("FOO=bar cmd")
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %#v", len(tokens), tokens)
	}
	if tokens[0].Kind != Assignment || tokens[0].Name != "FOO" || tokens[0].Value != "bar" {
		t.Errorf("expected Assignment(FOO, bar), got %#v", tokens[0])
	}
	if tokens[1].Kind != Word || tokens[1].Text != "cmd" {
		t.Errorf("expected Word(cmd), got %#v", tokens[1])
	}
}

func TestTokenizeNotAssignment(t *testing.T) {
	// "=foo" has no prefix before '=', and "2FOO=bar" is not a valid var name.
	for _, cmd := range []string{"=foo", "2FOO=bar"} {
		tokens := Tokenize(cmd)
		if len(tokens) != 1 || tokens[0].Kind != Word {
			t.Errorf("Tokenize(%q): expected single Word, got %#v", cmd, tokens)
		}
	}
}

func TestTokenizeRedirects(t *testing.T) {
	tests := []struct {
		cmd  string
		want []string // redirect operator texts in order
	}{
		{"cmd > out.txt", []string{">"}},
		{"cmd >> out.txt", []string{">>"}},
		{"cmd < in.txt", []string{"<"}},
		{"cmd << EOF", []string{"<<"}},
		{"cmd <<< word", []string{"<<<"}},
		{"cmd 2>&1", []string{">&"}},
	}
	for _, tc := range tests {
		t.Run(tc.cmd, func(t *testing.T) {
			tokens := Tokenize(tc.cmd)
			var got []string
			for _, tok := range tokens {
				if tok.Kind == Redirect {
					got = append(got, tok.Text)
				}
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got redirects %#v, want %#v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("redirect %d: got %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestTokenizeNeverFails(t *testing.T) {
	// Unterminated quotes and trailing backslashes must not panic.
	inputs := []string{`echo "unterminated`, `echo 'unterminated`, `echo \`, ``}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Tokenize(%q) panicked: %v", in, r)
				}
			}()
			Tokenize(in)
		}()
	}
}
