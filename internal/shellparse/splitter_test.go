package shellparse

import "testing"

func TestSplitCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		want []Segment
	}{
		{
			"single", "ls -la",
			[]Segment{{"ls -la", None}},
		},
		{
			"and", "echo hi && cat .env",
			[]Segment{{"echo hi", And}, {"cat .env", None}},
		},
		{
			"or", "false || true",
			[]Segment{{"false", Or}, {"true", None}},
		},
		{
			"pipe", "cat file | grep foo",
			[]Segment{{"cat file", Pipe}, {"grep foo", None}},
		},
		{
			"semicolon", "cd /tmp; ls",
			[]Segment{{"cd /tmp", Semicolon}, {"ls", None}},
		},
		{
			"background", "sleep 5 & echo done",
			[]Segment{{"sleep 5", Background}, {"echo done", None}},
		},
		{
			"quoted_operator_single", "echo 'a && b'",
			[]Segment{{"echo 'a && b'", None}},
		},
		{
			"quoted_operator_double", `echo "a || b"`,
			[]Segment{{`echo "a || b"`, None}},
		},
		{
			"escaped_semicolon", `echo a\;b`,
			[]Segment{{`echo a\;b`, None}},
		},
		{
			"multiple_chained", "a && b || c; d | e",
			[]Segment{{"a", And}, {"b", Or}, {"c", Semicolon}, {"d", Pipe}, {"e", None}},
		},
		{
			"trailing_background_drops_empty_segment", "echo hi &",
			[]Segment{{"echo hi", Background}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitCommands(tc.cmd)
			if len(got) != len(tc.want) {
				t.Fatalf("SplitCommands(%q) = %#v, want %#v", tc.cmd, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("segment %d: got %#v, want %#v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestSplitCommandsIdempotent(t *testing.T) {
	// Re-concatenating segments with their operators and re-splitting must
	// yield the same segmentation (property 4, quoting safety).
	cmds := []string{
		"a && b || c",
		"echo 'x && y' ; echo z",
		"cat f | grep g | wc -l",
	}
	for _, cmd := range cmds {
		first := SplitCommands(cmd)
		var rebuilt string
		for _, seg := range first {
			rebuilt += seg.Command
			switch seg.Operator {
			case And:
				rebuilt += " && "
			case Or:
				rebuilt += " || "
			case Pipe:
				rebuilt += " | "
			case Semicolon:
				rebuilt += " ; "
			case Background:
				rebuilt += " & "
			}
		}
		second := SplitCommands(rebuilt)
		if len(first) != len(second) {
			t.Fatalf("cmd %q: first=%#v second=%#v", cmd, first, second)
		}
		for i := range first {
			if first[i].Command != second[i].Command || first[i].Operator != second[i].Operator {
				t.Errorf("cmd %q segment %d mismatch: %#v vs %#v", cmd, i, first[i], second[i])
			}
		}
	}
}
