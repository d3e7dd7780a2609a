package hookio

import "testing"

func TestParseBash(t *testing.T) {
	inv, err := Parse([]byte(`{"tool_name":"Bash","tool_input":{"command":"ls -la"},"cwd":"/home/u"}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if inv.Tool != Exec || inv.Params.Command != "ls -la" || inv.Cwd != "/home/u" {
		t.Errorf("Parse() = %#v", inv)
	}
}

func TestParseRead(t *testing.T) {
	inv, err := Parse([]byte(`{"tool_name":"Read","tool_input":{"file_path":"/etc/passwd"}}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if inv.Tool != Read || inv.Params.FilePath != "/etc/passwd" {
		t.Errorf("Parse() = %#v", inv)
	}
}

func TestParseWrite(t *testing.T) {
	inv, err := Parse([]byte(`{"tool_name":"Write","tool_input":{"file_path":"Cargo.toml","content":"[package]"}}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if inv.Tool != Write || inv.Params.Content != "[package]" {
		t.Errorf("Parse() = %#v", inv)
	}
}

func TestParseEdit(t *testing.T) {
	inv, err := Parse([]byte(`{"tool_name":"Edit","tool_input":{"file_path":"go.mod","old_string":"a","new_string":"b"}}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if inv.Tool != Edit || inv.Params.OldString != "a" || inv.Params.NewString != "b" {
		t.Errorf("Parse() = %#v", inv)
	}
}

func TestParseUnknownToolIsOther(t *testing.T) {
	inv, err := Parse([]byte(`{"tool_name":"Glob","tool_input":{"pattern":"*.go"}}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if inv.Tool != Other {
		t.Errorf("expected Other, got %v", inv.Tool)
	}
}

func TestParseMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	if err == nil {
		t.Errorf("expected error on malformed JSON")
	}
}

func TestParseSessionID(t *testing.T) {
	inv, err := Parse([]byte(`{"tool_name":"Bash","tool_input":{"command":"ls"},"session_id":"abc-123"}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if inv.SessionID != "abc-123" {
		t.Errorf("Parse() SessionID = %q, want abc-123", inv.SessionID)
	}
}
