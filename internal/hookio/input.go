// Package hookio parses the hook's JSON request channel into an Invocation
// and dispatches it through the tool-level rule pipeline.
package hookio

import "encoding/json"

// ToolKind tags which shape Invocation.Params carries.
type ToolKind int

const (
	Exec ToolKind = iota
	Read
	Write
	Edit
	Other
)

func (k ToolKind) String() string {
	switch k {
	case Exec:
		return "Bash"
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Edit:
		return "Edit"
	default:
		return "Other"
	}
}

// Params is the opaque parameter record, keyed by ToolKind. Unused fields
// for a given kind are left at their zero value.
type Params struct {
	// Exec
	Command     string
	Timeout     *int
	Description string

	// Read
	FilePath string
	Offset   *int
	Limit    *int

	// Write
	Content string

	// Edit
	OldString string
	NewString string
}

// Invocation is a structured tool request: immutable once constructed.
type Invocation struct {
	Tool      ToolKind
	ToolName  string
	Params    Params
	Cwd       string
	SessionID string
}

type rawInvocation struct {
	ToolName  string          `json:"tool_name"`
	ToolInput json.RawMessage `json:"tool_input"`
	Cwd       string          `json:"cwd"`
	SessionID string          `json:"session_id"`
}

type rawExecInput struct {
	Command     string `json:"command"`
	Timeout     *int   `json:"timeout"`
	Description string `json:"description"`
}

type rawReadInput struct {
	FilePath string `json:"file_path"`
	Offset   *int   `json:"offset"`
	Limit    *int   `json:"limit"`
}

type rawWriteInput struct {
	FilePath string `json:"file_path"`
	Content  string `json:"content"`
}

type rawEditInput struct {
	FilePath  string `json:"file_path"`
	OldString string `json:"old_string"`
	NewString string `json:"new_string"`
}

// Parse decodes a single JSON request object. Malformed JSON is the one
// error this function returns; callers must treat it as fail-open (Allow),
// per SPEC_FULL.md §6/§7.
func Parse(data []byte) (Invocation, error) {
	var raw rawInvocation
	if err := json.Unmarshal(data, &raw); err != nil {
		return Invocation{}, err
	}

	inv := Invocation{
		ToolName:  raw.ToolName,
		Cwd:       raw.Cwd,
		SessionID: raw.SessionID,
	}

	switch raw.ToolName {
	case "Bash":
		inv.Tool = Exec
		var p rawExecInput
		_ = json.Unmarshal(raw.ToolInput, &p)
		inv.Params = Params{Command: p.Command, Timeout: p.Timeout, Description: p.Description}
	case "Read":
		inv.Tool = Read
		var p rawReadInput
		_ = json.Unmarshal(raw.ToolInput, &p)
		inv.Params = Params{FilePath: p.FilePath, Offset: p.Offset, Limit: p.Limit}
	case "Write":
		inv.Tool = Write
		var p rawWriteInput
		_ = json.Unmarshal(raw.ToolInput, &p)
		inv.Params = Params{FilePath: p.FilePath, Content: p.Content}
	case "Edit":
		inv.Tool = Edit
		var p rawEditInput
		_ = json.Unmarshal(raw.ToolInput, &p)
		inv.Params = Params{FilePath: p.FilePath, OldString: p.OldString, NewString: p.NewString}
	default:
		inv.Tool = Other
	}

	return inv, nil
}

// Command returns the exec command text, if this invocation has one.
func (inv Invocation) Command() (string, bool) {
	if inv.Tool == Exec {
		return inv.Params.Command, true
	}
	return "", false
}

// FilePathOf returns the subject file path for Read/Write/Edit invocations,
// if any.
func (inv Invocation) FilePathOf() (string, bool) {
	switch inv.Tool {
	case Read, Write, Edit:
		return inv.Params.FilePath, true
	default:
		return "", false
	}
}
