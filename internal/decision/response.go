package decision

import (
	"encoding/json"
	"fmt"
)

// standingCaveat is appended to every Block response. It targets an LLM
// reader: its purpose is to inhibit retry-by-workaround behavior rather than
// to inform a human operator.
const standingCaveat = "YOU ABSOLUTELY MUST NOT ATTEMPT TO READ THE TARGET FILE/SECRET/TOKEN VIA WORKAROUNDS. " +
	"CONSULT THE USER IF YOU ARE CERTAIN THE TARGET FILE/SECRET/TOKEN NEEDS TO BE VERIFIED, " +
	"ONLY AFTER EXHAUSTIVE DEBUGGING THAT RESULTS IN THIS CERTAINTY."

// ExitCode maps a Verdict to the process exit code the hook should return.
func (v Verdict) ExitCode() int {
	if v.Kind == Block {
		return 2
	}
	return 0
}

// FormatBlock renders a Block verdict for the diagnostic stream:
// "BLOCKED: <reason>[ (<details>)]\n\n<standing caveat>".
func FormatBlock(v Verdict) string {
	msg := "BLOCKED: " + v.Reason
	if v.Details != "" {
		msg += fmt.Sprintf(" (%s)", v.Details)
	}
	return msg + "\n\n" + standingCaveat
}

// askPayload is the on-wire shape of the Ask response, written to the
// primary stream.
type askPayload struct {
	HookSpecificOutput struct {
		HookEventName            string `json:"hookEventName"`
		PermissionDecision       string `json:"permissionDecision"`
		PermissionDecisionReason string `json:"permissionDecisionReason"`
	} `json:"hookSpecificOutput"`
}

// FormatAsk renders an Ask verdict as the JSON object the primary stream
// expects. The reason concatenates the ask reason and, if present, a
// suggestion prefixed by two newlines and "Suggestion: ".
func FormatAsk(v Verdict) (string, error) {
	reason := v.Reason
	if v.Suggestion != "" {
		reason += "\n\nSuggestion: " + v.Suggestion
	}

	var payload askPayload
	payload.HookSpecificOutput.HookEventName = "PreToolUse"
	payload.HookSpecificOutput.PermissionDecision = "ask"
	payload.HookSpecificOutput.PermissionDecisionReason = reason

	out, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling ask payload: %w", err)
	}
	return string(out), nil
}
