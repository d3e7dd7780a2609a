// Package decision defines the Verdict sum type the rule engine produces
// and the two out-of-band response encodings it is rendered to.
package decision

// Kind distinguishes the three shapes a Verdict can take.
type Kind int

const (
	Allow Kind = iota
	Block
	Ask
)

// Verdict is the result of evaluating a single invocation against a
// Compiled policy. An Allow verdict never carries a rule identifier;
// allowance is the absence of block/ask, not a positive state.
type Verdict struct {
	Kind Kind

	// Rule is the machine-readable identifier of the triggering rule
	// (e.g. "git.push.force"). Empty for Allow.
	Rule string
	// Reason is the human-readable explanation. Empty for Allow.
	Reason string
	// Details is optional extra context attached to a Block (e.g. the
	// .env scaffold hint).
	Details string
	// Suggestion is optional extra context attached to an Ask (e.g. "use
	// npm install instead").
	Suggestion string
}

// NewAllow constructs the Allow verdict.
func NewAllow() Verdict { return Verdict{Kind: Allow} }

// NewBlock constructs a Block verdict.
func NewBlock(rule, reason string) Verdict {
	return Verdict{Kind: Block, Rule: rule, Reason: reason}
}

// WithDetails attaches contextual details to a Block verdict and returns it.
func (v Verdict) WithDetails(details string) Verdict {
	v.Details = details
	return v
}

// NewAsk constructs an Ask verdict.
func NewAsk(rule, reason string) Verdict {
	return Verdict{Kind: Ask, Rule: rule, Reason: reason}
}

// WithSuggestion attaches a suggestion to an Ask verdict and returns it.
func (v Verdict) WithSuggestion(suggestion string) Verdict {
	v.Suggestion = suggestion
	return v
}

// IsBlocked reports whether v is a Block verdict.
func (v Verdict) IsBlocked() bool { return v.Kind == Block }

// IsAsk reports whether v is an Ask verdict.
func (v Verdict) IsAsk() bool { return v.Kind == Ask }

// IsAllow reports whether v is an Allow verdict.
func (v Verdict) IsAllow() bool { return v.Kind == Allow }

// FirstNonAllow returns the first verdict in verdicts that is not Allow, or
// the Allow verdict if every stage passed through. This implements the
// "first blocking or asking verdict wins" invariant (SPEC_FULL.md §3) for
// callers that want to express a stage pipeline as a plain slice.
func FirstNonAllow(verdicts ...Verdict) Verdict {
	for _, v := range verdicts {
		if !v.IsAllow() {
			return v
		}
	}
	return NewAllow()
}
