// Package redact implements the secret-redaction pass used to sanitize log
// output before it is ever written to the audit log (SPEC_FULL.md §9, Audit
// hygiene). It is deliberately a separate pass from the decision logic so
// the logger can be trusted not to echo secrets regardless of which rule
// stage produced a given reason or summary string.
package redact

import "regexp"

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules is evaluated in order; each is applied to the whole string in turn,
// so later rules see the output of earlier ones. The patterns are
// deliberately narrow — over-matching would redact harmless text, defeating
// the point of an audit trail.
var rules = []rule{
	{regexp.MustCompile(`(?i)(api[_-]?key)\s*[:=]\s*['"]?[A-Za-z0-9_\-]{16,}['"]?`), "$1=[REDACTED]"},
	{regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-\.]{16,}`), "Bearer [REDACTED]"},
	{regexp.MustCompile(`AKIA[0-9A-Z]{16}`), "[REDACTED-AWS-KEY]"},
	{regexp.MustCompile(`(?i)aws_secret_access_key\s*[:=]\s*['"]?[A-Za-z0-9/+=]{40}['"]?`), "aws_secret_access_key=[REDACTED]"},
	{regexp.MustCompile(`gh[ps]_[A-Za-z0-9]{36}`), "[REDACTED-GITHUB-TOKEN]"},
	{regexp.MustCompile(`github_pat_[A-Za-z0-9_]{22,}`), "[REDACTED-GITHUB-TOKEN]"},
	{regexp.MustCompile(`(?i)password\s*[:=]\s*['"]?\S{8,}['"]?`), "password=[REDACTED]"},
	{regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY-----`), "[REDACTED-PRIVATE-KEY-HEADER]"},
	{regexp.MustCompile(`(?i)(secret|credential|token)\s*[:=]\s*['"]?[A-Za-z0-9_\-]{16,}['"]?`), "$1=[REDACTED]"},
}

// Redact applies the ordered pattern set to s and returns the sanitized
// result. It never fails.
func Redact(s string) string {
	for _, r := range rules {
		s = r.pattern.ReplaceAllString(s, r.replacement)
	}
	return s
}

// ContainsSecrets reports whether s matches any redaction rule, without
// modifying it. Useful for a quick pre-check before a more expensive
// serialization step.
func ContainsSecrets(s string) bool {
	for _, r := range rules {
		if r.pattern.MatchString(s) {
			return true
		}
	}
	return false
}
