package policy

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// namedPattern pairs a compiled regex with the original source string, so
// that rule reasons can cite exactly what the user configured.
type namedPattern struct {
	source   string
	compiled *regexp.Regexp
}

// CompiledDenyRule is a DenyRule plus its compiled pattern.
type CompiledDenyRule struct {
	Rule     DenyRule
	Compiled *regexp.Regexp
}

// CompiledCustomRule is a CustomRule plus its compiled pattern. Compiled is
// nil when the configured pattern failed to compile; the evaluator skips
// such rules rather than erroring the whole request (SPEC_FULL.md §4.7/§7).
type CompiledCustomRule struct {
	Rule     CustomRule
	Compiled *regexp.Regexp
}

// Compiled is the immutable, precompiled policy a single request's
// decision is made against.
type Compiled struct {
	Raw Config

	sensitivePatterns []namedPattern
	readCommandsRe    *regexp.Regexp
	denyPatterns      []CompiledDenyRule
	customRules       []CompiledCustomRule
	paranoidPatterns  []namedPattern
	dependencyRe      []*regexp.Regexp
	rmAllowedGlobs    []string
	rmAllowedLiterals []string
}

// CompileError names the offending pattern so operators can fix their
// config quickly.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("invalid regex pattern %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Compile translates every configured pattern into a prebuilt matcher. Any
// compile error aborts policy load with a structured error citing the
// offending pattern, per SPEC_FULL.md §4.4 — custom-rule patterns are the
// one exception, compiled best-effort so a single bad user rule doesn't
// break the whole policy (they are simply skipped at evaluation time).
func Compile(cfg Config) (*Compiled, error) {
	sensitive, err := compileNamed(cfg.SensitiveFiles)
	if err != nil {
		return nil, err
	}

	var readRe *regexp.Regexp
	if cfg.ReadCommands != "" {
		readRe, err = regexp.Compile(cfg.ReadCommands)
		if err != nil {
			return nil, &CompileError{Pattern: cfg.ReadCommands, Err: err}
		}
	}

	deny := make([]CompiledDenyRule, 0, len(cfg.Deny))
	for _, rule := range cfg.Deny {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, &CompileError{Pattern: rule.Pattern, Err: err}
		}
		deny = append(deny, CompiledDenyRule{Rule: rule, Compiled: re})
	}

	custom := make([]CompiledCustomRule, 0, len(cfg.Rules))
	for _, rule := range cfg.Rules {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			// Per-rule recoverable: skip rather than abort policy load.
			custom = append(custom, CompiledCustomRule{Rule: rule, Compiled: nil})
			continue
		}
		custom = append(custom, CompiledCustomRule{Rule: rule, Compiled: re})
	}

	paranoid := make([]namedPattern, len(sensitive))
	copy(paranoid, sensitive)
	extra, err := compileNamed(cfg.Paranoid.ExtraPatterns)
	if err != nil {
		return nil, err
	}
	paranoid = append(paranoid, extra...)

	depRe := make([]*regexp.Regexp, 0, len(cfg.Dependencies.Patterns))
	for _, p := range cfg.Dependencies.Patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, &CompileError{Pattern: p, Err: err}
		}
		depRe = append(depRe, re)
	}

	var rmGlobs, rmLiterals []string
	for _, p := range cfg.Rm.AllowedPaths {
		if strings.ContainsAny(p, "*?[") {
			rmGlobs = append(rmGlobs, p)
		} else {
			rmLiterals = append(rmLiterals, p)
		}
	}

	return &Compiled{
		Raw:               cfg,
		sensitivePatterns: sensitive,
		readCommandsRe:    readRe,
		denyPatterns:      deny,
		customRules:       custom,
		paranoidPatterns:  paranoid,
		dependencyRe:      depRe,
		rmAllowedGlobs:    rmGlobs,
		rmAllowedLiterals: rmLiterals,
	}, nil
}

func compileNamed(patterns []string) ([]namedPattern, error) {
	out := make([]namedPattern, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, &CompileError{Pattern: p, Err: err}
		}
		out = append(out, namedPattern{source: p, compiled: re})
	}
	return out, nil
}

// IsSensitivePath returns the first matching source pattern string (not the
// compiled form), or "" if nothing matched.
func (c *Compiled) IsSensitivePath(path string) (string, bool) {
	for _, p := range c.sensitivePatterns {
		if p.compiled.MatchString(path) {
			return p.source, true
		}
	}
	return "", false
}

// IsReadCommand reports whether command matches the configured read-like
// regex.
func (c *Compiled) IsReadCommand(command string) bool {
	return c.readCommandsRe != nil && c.readCommandsRe.MatchString(command)
}

// MatchesParanoid returns the first matching source pattern in the
// paranoid-mode superset (sensitive patterns plus paranoid extras), or ""
// if paranoid mode is disabled or nothing matched.
func (c *Compiled) MatchesParanoid(text string) (string, bool) {
	if !c.Raw.Paranoid.Enabled {
		return "", false
	}
	for _, p := range c.paranoidPatterns {
		if p.compiled.MatchString(text) {
			return p.source, true
		}
	}
	return "", false
}

// IsDependencyFile reports whether path matches a configured dependency-file
// pattern. Disabled entirely when Dependencies.Enabled is false.
func (c *Compiled) IsDependencyFile(path string) bool {
	if !c.Raw.Dependencies.Enabled {
		return false
	}
	for _, re := range c.dependencyRe {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// DependencySuggestion returns the configured suggestion text for the Ask
// response, if any.
func (c *Compiled) DependencySuggestion() string {
	return c.Raw.Dependencies.Suggestion
}

// RmPathAllowed reports whether an absolute path is covered by the rm
// sub-policy's allow-list, either as a literal prefix or as a doublestar
// glob.
func (c *Compiled) RmPathAllowed(path string) bool {
	for _, lit := range c.rmAllowedLiterals {
		if strings.HasPrefix(path, lit) {
			return true
		}
	}
	for _, glob := range c.rmAllowedGlobs {
		if ok, _ := doublestar.Match(glob, path); ok {
			return true
		}
	}
	return false
}

// DenyRulesForTool returns the compiled deny rules scoped to tool.
func (c *Compiled) DenyRulesForTool(tool string) []CompiledDenyRule {
	out := make([]CompiledDenyRule, 0, len(c.denyPatterns))
	for _, d := range c.denyPatterns {
		if d.Rule.Tool == tool {
			out = append(out, d)
		}
	}
	return out
}

// CustomRules returns every configured custom rule, compiled or not (the
// evaluator is responsible for skipping uncompiled ones).
func (c *Compiled) CustomRules() []CompiledCustomRule {
	return c.customRules
}
