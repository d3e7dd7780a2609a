package rules

import (
	"testing"

	"github.com/fnzv/security-hook/internal/policy"
)

func TestAnalyzeCommandWrapperTransparency(t *testing.T) {
	cfg := mustCompile(t, policy.Config{Git: policy.GitConfig{BlockDestructive: true}})

	bare := AnalyzeCommand("git push -f origin main", cfg, "/home/u/p")
	wrapped := AnalyzeCommand("sudo git push -f origin main", cfg, "/home/u/p")

	if bare.Kind != wrapped.Kind || bare.Rule != wrapped.Rule {
		t.Errorf("wrapper transparency violated: bare=%#v wrapped=%#v", bare, wrapped)
	}
}

func TestAnalyzeCommandMultiSegmentFirstBlockWins(t *testing.T) {
	cfg := mustCompile(t, policy.Config{Rm: policy.RmConfig{BlockOutsideCwd: true}})
	v := AnalyzeCommand("echo hi && rm -rf / && echo never", cfg, "/home/u/p")
	if !v.IsBlocked() || v.Rule != "rm.dangerous_path" {
		t.Errorf("AnalyzeCommand() = %#v, want rm.dangerous_path block", v)
	}
}

func TestAnalyzeCommandUnknownFirstWordAllows(t *testing.T) {
	cfg := mustCompile(t, policy.Config{})
	v := AnalyzeCommand("mycustombinary --flag", cfg, "/home/u/p")
	if !v.IsAllow() {
		t.Errorf("expected unrecognized command family to fail open to allow, got %#v", v)
	}
}
