package rules

import (
	"testing"

	"github.com/fnzv/security-hook/internal/policy"
)

func mustCompile(t *testing.T, cfg policy.Config) *policy.Compiled {
	t.Helper()
	compiled, err := policy.Compile(cfg)
	if err != nil {
		t.Fatalf("policy.Compile() error = %v", err)
	}
	return compiled
}

func TestAnalyzeGitBlocked(t *testing.T) {
	cfg := mustCompile(t, policy.Config{Git: policy.GitConfig{BlockDestructive: true, BlockAddSensitive: true}, SensitiveFiles: []string{`\.env\b`}})

	blocked := []struct {
		name  string
		words []string
	}{
		{"checkout_dashdash", []string{"git", "checkout", "--", "file.go"}},
		{"checkout_force", []string{"git", "checkout", "-f"}},
		{"reset_hard", []string{"git", "reset", "--hard", "HEAD~1"}},
		{"push_force_main", []string{"git", "push", "-f", "origin", "main"}},
		{"branch_force_delete", []string{"git", "branch", "-D", "feature-x"}},
		{"stash_drop", []string{"git", "stash", "drop"}},
		{"stash_clear", []string{"git", "stash", "clear"}},
		{"clean_force", []string{"git", "clean", "-f"}},
		{"clean_force_d", []string{"git", "clean", "-fd"}},
		{"add_env", []string{"git", "add", ".env"}},
	}
	for _, tc := range blocked {
		t.Run(tc.name, func(t *testing.T) {
			v := AnalyzeGit(tc.words, cfg)
			if !v.IsBlocked() {
				t.Errorf("AnalyzeGit(%v) = %#v, want blocked", tc.words, v)
			}
		})
	}
}

func TestAnalyzeGitAllowed(t *testing.T) {
	cfg := mustCompile(t, policy.Config{Git: policy.GitConfig{BlockDestructive: true, BlockAddSensitive: true}, SensitiveFiles: []string{`\.env\b`}})

	allowed := []struct {
		name  string
		words []string
	}{
		{"status", []string{"git", "status"}},
		{"checkout_branch", []string{"git", "checkout", "feature-x"}},
		{"reset_soft", []string{"git", "reset", "--soft", "HEAD~1"}},
		{"push_normal", []string{"git", "push", "origin", "feature-x"}},
		{"push_force_feature_branch", []string{"git", "push", "-f", "origin", "feature-x"}},
		{"branch_list", []string{"git", "branch"}},
		{"stash_list", []string{"git", "stash", "list"}},
		{"clean_dry_run", []string{"git", "clean", "-n"}},
		{"add_normal", []string{"git", "add", "src/main.go"}},
	}
	for _, tc := range allowed {
		t.Run(tc.name, func(t *testing.T) {
			v := AnalyzeGit(tc.words, cfg)
			if v.IsBlocked() {
				t.Errorf("AnalyzeGit(%v) = %#v, want allowed", tc.words, v)
			}
		})
	}
}

func TestAnalyzeGitPushForceAllowListWins(t *testing.T) {
	cfg := mustCompile(t, policy.Config{Git: policy.GitConfig{
		BlockDestructive:         true,
		ForcePushAllowedBranches: []string{"main"},
	}})
	v := AnalyzeGit([]string{"git", "push", "-f", "origin", "main"}, cfg)
	if v.IsBlocked() {
		t.Errorf("expected allow-listed branch to bypass force-push block, got %#v", v)
	}
}

func TestAnalyzeGitBlockDestructiveDisabled(t *testing.T) {
	cfg := mustCompile(t, policy.Config{Git: policy.GitConfig{BlockDestructive: false}})
	v := AnalyzeGit([]string{"git", "reset", "--hard"}, cfg)
	if v.IsBlocked() {
		t.Errorf("expected reset --hard to be allowed when block_destructive=false, got %#v", v)
	}
}

func TestAnalyzeGitAddSensitiveGatedSeparately(t *testing.T) {
	cfg := mustCompile(t, policy.Config{
		Git:            policy.GitConfig{BlockDestructive: false, BlockAddSensitive: true},
		SensitiveFiles: []string{`\.env\b`},
	})
	v := AnalyzeGit([]string{"git", "add", ".env"}, cfg)
	if !v.IsBlocked() {
		t.Errorf("expected git add .env to block even with block_destructive=false, got %#v", v)
	}
}
