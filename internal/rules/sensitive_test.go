package rules

import (
	"testing"

	"github.com/fnzv/security-hook/internal/policy"
)

func sensitiveCfg(t *testing.T) *policy.Compiled {
	return mustCompile(t, policy.Config{
		SensitiveFiles: []string{`\.env\b`, `\.pem$`, `id_rsa`},
		Git:            policy.GitConfig{BlockAddSensitive: true},
	})
}

func TestCheckSensitivePath(t *testing.T) {
	cfg := sensitiveCfg(t)

	blocked := []string{".env", ".env.local", "/etc/ssl/private/server.pem", "/home/user/.ssh/id_rsa"}
	for _, p := range blocked {
		t.Run(p, func(t *testing.T) {
			if v := CheckSensitivePath(p, cfg); !v.IsBlocked() {
				t.Errorf("CheckSensitivePath(%q) = %#v, want blocked", p, v)
			}
		})
	}

	allowed := []string{"src/main.go", "environment.ts"}
	for _, p := range allowed {
		t.Run(p, func(t *testing.T) {
			if v := CheckSensitivePath(p, cfg); v.IsBlocked() {
				t.Errorf("CheckSensitivePath(%q) = %#v, want allowed", p, v)
			}
		})
	}
}

func TestCheckSensitivePathEnvTip(t *testing.T) {
	cfg := sensitiveCfg(t)
	v := CheckSensitivePath(".env", cfg)
	if v.Details == "" {
		t.Errorf("expected .env block to carry the scaffold tip")
	}

	v2 := CheckSensitivePath("server.pem", cfg)
	if v2.Details != "" {
		t.Errorf("expected .pem block to carry no env tip, got %q", v2.Details)
	}
}

func TestCheckSensitivePathEnvScaffoldsAllowed(t *testing.T) {
	cfg := sensitiveCfg(t)
	for _, p := range []string{".env.example", ".env.sample", ".env.template", ".env.dist"} {
		t.Run(p, func(t *testing.T) {
			if v := CheckSensitivePath(p, cfg); v.IsBlocked() {
				t.Errorf("CheckSensitivePath(%q) = %#v, want allowed (scaffold file)", p, v)
			}
		})
	}
}

func TestCheckGitAddSensitive(t *testing.T) {
	cfg := sensitiveCfg(t)
	if v := CheckGitAddSensitive([]string{".env", "src/main.go"}, cfg); !v.IsBlocked() {
		t.Errorf("expected git add .env to block")
	}
	if v := CheckGitAddSensitive([]string{"src/main.go", "go.mod"}, cfg); v.IsBlocked() {
		t.Errorf("expected git add on normal files to allow")
	}
	if v := CheckGitAddSensitive([]string{".env.example"}, cfg); v.IsBlocked() {
		t.Errorf("expected git add .env.example to allow")
	}
}

func TestCheckGitAddSensitiveDisabled(t *testing.T) {
	cfg := mustCompile(t, policy.Config{SensitiveFiles: []string{`\.env\b`}, Git: policy.GitConfig{BlockAddSensitive: false}})
	if v := CheckGitAddSensitive([]string{".env"}, cfg); v.IsBlocked() {
		t.Errorf("expected git add .env to allow when block_add_sensitive=false")
	}
}
