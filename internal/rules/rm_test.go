package rules

import (
	"testing"

	"github.com/fnzv/security-hook/internal/policy"
	"github.com/fnzv/security-hook/internal/shellparse"
)

func rmCfg(t *testing.T) *policy.Compiled {
	return mustCompile(t, policy.Config{Rm: policy.RmConfig{BlockOutsideCwd: true, AllowedPaths: []string{"/tmp"}}})
}

func words(cmd string) []string {
	return shellparse.Words(shellparse.Tokenize(cmd))
}

func TestAnalyzeRmBlocked(t *testing.T) {
	cfg := rmCfg(t)
	blocked := []struct {
		name string
		cmd  string
		cwd  string
	}{
		{"rf_root", "rm -rf /", "/home/user/project"},
		{"rf_home", "rm -rf /home", "/home/user/project"},
		{"rf_outside_cwd", "rm -rf /var/log", "/home/user/project"},
		{"rf_parent_escape", "rm -rf ../../..", "/home/user/project"},
	}
	for _, tc := range blocked {
		t.Run(tc.name, func(t *testing.T) {
			v := AnalyzeRm(words(tc.cmd), cfg, tc.cwd)
			if !v.IsBlocked() {
				t.Errorf("AnalyzeRm(%q) = %#v, want blocked", tc.cmd, v)
			}
		})
	}
}

func TestAnalyzeRmAllowed(t *testing.T) {
	cfg := rmCfg(t)
	allowed := []struct {
		name string
		cmd  string
		cwd  string
	}{
		{"in_cwd", "rm -rf build/", "/home/user/project"},
		{"tmp_allowed", "rm -rf /tmp/cache", "/home/user/project"},
		{"not_recursive", "rm /etc/passwd", "/home/user/project"},
		{"single_file_in_cwd", "rm notes.txt", "/home/user/project"},
	}
	for _, tc := range allowed {
		t.Run(tc.name, func(t *testing.T) {
			v := AnalyzeRm(words(tc.cmd), cfg, tc.cwd)
			if v.IsBlocked() {
				t.Errorf("AnalyzeRm(%q) = %#v, want allowed", tc.cmd, v)
			}
		})
	}
}
