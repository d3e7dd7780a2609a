// Package policy loads, merges, and compiles the security-hook's
// configuration into the regex-and-table form the rule engine consults at
// decision time.
package policy

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	configEnvOverride = "SECURITY_HOOK_CONFIG"
	projectConfigName = ".security-hook.toml"
	userConfigRelPath = ".claude/security-hook.toml"
)

// Config is the raw, uncompiled configuration as loaded from TOML. Every
// field carries its own zero value as a safe default so that a missing file
// at either layer degrades to Config{}'s built-in-seeded equivalent.
type Config struct {
	SensitiveFiles []string         `toml:"sensitive_files"`
	ReadCommands   string           `toml:"read_commands"`
	Deny           []DenyRule       `toml:"deny"`
	Rules          []CustomRule     `toml:"rules"`
	Paranoid       ParanoidConfig   `toml:"paranoid"`
	Git            GitConfig        `toml:"git"`
	Rm             RmConfig         `toml:"rm"`
	Audit          AuditConfig      `toml:"audit"`
	Dependencies   DependencyConfig `toml:"dependencies"`
}

// DenyRule is an explicit, unconditional deny: any invocation of the named
// tool whose subject text matches Pattern is blocked with Reason.
type DenyRule struct {
	Tool    string `toml:"tool"`
	Pattern string `toml:"pattern"`
	Reason  string `toml:"reason"`
}

// CustomRule is a user-authored regex rule sitting between explicit deny and
// the built-in per-command analyzers.
type CustomRule struct {
	Name    string `toml:"name"`
	Tool    string `toml:"tool"`
	Pattern string `toml:"pattern"`
	Action  string `toml:"action"`
	Reason  string `toml:"reason"`
}

// ParanoidConfig controls the strict mode in which mere textual mention of a
// sensitive pattern — not only direct access — blocks the operation.
type ParanoidConfig struct {
	Enabled       bool     `toml:"enabled"`
	ExtraPatterns []string `toml:"extra_patterns"`
}

// GitConfig tunes the git analyzer.
type GitConfig struct {
	BlockDestructive         bool     `toml:"block_destructive"`
	BlockAddSensitive        bool     `toml:"block_add_sensitive"`
	ForcePushAllowedBranches []string `toml:"force_push_allowed_branches"`
}

// RmConfig tunes the rm analyzer.
type RmConfig struct {
	BlockOutsideCwd bool     `toml:"block_outside_cwd"`
	AllowedPaths    []string `toml:"allowed_paths"`
}

// AuditConfig controls the append-only audit log.
type AuditConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// DependencyConfig drives the Write/Edit Ask path for dependency manifest
// files (package.json, Cargo.toml, go.mod, ...).
type DependencyConfig struct {
	Enabled    bool     `toml:"enabled"`
	Patterns   []string `toml:"patterns"`
	Suggestion string   `toml:"suggestion"`

	// set tracks whether `enabled` was present in a layer at all, so the
	// merge function can distinguish "false because unset" from the
	// explicit opt-out trapdoor described in SPEC_FULL.md §4.4.
	enabledSet bool
}

// Load reads the user-level and project-level configuration files, merges
// them over the built-in defaults, and returns the raw (uncompiled) result.
// A missing file at either layer is not an error; only a malformed TOML
// document or an invalid regex (surfaced later, at Compile) is.
func Load(cwd string) (Config, error) {
	cfg := Defaults()

	if userCfg, ok, err := loadUserConfig(); err != nil {
		return Config{}, fmt.Errorf("loading user config: %w", err)
	} else if ok {
		cfg.merge(userCfg)
	}

	if cwd != "" {
		if projectCfg, ok, err := loadProjectConfig(cwd); err != nil {
			return Config{}, fmt.Errorf("loading project config: %w", err)
		} else if ok {
			cfg.merge(projectCfg)
		}
	}

	return cfg, nil
}

func userConfigPath() string {
	if p := os.Getenv(configEnvOverride); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userConfigRelPath)
}

func loadUserConfig() (Config, bool, error) {
	path := userConfigPath()
	if path == "" {
		return Config{}, false, nil
	}
	return loadFile(path)
}

func loadProjectConfig(cwd string) (Config, bool, error) {
	return loadFile(filepath.Join(cwd, projectConfigName))
}

func loadFile(path string) (Config, bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Config{}, false, nil
		}
		return Config{}, false, err
	}
	var cfg Config
	meta, err := tomlDecodeFile(path, &cfg)
	if err != nil {
		return Config{}, false, err
	}
	cfg.Dependencies.enabledSet = meta.isDependencyEnabledSet
	return cfg, true, nil
}

// merge folds other on top of c, following the asymmetric rules of
// SPEC_FULL.md §4.4: arrays extend, scalars override when set in other, and
// a handful of one-way booleans can only be turned on by a later layer
// except dependency-enabled=false, which is honored as an explicit opt-out.
func (c *Config) merge(other Config) {
	c.SensitiveFiles = append(c.SensitiveFiles, other.SensitiveFiles...)
	c.Deny = append(c.Deny, other.Deny...)
	c.Rules = append(c.Rules, other.Rules...)
	c.Paranoid.ExtraPatterns = append(c.Paranoid.ExtraPatterns, other.Paranoid.ExtraPatterns...)
	c.Rm.AllowedPaths = append(c.Rm.AllowedPaths, other.Rm.AllowedPaths...)
	c.Git.ForcePushAllowedBranches = append(c.Git.ForcePushAllowedBranches, other.Git.ForcePushAllowedBranches...)
	c.Dependencies.Patterns = append(c.Dependencies.Patterns, other.Dependencies.Patterns...)

	if other.ReadCommands != "" {
		c.ReadCommands = other.ReadCommands
	}
	if other.Paranoid.Enabled {
		c.Paranoid.Enabled = true
	}
	if other.Audit.Enabled {
		c.Audit.Enabled = true
		if other.Audit.Path != "" {
			c.Audit.Path = other.Audit.Path
		}
	}
	if other.Git.BlockDestructive {
		c.Git.BlockDestructive = true
	}
	if other.Git.BlockAddSensitive {
		c.Git.BlockAddSensitive = true
	}
	if other.Rm.BlockOutsideCwd {
		c.Rm.BlockOutsideCwd = true
	}
	if other.Dependencies.enabledSet {
		// Explicit opt-out (false) and explicit opt-in (true) both win when
		// the field was actually present in this layer's TOML document.
		c.Dependencies.Enabled = other.Dependencies.Enabled
	}
	if other.Dependencies.Suggestion != "" {
		c.Dependencies.Suggestion = other.Dependencies.Suggestion
	}
}
