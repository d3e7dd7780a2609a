package policy

// Defaults returns the built-in seed configuration. Per SPEC_FULL.md §4.4,
// built-in defaults always seed the user layer before either TOML file is
// merged in.
func Defaults() Config {
	return Config{
		SensitiveFiles: []string{
			`\.env\b`,
			`\.pem$`,
			`id_rsa$`,
			`id_ed25519$`,
			`\.ssh/id_`,
			`\.aws/credentials`,
			`\.npmrc$`,
			`\.netrc$`,
			`credentials\.json$`,
			`service[-_]account.*\.json$`,
		},
		ReadCommands: `\b(cat|head|tail|less|more|grep|egrep|fgrep|awk|sed|strings|xxd|od|hexdump)\b`,
		Deny:         nil,
		Paranoid: ParanoidConfig{
			Enabled:       false,
			ExtraPatterns: nil,
		},
		Git: GitConfig{
			BlockDestructive:         true,
			BlockAddSensitive:        true,
			ForcePushAllowedBranches: nil,
		},
		Rm: RmConfig{
			BlockOutsideCwd: true,
			AllowedPaths:    []string{"/tmp", "/var/tmp"},
		},
		Audit: AuditConfig{
			Enabled: false,
			Path:    "",
		},
		Dependencies: DependencyConfig{
			Enabled: true,
			Patterns: []string{
				`^(.*/)?package\.json$`,
				`^(.*/)?Cargo\.toml$`,
				`^(.*/)?go\.mod$`,
				`^(.*/)?go\.sum$`,
				`^(.*/)?pyproject\.toml$`,
				`^(.*/)?requirements.*\.txt$`,
				`^(.*/)?Gemfile$`,
				`^(.*/)?Gemfile\.lock$`,
				`^(.*/)?poetry\.lock$`,
				`^(.*/)?yarn\.lock$`,
				`^(.*/)?package-lock\.json$`,
				`^(.*/)?Pipfile$`,
			},
			Suggestion: "Use your language's package manager (e.g. 'npm install', 'cargo add', 'go get', 'uv add') instead of editing this file directly.",
		},
	}
}
