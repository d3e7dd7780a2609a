package rules

import (
	"strings"

	"github.com/fnzv/security-hook/internal/decision"
)

// AnalyzeUv implements the uv per-command analyzer: words[0] == "uv". uv
// run --with and uv pip install both let a command run with ad hoc
// packages installed without ever touching pyproject.toml, so the
// assistant could stealth-install a dependency that never lands in the
// manifest a teammate would see.
func AnalyzeUv(words []string) decision.Verdict {
	if len(words) < 2 {
		return decision.NewAllow()
	}

	switch words[1] {
	case "run":
		for _, a := range words[2:] {
			if a == "--with" || strings.HasPrefix(a, "--with=") || strings.HasPrefix(a, "--with-requirements") {
				return decision.NewBlock("uv.run.with",
					"uv run --with installs packages without modifying pyproject.toml. Use 'uv add <package>' to add dependencies instead")
			}
		}
	case "pip":
		if len(words) >= 3 && words[2] == "install" {
			return decision.NewBlock("uv.pip.install",
				"uv pip install installs packages without modifying pyproject.toml. Use 'uv add <package>' to add dependencies instead")
		}
	}

	return decision.NewAllow()
}
