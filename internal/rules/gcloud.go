package rules

import (
	"strings"

	"github.com/fnzv/security-hook/internal/decision"
)

// AnalyzeGcloud implements the gcloud per-command analyzer: words[0] ==
// "gcloud".
func AnalyzeGcloud(words []string) decision.Verdict {
	if len(words) < 2 {
		return decision.NewAllow()
	}
	group := words[1]

	switch group {
	case "auth":
		if len(words) >= 3 {
			switch words[2] {
			case "print-access-token", "print-identity-token":
				return decision.NewBlock("gcloud.auth.token", "gcloud auth prints a live access/identity token")
			case "application-default":
				if len(words) >= 4 && words[3] == "print-access-token" {
					return decision.NewBlock("gcloud.auth.token", "gcloud auth application-default print-access-token prints a live access token")
				}
			}
		}
	case "secrets":
		if len(words) >= 4 && words[2] == "versions" && words[3] == "access" {
			return decision.NewBlock("gcloud.secrets.access", "gcloud secrets versions access exposes a secret payload")
		}
	case "sql":
		if len(words) >= 4 && words[2] == "users" && words[3] == "set-password" {
			for _, a := range words[4:] {
				if strings.HasPrefix(a, "--password") {
					return decision.NewBlock("gcloud.sql.password", "gcloud sql users set-password with an inline --password exposes the new password in shell history")
				}
			}
		}
	}

	return decision.NewAllow()
}
