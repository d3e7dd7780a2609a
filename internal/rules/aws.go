package rules

import (
	"fmt"

	"github.com/fnzv/security-hook/internal/decision"
)

// AnalyzeAws implements the aws CLI per-command analyzer: words[0] == "aws".
func AnalyzeAws(words []string) decision.Verdict {
	if len(words) < 3 {
		return decision.NewAllow()
	}
	service, cmd, args := words[1], words[2], words[3:]

	switch service {
	case "secretsmanager":
		if cmd == "get-secret-value" {
			return block("aws.secretsmanager.get", "aws secretsmanager get-secret-value", service, cmd)
		}
	case "ssm":
		if cmd == "get-parameter" || cmd == "get-parameters" || cmd == "get-parameters-by-path" {
			for _, a := range args {
				if a == "--with-decryption" {
					return block("aws.ssm.decrypt", "aws ssm ... --with-decryption exposes a decrypted parameter value", service, cmd)
				}
			}
		}
	case "kms":
		if cmd == "decrypt" {
			return block("aws.kms.decrypt", "aws kms decrypt", service, cmd)
		}
	case "iam":
		if cmd == "list-access-keys" || cmd == "get-access-key-last-used" || cmd == "create-access-key" {
			return block("aws.iam.keys", "aws iam access-key operation", service, cmd)
		}
	case "sts":
		if cmd == "get-session-token" || cmd == "assume-role" {
			return block("aws.sts.credentials", "aws sts credential-vending operation", service, cmd)
		}
	case "configure":
		if cmd == "export-credentials" {
			return block("aws.configure.export", "aws configure export-credentials", service, cmd)
		}
	}

	return decision.NewAllow()
}

func block(rule, label, service, cmd string) decision.Verdict {
	return decision.NewBlock(rule, fmt.Sprintf("%s (%s %s) exposes credential material", label, service, cmd))
}
