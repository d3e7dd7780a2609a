package rules

import "github.com/fnzv/security-hook/internal/decision"

var herokuSecretSubcommands = map[string]string{
	"auth:token":          "heroku.auth.token",
	"config":              "heroku.config",
	"config:get":          "heroku.config.get",
	"pg:credentials":      "heroku.pg.credentials",
	"pg:credentials:url":  "heroku.pg.credentials",
	"redis:credentials":   "heroku.redis.credentials",
}

// AnalyzeHeroku implements the heroku per-command analyzer: words[0] ==
// "heroku".
func AnalyzeHeroku(words []string) decision.Verdict {
	if len(words) < 2 {
		return decision.NewAllow()
	}
	if rule, ok := herokuSecretSubcommands[words[1]]; ok {
		return decision.NewBlock(rule, "heroku "+words[1]+" exposes credential material")
	}
	return decision.NewAllow()
}
