package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fnzv/security-hook/internal/audit"
	"github.com/fnzv/security-hook/internal/decision"
	"github.com/fnzv/security-hook/internal/hookio"
	"github.com/fnzv/security-hook/internal/policy"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Read one tool-invocation request on stdin and render a verdict (the default path)",
		RunE:  runCheck,
	}
}

// runCheck is the hook's hot path: read the request, decide, respond. Every
// internal error degrades to Allow rather than propagating — this command
// must never exit nonzero except for an explicit Block (SPEC_FULL.md §7).
func runCheck(cmd *cobra.Command, args []string) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Printf("security-hook: read stdin: %v", err)
		return nil
	}

	inv, err := hookio.Parse(data)
	if err != nil {
		log.Printf("security-hook: malformed request, failing open: %v", err)
		return nil
	}

	cwd := resolveCwd(inv.Cwd)

	cfg, err := policy.Load(cwd)
	if err != nil {
		log.Printf("security-hook: load config, failing open: %v", err)
		return nil
	}

	compiled, err := policy.Compile(cfg)
	if err != nil {
		log.Printf("security-hook: compile config, failing open: %v", err)
		return nil
	}

	verdict := hookio.Evaluate(inv, compiled)

	writeAuditEntry(compiled, inv, verdict)
	render(verdict)

	os.Exit(verdict.ExitCode())
	return nil
}

func resolveCwd(fromRequest string) string {
	if cwdFlag != "" {
		return cwdFlag
	}
	if fromRequest != "" {
		return fromRequest
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

func writeAuditEntry(cfg *policy.Compiled, inv hookio.Invocation, v decision.Verdict) {
	if !cfg.Raw.Audit.Enabled {
		return
	}

	sessionID := inv.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	summarySource, _ := inv.Command()
	if summarySource == "" {
		summarySource, _ = inv.FilePathOf()
	}

	logger := audit.NewLogger(cfg.Raw.Audit.Enabled, cfg.Raw.Audit.Path)
	logger.Write(audit.NewEntry(time.Now(), sessionID, inv.Tool.String(), v, summarySource))
}

func render(v decision.Verdict) {
	switch v.Kind {
	case decision.Block:
		fmt.Fprintln(os.Stderr, decision.FormatBlock(v))
	case decision.Ask:
		out, err := decision.FormatAsk(v)
		if err != nil {
			log.Printf("security-hook: format ask payload: %v", err)
			return
		}
		fmt.Fprintln(os.Stdout, out)
	}
}
