package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"github.com/spf13/cobra"

	"github.com/fnzv/security-hook/internal/audit"
	"github.com/fnzv/security-hook/internal/hookio"
	"github.com/fnzv/security-hook/internal/policy"
)

func auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the append-only audit log",
	}
	cmd.AddCommand(auditTailCmd())
	cmd.AddCommand(auditReplayCmd())
	return cmd
}

func auditTailCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Pretty-print every recorded audit entry, most recent last",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuditTail(path)
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "audit log path (default: resolved from config)")
	return cmd
}

func runAuditTail(path string) error {
	if path == "" {
		cfg, err := policy.Load(resolveCwd(""))
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		path = cfg.Audit.Path
		if path == "" {
			home, err := os.UserHomeDir()
			if err == nil {
				path = home + "/.claude/security-hook-audit.jsonl"
			}
		}
	}

	entries, err := audit.Tail(path)
	if err != nil {
		return err
	}

	for _, e := range entries {
		verdict := "ALLOW"
		switch {
		case e.Blocked:
			verdict = "BLOCK"
		case e.Asked:
			verdict = "ASK"
		}
		fmt.Printf("%s  %-5s  %-4s  %-28s  %s\n", e.Timestamp, verdict, e.Tool, e.Rule, e.Summary)
	}
	return nil
}

func auditReplayCmd() *cobra.Command {
	var line int

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Re-execute one audit-log entry's command, only if it re-evaluates as Allow",
		Long: "replay is an opt-in developer tool for investigating why a past command was or " +
			"wasn't blocked. It never trusts the stored verdict: it re-parses the recorded summary " +
			"as a fresh Bash invocation, re-evaluates it against the current policy, and only if " +
			"that fresh evaluation is Allow does it spawn the command inside a pty for inspection.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuditReplay(line)
		},
	}
	cmd.Flags().IntVar(&line, "line", -1, "zero-based index of the audit entry to replay (default: last)")
	return cmd
}

func runAuditReplay(line int) error {
	cfg, err := policy.Load(resolveCwd(""))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	path := cfg.Audit.Path
	if path == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return fmt.Errorf("resolve audit log path: %w", herr)
		}
		path = home + "/.claude/security-hook-audit.jsonl"
	}

	entries, err := audit.Tail(path)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("audit log is empty")
	}
	if line < 0 {
		line = len(entries) - 1
	}
	if line >= len(entries) {
		return fmt.Errorf("audit log has %d entries, index %d out of range", len(entries), line)
	}
	entry := entries[line]

	compiled, err := policy.Compile(cfg)
	if err != nil {
		return fmt.Errorf("compile config: %w", err)
	}

	inv := hookio.Invocation{Tool: hookio.Exec, ToolName: "Bash"}
	inv.Params.Command = entry.Summary
	verdict := hookio.Evaluate(inv, compiled)
	if !verdict.IsAllow() {
		return fmt.Errorf("refusing to replay: current policy re-evaluates this command as %v (rule %s)", verdict.Kind, verdict.Rule)
	}

	ptmx, err := pty.Start(exec.Command("sh", "-c", entry.Summary))
	if err != nil {
		return fmt.Errorf("start replay pty: %w", err)
	}
	defer ptmx.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(ptmx); err != nil {
		// The pty closes with an EIO once the child exits; that is expected.
		_ = err
	}
	fmt.Print(buf.String())
	return nil
}
