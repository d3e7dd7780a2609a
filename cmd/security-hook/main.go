package main

import (
	"os"

	"github.com/spf13/cobra"
)

var cwdFlag string

func main() {
	root := &cobra.Command{
		Use:   "security-hook",
		Short: "Policy decision point for agentic-coding-assistant tool calls",
		Long: "security-hook reads a tool-invocation request on stdin, evaluates it against a " +
			"layered rule policy, and renders an Allow/Block/Ask verdict. With no subcommand it " +
			"runs the default 'check' decision path, the same as invoking 'security-hook check'.",
		RunE: runCheck,
	}
	root.PersistentFlags().StringVar(&cwdFlag, "cwd", "", "working directory to evaluate rm/git paths against (default: process cwd)")

	root.AddCommand(checkCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(auditCmd())
	root.AddCommand(configValidateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
