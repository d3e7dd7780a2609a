package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fnzv/security-hook/internal/policy"
)

func configValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and validate the effective configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Load, merge, and compile the effective policy, reporting the offending pattern on error",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd := resolveCwd("")
			cfg, err := policy.Load(cwd)
			if err != nil {
				return fmt.Errorf("config invalid: %w", err)
			}
			if _, err := policy.Compile(cfg); err != nil {
				return fmt.Errorf("config invalid: %w", err)
			}
			fmt.Println("security-hook: configuration is valid")
			return nil
		},
	})
	return cmd
}
