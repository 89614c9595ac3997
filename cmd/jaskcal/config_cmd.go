package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/jaskcal/internal/config"
)

func newConfigCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the jaskcal config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective settings (defaults, file, env) to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := writeConfig(f.config, force)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	cmd.AddCommand(initCmd)
	return cmd
}

func writeConfig(path string, force bool) (string, error) {
	if err := useConfigPath(path); err != nil {
		return "", err
	}
	target := config.Path()
	if _, err := os.Stat(target); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", target)
	}
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	if err := config.Save(cfg); err != nil {
		return "", err
	}
	return target, nil
}
