package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/articleparams/internal/article"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [config]",
		Short: "Check a configuration file without starting the UI",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := root.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if err := validateConfigPath(path); err != nil {
				return err
			}
			return runValidate(cmd, path)
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, path string) error {
	cfg, err := loadConfig(path)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	catalog := cfg.Catalog()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Configuration valid: %s\n", path)
	fmt.Fprintf(out, "submit policy: %s\n", cfg.SubmitPolicy)
	for _, field := range article.Fields() {
		fmt.Fprintf(out, "  %-17s %d options, default %s\n",
			field.String(), len(catalog.OptionsFor(field)), catalog.Defaults.Get(field).Value)
	}
	return nil
}
