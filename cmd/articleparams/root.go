package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
	color      string
	verbose    bool
}

type tuiOptions struct {
	ConfigPath   string
	SubmitPolicy string
	LogLevel     string
	LogFile      string
	Verbose      bool
}

var (
	tuiRunner  = runTUI
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	var submitPolicy string

	cmd := &cobra.Command{
		Use:           "articleparams",
		Short:         "Read an article and tune how it is displayed",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyColorMode(flags.color)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.configPath != "" {
				if err := validateConfigPath(flags.configPath); err != nil {
					return err
				}
			}

			// Without a terminal there is nothing to interact with: print
			// the article once.
			if !isTerminal() {
				return runRender(cmd, renderOptions{ConfigPath: flags.configPath})
			}

			return tuiRunner(tuiOptions{
				ConfigPath:   flags.configPath,
				SubmitPolicy: submitPolicy,
				LogLevel:     flags.logLevel,
				LogFile:      flags.logFile,
				Verbose:      flags.verbose,
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Log file for interactive sessions")
	cmd.PersistentFlags().StringVar(&flags.color, "color", colorAuto, "Color mode (auto, truecolor, 256, 16, none)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringVar(&submitPolicy, "submit-policy", "", "Override submit_policy (close, keep_open)")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newOptionsCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
