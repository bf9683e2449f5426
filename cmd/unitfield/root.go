package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	unit       string
	value      string
	output     string
	logFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "unitfield",
		Short: "Prompt for a size as a percentage or pixel value",
		Long: `unitfield opens a small terminal widget for entering a non-negative number
in percent (0-100) or pixels (0 and up). Typed text is cleaned and clamped when
the value field loses focus; the settled value is printed to stdout on exit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML widget configuration")
	cmd.PersistentFlags().StringVarP(&flags.unit, "unit", "u", "", "Starting unit: % or px (overrides config)")
	cmd.PersistentFlags().StringVar(&flags.value, "value", "", "Starting value text, cleaned and clamped (overrides config)")
	cmd.PersistentFlags().StringVarP(&flags.output, "output", "o", outputText, "Result format: text or json")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append JSON logs to this file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	cmd.AddCommand(newEvalCmd(flags))
	cmd.AddCommand(newSanitizeCmd())
	cmd.AddCommand(newClampCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
