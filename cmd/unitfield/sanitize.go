package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/unitfield/internal/field"
)

func newSanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize <text>",
		Short: "Print the unsigned decimal prefix of text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), field.CleanNumber(args[0]))
			return err
		},
	}
}

func newClampCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clamp <number>",
		Short: "Print number bounded to the range of --unit",
		Long: `Print number bounded to the range of --unit: 0-100 for %, 0 and up for px.
Text without a leading number clamps to 0. Put -- before negative numbers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			unit, err := cfg.FieldUnit()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), field.Clamp(field.ParseNumber(args[0]), unit))
			return err
		},
	}
}
