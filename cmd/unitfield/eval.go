package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/unitfield/internal/field"
)

func newEvalCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [actions...]",
		Short: "Replay interactions against the field without a terminal",
		Long: `Replay interactions in order and print the resulting value.

Actions:
  type:<text>   replace the field text, as if typed (not cleaned yet)
  blur          leave the field: clean and clamp the text
  unit:<unit>   switch to % or px, re-clamping the value
  inc, dec      press the plus or minus button`,
		Example: `  unitfield eval type:12a34 blur
  unitfield eval --unit px type:500 blur unit:%
  unitfield eval -o json inc inc dec`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, flags, args)
		},
	}

	return cmd
}

func runEval(cmd *cobra.Command, flags *rootFlags, args []string) error {
	if err := validateOutput(flags.output); err != nil {
		return err
	}

	actions, err := field.ParseActions(args)
	if err != nil {
		return newCommandError("parse actions", "", err, "Run 'unitfield eval --help' for the action syntax.")
	}

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd, flags, false)
	if err != nil {
		return err
	}
	defer log.Close()

	store, err := newStore(cfg, log)
	if err != nil {
		return err
	}

	for _, action := range actions {
		if !store.Apply(action) {
			log.WithFields(map[string]any{"action": action.String()}).Debug("action had no effect")
		}
	}

	return writeResult(cmd.OutOrStdout(), flags.output, store.State())
}
