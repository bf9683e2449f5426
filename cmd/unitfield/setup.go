package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/unitfield/internal/config"
	"github.com/alexisbeaulieu97/unitfield/internal/field"
	"github.com/alexisbeaulieu97/unitfield/internal/logger"
)

// loadConfig reads --config and applies the --unit and --value overrides.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError("load configuration", flags.configPath, err, "Check the YAML syntax and field values.")
	}

	overridden := false
	if cmd.Flags().Changed("unit") {
		cfg.Unit = flags.unit
		overridden = true
	}
	if cmd.Flags().Changed("value") {
		cfg.Value = flags.value
		overridden = true
	}
	if overridden {
		if err := config.Validate(cfg); err != nil {
			return nil, newCommandError("apply flags", "--unit/--value", err, "Use --unit % or --unit px.")
		}
	}

	return cfg, nil
}

// newLogger writes JSON to --log-file when set. Otherwise headless commands
// log to stderr and the interactive widget, which owns the terminal, discards.
func newLogger(cmd *cobra.Command, flags *rootFlags, interactive bool) (*logger.Logger, error) {
	if flags.logFile == "" && interactive {
		return logger.Discard(), nil
	}

	log, err := logger.New(logger.Options{
		Level:         flags.logLevel,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Path:          flags.logFile,
	})
	if err != nil {
		return nil, newCommandError("start logging", flags.logFile, err, "Use --log-level debug, info, warn or error.")
	}
	return log, nil
}

func newStore(cfg *config.Config, log *logger.Logger) (*field.Store, error) {
	state, err := cfg.InitialState()
	if err != nil {
		return nil, err
	}

	store := field.NewStore(state, log)
	store.Subscribe(func(s field.State) {
		if s.Phase == field.Settled {
			log.WithFields(map[string]any{"unit": s.Unit.String(), "value": s.Value}).Info("value settled")
		}
	})
	return store, nil
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	if e.context == "" {
		return fmt.Sprintf("Failed to %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.cause, e.suggestion)
	}
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
