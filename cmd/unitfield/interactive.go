package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/unitfield/internal/tui"
)

// isInteractive reports whether the widget can draw on stderr and read keys.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

func runInteractive(cmd *cobra.Command, flags *rootFlags) error {
	if err := validateOutput(flags.output); err != nil {
		return err
	}
	if !isInteractive() {
		return newCommandError("start the widget", "", fmt.Errorf("stdin and stderr must be a terminal"), "Use 'unitfield eval' to drive the field from a script.")
	}

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd, flags, true)
	if err != nil {
		return err
	}
	defer log.Close()

	store, err := newStore(cfg, log)
	if err != nil {
		return err
	}

	log.Info("widget started")

	// Draw on stderr so stdout carries only the result.
	program := tea.NewProgram(tui.NewModel(store, cfg, log), tea.WithOutput(os.Stderr))
	final, err := program.Run()
	if err != nil {
		log.Error(err, "widget failed")
		return fmt.Errorf("run widget: %w", err)
	}

	model, ok := final.(tui.Model)
	if !ok || !model.Done() {
		return fmt.Errorf("widget exited without a result")
	}

	log.WithFields(map[string]any{"result": model.State().String()}).Info("widget closed")
	return writeResult(cmd.OutOrStdout(), flags.output, model.State())
}
