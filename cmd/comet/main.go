// Package main implements comet, a local chat composer TUI.
// Comet demonstrates composer input routing: message submission, in-place
// editing of previously sent messages, and configurable keybindings.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode       bool
	ctrlEnterToSend bool
	historyLimit    int
	senderName      string
	roomName        string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "comet",
		Short: "Chat composer with in-place message editing",
		Long: `Comet - a local chat composer TUI

Type messages and send them with enter. Press up in an empty composer to
edit your last message, then navigate between your messages with ctrl+up
and ctrl+down while the draft is unchanged and the caret sits at an
extreme. Esc cancels an edit.`,
		Example: `  # Run comet
  comet

  # Run with debug logging
  comet --debug

  # Plain enter inserts a newline, ctrl+enter sends
  comet --ctrl-enter-to-send

  # Edit configuration
  comet config edit

  # List all keybindings
  comet keybinds list`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&ctrlEnterToSend, "ctrl-enter-to-send", false, "Plain enter inserts a newline, ctrl+enter sends")
	rootCmd.PersistentFlags().IntVar(&historyLimit, "history-limit", 0, "Messages kept per room (default: from config or 200, min: 10, max: 100000)")
	rootCmd.PersistentFlags().StringVar(&senderName, "sender", "", "Display name for sent messages (default: from config or \"you\")")
	rootCmd.PersistentFlags().StringVar(&roomName, "room", "", "Room name shown in the header (default: lobby)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage comet configuration",
		Long:  `Manage comet configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the comet configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the comet configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the comet configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
		Long:    `View and inspect comet keybinding configuration`,
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings in a formatted table`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd)

	rootCmd.AddCommand(configCmd, keybindsCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
