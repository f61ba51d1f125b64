package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mistweaver/comet/internal/config"
)

// printConfigPath prints the path to the config file, creating a default
// config first if none exists.
func printConfigPath() error {
	if _, err := config.LoadUserConfig(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// editConfigFile opens the config file in the user's editor.
func editConfigFile() error {
	if _, err := config.LoadUserConfig(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	editor := findEditor()
	if editor == "" {
		return fmt.Errorf("no editor found: set $EDITOR or $VISUAL")
	}

	// #nosec G204 - editor comes from the user's own environment
	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}
	return nil
}

func findEditor() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if editor := os.Getenv(env); editor != "" {
			return editor
		}
	}
	for _, candidate := range []string{"vim", "vi", "nano", "emacs"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path
		}
	}
	return ""
}

// resetConfigToDefaults overwrites the config file after confirmation.
func resetConfigToDefaults() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	fmt.Printf("This will overwrite %s with defaults. Continue? [y/N] ", path)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	if answer := strings.ToLower(strings.TrimSpace(answer)); answer != "y" && answer != "yes" {
		fmt.Println("Aborted.")
		return nil
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config: %w", err)
	}
	if _, err := config.LoadUserConfig(); err != nil {
		return fmt.Errorf("failed to recreate config: %w", err)
	}
	fmt.Println("Configuration reset to defaults.")
	return nil
}

// listKeybindings prints all configured keybindings grouped by section.
func listKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	registry := config.NewKeybindRegistry(userConfig)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4865f2"))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80"))

	for _, section := range config.GetKeybindings(registry) {
		fmt.Println(titleStyle.Render(section.Title))
		for _, binding := range section.Bindings {
			fmt.Printf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-24s", binding.Key)), binding.Description)
		}
		fmt.Println()
	}
	return nil
}
