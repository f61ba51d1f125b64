package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Composer    ComposerConfig    `toml:"composer"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// ComposerConfig holds composer behavior settings
type ComposerConfig struct {
	CtrlEnterToSend *bool  `toml:"ctrl_enter_to_send"` // Plain enter inserts a newline, ctrl+enter sends (default: false)
	HistoryLimit    int    `toml:"history_limit"`      // Messages kept per room (default: 200, min: 10, max: 100000)
	Sender          string `toml:"sender"`             // Display name for locally sent messages
}

// KeybindingsConfig holds all keybinding configurations
type KeybindingsConfig struct {
	Composer map[string][]string `toml:"composer"`
	App      map[string][]string `toml:"app"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Composer: ComposerConfig{
			HistoryLimit: DefaultHistoryLimit,
			Sender:       DefaultSender,
		},
		Keybindings: KeybindingsConfig{
			Composer: map[string][]string{
				"send":          {"ctrl+enter"},
				"edit_previous": {"ctrl+up"},
				"edit_next":     {"ctrl+down"},
			},
			App: map[string][]string{
				"cancel_edit": {"esc"},
				"quit":        {"ctrl+c"},
			},
		},
	}
}

// LoadUserConfig loads the user configuration from XDG config directory
func LoadUserConfig() (*UserConfig, error) {
	// Try to find existing config file
	configPath, err := xdg.SearchConfigFile("comet/config.toml")
	if err != nil {
		// Config doesn't exist, create default
		return createDefaultConfig()
	}

	// #nosec G304 - configPath is from XDG search, reading user config is intentional
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Fill in missing sections with defaults
	defaultCfg := DefaultConfig()
	fillMissingComposer(&cfg, defaultCfg)
	fillMissingKeybinds(&cfg, defaultCfg)

	return &cfg, nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	cfg := DefaultConfig()

	configPath, err := xdg.ConfigFile("comet/config.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	// Build config file with header comments and marshaled data
	var sb strings.Builder
	sb.WriteString("# Comet Configuration File\n")
	sb.WriteString("# This file allows you to customize composer behavior and keybindings\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n")
	sb.WriteString("# For keybindings documentation, run: comet keybinds list\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# COMPOSER SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# ctrl_enter_to_send: When true, plain enter inserts a newline and\n")
	sb.WriteString("#   ctrl+enter sends the message. When false, enter sends.\n")
	sb.WriteString("#   Default: false\n")
	sb.WriteString("#\n")
	sb.WriteString("# history_limit: Number of messages kept per room\n")
	sb.WriteString("#   Range: 10 to 100000\n")
	sb.WriteString("#   Default: 200\n")
	sb.WriteString("#\n")
	sb.WriteString("# sender: Display name used for locally sent messages\n")
	sb.WriteString("#   Default: you\n")
	sb.WriteString("# ============================================================================\n\n")

	if _, err := sb.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write config data: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(sb.String()), 0600); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfg, nil
}

// fillMissingComposer fills in any missing composer settings with defaults
func fillMissingComposer(cfg, defaultCfg *UserConfig) {
	// CtrlEnterToSend defaults to false (nil means use default)

	// Validate and clamp the history limit
	if cfg.Composer.HistoryLimit <= 0 {
		cfg.Composer.HistoryLimit = defaultCfg.Composer.HistoryLimit
	} else if cfg.Composer.HistoryLimit < MinHistoryLimit {
		cfg.Composer.HistoryLimit = MinHistoryLimit
	} else if cfg.Composer.HistoryLimit > MaxHistoryLimit {
		cfg.Composer.HistoryLimit = MaxHistoryLimit
	}

	if cfg.Composer.Sender == "" {
		cfg.Composer.Sender = defaultCfg.Composer.Sender
	}
}

// fillMissingKeybinds fills in any missing keybindings with defaults
func fillMissingKeybinds(cfg, defaultCfg *UserConfig) {
	if cfg.Keybindings.Composer == nil {
		cfg.Keybindings.Composer = make(map[string][]string)
	}
	if cfg.Keybindings.App == nil {
		cfg.Keybindings.App = make(map[string][]string)
	}

	fillMapDefaults(cfg.Keybindings.Composer, defaultCfg.Keybindings.Composer)
	fillMapDefaults(cfg.Keybindings.App, defaultCfg.Keybindings.App)
}

func fillMapDefaults(target, defaults map[string][]string) {
	for k, v := range defaults {
		if _, exists := target[k]; !exists {
			target[k] = v
		}
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile("comet/config.toml")
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile("comet/config.toml")
	}
	return path, nil
}
