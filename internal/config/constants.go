// Package config provides configuration constants, keybinding management, and user settings.
package config

// =============================================================================
// Application Defaults
// =============================================================================

const (
	// NormalFPS is the refresh rate for the chat TUI
	NormalFPS = 60

	// DefaultRoomName is the room used when none is specified
	DefaultRoomName = "lobby"

	// DefaultSender is the local user name when none is configured
	DefaultSender = "you"

	// DefaultHistoryLimit is the default number of messages kept in a room
	DefaultHistoryLimit = 200

	// MinHistoryLimit is the smallest accepted history limit
	MinHistoryLimit = 10

	// MaxHistoryLimit is the largest accepted history limit
	MaxHistoryLimit = 100000
)

// =============================================================================
// Runtime Configuration
// =============================================================================

// CtrlEnterToSend controls whether plain enter inserts a paragraph break and
// ctrl+enter submits, instead of the reverse.
// Set via --ctrl-enter-to-send flag or composer.ctrl_enter_to_send config
var CtrlEnterToSend = false

// HistoryLimit is the number of messages kept per room.
// Set via --history-limit flag or composer.history_limit config
var HistoryLimit = DefaultHistoryLimit

// SenderName is the display name used for locally sent messages.
// Set via --sender flag or composer.sender config
var SenderName = DefaultSender

// RuntimeSettings exposes the runtime configuration to the composer.
type RuntimeSettings struct{}

// CtrlEnterToSend reports the current ctrl+enter-to-send mode.
func (RuntimeSettings) CtrlEnterToSend() bool { return CtrlEnterToSend }
