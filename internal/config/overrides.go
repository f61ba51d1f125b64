package config

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// CtrlEnterToSend makes plain enter insert a newline and ctrl+enter send
	CtrlEnterToSend bool

	// HistoryLimit overrides the per-room message limit (0 means use default)
	HistoryLimit int

	// Sender overrides the display name for locally sent messages
	Sender string
}

// ApplyOverrides applies CLI flag overrides to global config, falling back to user config defaults.
// If userConfig is nil, only CLI flag values (when set) are applied.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	// Ctrl+Enter mode - OR of CLI flag and user config
	if userConfig != nil && userConfig.Composer.CtrlEnterToSend != nil {
		CtrlEnterToSend = overrides.CtrlEnterToSend || *userConfig.Composer.CtrlEnterToSend
	} else {
		CtrlEnterToSend = overrides.CtrlEnterToSend
	}

	// History limit - CLI flag takes precedence, otherwise use user config
	if overrides.HistoryLimit > 0 {
		limit := overrides.HistoryLimit
		if limit < MinHistoryLimit {
			limit = MinHistoryLimit
		} else if limit > MaxHistoryLimit {
			limit = MaxHistoryLimit
		}
		HistoryLimit = limit
	} else if userConfig != nil && userConfig.Composer.HistoryLimit > 0 {
		HistoryLimit = userConfig.Composer.HistoryLimit
	}

	// Sender - CLI flag takes precedence, otherwise use user config
	if overrides.Sender != "" {
		SenderName = overrides.Sender
	} else if userConfig != nil && userConfig.Composer.Sender != "" {
		SenderName = userConfig.Composer.Sender
	}
}
