package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/mistweaver/comet/internal/app"
	"github.com/mistweaver/comet/internal/config"
	"github.com/mistweaver/comet/internal/timeline"
)

func runLocal() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "comet",
	})
	if debugMode {
		logger.SetLevel(log.DebugLevel)
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}

	config.ApplyOverrides(config.Overrides{
		CtrlEnterToSend: ctrlEnterToSend,
		HistoryLimit:    historyLimit,
		Sender:          senderName,
	}, userConfig)

	keybindRegistry := config.NewKeybindRegistry(userConfig)

	if debugMode {
		configPath, _ := config.GetConfigPath()
		logger.Debug("configuration loaded", "path", configPath)
	}

	model := app.NewModel(app.Options{
		Registry: keybindRegistry,
		Room:     timeline.RoomID(roomName),
		Sender:   config.SenderName,
		Logger:   logger,
	})

	p := tea.NewProgram(
		model,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}
