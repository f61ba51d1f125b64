package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/mistweaver/comet/internal/composer"
)

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Application-level bindings (quit, cancel
// edit) run first; everything else goes through the composer router and
// only leftovers reach the editor.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyPressMsg:
		switch m.registry.GetAction(msg.String()) {
		case "quit":
			return m, tea.Quit
		case "cancel_edit":
			if m.session != nil {
				m.cancelEdit()
				return m, nil
			}
		}
	}

	leftover := m.router.Process(msg, m.editor, m.session)
	if leftover == nil {
		return m, nil
	}
	return m.handleLeftover(leftover)
}

// handleLeftover applies events the router passed through to the editor.
func (m *Model) handleLeftover(msg tea.Msg) (tea.Model, tea.Cmd) {
	if paste, ok := msg.(tea.PasteMsg); ok {
		m.editor.Insert(paste.Content)
		return m, nil
	}

	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "enter":
		// The editor surfaces plain enter as a paragraph-break event; feed
		// it back through the router so the ctrl+enter mode applies.
		if m.router.Process(composer.InputMsg{Type: composer.InputInsertParagraph}, m.editor, m.session) == nil {
			return m, nil
		}
		m.editor.InsertNewline()
	case "backspace":
		m.editor.Backspace()
	case "left":
		m.editor.MoveLeft()
	case "right":
		m.editor.MoveRight()
	case "home", "ctrl+a":
		m.editor.MoveStart()
	case "end", "ctrl+e":
		m.editor.MoveEnd()
	case "up":
		if m.session == nil && m.editor.Blank() {
			m.startEditLast()
		}
	default:
		if key.Text != "" {
			m.editor.Insert(key.Text)
		}
	}
	return m, nil
}
