package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mistweaver/comet/internal/timeline"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4865f2"))

	senderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ade80"))

	pendingStyle = lipgloss.NewStyle().
			Faint(true)

	editingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fb923c"))

	cursorStyle = lipgloss.NewStyle().
			Reverse(true)

	hintStyle = lipgloss.NewStyle().
			Faint(true)
)

// View implements tea.Model.
func (m *Model) View() tea.View {
	var view tea.View
	view.SetContent(m.render())
	view.AltScreen = true
	return view
}

func (m *Model) render() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("# "+string(m.room)) + "\n\n")

	for _, line := range m.messageLines() {
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\n" + m.renderComposer() + "\n")
	sb.WriteString(m.renderStatus())
	return sb.String()
}

// messageLines renders the room's messages, newest at the bottom, capped
// to what fits above the composer.
func (m *Model) messageLines() []string {
	room, ok := m.store.Room(m.room)
	if !ok {
		return nil
	}

	var lines []string
	render := func(msg timeline.MessageRef, pending bool) {
		prefix := senderStyle.Render(msg.Sender) + " "
		for i, part := range strings.Split(msg.Body, "\n") {
			line := part
			if i == 0 {
				line = prefix + part
			} else {
				line = strings.Repeat(" ", len(msg.Sender)+1) + part
			}
			if pending {
				line = pendingStyle.Render(line)
			}
			if m.session != nil && m.session.Message.ID == msg.ID && i == 0 {
				line += " " + editingStyle.Render("(editing)")
			}
			lines = append(lines, line)
		}
	}

	for _, msg := range room.Events() {
		render(msg, false)
	}
	for _, msg := range room.PendingEvents() {
		render(msg, true)
	}

	if limit := m.visibleLines(); len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	return lines
}

// visibleLines is the message area height: total minus header, composer,
// and status chrome.
func (m *Model) visibleLines() int {
	if m.height == 0 {
		return 20
	}
	return max(m.height-6, 1)
}

func (m *Model) renderComposer() string {
	prompt := "> "
	if m.session != nil {
		prompt = editingStyle.Render("edit> ")
	}

	content := []rune(m.editor.Content())
	caret := m.editor.Caret()

	before := string(content[:caret])
	under := " "
	after := ""
	if caret < len(content) {
		under = string(content[caret])
		after = string(content[caret+1:])
	}

	line := prompt + before + cursorStyle.Render(under) + after
	// Paragraph breaks inside the composer render as a visible marker.
	return strings.ReplaceAll(line, "\n", hintStyle.Render("↵"))
}

func (m *Model) renderStatus() string {
	var hints []string
	if m.session != nil {
		hints = append(hints,
			m.registry.GetKeysForDisplay("edit_previous")+" older",
			m.registry.GetKeysForDisplay("edit_next")+" newer",
			m.registry.GetKeysForDisplay("cancel_edit")+" cancel",
		)
	} else {
		hints = append(hints,
			"up edit last",
			m.registry.GetKeysForDisplay("quit")+" quit",
		)
	}
	return hintStyle.Render(strings.Join(hints, "  ·  "))
}
