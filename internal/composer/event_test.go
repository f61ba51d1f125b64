package composer

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
		want Category
	}{
		{"paste content", tea.PasteMsg{Content: "hello"}, CategoryPassThrough},
		{"paste start", tea.PasteStartMsg{}, CategoryPassThrough},
		{"paste end", tea.PasteEndMsg{}, CategoryPassThrough},
		{"key press", tea.KeyPressMsg{Code: 'a', Text: "a"}, CategoryKeyboard},
		{"semantic input", InputMsg{Type: InputInsertParagraph}, CategoryInput},
		{"window size", tea.WindowSizeMsg{Width: 80, Height: 24}, CategoryInput},
		{"nil message", nil, CategoryInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.msg); got != tt.want {
				t.Errorf("Classify(%T) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}
