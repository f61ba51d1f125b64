package config

import (
	"sort"
	"strings"
)

// KeybindRegistry resolves key strings (as produced by
// tea.KeyPressMsg.String) to action names, built from user config.
// An empty action string means the key is unbound.
type KeybindRegistry struct {
	keyToAction map[string]string
	actionKeys  map[string][]string
}

// NewKeybindRegistry builds a registry from the given user config.
// A nil config uses the defaults. Later sections win when the same key is
// bound twice; within a section the config map order is not significant, so
// duplicate keys across actions are a user error resolved arbitrarily.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	r := &KeybindRegistry{
		keyToAction: make(map[string]string),
		actionKeys:  make(map[string][]string),
	}
	r.addSection(cfg.Keybindings.Composer)
	r.addSection(cfg.Keybindings.App)
	return r
}

func (r *KeybindRegistry) addSection(section map[string][]string) {
	for action, keys := range section {
		for _, key := range keys {
			key = strings.ToLower(strings.TrimSpace(key))
			if key == "" {
				continue
			}
			r.keyToAction[key] = action
		}
		r.actionKeys[action] = append(r.actionKeys[action], keys...)
	}
}

// GetAction returns the action bound to a key, or "" if unbound.
func (r *KeybindRegistry) GetAction(key string) string {
	return r.keyToAction[strings.ToLower(key)]
}

// GetKeysForDisplay returns the keys bound to an action as a single
// display string ("ctrl+up, ctrl+k"), or "" if the action has no keys.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	return strings.Join(r.actionKeys[action], ", ")
}

// Actions returns all actions with at least one bound key, sorted.
func (r *KeybindRegistry) Actions() []string {
	actions := make([]string, 0, len(r.actionKeys))
	for action, keys := range r.actionKeys {
		if len(keys) > 0 {
			actions = append(actions, action)
		}
	}
	sort.Strings(actions)
	return actions
}

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// GetKeybindings returns all keybinding sections for the keybinds listing.
// If registry is nil, defaults are used.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(nil)
	}

	sections := []KeybindingSection{}

	composerSection := KeybindingSection{Title: "COMPOSER"}
	addBinding(&composerSection, registry, "send", "Send message")
	addBinding(&composerSection, registry, "edit_previous", "Edit previous message")
	addBinding(&composerSection, registry, "edit_next", "Edit next message")
	if len(composerSection.Bindings) > 0 {
		sections = append(sections, composerSection)
	}

	appSection := KeybindingSection{Title: "APPLICATION"}
	addBinding(&appSection, registry, "cancel_edit", "Cancel edit")
	addBinding(&appSection, registry, "quit", "Quit")
	if len(appSection.Bindings) > 0 {
		sections = append(sections, appSection)
	}

	return sections
}

// addBinding adds a keybinding to a section if the action has keys configured
func addBinding(section *KeybindingSection, registry *KeybindRegistry, action, description string) {
	keys := registry.GetKeysForDisplay(action)
	if keys != "" {
		section.Bindings = append(section.Bindings, Keybinding{
			Key:         keys,
			Description: description,
		})
	}
}
