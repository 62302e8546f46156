// Package hotkey turns configured combo strings like "ctrl+shift+space"
// into key bindings the spotlight surface matches against incoming terminal
// key events.
package hotkey

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// DefaultCombo is used when the configured combo cannot be parsed.
const DefaultCombo = "ctrl+shift+space"

// Parse converts a combo into a binding. Terminals cannot report every GUI
// combo (shift is invisible on control characters, ctrl+space arrives as
// ctrl+@), so unrepresentable modifiers are dropped and an unparseable
// combo falls back to DefaultCombo.
func Parse(combo string) key.Binding {
	keys := comboKeys(combo)
	if len(keys) == 0 {
		combo = DefaultCombo
		keys = comboKeys(DefaultCombo)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(combo, "toggle"),
	)
}

// comboKeys returns the candidate bubbletea key strings for a combo, or nil
// when the combo makes no sense.
func comboKeys(combo string) []string {
	var ctrl, alt bool
	base := ""

	for _, tok := range strings.Split(strings.ToLower(combo), "+") {
		switch strings.TrimSpace(tok) {
		case "":
			return nil
		case "ctrl", "control":
			ctrl = true
		case "alt", "option", "meta":
			alt = true
		case "shift":
			// not reported by terminals for control characters
		default:
			if base != "" {
				return nil // two non-modifier tokens
			}
			base = strings.TrimSpace(tok)
		}
	}
	if base == "" {
		return nil
	}

	prefix := ""
	if alt {
		prefix += "alt+"
	}
	if ctrl {
		prefix += "ctrl+"
	}

	keys := []string{prefix + base}
	if ctrl && !alt && base == "space" {
		// what most terminal emulators actually deliver for ctrl+space
		keys = append(keys, "ctrl+@")
	}
	return keys
}
