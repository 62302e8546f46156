package hotkey

import (
	"reflect"
	"testing"
)

func TestComboKeys(t *testing.T) {
	tests := []struct {
		name  string
		combo string
		want  []string
	}{
		{"default combo", "ctrl+shift+space", []string{"ctrl+space", "ctrl+@"}},
		{"ctrl+space", "ctrl+space", []string{"ctrl+space", "ctrl+@"}},
		{"plain letter", "k", []string{"k"}},
		{"alt combo", "alt+k", []string{"alt+k"}},
		{"alt+ctrl combo", "ctrl+alt+k", []string{"alt+ctrl+k"}},
		{"uppercase normalized", "Ctrl+Shift+Space", []string{"ctrl+space", "ctrl+@"}},
		{"modifiers only", "ctrl+shift", nil},
		{"two base keys", "a+b", nil},
		{"empty", "", nil},
		{"dangling plus", "ctrl+", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := comboKeys(tt.combo); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("comboKeys(%q) = %v, want %v", tt.combo, got, tt.want)
			}
		})
	}
}

func TestParseFallsBackOnGarbage(t *testing.T) {
	binding := Parse("ctrl+")
	want := comboKeys(DefaultCombo)
	if got := binding.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Parse fallback keys = %v, want %v", got, want)
	}
	if binding.Help().Key != DefaultCombo {
		t.Errorf("fallback help = %q, want %q", binding.Help().Key, DefaultCombo)
	}
}

func TestParseKeepsComboInHelp(t *testing.T) {
	binding := Parse("alt+k")
	if binding.Help().Key != "alt+k" {
		t.Errorf("help = %q, want the configured combo", binding.Help().Key)
	}
}
