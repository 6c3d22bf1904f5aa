package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func runes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyBindingMatches(t *testing.T) {
	tests := []struct {
		name     string
		binding  KeyBinding
		msg      tea.KeyMsg
		expected bool
	}{
		{
			name:     "simple rune match",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'l'},
			msg:      runes('l'),
			expected: true,
		},
		{
			name:     "simple rune mismatch",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'l'},
			msg:      runes('h'),
			expected: false,
		},
		{
			name:     "rune case matters",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'g'},
			msg:      runes('G'),
			expected: false,
		},
		{
			name:     "special key match",
			binding:  KeyBinding{KeyType: tea.KeyLeft},
			msg:      tea.KeyMsg{Type: tea.KeyLeft},
			expected: true,
		},
		{
			name:     "special key mismatch",
			binding:  KeyBinding{KeyType: tea.KeyLeft},
			msg:      tea.KeyMsg{Type: tea.KeyRight},
			expected: false,
		},
		{
			name:     "space key",
			binding:  KeyBinding{KeyType: tea.KeySpace},
			msg:      tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
			expected: true,
		},
		{
			name:     "alt modifier never matches",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'q'},
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}, Alt: true},
			expected: false,
		},
		{
			name:     "empty runes",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'q'},
			msg:      tea.KeyMsg{Type: tea.KeyRunes},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.binding.Matches(tt.msg); got != tt.expected {
				t.Errorf("Matches() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestKeyBindingString(t *testing.T) {
	tests := []struct {
		binding KeyBinding
		want    string
	}{
		{KeyBinding{KeyType: tea.KeyRunes, Rune: 'G'}, "G"},
		{KeyBinding{KeyType: tea.KeySpace}, "space"},
		{KeyBinding{KeyType: tea.KeyLeft}, "←"},
		{KeyBinding{KeyType: tea.KeyRight}, "→"},
		{KeyBinding{KeyType: tea.KeyShiftTab}, "shift+tab"},
		{KeyBinding{KeyType: tea.KeyCtrlC}, "ctrl+c"},
		{KeyBinding{KeyType: tea.KeyEnter}, "enter"},
	}
	for _, tt := range tests {
		if got := tt.binding.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestDefaultKeymap_NormalMode(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Command
	}{
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, CmdStepForward},
		{"l", runes('l'), CmdStepForward},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, CmdStepBackward},
		{"h", runes('h'), CmdStepBackward},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, CmdTogglePlay},
		{"r", runes('r'), CmdReset},
		{"g", runes('g'), CmdFirstStep},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, CmdFirstStep},
		{"G", runes('G'), CmdLastStep},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, CmdLastStep},
		{"s", runes('s'), CmdCycleSpeed},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, CmdNextProblem},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, CmdPrevProblem},
		{"e", runes('e'), CmdEditInput},
		{"?", runes('?'), CmdToggleHelp},
		{"q", runes('q'), CmdQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, CmdQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.GetBinding(tt.msg, ModeNormal)
			if !ok || got != tt.want {
				t.Errorf("GetBinding(%s) = %q, %v; want %q", tt.name, got, ok, tt.want)
			}
		})
	}

	if _, ok := km.GetBinding(runes('x'), ModeNormal); ok {
		t.Error("unbound key should not match")
	}
}

func TestDefaultKeymap_EditModeLeavesTypingAlone(t *testing.T) {
	km := DefaultKeymap()

	for _, r := range "qhle? 0123456789" {
		if cmd, ok := km.GetBinding(runes(r), ModeEdit); ok {
			t.Errorf("rune %q is bound to %q in edit mode; it should reach the text input", r, cmd)
		}
	}
	if cmd, _ := km.GetBinding(tea.KeyMsg{Type: tea.KeyEnter}, ModeEdit); cmd != CmdConfirm {
		t.Errorf("enter = %q, want confirm", cmd)
	}
	if cmd, _ := km.GetBinding(tea.KeyMsg{Type: tea.KeyEsc}, ModeEdit); cmd != CmdCancel {
		t.Errorf("esc = %q, want cancel", cmd)
	}
}

func TestKeymap_UnknownMode(t *testing.T) {
	km := DefaultKeymap()
	if _, ok := km.GetBinding(runes('q'), Mode("visual")); ok {
		t.Error("unknown mode should not match")
	}
	if km.GetModeBindings(Mode("visual")) != nil {
		t.Error("GetModeBindings for unknown mode should be nil")
	}
	if km.Help(Mode("visual")) != nil {
		t.Error("Help for unknown mode should be nil")
	}
}

func TestKeymap_GetCategories(t *testing.T) {
	got := DefaultKeymap().GetCategories(ModeNormal)
	want := []string{"Playback", "Problems", "Application"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestKeymap_HelpMergesKeys(t *testing.T) {
	help := DefaultKeymap().Help(ModeNormal)

	playback := help["Playback"]
	if len(playback) == 0 {
		t.Fatal("no Playback entries")
	}
	want := HelpEntry{Keys: []string{"→", "l"}, Description: "Next step"}
	if diff := cmp.Diff(want, playback[0]); diff != "" {
		t.Errorf("first playback entry mismatch (-want +got):\n%s", diff)
	}

	quit := help["Application"][len(help["Application"])-1]
	if diff := cmp.Diff([]string{"q", "ctrl+c"}, quit.Keys); diff != "" {
		t.Errorf("quit keys mismatch (-want +got):\n%s", diff)
	}
}
