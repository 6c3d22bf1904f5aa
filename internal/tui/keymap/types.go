// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings are declared per mode so the Update loop maps a key to a named
// command instead of switching on raw keys.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
type Mode string

const (
	ModeNormal Mode = "normal" // Stepping through the trace
	ModeEdit   Mode = "edit"   // Editing the input text
	ModeHelp   Mode = "help"   // Help overlay shown
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Normal mode commands
const (
	// Playback
	CmdStepForward  Command = "step_forward"
	CmdStepBackward Command = "step_backward"
	CmdTogglePlay   Command = "toggle_play"
	CmdReset        Command = "reset"
	CmdFirstStep    Command = "first_step"
	CmdLastStep     Command = "last_step"
	CmdCycleSpeed   Command = "cycle_speed"

	// Problems
	CmdNextProblem Command = "next_problem"
	CmdPrevProblem Command = "prev_problem"
	CmdEditInput   Command = "edit_input"

	// Application
	CmdToggleHelp Command = "toggle_help"
	CmdQuit       Command = "quit"
)

// Edit mode commands
const (
	CmdConfirm Command = "confirm"
	CmdCancel  Command = "cancel"
)

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key for this binding. For rune keys, use tea.KeyRunes
	// and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Category groups related bindings together in help display.
	Category string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	if msg.Alt {
		return false
	}

	// For special keys (not runes), match the key type directly
	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	switch kb.KeyType {
	case tea.KeyRunes:
		return string(kb.Rune)
	case tea.KeySpace:
		return "space"
	case tea.KeyLeft:
		return "←"
	case tea.KeyRight:
		return "→"
	default:
		return kb.KeyType.String()
	}
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
// Returns the command and true if found, or empty command and false if not.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	Name  string
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetCategories returns the categories of a mode's bindings in declaration
// order.
func (km *Keymap) GetCategories(mode Mode) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, binding := range km.GetModeBindings(mode) {
		if binding.Category != "" && !seen[binding.Category] {
			seen[binding.Category] = true
			categories = append(categories, binding.Category)
		}
	}
	return categories
}

// HelpEntry is one line of the help screen: every key for a command joined
// together, with the command's description.
type HelpEntry struct {
	Keys        []string
	Description string
}

// Help groups a mode's bindings by command for display, keeping category
// and declaration order.
func (km *Keymap) Help(mode Mode) map[string][]HelpEntry {
	bindings := km.GetModeBindings(mode)
	if bindings == nil {
		return nil
	}

	result := make(map[string][]HelpEntry)
	type key struct {
		cat string
		cmd Command
	}
	index := make(map[key]int)
	for _, binding := range bindings {
		cat := binding.Category
		if cat == "" {
			cat = "Other"
		}
		k := key{cat, binding.Command}
		if i, ok := index[k]; ok {
			result[cat][i].Keys = append(result[cat][i].Keys, binding.String())
			continue
		}
		index[k] = len(result[cat])
		result[cat] = append(result[cat], HelpEntry{
			Keys:        []string{binding.String()},
			Description: binding.Description,
		})
	}
	return result
}
