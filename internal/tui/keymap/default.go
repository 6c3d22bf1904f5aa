package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the built-in key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name: "default",
		Modes: map[Mode]*ModeBindings{
			ModeNormal: defaultNormalBindings(),
			ModeEdit:   defaultEditBindings(),
			ModeHelp:   defaultHelpBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			// Playback
			{KeyType: tea.KeyRight, Command: CmdStepForward, Description: "Next step", Category: "Playback"},
			{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdStepForward, Description: "Next step", Category: "Playback"},
			{KeyType: tea.KeyLeft, Command: CmdStepBackward, Description: "Previous step", Category: "Playback"},
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdStepBackward, Description: "Previous step", Category: "Playback"},
			{KeyType: tea.KeySpace, Command: CmdTogglePlay, Description: "Play / pause", Category: "Playback"},
			{KeyType: tea.KeyRunes, Rune: 'r', Command: CmdReset, Description: "Reset to first step", Category: "Playback"},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdFirstStep, Description: "First step", Category: "Playback"},
			{KeyType: tea.KeyHome, Command: CmdFirstStep, Description: "First step", Category: "Playback"},
			{KeyType: tea.KeyRunes, Rune: 'G', Command: CmdLastStep, Description: "Last step", Category: "Playback"},
			{KeyType: tea.KeyEnd, Command: CmdLastStep, Description: "Last step", Category: "Playback"},
			{KeyType: tea.KeyRunes, Rune: 's', Command: CmdCycleSpeed, Description: "Cycle speed", Category: "Playback"},

			// Problems
			{KeyType: tea.KeyTab, Command: CmdNextProblem, Description: "Next problem", Category: "Problems"},
			{KeyType: tea.KeyShiftTab, Command: CmdPrevProblem, Description: "Previous problem", Category: "Problems"},
			{KeyType: tea.KeyRunes, Rune: 'e', Command: CmdEditInput, Description: "Edit input", Category: "Problems"},

			// Exit
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "Application"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Application"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

// defaultEditBindings only claims confirm, cancel, and quit. Every other
// key goes to the text input.
func defaultEditBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeEdit,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdConfirm, Description: "Apply input and reset", Category: "Input"},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "Discard changes", Category: "Input"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

func defaultHelpBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeHelp,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Close help", Category: "Help"},
			{KeyType: tea.KeyEsc, Command: CmdToggleHelp, Description: "Close help", Category: "Help"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Application"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}
