// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings are declared per input mode so the update loop can translate a
// key press into a named command instead of switching on raw keys.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeNormal  Mode = "normal"  // Browsing the account roster
	ModeDetail  Mode = "detail"  // Browsing an account's mailbox list
	ModeSearch  Mode = "search"  // Typing a search query (after /)
	ModeForm    Mode = "form"    // Editing a create/update form
	ModeConfirm Mode = "confirm" // Answering a destructive-action prompt
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Navigation commands
const (
	CmdCursorUp   Command = "cursor_up"
	CmdCursorDown Command = "cursor_down"
	CmdPrevPage   Command = "prev_page"
	CmdNextPage   Command = "next_page"
	CmdFirstPage  Command = "first_page"
	CmdLastPage   Command = "last_page"
)

// Roster commands
const (
	CmdToggleExpand  Command = "toggle_expand"
	CmdOpenDetail    Command = "open_detail"
	CmdEnterSearch   Command = "enter_search"
	CmdClearSearch   Command = "clear_search"
	CmdNewAccount    Command = "new_account"
	CmdEditAccount   Command = "edit_account"
	CmdDeleteAccount Command = "delete_account"
	CmdResetAll      Command = "reset_all"
	CmdRefresh       Command = "refresh"
	CmdToggleHelp    Command = "toggle_help"
	CmdQuit          Command = "quit"
)

// Detail commands
const (
	CmdBack          Command = "back"
	CmdNewMailbox    Command = "new_mailbox"
	CmdEditMailbox   Command = "edit_mailbox"
	CmdDeleteMailbox Command = "delete_mailbox"
)

// Search mode commands
const (
	CmdSearchAccept Command = "search_accept"
	CmdSearchCancel Command = "search_cancel"
)

// Form mode commands
const (
	CmdFormNextField  Command = "form_next_field"
	CmdFormPrevField  Command = "form_prev_field"
	CmdFormToggleRole Command = "form_toggle_role"
	CmdFormSubmit     Command = "form_submit"
	CmdFormCancel     Command = "form_cancel"
)

// Confirm mode commands
const (
	CmdConfirmApprove Command = "confirm_approve"
	CmdConfirmDecline Command = "confirm_decline"
)

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the primary key for this binding.
	// For rune keys, use tea.KeyRunes and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys.
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
	if kb.KeyType != tea.KeyRunes {
		return kb.KeyType.String()
	}
	if kb.Rune == ' ' {
		return "space"
	}
	return string(kb.Rune)
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
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
	// Name identifies this keymap.
	Name string

	// Description provides a human-readable description.
	Description string

	// Modes maps each mode to its bindings.
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
