package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the default key bindings for the panel.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default mailadm key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeNormal:  defaultNormalBindings(),
			ModeDetail:  defaultDetailBindings(),
			ModeSearch:  defaultSearchBindings(),
			ModeForm:    defaultFormBindings(),
			ModeConfirm: defaultConfirmBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			// Cursor movement
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdCursorDown, Description: "Move down", Category: "Navigation"},
			{KeyType: tea.KeyDown, Command: CmdCursorDown, Description: "Move down", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdCursorUp, Description: "Move up", Category: "Navigation"},
			{KeyType: tea.KeyUp, Command: CmdCursorUp, Description: "Move up", Category: "Navigation"},

			// Paging
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdPrevPage, Description: "Previous page", Category: "Navigation"},
			{KeyType: tea.KeyLeft, Command: CmdPrevPage, Description: "Previous page", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdNextPage, Description: "Next page", Category: "Navigation"},
			{KeyType: tea.KeyRight, Command: CmdNextPage, Description: "Next page", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdFirstPage, Description: "First page", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'G', Command: CmdLastPage, Description: "Last page", Category: "Navigation"},

			// Roster actions
			{KeyType: tea.KeySpace, Command: CmdToggleExpand, Description: "Expand/collapse row", Category: "Roster"},
			{KeyType: tea.KeyTab, Command: CmdToggleExpand, Description: "Expand/collapse row", Category: "Roster"},
			{KeyType: tea.KeyEnter, Command: CmdOpenDetail, Description: "Open mailbox detail", Category: "Roster"},
			{KeyType: tea.KeyRunes, Rune: '/', Command: CmdEnterSearch, Description: "Search by name", Category: "Roster"},
			{KeyType: tea.KeyEsc, Command: CmdClearSearch, Description: "Clear search", Category: "Roster"},

			// Mutations
			{KeyType: tea.KeyRunes, Rune: 'n', Command: CmdNewAccount, Description: "New account", Category: "Accounts"},
			{KeyType: tea.KeyRunes, Rune: 'e', Command: CmdEditAccount, Description: "Edit account", Category: "Accounts"},
			{KeyType: tea.KeyRunes, Rune: 'd', Command: CmdDeleteAccount, Description: "Delete account", Category: "Accounts"},
			{KeyType: tea.KeyRunes, Rune: 'R', Command: CmdResetAll, Description: "Reset all delivery data", Category: "Accounts"},
			{KeyType: tea.KeyRunes, Rune: 'r', Command: CmdRefresh, Description: "Reload from service", Category: "Accounts"},

			// Misc
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "Misc"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Misc"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Misc"},
		},
	}
}

func defaultDetailBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeDetail,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdCursorDown, Description: "Move down", Category: "Navigation"},
			{KeyType: tea.KeyDown, Command: CmdCursorDown, Description: "Move down", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdCursorUp, Description: "Move up", Category: "Navigation"},
			{KeyType: tea.KeyUp, Command: CmdCursorUp, Description: "Move up", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdPrevPage, Description: "Previous page", Category: "Navigation"},
			{KeyType: tea.KeyLeft, Command: CmdPrevPage, Description: "Previous page", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdNextPage, Description: "Next page", Category: "Navigation"},
			{KeyType: tea.KeyRight, Command: CmdNextPage, Description: "Next page", Category: "Navigation"},

			{KeyType: tea.KeyEsc, Command: CmdBack, Description: "Back to roster", Category: "Mailboxes"},
			{KeyType: tea.KeyRunes, Rune: 'b', Command: CmdBack, Description: "Back to roster", Category: "Mailboxes"},
			{KeyType: tea.KeyRunes, Rune: 'n', Command: CmdNewMailbox, Description: "New mailbox", Category: "Mailboxes"},
			{KeyType: tea.KeyRunes, Rune: 'e', Command: CmdEditMailbox, Description: "Edit mailbox", Category: "Mailboxes"},
			{KeyType: tea.KeyRunes, Rune: 'd', Command: CmdDeleteMailbox, Description: "Delete mailbox", Category: "Mailboxes"},
			{KeyType: tea.KeyRunes, Rune: 'r', Command: CmdRefresh, Description: "Reload from service", Category: "Mailboxes"},

			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "Misc"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Misc"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Misc"},
		},
	}
}

func defaultSearchBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeSearch,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdSearchAccept, Description: "Apply search", Category: "Search"},
			{KeyType: tea.KeyEsc, Command: CmdSearchCancel, Description: "Cancel search", Category: "Search"},
			{KeyType: tea.KeyCtrlC, Command: CmdSearchCancel, Description: "Cancel search", Category: "Search"},
		},
	}
}

func defaultFormBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeForm,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyTab, Command: CmdFormNextField, Description: "Next field", Category: "Form"},
			{KeyType: tea.KeyDown, Command: CmdFormNextField, Description: "Next field", Category: "Form"},
			{KeyType: tea.KeyShiftTab, Command: CmdFormPrevField, Description: "Previous field", Category: "Form"},
			{KeyType: tea.KeyUp, Command: CmdFormPrevField, Description: "Previous field", Category: "Form"},
			{KeyType: tea.KeyCtrlR, Command: CmdFormToggleRole, Description: "Toggle role", Category: "Form"},
			{KeyType: tea.KeyEnter, Command: CmdFormSubmit, Description: "Submit", Category: "Form"},
			{KeyType: tea.KeyEsc, Command: CmdFormCancel, Description: "Cancel", Category: "Form"},
		},
	}
}

func defaultConfirmBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeConfirm,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'y', Command: CmdConfirmApprove, Description: "Confirm", Category: "Confirm"},
			{KeyType: tea.KeyEnter, Command: CmdConfirmApprove, Description: "Confirm", Category: "Confirm"},
			{KeyType: tea.KeyRunes, Rune: 'n', Command: CmdConfirmDecline, Description: "Decline", Category: "Confirm"},
			{KeyType: tea.KeyEsc, Command: CmdConfirmDecline, Description: "Decline", Category: "Confirm"},
		},
	}
}
