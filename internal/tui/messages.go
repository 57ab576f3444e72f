package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inboxing/mailadm/internal/panel"
	"github.com/inboxing/mailadm/internal/roster"
)

// refreshDoneMsg reports a roster reload.
type refreshDoneMsg struct {
	gen int
	err error
}

// detailLoadedMsg reports a mailbox list load for one account.
type detailLoadedMsg struct {
	gen       int
	accountID int
	detail    *roster.MailboxStore
	err       error
}

// accountSavedMsg reports a completed create or update.
type accountSavedMsg struct {
	account roster.Account
	created bool
	err     error
}

// mailboxSavedMsg reports a completed mailbox create or update.
type mailboxSavedMsg struct {
	box     roster.Mailbox
	created bool
	err     error
}

// resolveDoneMsg reports the outcome of a confirmed destructive action.
type resolveDoneMsg struct {
	kind panel.ActionKind
	err  error
}

// clearStatusMsg expires a transient status line notice.
type clearStatusMsg struct {
	seq int
}

// statusTTL is how long a transient notice stays in the status line.
const statusTTL = 4 * time.Second

// clearStatusAfter schedules the status line to clear unless a newer
// notice replaced it in the meantime.
func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
