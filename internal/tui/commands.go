package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inboxing/mailadm/internal/panel"
	"github.com/inboxing/mailadm/internal/roster"
)

// refreshCmd reloads the roster from the service.
func (m *Model) refreshCmd() tea.Cmd {
	gen := m.gen
	orch := m.orch
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return refreshDoneMsg{gen: gen, err: orch.Refresh(ctx)}
	}
}

// openDetailCmd loads the mailbox list for an account.
func (m *Model) openDetailCmd(accountID int) tea.Cmd {
	gen := m.gen
	orch := m.orch
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		detail, err := orch.OpenDetail(ctx, accountID)
		return detailLoadedMsg{gen: gen, accountID: accountID, detail: detail, err: err}
	}
}

// createAccountCmd submits a new account.
func (m *Model) createAccountCmd(draft roster.AccountDraft) tea.Cmd {
	orch := m.orch
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		account, err := orch.Create(ctx, draft)
		return accountSavedMsg{account: account, created: true, err: err}
	}
}

// updateAccountCmd submits an account edit.
func (m *Model) updateAccountCmd(id int, patch roster.AccountPatch) tea.Cmd {
	orch := m.orch
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		account, err := orch.Update(ctx, id, patch)
		return accountSavedMsg{account: account, err: err}
	}
}

// createMailboxCmd submits a new mailbox entry.
func (m *Model) createMailboxCmd(draft roster.MailboxDraft) tea.Cmd {
	orch := m.orch
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		box, err := orch.CreateMailbox(ctx, draft)
		return mailboxSavedMsg{box: box, created: true, err: err}
	}
}

// updateMailboxCmd submits a mailbox edit.
func (m *Model) updateMailboxCmd(id int, email, password string) tea.Cmd {
	orch := m.orch
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		box, err := orch.UpdateMailbox(ctx, id, email, password)
		return mailboxSavedMsg{box: box, err: err}
	}
}

// resolveCmd settles a held destructive action with the operator's
// decision.
func (m *Model) resolveCmd(p panel.Pending, approved bool) tea.Cmd {
	orch := m.orch
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := orch.Resolve(ctx, p.ID, approved)
		return resolveDoneMsg{kind: p.Kind, err: err}
	}
}
