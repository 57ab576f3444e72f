package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inboxing/mailadm/internal/errors"
	"github.com/inboxing/mailadm/internal/panel"
	"github.com/inboxing/mailadm/internal/roster"
	"github.com/inboxing/mailadm/internal/tui/keymap"
)

// Update handles all messages and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case refreshDoneMsg:
		return m.onRefreshDone(msg)

	case detailLoadedMsg:
		return m.onDetailLoaded(msg)

	case accountSavedMsg:
		return m.onAccountSaved(msg)

	case mailboxSavedMsg:
		return m.onMailboxSaved(msg)

	case resolveDoneMsg:
		return m.onResolveDone(msg)

	case clearStatusMsg:
		if msg.seq == m.statusSeq && !m.statusIsErr {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.onKey(msg)
	}

	return m, nil
}

// onKey routes a key press through the active mode.
func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case keymap.ModeSearch:
		return m.onSearchKey(msg)
	case keymap.ModeForm:
		return m.onFormKey(msg)
	case keymap.ModeConfirm:
		return m.onConfirmKey(msg)
	case keymap.ModeDetail:
		return m.onDetailKey(msg)
	default:
		return m.onNormalKey(msg)
	}
}

func (m Model) onNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keymap.GetBinding(msg, keymap.ModeNormal)
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit

	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
		return m, nil

	case keymap.CmdCursorDown:
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
		return m, nil

	case keymap.CmdCursorUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case keymap.CmdNextPage:
		m.composer.NextPage()
		m.cursor = 0
		return m, nil

	case keymap.CmdPrevPage:
		m.composer.PrevPage()
		m.cursor = 0
		return m, nil

	case keymap.CmdFirstPage:
		m.composer.SetPage(1)
		m.cursor = 0
		return m, nil

	case keymap.CmdLastPage:
		m.composer.SetPage(m.composer.PageCount())
		m.cursor = 0
		return m, nil

	case keymap.CmdToggleExpand:
		if row, ok := m.selectedRow(); ok {
			id := row.Account.ID
			if row.Synthetic {
				id = row.ParentID
			}
			m.composer.Toggle(id)
			m.clampCursor()
		}
		return m, nil

	case keymap.CmdEnterSearch:
		m.mode = keymap.ModeSearch
		m.searchIn.SetValue(m.composer.Query())
		m.searchIn.Focus()
		return m, nil

	case keymap.CmdClearSearch:
		if m.composer.Query() != "" {
			m.composer.SetQuery("")
			m.cursor = 0
		}
		return m, nil

	case keymap.CmdRefresh:
		m.loading = true
		m.nextGen()
		return m, tea.Batch(m.refreshCmd(), m.spin.Tick)

	case keymap.CmdOpenDetail:
		row, ok := m.selectedRow()
		if !ok || row.Synthetic {
			return m, nil
		}
		m.loading = true
		m.nextGen()
		return m, tea.Batch(m.openDetailCmd(row.Account.ID), m.spin.Tick)

	case keymap.CmdNewAccount:
		m.form = newAccountForm()
		m.returnMode = keymap.ModeNormal
		m.mode = keymap.ModeForm
		return m, nil

	case keymap.CmdEditAccount:
		row, ok := m.selectedRow()
		if !ok || row.Synthetic {
			return m, nil
		}
		m.form = editAccountForm(row.Account)
		m.returnMode = keymap.ModeNormal
		m.mode = keymap.ModeForm
		return m, nil

	case keymap.CmdDeleteAccount:
		row, ok := m.selectedRow()
		if !ok || row.Synthetic {
			return m, nil
		}
		p, err := m.orch.RequestDelete(row.Account.ID)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.pending = &p
		m.returnMode = keymap.ModeNormal
		m.mode = keymap.ModeConfirm
		return m, nil

	case keymap.CmdResetAll:
		p := m.orch.RequestReset()
		m.pending = &p
		m.returnMode = keymap.ModeNormal
		m.mode = keymap.ModeConfirm
		return m, nil
	}

	return m, nil
}

func (m Model) onDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keymap.GetBinding(msg, keymap.ModeDetail)
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit

	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
		return m, nil

	case keymap.CmdBack:
		m.orch.CloseDetail()
		m.detail = nil
		m.detailID = 0
		m.detailCursor = 0
		m.detailPage = 1
		m.mode = keymap.ModeNormal
		m.nextGen()
		return m, nil

	case keymap.CmdCursorDown:
		if m.detailCursor < len(m.detailVisible())-1 {
			m.detailCursor++
		}
		return m, nil

	case keymap.CmdCursorUp:
		if m.detailCursor > 0 {
			m.detailCursor--
		}
		return m, nil

	case keymap.CmdNextPage:
		m.detailPage = roster.ClampPage(m.detailPage+1, m.detailPageCount())
		m.detailCursor = 0
		return m, nil

	case keymap.CmdPrevPage:
		m.detailPage = roster.ClampPage(m.detailPage-1, m.detailPageCount())
		m.detailCursor = 0
		return m, nil

	case keymap.CmdRefresh:
		m.loading = true
		m.nextGen()
		return m, tea.Batch(m.openDetailCmd(m.detailID), m.spin.Tick)

	case keymap.CmdNewMailbox:
		m.form = newMailboxForm(m.detailID)
		m.returnMode = keymap.ModeDetail
		m.mode = keymap.ModeForm
		return m, nil

	case keymap.CmdEditMailbox:
		box, ok := m.selectedMailbox()
		if !ok {
			return m, nil
		}
		m.form = editMailboxForm(box)
		m.returnMode = keymap.ModeDetail
		m.mode = keymap.ModeForm
		return m, nil

	case keymap.CmdDeleteMailbox:
		box, ok := m.selectedMailbox()
		if !ok {
			return m, nil
		}
		p, err := m.orch.RequestDeleteMailbox(box.ID)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.pending = &p
		m.returnMode = keymap.ModeDetail
		m.mode = keymap.ModeConfirm
		return m, nil
	}

	return m, nil
}

func (m Model) onSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.keymap.GetBinding(msg, keymap.ModeSearch); ok {
		switch cmd {
		case keymap.CmdSearchAccept:
			// Applying a changed query always lands on page one.
			m.composer.SetQuery(m.searchIn.Value())
			m.cursor = 0
			m.searchIn.Blur()
			m.mode = keymap.ModeNormal
			return m, nil

		case keymap.CmdSearchCancel:
			m.searchIn.SetValue(m.composer.Query())
			m.searchIn.Blur()
			m.mode = keymap.ModeNormal
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.searchIn, cmd = m.searchIn.Update(msg)
	return m, cmd
}

func (m Model) onFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.mode = m.returnMode
		return m, nil
	}

	if cmd, ok := m.keymap.GetBinding(msg, keymap.ModeForm); ok {
		switch cmd {
		case keymap.CmdFormCancel:
			m.form = nil
			m.mode = m.returnMode
			return m, nil

		case keymap.CmdFormNextField:
			m.form.nextField()
			return m, nil

		case keymap.CmdFormPrevField:
			m.form.prevField()
			return m, nil

		case keymap.CmdFormToggleRole:
			m.form.toggleRole()
			return m, nil

		case keymap.CmdFormSubmit:
			return m.submitForm()
		}
	}

	return m, m.form.update(msg)
}

// submitForm turns the form contents into the matching mutation command.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	f := m.form
	m.form = nil
	m.mode = m.returnMode
	m.loading = true

	switch f.kind {
	case formCreateAccount:
		draft := roster.AccountDraft{
			Name:     f.value(0),
			Password: f.value(1),
			Role:     f.role,
		}
		return m, tea.Batch(m.createAccountCmd(draft), m.spin.Tick)

	case formEditAccount:
		name := f.value(0)
		patch := roster.AccountPatch{Name: &name, Role: &f.role}
		if pw := f.value(1); pw != "" {
			patch.Password = &pw
		}
		return m, tea.Batch(m.updateAccountCmd(f.targetID, patch), m.spin.Tick)

	case formCreateMailbox:
		draft := roster.MailboxDraft{
			UserID:   f.targetID,
			Email:    f.value(0),
			Password: f.value(1),
		}
		return m, tea.Batch(m.createMailboxCmd(draft), m.spin.Tick)

	default:
		return m, tea.Batch(m.updateMailboxCmd(f.targetID, f.value(0), f.value(1)), m.spin.Tick)
	}
}

func (m Model) onConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pending == nil {
		m.mode = m.returnMode
		return m, nil
	}

	cmd, ok := m.keymap.GetBinding(msg, keymap.ModeConfirm)
	if !ok {
		return m, nil
	}

	p := *m.pending
	m.pending = nil
	m.mode = m.returnMode

	switch cmd {
	case keymap.CmdConfirmApprove:
		m.loading = true
		return m, tea.Batch(m.resolveCmd(p, true), m.spin.Tick)
	case keymap.CmdConfirmDecline:
		return m, m.resolveCmd(p, false)
	}
	return m, nil
}

// Async response handlers

func (m Model) onRefreshDone(msg refreshDoneMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}
	m.loading = false
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	m.clampCursor()
	return m, m.setNotice(fmt.Sprintf("%d accounts loaded", len(m.composer.Filtered())))
}

func (m Model) onDetailLoaded(msg detailLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}
	m.loading = false
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	m.detail = msg.detail
	m.detailID = msg.accountID
	m.detailPage = 1
	m.detailCursor = 0
	m.mode = keymap.ModeDetail
	return m, nil
}

func (m Model) onAccountSaved(msg accountSavedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	m.clampCursor()
	if msg.created {
		// New records land at the top of an unfiltered first page.
		m.composer.SetQuery("")
		m.composer.SetPage(1)
		m.cursor = 0
		return m, m.setNotice(fmt.Sprintf("account %q created", msg.account.Name))
	}
	return m, m.setNotice(fmt.Sprintf("account %q updated", msg.account.Name))
}

func (m Model) onMailboxSaved(msg mailboxSavedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	m.clampDetailCursor()
	if msg.created {
		m.detailPage = 1
		m.detailCursor = 0
		return m, m.setNotice(fmt.Sprintf("mailbox %q added", msg.box.Email))
	}
	return m, m.setNotice(fmt.Sprintf("mailbox %q updated", msg.box.Email))
}

func (m Model) onResolveDone(msg resolveDoneMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		if errors.Is(msg.err, errors.ErrConfirmationDeclined) {
			return m, m.setNotice("cancelled")
		}
		m.setError(msg.err)
		return m, nil
	}

	switch msg.kind {
	case panel.ActionDeleteAccount:
		m.clampCursor()
		return m, m.setNotice("account deleted")
	case panel.ActionDeleteMailbox:
		m.clampDetailCursor()
		return m, m.setNotice("mailbox deleted")
	case panel.ActionResetAll:
		m.cursor = 0
		m.composer.SetPage(1)
		return m, m.setNotice("all delivery data reset")
	}
	return m, nil
}
