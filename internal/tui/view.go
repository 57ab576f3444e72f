package tui

import (
	"fmt"
	"strings"

	"github.com/inboxing/mailadm/internal/roster"
	"github.com/inboxing/mailadm/internal/tui/keymap"
	"github.com/inboxing/mailadm/internal/tui/styles"
	"github.com/inboxing/mailadm/internal/util"
)

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return "bye\n"
	}

	var b strings.Builder

	switch {
	case m.mode == keymap.ModeForm && m.form != nil:
		b.WriteString(m.form.view() + "\n")
	case m.mode == keymap.ModeConfirm && m.pending != nil:
		b.WriteString(m.confirmView() + "\n")
	case m.mode == keymap.ModeDetail:
		b.WriteString(m.detailView())
	default:
		b.WriteString(m.rosterView())
	}

	b.WriteString(m.statusView())

	if m.showHelp {
		b.WriteString(m.helpView())
	}

	return b.String()
}

// rosterView renders the account table with its pager strip.
func (m Model) rosterView() string {
	var b strings.Builder

	title := styles.Title.Render("Mail accounts")
	if m.loading {
		title += " " + m.spin.View()
	}
	b.WriteString(title + "\n")
	b.WriteString(m.statsLine() + "\n")

	if m.mode == keymap.ModeSearch {
		b.WriteString(m.searchIn.View() + "\n")
	} else if q := m.composer.Query(); q != "" {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("filter: %q (%d matches)",
			q, len(m.composer.Filtered()))) + "\n")
	}
	b.WriteString("\n")

	header := fmt.Sprintf("  %-24s %-6s %8s %8s %8s %7s",
		"Name", "Role", "Total", "Inbox", "Spam", "Ratio")
	b.WriteString(styles.TableHeader.Render(header) + "\n")

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(styles.Muted.Render("  no accounts") + "\n")
	}
	for i, row := range rows {
		b.WriteString(m.renderRow(row, i == m.cursor) + "\n")
	}

	b.WriteString("\n" + renderPager(m.composer.PageTokens(), m.composer.Page()) + "\n")
	return b.String()
}

// statsLine aggregates delivery counters across the loaded roster.
func (m Model) statsLine() string {
	var sent, inbox, spam int
	for _, a := range m.orch.Store().All() {
		sent += a.TotalSent
		inbox += a.Inbox
		spam += a.Spam
	}
	ratio := roster.Ratio(roster.Account{TotalSent: sent, Inbox: inbox})
	return styles.Subtitle.Render(fmt.Sprintf("%d accounts · inbox %d · spam %d · ratio %s",
		m.orch.Store().Len(), inbox, spam, ratio))
}

// renderRow formats one roster line. Child rows are indented under their
// parent and show the rewritten pseudo-ID instead of a role badge.
func (m Model) renderRow(row roster.Row, selected bool) string {
	a := row.Account

	if row.Synthetic {
		label := util.TruncateString(fmt.Sprintf("%s #%d", a.Name, a.ID), 20)
		line := fmt.Sprintf("    • %-20s %-6s %8d %8d %8d %7s",
			label, "", a.TotalSent, a.Inbox, a.Spam, roster.Ratio(a))
		if selected {
			return styles.RowSelected.Render(line)
		}
		return styles.RowChild.Render(line)
	}

	marker := "  "
	if m.composer.IsExpanded(a.ID) {
		marker = "▾ "
	}

	line := fmt.Sprintf("%s%-24s %-6s %8d %8d %8d %7s",
		marker, util.TruncateString(a.Name, 24), a.Role, a.TotalSent, a.Inbox, a.Spam, roster.Ratio(a))
	switch {
	case selected:
		return styles.RowSelected.Render(line)
	case a.Role == roster.RoleAdmin:
		return styles.Warning.Render(line)
	default:
		return styles.Text.Render(line)
	}
}

// detailView renders the mailbox list for the open account.
func (m Model) detailView() string {
	var b strings.Builder

	name := fmt.Sprintf("account %d", m.detailID)
	if a, ok := m.orch.Store().Get(m.detailID); ok {
		name = a.Name
	}
	title := styles.Title.Render("Mailboxes") + " " + styles.Subtitle.Render(name)
	if m.loading {
		title += " " + m.spin.View()
	}
	b.WriteString(title + "\n\n")

	header := fmt.Sprintf("  %-6s %-32s %s", "ID", "Email", "Password")
	b.WriteString(styles.TableHeader.Render(header) + "\n")

	visible := m.detailVisible()
	if len(visible) == 0 {
		b.WriteString(styles.Muted.Render("  no mailboxes") + "\n")
	}
	for i, box := range visible {
		line := fmt.Sprintf("  %-6d %-32s %s", box.ID, util.TruncateString(box.Email, 32), box.Password)
		if i == m.detailCursor {
			b.WriteString(styles.RowSelected.Render(line) + "\n")
		} else {
			b.WriteString(styles.Text.Render(line) + "\n")
		}
	}

	total := m.detailPageCount()
	page := roster.ClampPage(m.detailPage, total)
	b.WriteString("\n" + renderPager(roster.DetailWindow.Pages(total, page), page) + "\n")
	return b.String()
}

// renderPager draws a token strip, highlighting the current page.
func renderPager(tokens []roster.Token, current int) string {
	if len(tokens) == 0 {
		return styles.PageInactive.Render("–")
	}
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.IsEllipsis() {
			parts = append(parts, styles.PageInactive.Render("…"))
			continue
		}
		label := fmt.Sprintf("%d", int(t))
		if int(t) == current {
			parts = append(parts, styles.PageActive.Render(label))
		} else {
			parts = append(parts, styles.PageInactive.Render(label))
		}
	}
	return strings.Join(parts, "")
}

// confirmView renders the destructive-action prompt.
func (m Model) confirmView() string {
	var b strings.Builder
	b.WriteString(styles.Warning.Render("Confirm") + "\n\n")
	b.WriteString(m.pending.Label + "\n\n")
	b.WriteString(styles.HelpKey.Render("y") + " confirm  " +
		styles.HelpKey.Render("n") + " cancel")
	return styles.ConfirmBox.Render(b.String())
}

// statusView renders the status line.
func (m Model) statusView() string {
	if m.status == "" {
		return ""
	}
	line := styles.StatusNotice.Render("✓ " + m.status)
	if m.statusIsErr {
		line = styles.StatusError.Render("✗ " + m.status)
	}
	if m.width > 0 {
		line = util.TruncateANSI(line, m.width)
	}
	return line + "\n"
}

// helpView lists the bindings active in the current mode, grouped by
// category.
func (m Model) helpView() string {
	bindings := m.keymap.GetModeBindings(m.mode)
	if len(bindings) == 0 {
		return ""
	}

	var order []string
	groups := make(map[string][]string)
	for _, kb := range bindings {
		if _, ok := groups[kb.Category]; !ok {
			order = append(order, kb.Category)
		}
		groups[kb.Category] = append(groups[kb.Category],
			styles.HelpKey.Render(kb.String())+" "+kb.Description)
	}

	var b strings.Builder
	for _, cat := range order {
		b.WriteString(styles.Muted.Render(cat+": ") + strings.Join(groups[cat], "  ") + "\n")
	}
	return styles.HelpBar.Render(b.String())
}
