package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inboxing/mailadm/internal/roster"
	"github.com/inboxing/mailadm/internal/tui/styles"
)

// formKind identifies what a form creates or edits.
type formKind int

const (
	formCreateAccount formKind = iota
	formEditAccount
	formCreateMailbox
	formEditMailbox
)

// form is a small field-based input overlay backed by bubbles text
// inputs. Account forms carry a role flag alongside the text fields.
type form struct {
	kind     formKind
	targetID int
	inputs   []textinput.Model
	labels   []string
	focus    int
	role     roster.Role
}

func newInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = 128
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func newAccountForm() *form {
	f := &form{
		kind:   formCreateAccount,
		labels: []string{"Name", "Password"},
		inputs: []textinput.Model{
			newInput("account name", false),
			newInput("password", true),
		},
		role: roster.RoleUser,
	}
	f.inputs[0].Focus()
	return f
}

func editAccountForm(a roster.Account) *form {
	f := &form{
		kind:     formEditAccount,
		targetID: a.ID,
		labels:   []string{"Name", "Password"},
		inputs: []textinput.Model{
			newInput("account name", false),
			newInput("new password", true),
		},
		role: a.Role,
	}
	f.inputs[0].SetValue(a.Name)
	f.inputs[0].Focus()
	return f
}

func newMailboxForm(accountID int) *form {
	f := &form{
		kind:     formCreateMailbox,
		targetID: accountID,
		labels:   []string{"Email", "Password"},
		inputs: []textinput.Model{
			newInput("address@example.com", false),
			newInput("app password", true),
		},
	}
	f.inputs[0].Focus()
	return f
}

func editMailboxForm(box roster.Mailbox) *form {
	f := &form{
		kind:     formEditMailbox,
		targetID: box.ID,
		labels:   []string{"Email", "Password"},
		inputs: []textinput.Model{
			newInput("address@example.com", false),
			newInput("app password", true),
		},
	}
	f.inputs[0].SetValue(box.Email)
	f.inputs[1].SetValue(box.Password)
	f.inputs[0].Focus()
	return f
}

// isAccountForm reports whether the form edits an account (and so has a
// role flag).
func (f *form) isAccountForm() bool {
	return f.kind == formCreateAccount || f.kind == formEditAccount
}

// nextField moves focus forward, wrapping at the end.
func (f *form) nextField() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// prevField moves focus backward, wrapping at the start.
func (f *form) prevField() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// toggleRole flips the role flag on account forms.
func (f *form) toggleRole() {
	if !f.isAccountForm() {
		return
	}
	if f.role == roster.RoleAdmin {
		f.role = roster.RoleUser
	} else {
		f.role = roster.RoleAdmin
	}
}

// update forwards a message to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// value returns the trimmed value of the named field index.
func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// title returns the overlay heading for the form.
func (f *form) title() string {
	switch f.kind {
	case formCreateAccount:
		return "New account"
	case formEditAccount:
		return "Edit account"
	case formCreateMailbox:
		return "New mailbox"
	default:
		return "Edit mailbox"
	}
}

// view renders the form overlay.
func (f *form) view() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render(f.title()))
	b.WriteString("\n\n")

	for i, in := range f.inputs {
		label := styles.FormLabel.Render(f.labels[i] + ":")
		b.WriteString(label + " " + in.View() + "\n")
	}

	if f.isAccountForm() {
		badge := styles.BadgeUser.Render(f.role.String())
		if f.role == roster.RoleAdmin {
			badge = styles.BadgeAdmin.Render(f.role.String())
		}
		b.WriteString(styles.FormLabel.Render("Role:") + " " + badge +
			styles.Muted.Render("  (ctrl+r to toggle)") + "\n")
	}

	b.WriteString("\n" + styles.HelpBar.Render(
		styles.HelpKey.Render("enter")+" save  "+
			styles.HelpKey.Render("tab")+" next field  "+
			styles.HelpKey.Render("esc")+" cancel"))

	return styles.FormBox.Render(b.String())
}
