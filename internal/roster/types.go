package roster

// Role distinguishes ordinary accounts from administrators.
type Role int

const (
	RoleUser Role = iota
	RoleAdmin
)

// String returns the display label for the role.
func (r Role) String() string {
	if r == RoleAdmin {
		return "Admin"
	}
	return "User"
}

// Account is one manageable mail account as reported by the service.
// IDs are server-assigned and immutable; TotalSent, Inbox and Spam are
// aggregates computed server-side. Ratio is derived per render, never stored
// (see [Ratio]).
type Account struct {
	ID        int
	Name      string
	Password  string
	Role      Role
	TotalSent int
	Inbox     int
	Spam      int
}

// AccountDraft carries the operator-editable fields of an account for
// create and update submissions.
type AccountDraft struct {
	Name     string
	Password string
	Role     Role
}

// AccountPatch is a shallow merge applied to a stored account after the
// service confirms an update. Nil fields keep their prior value.
type AccountPatch struct {
	Name     *string
	Password *string
	Role     *Role
}

// Mailbox is one mailbox entry belonging to an account, shown on the
// detail screen.
type Mailbox struct {
	ID       int
	UserID   int
	Email    string
	Password string
}

// MailboxDraft carries the editable fields of a mailbox entry.
type MailboxDraft struct {
	UserID   int
	Email    string
	Password string
}
