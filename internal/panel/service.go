package panel

import (
	"context"

	"github.com/inboxing/mailadm/internal/roster"
)

// Service is the slice of the account service API the orchestrator needs.
// The api.Client satisfies it; tests substitute a fake.
type Service interface {
	ListAccounts(ctx context.Context) ([]roster.Account, error)
	CreateAccount(ctx context.Context, draft roster.AccountDraft) (roster.Account, error)
	UpdateAccount(ctx context.Context, id int, name, password string, role roster.Role) (roster.Account, error)
	DeleteAccount(ctx context.Context, id int) error

	ListMailboxes(ctx context.Context, accountID int) ([]roster.Mailbox, error)
	CreateMailbox(ctx context.Context, draft roster.MailboxDraft) (roster.Mailbox, error)
	UpdateMailbox(ctx context.Context, id int, email, password string) (roster.Mailbox, error)
	DeleteMailbox(ctx context.Context, id int) error

	ResetAllData(ctx context.Context) error
}
