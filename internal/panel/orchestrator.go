package panel

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/inboxing/mailadm/internal/errors"
	"github.com/inboxing/mailadm/internal/event"
	"github.com/inboxing/mailadm/internal/logging"
	"github.com/inboxing/mailadm/internal/roster"
)

// maxNameLength bounds account names, matching the service's column width.
const maxNameLength = 64

// Orchestrator routes mutations through the service and applies confirmed
// results to the local stores. At most one mutation is in flight at a
// time; a submit while another is pending fails with ErrMutationInFlight.
type Orchestrator struct {
	svc    Service
	store  *roster.Store
	gate   *Gate
	bus    *event.Bus
	logger *logging.Logger

	mu         sync.Mutex
	submitting bool
	detail     *roster.MailboxStore
}

// NewOrchestrator creates an Orchestrator over the given service and store.
func NewOrchestrator(svc Service, store *roster.Store, bus *event.Bus, logger *logging.Logger) *Orchestrator {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Orchestrator{
		svc:    svc,
		store:  store,
		gate:   NewGate(),
		bus:    bus,
		logger: logger,
	}
}

// Store returns the account store the orchestrator mutates.
func (o *Orchestrator) Store() *roster.Store {
	return o.store
}

// Gate returns the confirmation gate, for surfacing pending prompts.
func (o *Orchestrator) Gate() *Gate {
	return o.gate
}

// Detail returns the mailbox store for the currently open account, or nil
// when no detail view is open.
func (o *Orchestrator) Detail() *roster.MailboxStore {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.detail
}

// begin claims the single mutation slot. It fails with ErrMutationInFlight
// if another mutation has not settled yet.
func (o *Orchestrator) begin(op string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.submitting {
		return fmt.Errorf("%s: %w", op, errors.ErrMutationInFlight)
	}
	o.submitting = true
	return nil
}

// end releases the mutation slot.
func (o *Orchestrator) end() {
	o.mu.Lock()
	o.submitting = false
	o.mu.Unlock()
}

// Submitting reports whether a mutation is currently in flight.
func (o *Orchestrator) Submitting() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.submitting
}

// fail logs a mutation failure and publishes it on the bus.
func (o *Orchestrator) fail(op string, err error) error {
	o.logger.Warn("mutation failed", "operation", op, "error", err)
	o.bus.Publish(event.NewMutationFailedEvent(op, err))
	return err
}

// Refresh reloads the account roster from the service.
func (o *Orchestrator) Refresh(ctx context.Context) error {
	accounts, err := o.svc.ListAccounts(ctx)
	if err != nil {
		return err
	}
	if err := o.store.Replace(accounts); err != nil {
		return err
	}
	o.logger.Debug("roster refreshed", "count", len(accounts))
	return nil
}

// validateDraft checks an account draft locally before any request.
func validateDraft(draft roster.AccountDraft) error {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return errors.NewValidationError("name", "must not be empty")
	}
	if len(name) > maxNameLength {
		return errors.NewValidationError("name", fmt.Sprintf("must be at most %d characters", maxNameLength))
	}
	if draft.Password == "" {
		return errors.NewValidationError("password", "must not be empty")
	}
	return nil
}

// Create validates the draft, submits it, and inserts the confirmed
// record at the front of the store.
func (o *Orchestrator) Create(ctx context.Context, draft roster.AccountDraft) (roster.Account, error) {
	const op = "create account"

	if err := validateDraft(draft); err != nil {
		return roster.Account{}, o.fail(op, err)
	}
	if err := o.begin(op); err != nil {
		return roster.Account{}, err
	}
	defer o.end()

	draft.Name = strings.TrimSpace(draft.Name)
	account, err := o.svc.CreateAccount(ctx, draft)
	if err != nil {
		return roster.Account{}, o.fail(op, err)
	}
	if err := o.store.Insert(account); err != nil {
		return roster.Account{}, o.fail(op, err)
	}

	o.logger.Info("account created", "account_id", account.ID, "name", account.Name)
	o.bus.Publish(event.NewAccountCreatedEvent(account.ID, account.Name))
	return account, nil
}

// Update resolves the patch against the current record, submits the full
// field set, and merges the confirmed result. Ids not present in the
// store, including the synthetic child rows the view generates, are
// rejected locally without a request.
func (o *Orchestrator) Update(ctx context.Context, id int, patch roster.AccountPatch) (roster.Account, error) {
	const op = "update account"

	current, ok := o.store.Get(id)
	if !ok {
		return roster.Account{}, o.fail(op, errors.NewNotFoundError("account", id))
	}

	name := current.Name
	if patch.Name != nil {
		name = strings.TrimSpace(*patch.Name)
		if name == "" {
			return roster.Account{}, o.fail(op, errors.NewValidationError("name", "must not be empty"))
		}
		if len(name) > maxNameLength {
			return roster.Account{}, o.fail(op,
				errors.NewValidationError("name", fmt.Sprintf("must be at most %d characters", maxNameLength)))
		}
	}
	password := current.Password
	if patch.Password != nil {
		password = *patch.Password
	}
	role := current.Role
	if patch.Role != nil {
		role = *patch.Role
	}

	if err := o.begin(op); err != nil {
		return roster.Account{}, err
	}
	defer o.end()

	echo, err := o.svc.UpdateAccount(ctx, id, name, password, role)
	if err != nil {
		return roster.Account{}, o.fail(op, err)
	}

	merged := roster.AccountPatch{Name: &echo.Name, Role: &echo.Role}
	if patch.Password != nil {
		merged.Password = &password
	}
	if !o.store.Merge(id, merged) {
		return roster.Account{}, o.fail(op, errors.NewNotFoundError("account", id))
	}

	updated, _ := o.store.Get(id)
	o.logger.Info("account updated", "account_id", id, "name", updated.Name)
	o.bus.Publish(event.NewAccountUpdatedEvent(id, updated.Name))
	return updated, nil
}

// RequestDelete holds an account deletion for confirmation. The service
// is not contacted until the operator approves via Resolve.
func (o *Orchestrator) RequestDelete(id int) (Pending, error) {
	account, ok := o.store.Get(id)
	if !ok {
		err := errors.NewNotFoundError("account", id)
		return Pending{}, o.fail("delete account", err)
	}

	label := fmt.Sprintf("Delete account %q (#%d)?", account.Name, account.ID)
	p := o.gate.Hold(ActionDeleteAccount, id, label)
	o.logger.Debug("delete held for confirmation", "account_id", id, "confirm_id", p.ID)
	return p, nil
}

// RequestDeleteMailbox holds a mailbox deletion for confirmation.
func (o *Orchestrator) RequestDeleteMailbox(id int) (Pending, error) {
	o.mu.Lock()
	detail := o.detail
	o.mu.Unlock()

	if detail == nil {
		err := errors.NewNotFoundError("mailbox", id)
		return Pending{}, o.fail("delete mailbox", err)
	}
	box, ok := detail.Get(id)
	if !ok {
		err := errors.NewNotFoundError("mailbox", id)
		return Pending{}, o.fail("delete mailbox", err)
	}

	label := fmt.Sprintf("Delete mailbox %q (#%d)?", box.Email, box.ID)
	p := o.gate.Hold(ActionDeleteMailbox, id, label)
	return p, nil
}

// RequestReset holds a reset-all for confirmation.
func (o *Orchestrator) RequestReset() Pending {
	return o.gate.Hold(ActionResetAll, 0, "Reset all delivery data? This cannot be undone.")
}

// Resolve settles a held action with the operator's decision. A decline
// aborts the action and returns ErrConfirmationDeclined; an approval
// executes it. Either way the pending entry is consumed.
func (o *Orchestrator) Resolve(ctx context.Context, confirmID string, approved bool) error {
	p, err := o.gate.Take(confirmID)
	if err != nil {
		return err
	}

	op := string(p.Kind)
	if !approved {
		o.logger.Info("action declined", "kind", op, "target_id", p.TargetID)
		return o.fail(op, errors.ErrConfirmationDeclined)
	}

	if err := o.begin(op); err != nil {
		return err
	}
	defer o.end()

	switch p.Kind {
	case ActionDeleteAccount:
		return o.deleteAccount(ctx, p.TargetID)
	case ActionDeleteMailbox:
		return o.deleteMailbox(ctx, p.TargetID)
	case ActionResetAll:
		return o.resetAll(ctx)
	default:
		return fmt.Errorf("unknown action kind %q", p.Kind)
	}
}

func (o *Orchestrator) deleteAccount(ctx context.Context, id int) error {
	const op = "delete account"

	if err := o.svc.DeleteAccount(ctx, id); err != nil {
		// The record vanished server-side between confirm and submit.
		// Dropping it locally converges both sides, so treat as done.
		if errors.Is(err, errors.ErrNotFound) {
			o.store.Remove(id)
			o.bus.Publish(event.NewAccountDeletedEvent(id))
			return nil
		}
		return o.fail(op, err)
	}

	o.store.Remove(id)
	o.logger.Info("account deleted", "account_id", id)
	o.bus.Publish(event.NewAccountDeletedEvent(id))
	return nil
}

func (o *Orchestrator) deleteMailbox(ctx context.Context, id int) error {
	const op = "delete mailbox"

	if err := o.svc.DeleteMailbox(ctx, id); err != nil {
		return o.fail(op, err)
	}

	o.mu.Lock()
	detail := o.detail
	o.mu.Unlock()

	accountID := 0
	if detail != nil {
		accountID = detail.UserID()
		detail.Remove(id)
	}
	o.logger.Info("mailbox deleted", "mailbox_id", id)
	o.bus.Publish(event.NewMailboxDeletedEvent(id, accountID))
	return nil
}

func (o *Orchestrator) resetAll(ctx context.Context) error {
	const op = "reset all"

	if err := o.svc.ResetAllData(ctx); err != nil {
		return o.fail(op, err)
	}

	o.store.Clear()
	o.logger.Info("all delivery data reset")
	o.bus.Publish(event.NewStoreResetEvent())
	return nil
}

// OpenDetail loads the mailbox list for an account and makes it the
// current detail store.
func (o *Orchestrator) OpenDetail(ctx context.Context, accountID int) (*roster.MailboxStore, error) {
	if !o.store.Contains(accountID) {
		return nil, errors.NewNotFoundError("account", accountID)
	}

	boxes, err := o.svc.ListMailboxes(ctx, accountID)
	if err != nil {
		return nil, err
	}

	detail := roster.NewMailboxStore(accountID)
	detail.Replace(boxes)

	o.mu.Lock()
	o.detail = detail
	o.mu.Unlock()
	return detail, nil
}

// CloseDetail drops the current detail store.
func (o *Orchestrator) CloseDetail() {
	o.mu.Lock()
	o.detail = nil
	o.mu.Unlock()
}

// CreateMailbox validates and submits a new monitored address for the
// account whose detail view is open.
func (o *Orchestrator) CreateMailbox(ctx context.Context, draft roster.MailboxDraft) (roster.Mailbox, error) {
	const op = "create mailbox"

	if strings.TrimSpace(draft.Email) == "" {
		return roster.Mailbox{}, o.fail(op, errors.NewValidationError("email", "must not be empty"))
	}
	if !strings.Contains(draft.Email, "@") {
		return roster.Mailbox{}, o.fail(op, errors.NewValidationError("email", "must be an email address"))
	}
	if draft.Password == "" {
		return roster.Mailbox{}, o.fail(op, errors.NewValidationError("password", "must not be empty"))
	}

	o.mu.Lock()
	detail := o.detail
	o.mu.Unlock()
	if detail == nil || detail.UserID() != draft.UserID {
		return roster.Mailbox{}, o.fail(op, errors.NewNotFoundError("account", draft.UserID))
	}

	if err := o.begin(op); err != nil {
		return roster.Mailbox{}, err
	}
	defer o.end()

	box, err := o.svc.CreateMailbox(ctx, draft)
	if err != nil {
		return roster.Mailbox{}, o.fail(op, err)
	}
	detail.Insert(box)

	o.logger.Info("mailbox created", "mailbox_id", box.ID, "account_id", box.UserID)
	o.bus.Publish(event.NewMailboxCreatedEvent(box.ID, box.UserID))
	return box, nil
}

// UpdateMailbox submits new address and password for a mailbox entry in
// the open detail view.
func (o *Orchestrator) UpdateMailbox(ctx context.Context, id int, email, password string) (roster.Mailbox, error) {
	const op = "update mailbox"

	if strings.TrimSpace(email) == "" {
		return roster.Mailbox{}, o.fail(op, errors.NewValidationError("email", "must not be empty"))
	}
	if password == "" {
		return roster.Mailbox{}, o.fail(op, errors.NewValidationError("password", "must not be empty"))
	}

	o.mu.Lock()
	detail := o.detail
	o.mu.Unlock()
	if detail == nil {
		return roster.Mailbox{}, o.fail(op, errors.NewNotFoundError("mailbox", id))
	}
	if _, ok := detail.Get(id); !ok {
		return roster.Mailbox{}, o.fail(op, errors.NewNotFoundError("mailbox", id))
	}

	if err := o.begin(op); err != nil {
		return roster.Mailbox{}, err
	}
	defer o.end()

	box, err := o.svc.UpdateMailbox(ctx, id, email, password)
	if err != nil {
		return roster.Mailbox{}, o.fail(op, err)
	}
	box.UserID = detail.UserID()
	if !detail.Update(box) {
		return roster.Mailbox{}, o.fail(op, errors.NewNotFoundError("mailbox", id))
	}

	o.logger.Info("mailbox updated", "mailbox_id", id)
	o.bus.Publish(event.NewMailboxUpdatedEvent(id, box.UserID))
	return box, nil
}
