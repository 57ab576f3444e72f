package event

import "time"

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type,
	// in "category.action" form (e.g. "account.created").
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// AccountCreatedEvent is emitted after the service confirms a new account.
type AccountCreatedEvent struct {
	baseEvent
	AccountID int
	Name      string
}

// NewAccountCreatedEvent creates an AccountCreatedEvent.
func NewAccountCreatedEvent(accountID int, name string) AccountCreatedEvent {
	return AccountCreatedEvent{
		baseEvent: newBaseEvent("account.created"),
		AccountID: accountID,
		Name:      name,
	}
}

// AccountUpdatedEvent is emitted after the service confirms an account edit.
type AccountUpdatedEvent struct {
	baseEvent
	AccountID int
	Name      string
}

// NewAccountUpdatedEvent creates an AccountUpdatedEvent.
func NewAccountUpdatedEvent(accountID int, name string) AccountUpdatedEvent {
	return AccountUpdatedEvent{
		baseEvent: newBaseEvent("account.updated"),
		AccountID: accountID,
		Name:      name,
	}
}

// AccountDeletedEvent is emitted after the service confirms an account
// deletion.
type AccountDeletedEvent struct {
	baseEvent
	AccountID int
}

// NewAccountDeletedEvent creates an AccountDeletedEvent.
func NewAccountDeletedEvent(accountID int) AccountDeletedEvent {
	return AccountDeletedEvent{
		baseEvent: newBaseEvent("account.deleted"),
		AccountID: accountID,
	}
}

// MailboxCreatedEvent is emitted after the service confirms a new mailbox
// entry on an account.
type MailboxCreatedEvent struct {
	baseEvent
	MailboxID int
	AccountID int
}

// NewMailboxCreatedEvent creates a MailboxCreatedEvent.
func NewMailboxCreatedEvent(mailboxID, accountID int) MailboxCreatedEvent {
	return MailboxCreatedEvent{
		baseEvent: newBaseEvent("mailbox.created"),
		MailboxID: mailboxID,
		AccountID: accountID,
	}
}

// MailboxUpdatedEvent is emitted after the service confirms a mailbox edit.
type MailboxUpdatedEvent struct {
	baseEvent
	MailboxID int
	AccountID int
}

// NewMailboxUpdatedEvent creates a MailboxUpdatedEvent.
func NewMailboxUpdatedEvent(mailboxID, accountID int) MailboxUpdatedEvent {
	return MailboxUpdatedEvent{
		baseEvent: newBaseEvent("mailbox.updated"),
		MailboxID: mailboxID,
		AccountID: accountID,
	}
}

// MailboxDeletedEvent is emitted after the service confirms a mailbox
// deletion.
type MailboxDeletedEvent struct {
	baseEvent
	MailboxID int
	AccountID int
}

// NewMailboxDeletedEvent creates a MailboxDeletedEvent.
func NewMailboxDeletedEvent(mailboxID, accountID int) MailboxDeletedEvent {
	return MailboxDeletedEvent{
		baseEvent: newBaseEvent("mailbox.deleted"),
		MailboxID: mailboxID,
		AccountID: accountID,
	}
}

// StoreResetEvent is emitted after the service confirms a reset-all.
type StoreResetEvent struct {
	baseEvent
}

// NewStoreResetEvent creates a StoreResetEvent.
func NewStoreResetEvent() StoreResetEvent {
	return StoreResetEvent{baseEvent: newBaseEvent("store.reset")}
}

// MutationFailedEvent is emitted when a mutation does not go through,
// whether from validation, a declined confirmation, or a request error.
// The store is untouched on this path.
type MutationFailedEvent struct {
	baseEvent
	Op  string
	Err error
}

// NewMutationFailedEvent creates a MutationFailedEvent.
func NewMutationFailedEvent(op string, err error) MutationFailedEvent {
	return MutationFailedEvent{
		baseEvent: newBaseEvent("mutation.failed"),
		Op:        op,
		Err:       err,
	}
}
