// Package panel coordinates mutations between the terminal UI, the account
// service, and the local record store.
//
// The Orchestrator owns the rule that the store only changes after the
// service has confirmed a mutation. There are no optimistic updates: a
// create, update, or delete first goes to the service, and only a success
// response touches the store. Failed mutations leave the store exactly as
// it was and surface as a MutationFailedEvent on the bus.
//
// Destructive operations go through a two-step confirmation. The first
// call registers the action with the Gate and returns a pending handle;
// nothing is sent to the service until Resolve is called with the
// operator's decision. A declined confirmation aborts the action with
// ErrConfirmationDeclined.
package panel
