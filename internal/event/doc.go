// Package event defines the mutation events published by the panel
// orchestrator and a small synchronous pub/sub bus to deliver them.
//
// Events decouple the orchestrator from the parts that react to confirmed
// mutations. The structured logger records every outcome and the TUI shell
// refreshes its notices without either being a direct dependency.
//
// Event type identifiers follow the "category.action" convention
// (for example "account.created", "mutation.failed").
package event
