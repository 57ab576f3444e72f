package panel

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/inboxing/mailadm/internal/errors"
)

// ErrNoPendingAction is returned when a confirmation id does not match
// any held action.
var ErrNoPendingAction = errors.New("no pending action with that id")

// ActionKind identifies the kind of destructive action being confirmed.
type ActionKind string

const (
	ActionDeleteAccount ActionKind = "delete_account"
	ActionDeleteMailbox ActionKind = "delete_mailbox"
	ActionResetAll      ActionKind = "reset_all"
)

// Pending is a destructive action held by the Gate until the operator
// decides.
type Pending struct {
	// ID is the confirmation handle passed back to Resolve.
	ID string
	// Kind is what the action will do if approved.
	Kind ActionKind
	// TargetID is the record the action applies to; zero for reset-all.
	TargetID int
	// Label is a short human-readable description for the confirm prompt.
	Label string
	// RequestedAt is when the action was held.
	RequestedAt time.Time
}

// Gate holds destructive actions between the request and the operator's
// decision. Nothing held here has touched the service yet.
type Gate struct {
	mu      sync.Mutex
	pending map[string]Pending
}

// NewGate creates an empty Gate.
func NewGate() *Gate {
	return &Gate{pending: make(map[string]Pending)}
}

// Hold registers a destructive action and returns its pending handle.
func (g *Gate) Hold(kind ActionKind, targetID int, label string) Pending {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := Pending{
		ID:          uuid.NewString(),
		Kind:        kind,
		TargetID:    targetID,
		Label:       label,
		RequestedAt: time.Now(),
	}
	g.pending[p.ID] = p
	return p
}

// Take removes and returns the pending action with the given id.
// The action is removed regardless of the operator's decision; a second
// Take with the same id fails.
func (g *Gate) Take(id string) (Pending, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.pending[id]
	if !ok {
		return Pending{}, fmt.Errorf("%w: %s", ErrNoPendingAction, id)
	}
	delete(g.pending, id)
	return p, nil
}

// IsPending reports whether the given id is currently held.
func (g *Gate) IsPending(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.pending[id]
	return ok
}

// PendingActions returns the held actions, oldest first.
// The returned slice is a copy and safe to modify.
func (g *Gate) PendingActions() []Pending {
	g.mu.Lock()
	defer g.mu.Unlock()

	actions := make([]Pending, 0, len(g.pending))
	for _, p := range g.pending {
		actions = append(actions, p)
	}
	sort.Slice(actions, func(i, j int) bool {
		return actions[i].RequestedAt.Before(actions[j].RequestedAt)
	})
	return actions
}

// Clear drops all held actions without resolving them.
func (g *Gate) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = make(map[string]Pending)
}
