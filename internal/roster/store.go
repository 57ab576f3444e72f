package roster

import (
	"fmt"
	"sync"
)

// Store holds the canonical in-memory account list for one screen session.
//
// The list is populated once per mount from the service and mutated only by
// the panel orchestrator, and only after the service confirms a mutation.
// Account IDs are unique within the store at all times.
//
// Reads happen on the render loop while confirmed mutations arrive from
// request goroutines, so the store is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	accounts []Account
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Replace installs the freshly fetched account list, discarding whatever was
// held before. It fails if the list carries a duplicate ID.
func (s *Store) Replace(accounts []Account) error {
	seen := make(map[int]struct{}, len(accounts))
	for _, a := range accounts {
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("duplicate account id %d in fetched list", a.ID)
		}
		seen[a.ID] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = make([]Account, len(accounts))
	copy(s.accounts, accounts)
	return nil
}

// All returns a copy of the account list in store order.
func (s *Store) All() []Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// Get returns the account with the given ID.
func (s *Store) Get(id int) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// Contains reports whether an account with the given ID is held.
func (s *Store) Contains(id int) bool {
	_, ok := s.Get(id)
	return ok
}

// Len returns the number of held accounts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

// Insert places a newly created account at the front of the list, where the
// operator expects to find it after a confirmed create. It fails if the ID
// is already held.
func (s *Store) Insert(a Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, held := range s.accounts {
		if held.ID == a.ID {
			return fmt.Errorf("account id %d already in store", a.ID)
		}
	}
	s.accounts = append([]Account{a}, s.accounts...)
	return nil
}

// Merge applies a shallow patch to the account with the given ID: non-nil
// patch fields overwrite, nil fields keep their prior value. It reports
// whether the ID was found.
func (s *Store) Merge(id int, patch AccountPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.accounts[i].Name = *patch.Name
		}
		if patch.Password != nil {
			s.accounts[i].Password = *patch.Password
		}
		if patch.Role != nil {
			s.accounts[i].Role = *patch.Role
		}
		return true
	}
	return false
}

// Remove deletes the account with the given ID and reports whether it was
// present. Removing an already-absent ID is a no-op, not an error, so a
// duplicate delete confirmation cannot corrupt the list.
func (s *Store) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.accounts {
		if a.ID == id {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return true
		}
	}
	return false
}

// Clear discards every account. Used after a confirmed reset-all.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = nil
}

// MailboxStore holds the mailbox entries of one account for the detail
// screen. It follows the same reconciliation policy as [Store]: populated
// once per mount, mutated only on confirmed responses, idempotent removal.
type MailboxStore struct {
	mu      sync.RWMutex
	userID  int
	entries []Mailbox
}

// NewMailboxStore creates an empty store scoped to one account.
func NewMailboxStore(userID int) *MailboxStore {
	return &MailboxStore{userID: userID}
}

// UserID returns the account this store is scoped to.
func (s *MailboxStore) UserID() int { return s.userID }

// Replace installs the freshly fetched entry list.
func (s *MailboxStore) Replace(entries []Mailbox) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make([]Mailbox, len(entries))
	copy(s.entries, entries)
}

// All returns a copy of the entries in store order.
func (s *MailboxStore) All() []Mailbox {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Mailbox, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the entry with the given ID.
func (s *MailboxStore) Get(id int) (Mailbox, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.entries {
		if m.ID == id {
			return m, true
		}
	}
	return Mailbox{}, false
}

// Len returns the number of held entries.
func (s *MailboxStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Insert places a confirmed new entry at the front of the list.
func (s *MailboxStore) Insert(m Mailbox) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]Mailbox{m}, s.entries...)
}

// Update replaces the entry with the matching ID and reports whether it was
// found.
func (s *MailboxStore) Update(m Mailbox) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID == m.ID {
			s.entries[i] = m
			return true
		}
	}
	return false
}

// Remove deletes the entry with the given ID; absent IDs are a no-op.
func (s *MailboxStore) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.entries {
		if m.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}
