// Package internal contains integration tests that verify the packages
// work together: the orchestrator driving the store and confirmation
// gate, the event bus fanning out mutations, and the composer deriving
// the rendered rows.
package internal

import (
	"context"
	"testing"

	"github.com/inboxing/mailadm/internal/event"
	"github.com/inboxing/mailadm/internal/panel"
	"github.com/inboxing/mailadm/internal/roster"
)

type memoryService struct {
	accounts  map[int]roster.Account
	mailboxes map[int]roster.Mailbox
	nextID    int
}

func newMemoryService() *memoryService {
	return &memoryService{
		accounts:  make(map[int]roster.Account),
		mailboxes: make(map[int]roster.Mailbox),
	}
}

func (s *memoryService) seed(names ...string) {
	for _, name := range names {
		s.nextID++
		s.accounts[s.nextID] = roster.Account{ID: s.nextID, Name: name, TotalSent: 10, Inbox: 8, Spam: 2}
	}
}

func (s *memoryService) ListAccounts(context.Context) ([]roster.Account, error) {
	out := make([]roster.Account, 0, len(s.accounts))
	for i := 1; i <= s.nextID; i++ {
		if a, ok := s.accounts[i]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *memoryService) CreateAccount(_ context.Context, draft roster.AccountDraft) (roster.Account, error) {
	s.nextID++
	a := roster.Account{ID: s.nextID, Name: draft.Name, Password: draft.Password, Role: draft.Role}
	s.accounts[a.ID] = a
	return a, nil
}

func (s *memoryService) UpdateAccount(_ context.Context, id int, name, password string, role roster.Role) (roster.Account, error) {
	a := s.accounts[id]
	a.Name, a.Password, a.Role = name, password, role
	s.accounts[id] = a
	return a, nil
}

func (s *memoryService) DeleteAccount(_ context.Context, id int) error {
	delete(s.accounts, id)
	return nil
}

func (s *memoryService) ListMailboxes(_ context.Context, accountID int) ([]roster.Mailbox, error) {
	var out []roster.Mailbox
	for i := 1; i <= s.nextID; i++ {
		if m, ok := s.mailboxes[i]; ok && m.UserID == accountID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memoryService) CreateMailbox(_ context.Context, draft roster.MailboxDraft) (roster.Mailbox, error) {
	s.nextID++
	m := roster.Mailbox{ID: s.nextID, UserID: draft.UserID, Email: draft.Email, Password: draft.Password}
	s.mailboxes[m.ID] = m
	return m, nil
}

func (s *memoryService) UpdateMailbox(_ context.Context, id int, email, password string) (roster.Mailbox, error) {
	m := s.mailboxes[id]
	m.Email, m.Password = email, password
	s.mailboxes[id] = m
	return m, nil
}

func (s *memoryService) DeleteMailbox(_ context.Context, id int) error {
	delete(s.mailboxes, id)
	return nil
}

func (s *memoryService) ResetAllData(context.Context) error {
	s.accounts = make(map[int]roster.Account)
	s.mailboxes = make(map[int]roster.Mailbox)
	return nil
}

// TestAccountLifecycle walks an account through create, update, confirmed
// delete and checks the store and event bus track every step.
func TestAccountLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()
	svc.seed("alice", "bob")

	store := roster.NewStore()
	bus := event.NewBus()
	orch := panel.NewOrchestrator(svc, store, bus, nil)

	var published []string
	bus.SubscribeAll(func(e event.Event) {
		published = append(published, e.EventType())
	})

	if err := orch.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("store len = %d, want 2", store.Len())
	}

	created, err := orch.Create(ctx, roster.AccountDraft{Name: "carol", Password: "pw"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if store.All()[0].ID != created.ID {
		t.Fatalf("created account not at the front of the store")
	}

	name := "carol2"
	if _, err := orch.Update(ctx, created.ID, roster.AccountPatch{Name: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := store.Get(created.ID)
	if got.Name != "carol2" {
		t.Fatalf("store name = %q after update", got.Name)
	}

	p, err := orch.RequestDelete(created.ID)
	if err != nil {
		t.Fatalf("request delete: %v", err)
	}
	if store.Len() != 3 {
		t.Fatalf("delete applied before confirmation")
	}
	if err := orch.Resolve(ctx, p.ID, true); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if store.Contains(created.ID) {
		t.Fatalf("store still holds deleted account")
	}
	if _, ok := svc.accounts[created.ID]; ok {
		t.Fatalf("service still holds deleted account")
	}

	want := []string{"account.created", "account.updated", "account.deleted"}
	for _, w := range want {
		found := false
		for _, got := range published {
			if got == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("event %q never published (got %v)", w, published)
		}
	}
}

// TestComposerTracksStore checks that search, pagination and expansion
// compose over live store contents.
func TestComposerTracksStore(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()
	svc.seed("alice", "alina", "bob", "carol", "dave", "erin", "frank")

	store := roster.NewStore()
	orch := panel.NewOrchestrator(svc, store, event.NewBus(), nil)
	if err := orch.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	c := roster.NewComposer(store, 3, roster.ListWindow)
	if got := c.PageCount(); got != 3 {
		t.Fatalf("pages = %d, want 3", got)
	}

	c.SetPage(3)
	c.SetQuery("ali")
	if c.Page() != 1 {
		t.Fatalf("query change left page at %d", c.Page())
	}
	if got := len(c.Filtered()); got != 2 {
		t.Fatalf("filtered = %d, want 2", got)
	}

	// Expansion survives a filter change.
	first := c.Visible()[0]
	c.Toggle(first.ID)
	c.SetQuery("")
	if !c.IsExpanded(first.ID) {
		t.Fatalf("expansion lost on filter change")
	}
	rows := c.Rows()
	if len(rows) != 3+roster.ChildrenPerParent {
		t.Fatalf("rows = %d, want %d", len(rows), 3+roster.ChildrenPerParent)
	}
}

// TestMailboxDetailFlow drives the per-account mailbox list end to end.
func TestMailboxDetailFlow(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()
	svc.seed("alice")
	if _, err := svc.CreateMailbox(ctx, roster.MailboxDraft{UserID: 1, Email: "a@x.test", Password: "p"}); err != nil {
		t.Fatalf("seed mailbox: %v", err)
	}

	store := roster.NewStore()
	orch := panel.NewOrchestrator(svc, store, event.NewBus(), nil)
	if err := orch.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	detail, err := orch.OpenDetail(ctx, 1)
	if err != nil {
		t.Fatalf("open detail: %v", err)
	}
	if detail.Len() != 1 {
		t.Fatalf("detail len = %d, want 1", detail.Len())
	}

	box, err := orch.CreateMailbox(ctx, roster.MailboxDraft{UserID: 1, Email: "b@x.test", Password: "p"})
	if err != nil {
		t.Fatalf("create mailbox: %v", err)
	}
	if detail.Len() != 2 {
		t.Fatalf("detail len = %d after create, want 2", detail.Len())
	}

	p, err := orch.RequestDeleteMailbox(box.ID)
	if err != nil {
		t.Fatalf("request delete: %v", err)
	}
	if err := orch.Resolve(ctx, p.ID, true); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if detail.Len() != 1 {
		t.Fatalf("detail len = %d after delete, want 1", detail.Len())
	}
}

// TestResetAllClearsEverything confirms the reset action wipes the
// roster only after approval.
func TestResetAllClearsEverything(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()
	svc.seed("alice", "bob")

	store := roster.NewStore()
	orch := panel.NewOrchestrator(svc, store, event.NewBus(), nil)
	if err := orch.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	p := orch.RequestReset()
	if err := orch.Resolve(ctx, p.ID, false); err == nil {
		t.Fatalf("declined reset reported success")
	}
	if store.Len() != 2 {
		t.Fatalf("declined reset touched the store")
	}

	p = orch.RequestReset()
	if err := orch.Resolve(ctx, p.ID, true); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("store len = %d after reset, want 0", store.Len())
	}
	if len(svc.accounts) != 0 {
		t.Fatalf("service accounts survived reset")
	}
}
