package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inboxing/mailadm/internal/event"
	"github.com/inboxing/mailadm/internal/panel"
	"github.com/inboxing/mailadm/internal/roster"
	"github.com/inboxing/mailadm/internal/tui/keymap"
)

type fakeService struct {
	accounts  []roster.Account
	mailboxes []roster.Mailbox
	err       error
	deleted   []int
	nextID    int
}

func (f *fakeService) ListAccounts(context.Context) ([]roster.Account, error) {
	return f.accounts, f.err
}

func (f *fakeService) CreateAccount(_ context.Context, draft roster.AccountDraft) (roster.Account, error) {
	if f.err != nil {
		return roster.Account{}, f.err
	}
	f.nextID++
	return roster.Account{ID: f.nextID, Name: draft.Name, Password: draft.Password, Role: draft.Role}, nil
}

func (f *fakeService) UpdateAccount(_ context.Context, id int, name, password string, role roster.Role) (roster.Account, error) {
	if f.err != nil {
		return roster.Account{}, f.err
	}
	return roster.Account{ID: id, Name: name, Password: password, Role: role}, nil
}

func (f *fakeService) DeleteAccount(_ context.Context, id int) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeService) ListMailboxes(context.Context, int) ([]roster.Mailbox, error) {
	return f.mailboxes, f.err
}

func (f *fakeService) CreateMailbox(_ context.Context, draft roster.MailboxDraft) (roster.Mailbox, error) {
	if f.err != nil {
		return roster.Mailbox{}, f.err
	}
	f.nextID++
	return roster.Mailbox{ID: f.nextID, UserID: draft.UserID, Email: draft.Email, Password: draft.Password}, nil
}

func (f *fakeService) UpdateMailbox(_ context.Context, id int, email, password string) (roster.Mailbox, error) {
	return roster.Mailbox{ID: id, Email: email, Password: password}, f.err
}

func (f *fakeService) DeleteMailbox(_ context.Context, id int) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeService) ResetAllData(context.Context) error {
	return f.err
}

func seedAccounts(n int) []roster.Account {
	accounts := make([]roster.Account, 0, n)
	for i := 1; i <= n; i++ {
		accounts = append(accounts, roster.Account{
			ID:        i,
			Name:      "user" + string(rune('a'+i-1)),
			TotalSent: 100,
			Inbox:     80,
			Spam:      20,
		})
	}
	return accounts
}

func newTestModel(t *testing.T, svc *fakeService, pageSize int) Model {
	t.Helper()
	store := roster.NewStore()
	if err := store.Replace(svc.accounts); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	svc.nextID = len(svc.accounts)
	orch := panel.NewOrchestrator(svc, store, event.NewBus(), nil)
	return NewModel(Config{Orchestrator: orch, PageSize: pageSize, DetailPageSize: 2})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, keyRune(r))
	}
	return m
}

func TestPaginationKeys(t *testing.T) {
	svc := &fakeService{accounts: seedAccounts(7)}
	m := newTestModel(t, svc, 3)

	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		wantPage int
	}{
		{"next page", []tea.KeyMsg{keyRune('l')}, 2},
		{"next twice saturates forward", []tea.KeyMsg{keyRune('l'), keyRune('l'), keyRune('l')}, 3},
		{"last page", []tea.KeyMsg{keyRune('G')}, 3},
		{"first page after last", []tea.KeyMsg{keyRune('G'), keyRune('g')}, 1},
		{"prev saturates at one", []tea.KeyMsg{keyRune('h')}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := m
			for _, k := range tt.keys {
				model, _ = press(t, model, k)
			}
			if got := model.composer.Page(); got != tt.wantPage {
				t.Errorf("page = %d, want %d", got, tt.wantPage)
			}
			if model.cursor != 0 {
				t.Errorf("cursor = %d, want 0 after page move", model.cursor)
			}
		})
	}
}

func TestCursorMovement(t *testing.T) {
	svc := &fakeService{accounts: seedAccounts(3)}
	m := newTestModel(t, svc, 10)

	m, _ = press(t, m, keyRune('j'))
	m, _ = press(t, m, keyRune('j'))
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", m.cursor)
	}

	// Saturates at the last row.
	m, _ = press(t, m, keyRune('j'))
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want 2 at bottom", m.cursor)
	}

	m, _ = press(t, m, keyRune('k'))
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}
}

func TestSearchAppliesQueryAndResetsPage(t *testing.T) {
	svc := &fakeService{accounts: seedAccounts(7)}
	m := newTestModel(t, svc, 3)

	m, _ = press(t, m, keyRune('l'))
	if m.composer.Page() != 2 {
		t.Fatalf("setup: page = %d, want 2", m.composer.Page())
	}

	m, _ = press(t, m, keyRune('/'))
	if m.mode != keymap.ModeSearch {
		t.Fatalf("mode = %q, want search", m.mode)
	}

	m = typeString(t, m, "usera")
	m, _ = press(t, m, keyType(tea.KeyEnter))

	if m.mode != keymap.ModeNormal {
		t.Fatalf("mode = %q, want normal after accept", m.mode)
	}
	if got := m.composer.Query(); got != "usera" {
		t.Fatalf("query = %q, want %q", got, "usera")
	}
	if m.composer.Page() != 1 {
		t.Fatalf("page = %d, want 1 after query change", m.composer.Page())
	}
}

func TestSearchCancelKeepsQuery(t *testing.T) {
	svc := &fakeService{accounts: seedAccounts(5)}
	m := newTestModel(t, svc, 3)

	m, _ = press(t, m, keyRune('/'))
	m = typeString(t, m, "userb")
	m, _ = press(t, m, keyType(tea.KeyEsc))

	if m.mode != keymap.ModeNormal {
		t.Fatalf("mode = %q, want normal after cancel", m.mode)
	}
	if got := m.composer.Query(); got != "" {
		t.Fatalf("query = %q, want empty after cancel", got)
	}
}

func TestExpansionToggle(t *testing.T) {
	svc := &fakeService{accounts: seedAccounts(2)}
	m := newTestModel(t, svc, 10)

	m, _ = press(t, m, keyType(tea.KeySpace))
	rows := m.rows()
	if want := 2 + roster.ChildrenPerParent; len(rows) != want {
		t.Fatalf("rows = %d, want %d after expand", len(rows), want)
	}
	if !rows[1].Synthetic {
		t.Fatalf("row 1 not synthetic after expanding first account")
	}

	// Toggling on a child row collapses its parent.
	m, _ = press(t, m, keyRune('j'))
	m, _ = press(t, m, keyType(tea.KeySpace))
	if got := len(m.rows()); got != 2 {
		t.Fatalf("rows = %d, want 2 after collapse via child", got)
	}
}

func TestStaleRefreshDropped(t *testing.T) {
	svc := &fakeService{accounts: seedAccounts(2)}
	m := newTestModel(t, svc, 10)

	m.loading = true
	m.gen = 3

	m, _ = press(t, m, refreshDoneMsg{gen: 2, err: nil})
	if !m.loading {
		t.Fatalf("stale response cleared loading state")
	}

	m, _ = press(t, m, refreshDoneMsg{gen: 3, err: nil})
	if m.loading {
		t.Fatalf("current response did not clear loading state")
	}
}

func TestDeleteConfirmFlow(t *testing.T) {
	svc := &fakeService{accounts: seedAccounts(3)}
	m := newTestModel(t, svc, 10)

	m, _ = press(t, m, keyRune('j'))
	m, _ = press(t, m, keyRune('d'))
	if m.mode != keymap.ModeConfirm {
		t.Fatalf("mode = %q, want confirm", m.mode)
	}
	if m.pending == nil {
		t.Fatalf("no pending action held")
	}

	m, cmd := press(t, m, keyRune('y'))
	if m.mode != keymap.ModeNormal {
		t.Fatalf("mode = %q, want normal after approve", m.mode)
	}
	if cmd == nil {
		t.Fatalf("approve produced no command")
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if done, ok := c().(resolveDoneMsg); ok {
				msg = done
				break
			}
		}
	}
	done, ok := msg.(resolveDoneMsg)
	if !ok {
		t.Fatalf("command returned %T, want resolveDoneMsg", msg)
	}
	if done.err != nil {
		t.Fatalf("resolve failed: %v", done.err)
	}

	if len(svc.deleted) != 1 || svc.deleted[0] != 2 {
		t.Fatalf("deleted = %v, want [2]", svc.deleted)
	}
	if m.orch.Store().Contains(2) {
		t.Fatalf("store still contains deleted account")
	}
}

func TestDeleteDeclineLeavesStore(t *testing.T) {
	svc := &fakeService{accounts: seedAccounts(3)}
	m := newTestModel(t, svc, 10)

	m, _ = press(t, m, keyRune('d'))
	m, cmd := press(t, m, keyRune('n'))
	if m.mode != keymap.ModeNormal {
		t.Fatalf("mode = %q, want normal after decline", m.mode)
	}
	if cmd != nil {
		cmd()
	}

	if len(svc.deleted) != 0 {
		t.Fatalf("decline reached the service: deleted %v", svc.deleted)
	}
	if m.orch.Store().Len() != 3 {
		t.Fatalf("store len = %d, want 3", m.orch.Store().Len())
	}
}

func TestSyntheticRowRejectsMutations(t *testing.T) {
	svc := &fakeService{accounts: seedAccounts(1)}
	m := newTestModel(t, svc, 10)

	m, _ = press(t, m, keyType(tea.KeySpace))
	m, _ = press(t, m, keyRune('j'))
	row, ok := m.selectedRow()
	if !ok || !row.Synthetic {
		t.Fatalf("setup: expected a synthetic row under the cursor")
	}

	for _, k := range []rune{'d', 'e'} {
		m, _ = press(t, m, keyRune(k))
		if m.mode != keymap.ModeNormal {
			t.Fatalf("key %q left normal mode on a synthetic row", k)
		}
	}
	if m.pending != nil {
		t.Fatalf("synthetic row produced a pending action")
	}
}

func TestCreateAccountFormSubmit(t *testing.T) {
	svc := &fakeService{accounts: seedAccounts(2)}
	m := newTestModel(t, svc, 10)

	m, _ = press(t, m, keyRune('n'))
	if m.mode != keymap.ModeForm {
		t.Fatalf("mode = %q, want form", m.mode)
	}

	m = typeString(t, m, "fresh")
	m, _ = press(t, m, keyType(tea.KeyTab))
	m = typeString(t, m, "secret")
	m, _ = press(t, m, keyType(tea.KeyCtrlR))

	m, cmd := press(t, m, keyType(tea.KeyEnter))
	if m.mode != keymap.ModeNormal {
		t.Fatalf("mode = %q, want normal after submit", m.mode)
	}
	if cmd == nil {
		t.Fatalf("submit produced no command")
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if saved, ok := c().(accountSavedMsg); ok {
				msg = saved
				break
			}
		}
	}
	saved, ok := msg.(accountSavedMsg)
	if !ok {
		t.Fatalf("command returned %T, want accountSavedMsg", msg)
	}
	if saved.err != nil {
		t.Fatalf("create failed: %v", saved.err)
	}
	if saved.account.Name != "fresh" {
		t.Fatalf("created name = %q, want %q", saved.account.Name, "fresh")
	}
	if saved.account.Role != roster.RoleAdmin {
		t.Fatalf("role = %v, want admin after toggle", saved.account.Role)
	}

	// New records land at the front of the store.
	all := m.orch.Store().All()
	if len(all) != 3 || all[0].Name != "fresh" {
		t.Fatalf("store front = %+v, want the new account first", all)
	}
}

func TestFormCancelDiscards(t *testing.T) {
	svc := &fakeService{accounts: seedAccounts(2)}
	m := newTestModel(t, svc, 10)

	m, _ = press(t, m, keyRune('n'))
	m = typeString(t, m, "draft")
	m, _ = press(t, m, keyType(tea.KeyEsc))

	if m.mode != keymap.ModeNormal {
		t.Fatalf("mode = %q, want normal after cancel", m.mode)
	}
	if m.form != nil {
		t.Fatalf("form survived cancel")
	}
	if m.orch.Store().Len() != 2 {
		t.Fatalf("store len = %d, want 2", m.orch.Store().Len())
	}
}

func TestDetailNavigation(t *testing.T) {
	svc := &fakeService{
		accounts: seedAccounts(1),
		mailboxes: []roster.Mailbox{
			{ID: 1, UserID: 1, Email: "a@x.test"},
			{ID: 2, UserID: 1, Email: "b@x.test"},
			{ID: 3, UserID: 1, Email: "c@x.test"},
		},
	}
	m := newTestModel(t, svc, 10)

	m, cmd := press(t, m, keyType(tea.KeyEnter))
	if cmd == nil {
		t.Fatalf("open detail produced no command")
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if loaded, ok := c().(detailLoadedMsg); ok {
				msg = loaded
				break
			}
		}
	}
	m, _ = press(t, m, msg)

	if m.mode != keymap.ModeDetail {
		t.Fatalf("mode = %q, want detail", m.mode)
	}
	if m.detail == nil || m.detail.Len() != 3 {
		t.Fatalf("detail store not loaded")
	}

	// Page size 2: three entries span two pages.
	if got := m.detailPageCount(); got != 2 {
		t.Fatalf("detail pages = %d, want 2", got)
	}
	m, _ = press(t, m, keyRune('l'))
	if m.detailPage != 2 {
		t.Fatalf("detail page = %d, want 2", m.detailPage)
	}
	if got := len(m.detailVisible()); got != 1 {
		t.Fatalf("visible = %d, want 1 on last page", got)
	}

	m, _ = press(t, m, keyType(tea.KeyEsc))
	if m.mode != keymap.ModeNormal {
		t.Fatalf("mode = %q, want normal after back", m.mode)
	}
	if m.detail != nil {
		t.Fatalf("detail store survived back")
	}
}

func TestViewRendersWithoutDetail(t *testing.T) {
	svc := &fakeService{accounts: seedAccounts(3)}
	m := newTestModel(t, svc, 10)

	out := m.View()
	if out == "" {
		t.Fatalf("empty view")
	}
}
