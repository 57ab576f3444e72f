package roster

import (
	"testing"
)

func testAccounts() []Account {
	return []Account{
		{ID: 1, Name: "alice", Role: RoleAdmin, TotalSent: 10, Inbox: 5, Spam: 5},
		{ID: 2, Name: "bob", TotalSent: 4, Inbox: 4},
		{ID: 3, Name: "carol"},
	}
}

func TestStoreReplace(t *testing.T) {
	s := NewStore()
	if err := s.Replace(testAccounts()); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}

	a, ok := s.Get(2)
	if !ok {
		t.Fatal("Get(2) not found")
	}
	if a.Name != "bob" {
		t.Errorf("Get(2).Name = %q, want %q", a.Name, "bob")
	}
}

func TestStoreReplaceRejectsDuplicateIDs(t *testing.T) {
	s := NewStore()
	err := s.Replace([]Account{{ID: 1}, {ID: 1}})
	if err == nil {
		t.Fatal("Replace should reject duplicate ids")
	}
}

func TestStoreInsertAtFront(t *testing.T) {
	s := NewStore()
	if err := s.Replace(testAccounts()); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if err := s.Insert(Account{ID: 9, Name: "ada"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	all := s.All()
	if all[0].Name != "ada" {
		t.Errorf("new account should be at the head, got %q", all[0].Name)
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
}

func TestStoreInsertRejectsDuplicate(t *testing.T) {
	s := NewStore()
	if err := s.Replace(testAccounts()); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if err := s.Insert(Account{ID: 1, Name: "imposter"}); err == nil {
		t.Fatal("Insert should reject a held id")
	}
}

func TestStoreMergeShallow(t *testing.T) {
	s := NewStore()
	if err := s.Replace(testAccounts()); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	name := "alicia"
	role := RoleUser
	if !s.Merge(1, AccountPatch{Name: &name, Role: &role}) {
		t.Fatal("Merge(1) should find the account")
	}

	a, _ := s.Get(1)
	if a.Name != "alicia" {
		t.Errorf("Name = %q, want %q", a.Name, "alicia")
	}
	if a.Role != RoleUser {
		t.Errorf("Role = %v, want RoleUser", a.Role)
	}
	// Absent patch fields keep their prior values.
	if a.TotalSent != 10 || a.Inbox != 5 {
		t.Errorf("stats changed by merge: %+v", a)
	}
}

func TestStoreMergeMissingID(t *testing.T) {
	s := NewStore()
	if err := s.Replace(testAccounts()); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	name := "x"
	if s.Merge(99, AccountPatch{Name: &name}) {
		t.Error("Merge of an absent id should report false")
	}
}

func TestStoreRemoveIdempotent(t *testing.T) {
	s := NewStore()
	if err := s.Replace(testAccounts()); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if !s.Remove(2) {
		t.Error("first Remove(2) should report true")
	}
	if s.Remove(2) {
		t.Error("second Remove(2) should be a no-op reporting false")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if s.Contains(2) {
		t.Error("id 2 should be gone")
	}
}

func TestStoreRemoveExactlyOne(t *testing.T) {
	s := NewStore()
	if err := s.Replace(testAccounts()); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	s.Remove(2)
	for _, id := range []int{1, 3} {
		if !s.Contains(id) {
			t.Errorf("id %d should survive removal of id 2", id)
		}
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	if err := s.Replace(testAccounts()); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", s.Len())
	}
}

func TestStoreAllReturnsCopy(t *testing.T) {
	s := NewStore()
	if err := s.Replace(testAccounts()); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	all := s.All()
	all[0].Name = "mutated"
	a, _ := s.Get(1)
	if a.Name == "mutated" {
		t.Error("All() should return a copy")
	}
}

func TestMailboxStore(t *testing.T) {
	s := NewMailboxStore(7)
	if s.UserID() != 7 {
		t.Errorf("UserID() = %d, want 7", s.UserID())
	}

	s.Replace([]Mailbox{
		{ID: 1, UserID: 7, Email: "a@mail.com"},
		{ID: 2, UserID: 7, Email: "b@mail.com"},
	})

	s.Insert(Mailbox{ID: 3, UserID: 7, Email: "c@mail.com"})
	if all := s.All(); all[0].ID != 3 {
		t.Errorf("confirmed create should land at the head, got id %d", all[0].ID)
	}

	if !s.Update(Mailbox{ID: 2, UserID: 7, Email: "b2@mail.com"}) {
		t.Error("Update(2) should find the entry")
	}
	m, _ := s.Get(2)
	if m.Email != "b2@mail.com" {
		t.Errorf("Email = %q after update", m.Email)
	}

	if s.Update(Mailbox{ID: 99}) {
		t.Error("Update of an absent id should report false")
	}

	if !s.Remove(1) {
		t.Error("Remove(1) should report true")
	}
	if s.Remove(1) {
		t.Error("duplicate Remove(1) should be a no-op")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}
