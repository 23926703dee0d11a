package store

import (
	"testing"

	"github.com/dukerupert/uchitopi/internal/database"
)

func setupPushTestDB(t *testing.T) *PushTokenStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPushTokenStore(db)
}

func TestPushTokenRegister(t *testing.T) {
	ps := setupPushTestDB(t)

	pt, err := ps.Register("user-1", "tok-a")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if pt.Token != "tok-a" || pt.UserID != "user-1" {
		t.Errorf("token = %+v", pt)
	}
	if pt.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}

	if _, err := ps.Register("user-1", "tok-b"); err != nil {
		t.Fatalf("register second: %v", err)
	}
	tokens, err := ps.ListByUser("user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("tokens = %d, want 2", len(tokens))
	}
}

func TestPushTokenMovesBetweenUsers(t *testing.T) {
	ps := setupPushTestDB(t)

	ps.Register("user-1", "tok-a")
	pt, err := ps.Register("user-2", "tok-a")
	if err != nil {
		t.Fatalf("re-register: %v", err)
	}
	if pt.UserID != "user-2" {
		t.Errorf("user = %q, want %q", pt.UserID, "user-2")
	}

	tokens, _ := ps.ListByUser("user-1")
	if len(tokens) != 0 {
		t.Errorf("user-1 still has %d tokens", len(tokens))
	}
}

func TestPushTokenDelete(t *testing.T) {
	ps := setupPushTestDB(t)

	ps.Register("user-1", "tok-a")
	ps.Register("user-1", "tok-b")
	ps.Register("user-2", "tok-c")

	if err := ps.Unregister("tok-a"); err != nil {
		t.Fatalf("unregister: %v", err)
	}
	tokens, _ := ps.ListByUser("user-1")
	if len(tokens) != 1 || tokens[0].Token != "tok-b" {
		t.Errorf("tokens after unregister = %+v", tokens)
	}

	if err := ps.DeleteByUser("user-1"); err != nil {
		t.Fatalf("delete by user: %v", err)
	}
	tokens, _ = ps.ListByUser("user-1")
	if len(tokens) != 0 {
		t.Errorf("user-1 has %d tokens after delete", len(tokens))
	}
	tokens, _ = ps.ListByUser("user-2")
	if len(tokens) != 1 {
		t.Errorf("user-2 tokens = %d, want 1", len(tokens))
	}
}
