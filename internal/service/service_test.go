package service

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dukerupert/uchitopi/internal/database"
	"github.com/dukerupert/uchitopi/internal/feed"
	"github.com/dukerupert/uchitopi/internal/store"
)

var testNow = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	svc    *Services
	repos  *store.Repositories
	tokens *store.PushTokenStore
	clock  *time.Time
}

func setupServiceTest(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := slog.Default()
	repos := store.NewRepositories(store.NewDocumentStore(db, feed.NewHub(16, logger)))
	tokens := store.NewPushTokenStore(db)
	svc := New(repos, tokens, 24*time.Hour, logger)

	clock := testNow
	now := func() time.Time { return clock }
	svc.Families.now = now
	svc.Users.now = now
	svc.Threads.now = now
	svc.Topics.now = now
	svc.Notifications.now = now

	return &testEnv{svc: svc, repos: repos, tokens: tokens, clock: &clock}
}

// sequence returns a code generator yielding codes in order, repeating the
// last one.
func sequence(codes ...string) func() string {
	i := 0
	return func() string {
		c := codes[min(i, len(codes)-1)]
		i++
		return c
	}
}
