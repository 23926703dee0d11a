package feed

import (
	"log/slog"
	"sync"
	"testing"
	"time"
)

func TestSubscribeUnsubscribe(t *testing.T) {
	hub := NewHub(4, slog.Default())

	s1 := hub.Subscribe("threads")
	s2 := hub.Subscribe("")

	if got := hub.SubscriberCount(); got != 2 {
		t.Fatalf("expected 2 subscribers, got %d", got)
	}

	s1.Close()
	if got := hub.SubscriberCount(); got != 1 {
		t.Fatalf("expected 1 subscriber after close, got %d", got)
	}

	hub.Unsubscribe(s2)
	if got := hub.SubscriberCount(); got != 0 {
		t.Fatalf("expected 0 subscribers, got %d", got)
	}
}

func TestDoubleClose(t *testing.T) {
	hub := NewHub(4, slog.Default())
	s := hub.Subscribe("topics")
	s.Close()
	// Should not panic
	s.Close()

	if _, ok := <-s.C(); ok {
		t.Error("channel should be closed")
	}
}

func TestPublishFiltersByCollection(t *testing.T) {
	hub := NewHub(4, slog.Default())

	threads := hub.Subscribe("threads")
	all := hub.Subscribe("")
	topics := hub.Subscribe("topics")

	hub.Publish(NewChange("threads", ActionCreated, "t1", "fam"))

	for _, s := range []*Subscription{threads, all} {
		select {
		case got := <-s.C():
			if got.Type != "threads_created" {
				t.Errorf("type = %q, want %q", got.Type, "threads_created")
			}
			if got.ID != "t1" || got.FamilyID != "fam" {
				t.Errorf("change = %+v", got)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatal("timeout waiting for change")
		}
	}

	select {
	case got := <-topics.C():
		t.Errorf("topics subscriber received %+v", got)
	default:
	}
}

func TestPublishEmptyHub(t *testing.T) {
	hub := NewHub(4, slog.Default())
	// Should not panic
	hub.Publish(NewChange("users", ActionDeleted, "u1", ""))
}

func TestPublishFullBuffer(t *testing.T) {
	hub := NewHub(3, slog.Default())
	s := hub.Subscribe("")

	for i := 0; i < 3; i++ {
		hub.Publish(NewChange("messages", ActionCreated, "m", ""))
	}
	// This should be dropped, not block
	hub.Publish(NewChange("messages", ActionCreated, "dropped", ""))

	count := 0
	for {
		select {
		case c := <-s.C():
			if c.ID == "dropped" {
				t.Error("change beyond buffer should be dropped")
			}
			count++
		default:
			if count != 3 {
				t.Errorf("expected 3 changes, got %d", count)
			}
			return
		}
	}
}

func TestNewHubMinimumBuffer(t *testing.T) {
	hub := NewHub(0, slog.Default())
	s := hub.Subscribe("")
	if cap(s.ch) != 1 {
		t.Errorf("buffer = %d, want 1", cap(s.ch))
	}
}

func TestConcurrentAccess(t *testing.T) {
	hub := NewHub(8, slog.Default())
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := hub.Subscribe("")
			hub.Publish(NewChange("test", ActionUpdated, "x", ""))
			for {
				select {
				case <-s.C():
				default:
					s.Close()
					return
				}
			}
		}()
	}

	wg.Wait()

	if got := hub.SubscriberCount(); got != 0 {
		t.Errorf("expected 0 subscribers after concurrent test, got %d", got)
	}
}
