package onboarding_test

import (
	"sync"
	"testing"
	"time"

	"git-telegram-bridge/internal/onboarding"
)

func TestStore(t *testing.T) {
	t.Run("Set then Get returns the conversation", func(t *testing.T) {
		store := onboarding.NewStore(0, 0)

		store.Set(1, onboarding.Conversation{Phase: onboarding.PhaseAwaitingSecret, PendingRepo: "alice/repo"})

		conv, ok := store.Get(1)
		if !ok {
			t.Fatal("conversation not found")
		}
		if conv.Phase != onboarding.PhaseAwaitingSecret || conv.PendingRepo != "alice/repo" {
			t.Errorf("unexpected conversation %+v", conv)
		}
	})

	t.Run("Get on an unknown chat misses", func(t *testing.T) {
		store := onboarding.NewStore(0, 0)

		if _, ok := store.Get(99); ok {
			t.Error("expected a miss")
		}
	})

	t.Run("Delete purges the conversation", func(t *testing.T) {
		store := onboarding.NewStore(0, 0)

		store.Set(1, onboarding.Conversation{Phase: onboarding.PhaseAwaitingRepository})
		store.Delete(1)

		if _, ok := store.Get(1); ok {
			t.Error("conversation must be gone after Delete")
		}
	})

	t.Run("Conversations expire after the TTL", func(t *testing.T) {
		store := onboarding.NewStore(10, 50*time.Millisecond)

		store.Set(1, onboarding.Conversation{Phase: onboarding.PhaseAwaitingRepository})
		time.Sleep(120 * time.Millisecond)

		if _, ok := store.Get(1); ok {
			t.Error("conversation must expire")
		}
	})

	t.Run("Capacity bound evicts the oldest chat", func(t *testing.T) {
		store := onboarding.NewStore(2, time.Minute)

		store.Set(1, onboarding.Conversation{Phase: onboarding.PhaseAwaitingRepository})
		store.Set(2, onboarding.Conversation{Phase: onboarding.PhaseAwaitingRepository})
		store.Set(3, onboarding.Conversation{Phase: onboarding.PhaseAwaitingRepository})

		if _, ok := store.Get(1); ok {
			t.Error("oldest chat must be evicted")
		}
		if _, ok := store.Get(3); !ok {
			t.Error("newest chat must survive")
		}
	})

	t.Run("Acquire serializes one chat's transitions", func(t *testing.T) {
		store := onboarding.NewStore(0, 0)

		const workers = 8
		const rounds = 100

		var wg sync.WaitGroup
		counter := 0
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < rounds; j++ {
					release := store.Acquire(7)
					counter++
					release()
				}
			}()
		}
		wg.Wait()

		if counter != workers*rounds {
			t.Errorf("lost updates under the chat lock: got %d, want %d", counter, workers*rounds)
		}
	})
}
