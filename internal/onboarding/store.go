package onboarding

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store is the lockable conversation store. It is injected into the usecase
// rather than being a package-level map so tests can build their own.
//
// Acquire serializes all transitions for one chat: two messages arriving
// concurrently for the same chat must not interleave phase changes. Distinct
// chats proceed in parallel.
type Store interface {
	Acquire(chatID int64) (release func())
	Get(chatID int64) (Conversation, bool)
	Set(chatID int64, conv Conversation)
	Delete(chatID int64)
}

const (
	// DefaultMaxConversations bounds how many onboardings can be in flight;
	// beyond that the least recently touched chat is evicted.
	DefaultMaxConversations = 1000
	// DefaultTTL ages out abandoned onboardings. The next message for an
	// expired chat simply starts over.
	DefaultTTL = 30 * time.Minute
)

const lockStripes = 64

type implStore struct {
	conversations *expirable.LRU[int64, Conversation]
	locks         [lockStripes]sync.Mutex
}

// NewStore creates a bounded, TTL-expiring conversation store.
// Zero values select the defaults.
func NewStore(maxConversations int, ttl time.Duration) Store {
	if maxConversations <= 0 {
		maxConversations = DefaultMaxConversations
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implStore{
		conversations: expirable.NewLRU[int64, Conversation](maxConversations, nil, ttl),
	}
}

func (s *implStore) Acquire(chatID int64) func() {
	m := &s.locks[uint64(chatID)%lockStripes]
	m.Lock()
	return m.Unlock
}

func (s *implStore) Get(chatID int64) (Conversation, bool) {
	return s.conversations.Get(chatID)
}

func (s *implStore) Set(chatID int64, conv Conversation) {
	s.conversations.Add(chatID, conv)
}

func (s *implStore) Delete(chatID int64) {
	s.conversations.Remove(chatID)
}
