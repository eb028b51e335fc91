package services

import (
	"sync"

	"github.com/dmitrijs2005/gophdash/internal/models"
)

// State is a snapshot of the session as seen by consumers.
type State struct {
	User      *models.User
	IsLoading bool
}

func (s State) IsAuthenticated() bool {
	return s.User != nil
}

// broadcaster fans State snapshots out to subscribers. Each subscriber has a
// one-slot buffer holding the latest snapshot, so a slow reader skips
// intermediate states instead of blocking the publisher.
type broadcaster struct {
	mu   sync.Mutex
	subs map[chan State]struct{}
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[chan State]struct{})}
}

func (b *broadcaster) subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, ch)
			close(ch)
			b.mu.Unlock()
		})
	}
	return ch, cancel
}

func (b *broadcaster) publish(st State) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		select {
		case <-ch:
		default:
		}
		ch <- st
	}
}
