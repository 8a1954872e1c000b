package store

import (
	"sync"

	"github.com/yourname/rps-arbiter/pkg/types"
)

// Store holds the latest authoritative match snapshot for observers. The
// match loop is the only writer; HTTP handlers read concurrently.
type Store interface {
	Put(snap types.Snapshot)
	Latest() types.Snapshot
}

type MemStore struct {
	mu   sync.RWMutex
	snap types.Snapshot
}

func NewMemStore() *MemStore {
	return &MemStore{snap: types.Snapshot{Phase: types.PhaseWaiting}}
}

func (s *MemStore) Put(snap types.Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

func (s *MemStore) Latest() types.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
