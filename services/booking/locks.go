package booking

import "sync"

// propertyLockStore hands out one mutex per property id so that the
// check-then-create sequence for a property is serialized against all other
// submissions for the same property. Submissions for different properties
// proceed in parallel.
type propertyLockStore struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPropertyLockStore() *propertyLockStore {
	return &propertyLockStore{locks: make(map[string]*sync.Mutex)}
}

// get returns the mutex for a property id, creating one if it doesn't exist.
// Locks are never evicted; the map grows with the number of distinct
// properties, which is small.
func (s *propertyLockStore) get(fastighetID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[fastighetID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[fastighetID] = lock
	}
	return lock
}
