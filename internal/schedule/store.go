package schedule

import "sync"

// Store holds the session's two schedules in memory. Loading a file
// replaces one variant wholesale and never touches the other; there is no
// persistence beyond the process lifetime.
type Store struct {
	mu        sync.RWMutex
	schedules map[Variant]*Schedule
}

func NewStore() *Store {
	return &Store{
		schedules: make(map[Variant]*Schedule),
	}
}

// Replace installs sched as the sole schedule for its variant.
func (s *Store) Replace(sched *Schedule) {
	if sched == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules[sched.Variant] = sched
}

// Get returns the schedule for a variant, or ok=false when none is loaded.
func (s *Store) Get(v Variant) (*Schedule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sched, ok := s.schedules[v]
	return sched, ok
}

// Empty reports whether no variant has any events. This is an expected
// state (fresh session), not an error; the UI shows guidance instead.
func (s *Store) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sched := range s.schedules {
		if sched != nil && len(sched.Events) > 0 {
			return false
		}
	}
	return true
}
