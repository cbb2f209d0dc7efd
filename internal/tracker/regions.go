package tracker

import (
	"slices"
	"sync"
	"sync/atomic"

	"civicradar/internal/domain/entity"

	"github.com/google/uuid"
)

// regionSet is copy-on-write: readers load an immutable snapshot, writers
// serialise on mu and swap in a new slice.
type regionSet struct {
	mu      sync.Mutex
	current atomic.Pointer[[]entity.GeofenceRegion]
}

func (s *regionSet) snapshot() []entity.GeofenceRegion {
	if p := s.current.Load(); p != nil {
		return *p
	}

	return nil
}

func (s *regionSet) replace(regions []entity.GeofenceRegion) {
	s.current.Store(&regions)
}

func (s *regionSet) set(regions []entity.GeofenceRegion) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]entity.GeofenceRegion, 0, len(regions))
	seen := make(map[uuid.UUID]int, len(regions))
	for _, r := range regions {
		if i, ok := seen[r.ID]; ok {
			next[i] = r

			continue
		}
		seen[r.ID] = len(next)
		next = append(next, r)
	}
	s.replace(next)
}

// add inserts region, replacing any region with the same ID.
func (s *regionSet) add(region entity.GeofenceRegion) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.snapshot()
	next := make([]entity.GeofenceRegion, 0, len(cur)+1)
	for _, r := range cur {
		if r.ID != region.ID {
			next = append(next, r)
		}
	}
	s.replace(append(next, region))
}

func (s *regionSet) remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.snapshot()
	idx := slices.IndexFunc(cur, func(r entity.GeofenceRegion) bool { return r.ID == id })
	if idx < 0 {
		return false
	}
	s.replace(slices.Concat(cur[:idx], cur[idx+1:]))

	return true
}
