package charrom

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Storage is the persistence contract the editor consumes. Concrete
// backends (browser storage, files, databases) live outside this
// package; the core only ever sees this interface.
type Storage interface {
	Initialize() error
	GetAll() ([]SerializedCharacterSet, error)
	GetByID(id string) (SerializedCharacterSet, bool, error)
	Save(set SerializedCharacterSet) error
	Delete(id string) error
	Search(query string) ([]SerializedCharacterSet, error)
	FilterByTag(tag string) ([]SerializedCharacterSet, error)
	FilterBySystem(system string) ([]SerializedCharacterSet, error)
}

// MemoryStore is an in-memory Storage used by the CLIs and tests.
// Safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	sets map[string]SerializedCharacterSet
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sets: make(map[string]SerializedCharacterSet)}
}

// Initialize implements Storage. A memory store has nothing to open.
func (s *MemoryStore) Initialize() error {
	return nil
}

// GetAll returns every stored set, pinned sets first, then by name.
func (s *MemoryStore) GetAll() ([]SerializedCharacterSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(SerializedCharacterSet) bool { return true }), nil
}

// GetByID looks up one set; the second return reports presence.
func (s *MemoryStore) GetByID(id string) (SerializedCharacterSet, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set, ok := s.sets[id]
	return set, ok, nil
}

// Save inserts or replaces a set keyed by its metadata ID.
func (s *MemoryStore) Save(set SerializedCharacterSet) error {
	if set.Metadata.ID == "" {
		return fmt.Errorf("cannot save character set with empty id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets[set.Metadata.ID] = set
	return nil
}

// Delete removes a set by ID; deleting an absent ID is an error so
// callers can distinguish a stale reference.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sets[id]; !ok {
		return fmt.Errorf("character set %q not found", id)
	}
	delete(s.sets, id)
	return nil
}

// Search matches the query case-insensitively against name,
// description and tags.
func (s *MemoryStore) Search(query string) ([]SerializedCharacterSet, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(set SerializedCharacterSet) bool {
		if q == "" {
			return true
		}
		if strings.Contains(strings.ToLower(set.Metadata.Name), q) ||
			strings.Contains(strings.ToLower(set.Metadata.Description), q) {
			return true
		}
		for _, tag := range set.Metadata.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		return false
	}), nil
}

// FilterByTag returns sets carrying the exact tag (case-insensitive).
func (s *MemoryStore) FilterByTag(tag string) ([]SerializedCharacterSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(set SerializedCharacterSet) bool {
		for _, t := range set.Metadata.Tags {
			if strings.EqualFold(t, tag) {
				return true
			}
		}
		return false
	}), nil
}

// FilterBySystem returns sets whose system matches (case-insensitive).
func (s *MemoryStore) FilterBySystem(system string) ([]SerializedCharacterSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(set SerializedCharacterSet) bool {
		return strings.EqualFold(set.Metadata.System, system)
	}), nil
}

// collect gathers matching sets in display order: pinned first, then
// case-insensitive name, then ID for a stable tiebreak. Callers hold
// the lock.
func (s *MemoryStore) collect(match func(SerializedCharacterSet) bool) []SerializedCharacterSet {
	out := make([]SerializedCharacterSet, 0, len(s.sets))
	for _, set := range s.sets {
		if match(set) {
			out = append(out, set)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Metadata, out[j].Metadata
		if a.IsPinned != b.IsPinned {
			return a.IsPinned
		}
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if an != bn {
			return an < bn
		}
		return a.ID < b.ID
	})
	return out
}
