// ABOUTME: Session-scoped history of submitted queries and their result bundles
// ABOUTME: Ordered, mutable list backing the stacked results view

package history

import (
	"sync"

	"searchpage-api/core/domain"
)

// Entry is one submitted query with its results, its (possibly still
// pending) generated answer, and the expanded/collapsed display state.
type Entry struct {
	Bundle   domain.ResultBundle
	Answer   domain.GeneratedAnswer
	Expanded bool
}

// Session holds the ordered history for one browsing session. Newest entries
// are appended at the tail. It is not persisted; a reload starts empty.
// All methods are safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	entries []Entry
}

// NewSession creates an empty session history.
func NewSession() *Session {
	return &Session{}
}

// Append adds a bundle at the tail, expanded by default. The bundle's
// SearchID is the handle for later Remove/Toggle/AttachAnswer calls.
func (s *Session) Append(bundle domain.ResultBundle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, Entry{
		Bundle:   bundle,
		Answer:   bundle.Answer,
		Expanded: true,
	})
}

// Remove deletes the entry with the given search id. Removing an unknown id
// is a no-op; the remaining order is preserved.
func (s *Session) Remove(searchID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].Bundle.SearchID == searchID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}

	return false
}

// Toggle flips the expanded state of the entry with the given search id and
// returns the new state. Unknown ids report false without changing anything.
func (s *Session) Toggle(searchID string) (expanded, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].Bundle.SearchID == searchID {
			s.entries[i].Expanded = !s.entries[i].Expanded
			return s.entries[i].Expanded, true
		}
	}

	return false, false
}

// AttachAnswer records the resolved generated answer for the entry with the
// given search id. Late answers for removed entries are dropped silently.
func (s *Session) AttachAnswer(searchID string, answer domain.GeneratedAnswer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].Bundle.SearchID == searchID {
			s.entries[i].Answer = answer
			return true
		}
	}

	return false
}

// Items returns a copy of the history in submission order, oldest first.
func (s *Session) Items() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Entry, len(s.entries))
	copy(items, s.entries)
	return items
}

// Len reports the number of entries.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Clear empties the session.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
