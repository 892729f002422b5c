// Package view holds the reconciled collections a presentation layer
// renders, plus the derived aggregates (counts, percentages, ordering).
package view

import (
	"math"
	"sync"

	"tableflip.dev/checklist/pkg/checklist"
	"tableflip.dev/checklist/pkg/store"
)

// Percent is the completion percentage, rounded. Zero items is defined as
// 0%, not a division error.
func Percent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// Model is the in-memory state behind a dashboard or detail view. All
// mutation happens on the UI goroutine; the lock only guards against a
// late network response landing after a view switch.
type Model struct {
	mu sync.Mutex

	lists []checklist.Checklist
	err   string
}

// SetLists replaces the collection, e.g. after a reconcile.
func (m *Model) SetLists(lists []checklist.Checklist) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists = lists
}

// Lists returns a copy of the current collection.
func (m *Model) Lists() []checklist.Checklist {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]checklist.Checklist, len(m.lists))
	copy(out, m.lists)
	return out
}

// Find returns the checklist with the given id, if present.
func (m *Model) Find(id string) (checklist.Checklist, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.lists {
		if c.ID == id {
			return c, true
		}
	}
	return checklist.Checklist{}, false
}

// Insert prepends a checklist, the position a freshly created list takes
// on the dashboard.
func (m *Model) Insert(c checklist.Checklist) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists = append([]checklist.Checklist{c}, m.lists...)
}

// Remove drops the checklist with the given id.
func (m *Model) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.lists[:0]
	for _, c := range m.lists {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	m.lists = kept
}

// Update applies fn to the checklist with the given id.
func (m *Model) Update(id string, fn func(*checklist.Checklist)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.lists {
		if m.lists[i].ID == id {
			fn(&m.lists[i])
			return true
		}
	}
	return false
}

// SetError records the banner message; empty clears it.
func (m *Model) SetError(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = msg
}

// Error returns the current banner message.
func (m *Model) Error() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Reorder moves the checklist with the given id to position pos (clamped)
// and persists the resulting sequence as the authoritative display order.
func (m *Model) Reorder(id string, pos int, overrides store.Overrides) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	from := -1
	for i, c := range m.lists {
		if c.ID == id {
			from = i
			break
		}
	}
	if from == -1 {
		return nil
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= len(m.lists) {
		pos = len(m.lists) - 1
	}

	moved := m.lists[from]
	m.lists = append(m.lists[:from], m.lists[from+1:]...)
	m.lists = append(m.lists[:pos], append([]checklist.Checklist{moved}, m.lists[pos:]...)...)

	ids := make([]string, len(m.lists))
	for i, c := range m.lists {
		ids[i] = c.ID
	}
	return overrides.SetOrder(ids)
}
