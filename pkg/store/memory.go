package store

import (
	"context"
	"sync"
)

// Memory is an Overrides kept entirely in process memory. It backs tests
// and execution contexts with no durable home; nothing survives the
// process, which matches the no-op persistence contract for those cases.
type Memory struct {
	mu     sync.Mutex
	names  map[string]map[string]string
	done   map[string]map[string]bool
	colors map[string]string
	order  []string
	token  string
}

// NewMemory returns an empty in-memory override store.
func NewMemory() *Memory {
	return &Memory{
		names:  map[string]map[string]string{},
		done:   map[string]map[string]bool{},
		colors: map[string]string{},
	}
}

func (m *Memory) ItemNames(checklistID string) map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]string{}
	for k, v := range m.names[checklistID] {
		out[k] = v
	}
	return out
}

func (m *Memory) SetItemName(checklistID, itemID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.names[checklistID] == nil {
		m.names[checklistID] = map[string]string{}
	}
	m.names[checklistID][itemID] = name
	return nil
}

func (m *Memory) ItemCompletion(checklistID string) map[string]bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]bool{}
	for k, v := range m.done[checklistID] {
		out[k] = v
	}
	return out
}

func (m *Memory) SetItemCompletion(checklistID, itemID string, done bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done[checklistID] == nil {
		m.done[checklistID] = map[string]bool{}
	}
	m.done[checklistID][itemID] = done
	return nil
}

func (m *Memory) Colors() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]string{}
	for k, v := range m.colors {
		out[k] = v
	}
	return out
}

func (m *Memory) SetColor(checklistID, color string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.colors[checklistID] = color
	return nil
}

func (m *Memory) Order() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.order...)
}

func (m *Memory) SetOrder(ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.order = append([]string(nil), ids...)
	return nil
}

func (m *Memory) RemoveItem(checklistID, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.names[checklistID], itemID)
	delete(m.done[checklistID], itemID)
	return nil
}

func (m *Memory) RemoveNamespace(checklistID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.names, checklistID)
	delete(m.done, checklistID)
	delete(m.colors, checklistID)
	kept := m.order[:0]
	for _, id := range m.order {
		if id != checklistID {
			kept = append(kept, id)
		}
	}
	m.order = kept
	return nil
}

func (m *Memory) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *Memory) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *Memory) ClearToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// Watch blocks until ctx is done; in-memory stores have no external
// writers to observe.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	events := make(chan Event)
	go func() {
		<-ctx.Done()
		close(events)
	}()
	return events, nil
}
