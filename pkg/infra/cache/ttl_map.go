package cache

import (
	"sync"
	"time"
)

type ttlEntry struct {
	value     string
	expiresAt time.Time
}

// TTLMap is an in-process string map whose entries expire individually.
type TTLMap struct {
	mu   sync.RWMutex
	data map[string]ttlEntry
	ttl  time.Duration
	now  func() time.Time
}

func NewTTLMap(ttl time.Duration) *TTLMap {
	return &TTLMap{
		data: make(map[string]ttlEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Get returns the value when present and not expired. Expired entries are evicted lazily.
func (m *TTLMap) Get(key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if m.now().Before(entry.expiresAt) {
		return entry.value, true
	}

	m.mu.Lock()
	if current, ok := m.data[key]; ok && !m.now().Before(current.expiresAt) {
		delete(m.data, key)
	}
	m.mu.Unlock()
	return "", false
}

// Set stores value for the shorter of the map TTL and ttl; ttl <= 0 means the map TTL.
func (m *TTLMap) Set(key, value string, ttl time.Duration) {
	if ttl <= 0 || ttl > m.ttl {
		ttl = m.ttl
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = ttlEntry{value: value, expiresAt: m.now().Add(ttl)}
}

func (m *TTLMap) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

func (m *TTLMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *TTLMap) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]ttlEntry)
}
