package state_manager

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"servismotor-bot/internal/storage/redis"
)

// MemoryStorage keeps session state in process memory, for running without
// Redis. Entries expire after ttl like their Redis counterparts.
type MemoryStorage struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[int64]memoryEntry
	// expired entries of chats that never come back are dropped by Set
	nextSweep time.Time
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryStorage(ttl time.Duration) *MemoryStorage {
	return &MemoryStorage{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[int64]memoryEntry),
	}
}

func (m *MemoryStorage) GetSessionState(_ context.Context, chatID int64) (*redis.SessionState, error) {
	m.mu.Lock()
	e, ok := m.entries[chatID]
	if ok && !m.now().Before(e.expiresAt) {
		delete(m.entries, chatID)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return &redis.SessionState{}, nil
	}

	var state redis.SessionState
	if err := json.Unmarshal(e.data, &state); err != nil {
		return nil, fmt.Errorf("unmarshal failure: %w", err)
	}
	return &state, nil
}

func (m *MemoryStorage) SetSessionState(_ context.Context, chatID int64, state *redis.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if !now.Before(m.nextSweep) {
		m.sweep(now)
		m.nextSweep = now.Add(m.ttl)
	}
	m.entries[chatID] = memoryEntry{data: data, expiresAt: now.Add(m.ttl)}
	return nil
}

func (m *MemoryStorage) sweep(now time.Time) {
	for chatID, e := range m.entries {
		if !now.Before(e.expiresAt) {
			delete(m.entries, chatID)
		}
	}
}

func (m *MemoryStorage) DropSessionState(_ context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, chatID)
	return nil
}
