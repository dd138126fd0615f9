package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory holds the latest snapshot in process memory. It backs tests and
// throwaway runs where no durable storage is wanted. Snapshots pass through
// JSON so loads never alias the saved value.
type Memory struct {
	mu      sync.Mutex
	payload []byte
	present bool
}

// NewMemory returns an empty in-memory strategy.
func NewMemory() *Memory {
	return &Memory{}
}

// Save serializes and retains the snapshot.
func (m *Memory) Save(ctx context.Context, snapshot Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.payload = payload
	m.present = true
	return nil
}

// Load returns the most recently saved snapshot, if any.
func (m *Memory) Load(ctx context.Context) (Snapshot, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.present {
		return Snapshot{}, false, nil
	}

	var snapshot Snapshot
	if err := json.Unmarshal(m.payload, &snapshot); err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return snapshot, true, nil
}
