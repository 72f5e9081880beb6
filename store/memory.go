package store

import (
	"fmt"
	"sync"
)

// InMemoryHistoryStore is an in-memory implementation of HistoryStore
type InMemoryHistoryStore struct {
	records map[string][]HandRecord
	mutex   sync.RWMutex
}

// NewInMemoryHistoryStore creates a new in-memory history store
func NewInMemoryHistoryStore() *InMemoryHistoryStore {
	return &InMemoryHistoryStore{
		records: make(map[string][]HandRecord),
	}
}

// Append adds a record to the store
func (s *InMemoryHistoryStore) Append(record HandRecord) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if record.SessionID == "" {
		return fmt.Errorf("record has no sessionID")
	}

	s.records[record.SessionID] = append(s.records[record.SessionID], record)
	return nil
}

// BySession retrieves all records for the given session, oldest first
func (s *InMemoryHistoryStore) BySession(sessionID string) ([]HandRecord, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if records, exists := s.records[sessionID]; exists {
		// Copy to keep callers off the internal slice
		result := make([]HandRecord, len(records))
		copy(result, records)
		return result, nil
	}

	return []HandRecord{}, nil
}

// Close is a no-op for the in-memory store
func (s *InMemoryHistoryStore) Close() error {
	return nil
}
