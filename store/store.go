package store

import "time"

// HandRecord is one evaluated hand as kept in the history
type HandRecord struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Cards     string    `json:"cards"`  // space-separated shorthand, deal order
	Result    string    `json:"result"` // hand type name
	CreatedAt time.Time `json:"createdAt"`
}

// HistoryStore is the interface for persisting and retrieving evaluated hands
type HistoryStore interface {
	Append(record HandRecord) error
	BySession(sessionID string) ([]HandRecord, error)
	Close() error
}
