package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(sessionID, cards, result string, at time.Time) HandRecord {
	return HandRecord{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Cards:     cards,
		Result:    result,
		CreatedAt: at,
	}
}

// exerciseStore runs the HistoryStore contract against any implementation
func exerciseStore(t *testing.T, s HistoryStore) {
	t.Helper()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	first := testRecord("session-1", "A♠ K♠ Q♠ J♠ 10♠", "Royal Flush", base)
	second := testRecord("session-1", "2♣ 5♦ 7♥ 9♠ J♦", "High Card", base.Add(time.Minute))
	other := testRecord("session-2", "A♠ A♥ A♦ K♣ K♠", "Full House", base)

	require.NoError(t, s.Append(first))
	require.NoError(t, s.Append(second))
	require.NoError(t, s.Append(other))

	// Records without a session are rejected
	assert.Error(t, s.Append(HandRecord{ID: uuid.NewString()}))

	records, err := s.BySession("session-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, second.ID, records[1].ID)
	assert.Equal(t, "Royal Flush", records[0].Result)
	assert.True(t, records[0].CreatedAt.Equal(base))

	records, err = s.BySession("session-2")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "A♠ A♥ A♦ K♣ K♠", records[0].Cards)

	// Unknown sessions yield an empty history, not an error
	records, err = s.BySession("nope")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestInMemoryHistoryStore(t *testing.T) {
	s := NewInMemoryHistoryStore()
	defer s.Close()

	exerciseStore(t, s)
}

func TestSQLiteHistoryStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := NewSQLiteHistoryStore(path)
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

func TestSQLiteHistoryStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := NewSQLiteHistoryStore(path)
	require.NoError(t, err)

	record := testRecord("session-1", "2♠ 3♥ 4♦ 5♣ 6♠", "Straight", time.Now())
	require.NoError(t, s.Append(record))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteHistoryStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.BySession("session-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)
}
