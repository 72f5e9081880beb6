package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showdown/server/connection"
	"showdown/store"
)

func newTestRouter() (*CommandRouter, *connection.Client, store.HistoryStore) {
	history := store.NewInMemoryHistoryStore()
	router := NewCommandRouter(history, false)
	client := &connection.Client{ID: "session-1", Send: make(chan []byte, 16)}
	return router, client, history
}

func decodeEnvelope(t *testing.T, raw []byte) (string, json.RawMessage) {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env.Name, env.Payload
}

func TestHandleCommand_Evaluate(t *testing.T) {
	router, client, history := newTestRouter()

	response, err := router.HandleCommand(client, []byte(`{"name":"evaluate","cards":"As Ks Qs Js 10s"}`))
	require.NoError(t, err)

	name, payload := decodeEnvelope(t, response)
	assert.Equal(t, "evaluated", name)

	var result EvaluateResult
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.Equal(t, "Royal Flush", result.HandName)
	assert.Equal(t, 10, result.HandType)
	assert.Equal(t, "A♠ K♠ Q♠ J♠ 10♠", result.Cards)

	records, err := history.BySession(client.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Royal Flush", records[0].Result)
}

func TestHandleCommand_EvaluateShortHand(t *testing.T) {
	router, client, _ := newTestRouter()

	response, err := router.HandleCommand(client, []byte(`{"name":"evaluate","cards":"As Ah"}`))
	require.NoError(t, err)

	name, payload := decodeEnvelope(t, response)
	assert.Equal(t, "evaluated", name)

	var result EvaluateResult
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.Equal(t, "High Card", result.HandName)
}

func TestHandleCommand_Compare(t *testing.T) {
	router, client, history := newTestRouter()

	response, err := router.HandleCommand(client,
		[]byte(`{"name":"compare","a":"2h 5h 7h 9h Jh","b":"10s Jh Qd Kc Ad"}`))
	require.NoError(t, err)

	name, payload := decodeEnvelope(t, response)
	assert.Equal(t, "compared", name)

	var result CompareResult
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.Equal(t, 1, result.Result)
	assert.Equal(t, "Flush", result.A.HandName)
	assert.Equal(t, "Straight", result.B.HandName)

	records, err := history.BySession(client.ID)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestHandleCommand_History(t *testing.T) {
	router, client, _ := newTestRouter()

	_, err := router.HandleCommand(client, []byte(`{"name":"evaluate","cards":"2s 3h 4d 5c 6s"}`))
	require.NoError(t, err)

	response, err := router.HandleCommand(client, []byte(`{"name":"history"}`))
	require.NoError(t, err)

	name, payload := decodeEnvelope(t, response)
	assert.Equal(t, "history", name)

	var records []store.HandRecord
	require.NoError(t, json.Unmarshal(payload, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Straight", records[0].Result)
}

func TestHandleCommand_Errors(t *testing.T) {
	router, client, _ := newTestRouter()

	tests := []struct {
		name    string
		message string
	}{
		{"not json", `{{{`},
		{"unknown command", `{"name":"fold"}`},
		{"bad cards", `{"name":"evaluate","cards":"As Xx"}`},
		{"bad compare side", `{"name":"compare","a":"As Ks Qs Js 10s","b":"junk"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := router.HandleCommand(client, []byte(tt.message))
			assert.Error(t, err)

			name, _ := decodeEnvelope(t, response)
			assert.Equal(t, "error", name)
		})
	}
}
