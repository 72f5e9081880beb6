package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sanity-io/litter"

	"showdown/cards"
	"showdown/hands"
	"showdown/server/connection"
	"showdown/store"
)

// Envelope wraps a response with its name for client consumption
type Envelope struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

// EvaluateCommand asks for the hand type of a card sequence
type EvaluateCommand struct {
	Cards string `json:"cards"` // space-separated shorthand, e.g. "As Ks Qs Js 10s"
}

// CompareCommand asks which of two hands ranks higher
type CompareCommand struct {
	A string `json:"a"`
	B string `json:"b"`
}

// EvaluateResult is the payload answering an evaluate command
type EvaluateResult struct {
	Cards    string `json:"cards"`
	HandType int    `json:"handType"`
	HandName string `json:"handName"`
}

// CompareResult is the payload answering a compare command
type CompareResult struct {
	A      EvaluateResult `json:"a"`
	B      EvaluateResult `json:"b"`
	Result int            `json:"result"` // -1 a loses, 0 tie, 1 a wins
}

// ErrorResult is the payload of an error envelope
type ErrorResult struct {
	Error string `json:"error"`
}

// CommandRouter routes incoming commands to the appropriate handler
type CommandRouter struct {
	history store.HistoryStore
	debug   bool
}

// NewCommandRouter creates a new command router
func NewCommandRouter(history store.HistoryStore, debug bool) *CommandRouter {
	return &CommandRouter{
		history: history,
		debug:   debug,
	}
}

// HandleCommand processes an incoming command message and returns the
// response envelope to send back to the client
func (r *CommandRouter) HandleCommand(client *connection.Client, message []byte) ([]byte, error) {
	var baseCmd struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(message, &baseCmd); err != nil {
		return envelope("error", ErrorResult{Error: "malformed command"}), err
	}

	switch baseCmd.Name {
	case "evaluate":
		var cmd EvaluateCommand
		if err := json.Unmarshal(message, &cmd); err != nil {
			return envelope("error", ErrorResult{Error: "malformed evaluate command"}), err
		}
		return r.handleEvaluate(client, cmd)

	case "compare":
		var cmd CompareCommand
		if err := json.Unmarshal(message, &cmd); err != nil {
			return envelope("error", ErrorResult{Error: "malformed compare command"}), err
		}
		return r.handleCompare(client, cmd)

	case "history":
		return r.handleHistory(client)

	default:
		err := fmt.Errorf("unknown command type %q", baseCmd.Name)
		return envelope("error", ErrorResult{Error: err.Error()}), err
	}
}

func (r *CommandRouter) handleEvaluate(client *connection.Client, cmd EvaluateCommand) ([]byte, error) {
	stack, err := cards.StackFromString(cmd.Cards)
	if err != nil {
		return envelope("error", ErrorResult{Error: err.Error()}), err
	}

	result := evaluateStack(stack)
	r.record(client.ID, stack, result)

	if r.debug {
		litter.D(result)
	}

	return envelope("evaluated", result), nil
}

func (r *CommandRouter) handleCompare(client *connection.Client, cmd CompareCommand) ([]byte, error) {
	stackA, err := cards.StackFromString(cmd.A)
	if err != nil {
		return envelope("error", ErrorResult{Error: err.Error()}), err
	}
	stackB, err := cards.StackFromString(cmd.B)
	if err != nil {
		return envelope("error", ErrorResult{Error: err.Error()}), err
	}

	resultA := evaluateStack(stackA)
	resultB := evaluateStack(stackB)
	r.record(client.ID, stackA, resultA)
	r.record(client.ID, stackB, resultB)

	result := CompareResult{
		A:      resultA,
		B:      resultB,
		Result: hands.Compare(stackA, stackB),
	}

	if r.debug {
		litter.D(result)
	}

	return envelope("compared", result), nil
}

func (r *CommandRouter) handleHistory(client *connection.Client) ([]byte, error) {
	records, err := r.history.BySession(client.ID)
	if err != nil {
		return envelope("error", ErrorResult{Error: "history unavailable"}), err
	}
	return envelope("history", records), nil
}

// record appends an evaluation to the session's hand history
func (r *CommandRouter) record(sessionID string, stack cards.Stack, result EvaluateResult) {
	err := r.history.Append(store.HandRecord{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Cards:     stack.String(),
		Result:    result.HandName,
		CreatedAt: time.Now(),
	})
	if err != nil {
		log.Printf("Failed to record hand for session %s: %v", sessionID, err)
	}
}

// evaluateStack runs the evaluator and shapes the result payload
func evaluateStack(stack cards.Stack) EvaluateResult {
	handType := hands.Evaluate(stack)
	return EvaluateResult{
		Cards:    stack.String(),
		HandType: int(handType),
		HandName: handType.String(),
	}
}

// envelope marshals a named payload for the wire
func envelope(name string, payload any) []byte {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Println("Failed to marshal payload:", err)
		return nil
	}
	out, err := json.Marshal(Envelope{Name: name, Payload: data})
	if err != nil {
		log.Println("Failed to marshal envelope:", err)
		return nil
	}
	return out
}
