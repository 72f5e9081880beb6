package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"showdown/cards"
	"showdown/hands"
	"showdown/server/connection"
	"showdown/server/handlers"
	"showdown/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, implement proper origin checks
	},
}

// Server exposes the hand evaluator over WebSocket and HTTP
type Server struct {
	connMgr   *connection.Manager
	cmdRouter *handlers.CommandRouter
	history   store.HistoryStore
}

// EvaluateRequest is the HTTP request body for /api/evaluate
type EvaluateRequest struct {
	Cards string `json:"cards"`
}

// CompareRequest is the HTTP request body for /api/compare
type CompareRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// corsMiddleware adds CORS headers to all responses
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// NewServer creates a new evaluation server
func NewServer(history store.HistoryStore, debug bool) *Server {
	return &Server{
		connMgr:   connection.NewManager(),
		cmdRouter: handlers.NewCommandRouter(history, debug),
		history:   history,
	}
}

// routes builds the HTTP handler for the server
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/api/evaluate", corsMiddleware(s.handleEvaluate))
	mux.HandleFunc("/api/compare", corsMiddleware(s.handleCompare))
	mux.HandleFunc("/api/history", corsMiddleware(s.handleHistory))
	return mux
}

// Start begins the server on the specified port
func (s *Server) Start(port string) error {
	go s.connMgr.Start()

	log.Printf("Starting server on port %s", port)
	return http.ListenAndServe("0.0.0.0:"+port, s.routes())
}

// handleWebSocket handles incoming WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading to WebSocket: %v", err)
		return
	}

	clientID := uuid.NewString()
	log.Printf("New client connected: %s with ID: %s", r.RemoteAddr, clientID)

	client := &connection.Client{
		ID:   clientID,
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	s.connMgr.Register <- client

	go s.readPump(client)
	go s.writePump(client)
}

// readPump reads messages from the WebSocket connection
func (s *Server) readPump(client *connection.Client) {
	defer func() {
		s.connMgr.Unregister <- client
		client.Conn.Close()
	}()

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Error: %v", err)
			}
			break
		}

		response, err := s.cmdRouter.HandleCommand(client, message)
		if err != nil {
			log.Printf("Error handling command: %v", err)
		}
		if response != nil {
			client.Send <- response
		}
	}
}

// writePump sends messages to the WebSocket connection
func (s *Server) writePump(client *connection.Client) {
	defer func() {
		client.Conn.Close()
	}()

	for {
		message, ok := <-client.Send
		if !ok {
			client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Error writing message: %v", err)
			return
		}
	}
}

// handleEvaluate classifies a hand supplied as JSON
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	stack, err := cards.StackFromString(req.Cards)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	handType := hands.Evaluate(stack)
	s.recordHTTP(r, stack, handType)

	writeJSON(w, handlers.EvaluateResult{
		Cards:    stack.String(),
		HandType: int(handType),
		HandName: handType.String(),
	})
}

// handleCompare orders two hands supplied as JSON
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	stackA, err := cards.StackFromString(req.A)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	stackB, err := cards.StackFromString(req.B)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	typeA, typeB := hands.Evaluate(stackA), hands.Evaluate(stackB)
	s.recordHTTP(r, stackA, typeA)
	s.recordHTTP(r, stackB, typeB)

	writeJSON(w, handlers.CompareResult{
		A:      handlers.EvaluateResult{Cards: stackA.String(), HandType: int(typeA), HandName: typeA.String()},
		B:      handlers.EvaluateResult{Cards: stackB.String(), HandType: int(typeB), HandName: typeB.String()},
		Result: hands.Compare(stackA, stackB),
	})
}

// handleHistory returns the hand history for a session
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "Missing session parameter", http.StatusBadRequest)
		return
	}

	records, err := s.history.BySession(sessionID)
	if err != nil {
		http.Error(w, "History unavailable", http.StatusInternalServerError)
		return
	}

	writeJSON(w, records)
}

// recordHTTP appends an HTTP evaluation to the hand history. The
// session comes from the X-Session-ID header when the caller supplies
// one; anonymous requests get a throwaway session.
func (s *Server) recordHTTP(r *http.Request, stack cards.Stack, handType hands.HandType) {
	sessionID := r.Header.Get("X-Session-ID")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	err := s.history.Append(store.HandRecord{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Cards:     stack.String(),
		Result:    handType.String(),
		CreatedAt: time.Now(),
	})
	if err != nil {
		log.Printf("Failed to record hand for session %s: %v", sessionID, err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Failed to encode response:", err)
	}
}
