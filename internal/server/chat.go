package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/claimpilot/internal/session"
)

// greeting seeds the transcript of every new session.
const greeting = "Hi! How can I help you with your auto insurance claim today?"

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// chatRequest is the incoming chat message format, shared by the REST and
// WebSocket endpoints.
type chatRequest struct {
	SessionID string `json:"session_id"` // empty for new sessions
	Message   string `json:"message"`
}

// chatResponse is the outgoing chat message format.
type chatResponse struct {
	Type      string   `json:"type"` // "response" or "error"
	SessionID string   `json:"session_id"`
	Content   string   `json:"content"`
	Steps     []string `json:"steps,omitempty"`
}

func (s *Server) registerChatRoutes(r chi.Router) {
	r.Post("/api/chat", s.handleChat)
	r.Get("/api/chat/{sessionID}", s.handleTranscript)
	r.Get("/ws/chat", s.handleWebSocket)
}

// handleChat processes one turn over plain HTTP.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	resp, err := s.runTurn(r, req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// handleTranscript returns the full message history of a session.
func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	sess, err := s.sessions.Get(r.Context(), sessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if sess == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	msgs, err := s.sessions.Messages(r.Context(), sessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if msgs == nil {
		msgs = []session.Message{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(msgs)
}

// handleWebSocket serves a persistent chat connection.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}

		var req chatRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendError(conn, "", "invalid message format")
			continue
		}
		if req.Message == "" {
			s.sendError(conn, req.SessionID, "message is required")
			continue
		}

		resp, err := s.runTurn(r, req)
		if err != nil {
			s.sendError(conn, req.SessionID, err.Error())
			continue
		}
		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("server: websocket write: %v", err)
		}
	}
}

// runTurn creates the session if needed, runs the engine, and records both
// sides of the exchange in the transcript.
func (s *Server) runTurn(r *http.Request, req chatRequest) (*chatResponse, error) {
	ctx := r.Context()
	sessionID := req.SessionID

	if sessionID == "" {
		sess, err := s.sessions.Create(ctx, "chat")
		if err != nil {
			return nil, err
		}
		sessionID = sess.ID
		s.sessions.AddMessage(ctx, session.Message{
			SessionID: sessionID,
			Role:      "assistant",
			Content:   greeting,
		})
	}

	st := s.engine.Run(ctx, req.Message)

	// Transcript recording is best-effort; the turn's response stands on its
	// own even if persistence fails.
	if _, err := s.sessions.AddMessage(ctx, session.Message{
		SessionID: sessionID,
		Role:      "user",
		Content:   req.Message,
	}); err != nil {
		log.Printf("server: recording user message: %v", err)
	}
	if _, err := s.sessions.AddMessage(ctx, session.Message{
		SessionID: sessionID,
		Role:      "assistant",
		Content:   st.FinalResponse,
		Steps:     st.Steps,
	}); err != nil {
		log.Printf("server: recording assistant message: %v", err)
	}

	return &chatResponse{
		Type:      "response",
		SessionID: sessionID,
		Content:   st.FinalResponse,
		Steps:     st.Steps,
	}, nil
}

func (s *Server) sendError(conn *websocket.Conn, sessionID, message string) {
	resp := chatResponse{
		Type:      "error",
		SessionID: sessionID,
		Content:   message,
	}
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("server: websocket write error: %v", err)
	}
}
