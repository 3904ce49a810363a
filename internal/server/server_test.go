package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/claimpilot/internal/claims"
	"github.com/ziadkadry99/claimpilot/internal/db"
	"github.com/ziadkadry99/claimpilot/internal/engine"
	"github.com/ziadkadry99/claimpilot/internal/oracle"
	"github.com/ziadkadry99/claimpilot/internal/session"
)

// echoClassifier routes every message to the unknown action, so chat tests
// exercise the full turn pipeline without any model calls.
type echoClassifier struct{}

func (echoClassifier) Classify(_ context.Context, _ string) (oracle.Intent, error) {
	return oracle.Intent{Action: oracle.ActionUnknown}, nil
}

type noopExtractor struct{}

func (noopExtractor) Extract(_ context.Context, _ string) (claims.Partial, error) {
	return claims.Partial{}, nil
}

type noopQueryGen struct{}

func (noopQueryGen) Generate(_ context.Context, _ string) (oracle.QueryResult, error) {
	return oracle.QueryResult{}, nil
}

type noopSynthesizer struct{}

func (noopSynthesizer) Synthesize(_ claims.Partial) (claims.Draft, []string) {
	return claims.Draft{}, nil
}

func testServerInstance(t *testing.T) *httptest.Server {
	t.Helper()

	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening in-memory db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	claimStore := claims.NewStore(database)
	eng := engine.New(engine.Config{
		Classifier:  echoClassifier{},
		Extractor:   noopExtractor{},
		QueryGen:    noopQueryGen{},
		Executor:    claims.NewExecutor(claimStore),
		Submitter:   claims.NewStoreSubmitter(claimStore),
		Synthesizer: noopSynthesizer{},
	})

	srv := New(Config{Port: 0}, eng, claimStore, session.NewStore(database))
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func postChat(t *testing.T, url string, req chatRequest) (*http.Response, chatResponse) {
	t.Helper()
	body, _ := json.Marshal(req)
	resp, err := http.Post(url+"/api/chat", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("posting chat: %v", err)
	}
	var out chatResponse
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("decoding chat response: %v", err)
		}
	}
	resp.Body.Close()
	return resp, out
}

func TestChatCreatesSessionAndResponds(t *testing.T) {
	ts := testServerInstance(t)

	resp, out := postChat(t, ts.URL, chatRequest{Message: "Thanks!"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if out.SessionID == "" {
		t.Fatal("no session ID assigned")
	}
	if out.Type != "response" {
		t.Errorf("type = %q, want response", out.Type)
	}
	if out.Content == "" {
		t.Error("empty response content")
	}
	if len(out.Steps) == 0 {
		t.Error("no step log returned")
	}
}

func TestChatReusesSession(t *testing.T) {
	ts := testServerInstance(t)

	_, first := postChat(t, ts.URL, chatRequest{Message: "hello"})
	_, second := postChat(t, ts.URL, chatRequest{SessionID: first.SessionID, Message: "again"})

	if second.SessionID != first.SessionID {
		t.Errorf("session changed: %q then %q", first.SessionID, second.SessionID)
	}
}

func TestChatRequiresMessage(t *testing.T) {
	ts := testServerInstance(t)

	resp, _ := postChat(t, ts.URL, chatRequest{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestTranscriptIncludesGreeting(t *testing.T) {
	ts := testServerInstance(t)

	_, out := postChat(t, ts.URL, chatRequest{Message: "hello"})

	resp, err := http.Get(ts.URL + "/api/chat/" + out.SessionID)
	if err != nil {
		t.Fatalf("getting transcript: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var msgs []session.Message
	if err := json.NewDecoder(resp.Body).Decode(&msgs); err != nil {
		t.Fatalf("decoding transcript: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want greeting + user + assistant", len(msgs))
	}
	if msgs[0].Role != "assistant" || msgs[0].Content != greeting {
		t.Errorf("first message = %+v, want the greeting", msgs[0])
	}
	if msgs[1].Role != "user" || msgs[1].Content != "hello" {
		t.Errorf("second message = %+v, want the user turn", msgs[1])
	}
	if msgs[2].Role != "assistant" {
		t.Errorf("third message = %+v, want the assistant turn", msgs[2])
	}
}

func TestTranscriptUnknownSession(t *testing.T) {
	ts := testServerInstance(t)

	resp, err := http.Get(ts.URL + "/api/chat/no-such-session")
	if err != nil {
		t.Fatalf("getting transcript: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	ts := testServerInstance(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("getting healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestWebSocketChat(t *testing.T) {
	ts := testServerInstance(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dialing websocket: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(chatRequest{Message: "hello"}); err != nil {
		t.Fatalf("writing message: %v", err)
	}

	var out chatResponse
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("reading response: %v", err)
	}
	if out.Type != "response" || out.SessionID == "" || out.Content == "" {
		t.Errorf("unexpected response: %+v", out)
	}

	// A malformed request keeps the connection open and yields an error frame.
	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("writing malformed message: %v", err)
	}
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("reading error frame: %v", err)
	}
	if out.Type != "error" {
		t.Errorf("type = %q, want error", out.Type)
	}
}
