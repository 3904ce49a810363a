package claims

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestClientSubmit(t *testing.T) {
	store := testStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, 0)

	claim, err := client.Submit(context.Background(), testDraft("POL-600001"))
	if err != nil {
		t.Fatalf("submitting claim: %v", err)
	}
	if !strings.HasPrefix(claim.ID, "CLM-") {
		t.Errorf("claim ID = %q", claim.ID)
	}

	// The server's conflict error comes back with the API status and body.
	_, err = client.Submit(context.Background(), testDraft("POL-600001"))
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if !strings.Contains(err.Error(), "409") || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error = %v", err)
	}
}

func TestClientSubmitUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 0)

	_, err := client.Submit(context.Background(), testDraft("POL-600002"))
	if err == nil {
		t.Fatal("expected an error for an unreachable API")
	}
	if !strings.Contains(err.Error(), "could not reach claims API") {
		t.Errorf("error = %v", err)
	}
}
