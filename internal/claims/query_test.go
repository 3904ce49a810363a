package claims

import (
	"context"
	"errors"
	"testing"
)

func TestValidateReadOnly(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{"plain select", "SELECT * FROM claims", false},
		{"lowercase select", "select id, status from claims where status = 'Approved'", false},
		{"leading whitespace", "  \n SELECT id FROM claims", false},
		{"delete", "DELETE FROM claims", true},
		{"update", "UPDATE claims SET status = 'Approved'", true},
		{"insert", "INSERT INTO claims (id) VALUES ('x')", true},
		{"drop", "DROP TABLE claims", true},
		{"select with embedded delete", "SELECT * FROM claims; DELETE FROM claims", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReadOnly(tt.query)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateReadOnly(%q) error = %v, wantErr %v", tt.query, err, tt.wantErr)
			}
		})
	}
}

func TestExecutorRejectsMutations(t *testing.T) {
	store := testStore(t)
	exec := NewExecutor(store)
	ctx := context.Background()

	if _, err := store.Insert(ctx, testDraft("POL-400001")); err != nil {
		t.Fatalf("seeding claim: %v", err)
	}

	_, err := exec.Run(ctx, "DELETE FROM claims")
	if !errors.Is(err, ErrNotReadOnly) {
		t.Fatalf("error = %v, want ErrNotReadOnly", err)
	}
	if err.Error() != "Error: Only SELECT queries are allowed for retrieval." {
		t.Errorf("rejection text changed: %q", err)
	}

	// The table must be untouched.
	rows, err := exec.Run(ctx, "SELECT id FROM claims")
	if err != nil {
		t.Fatalf("running select: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows after rejected delete, want 1", len(rows))
	}
}

func TestExecutorRunReturnsRows(t *testing.T) {
	store := testStore(t)
	exec := NewExecutor(store)
	ctx := context.Background()

	stored, err := store.Insert(ctx, testDraft("POL-400002"))
	if err != nil {
		t.Fatalf("seeding claim: %v", err)
	}

	rows, err := exec.Run(ctx, "SELECT id, status, policy_holder_name FROM claims WHERE policy_number = 'POL-400002'")
	if err != nil {
		t.Fatalf("running query: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	row := rows[0]
	if row["id"] != stored.ID {
		t.Errorf("id = %v, want %s", row["id"], stored.ID)
	}
	if row["status"] != "Submitted" {
		t.Errorf("status = %v, want Submitted", row["status"])
	}
	if row["policy_holder_name"] != "James Patterson" {
		t.Errorf("policy_holder_name = %v", row["policy_holder_name"])
	}
}

func TestExecutorRunEmptyResultIsNonNil(t *testing.T) {
	store := testStore(t)
	exec := NewExecutor(store)

	rows, err := exec.Run(context.Background(), "SELECT * FROM claims WHERE status = 'Denied'")
	if err != nil {
		t.Fatalf("running query: %v", err)
	}
	if rows == nil {
		t.Fatal("rows is nil, want empty non-nil slice")
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestExecutorExplain(t *testing.T) {
	store := testStore(t)
	exec := NewExecutor(store)
	ctx := context.Background()

	rows, err := exec.Explain(ctx, "SELECT * FROM claims WHERE status = 'Approved'")
	if err != nil {
		t.Fatalf("explaining query: %v", err)
	}
	if len(rows) == 0 {
		t.Error("expected at least one plan row")
	}

	if _, err := exec.Explain(ctx, "DROP TABLE claims"); !errors.Is(err, ErrNotReadOnly) {
		t.Errorf("error = %v, want ErrNotReadOnly", err)
	}
}
