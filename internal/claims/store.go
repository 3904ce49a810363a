package claims

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ziadkadry99/claimpilot/internal/db"
)

// Store provides persistence for claim records. Stored claims are append-only:
// the store exposes no update or delete operations.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// NewClaimID returns a fresh claim identifier.
func NewClaimID() string {
	return "CLM-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10])
}

// Insert persists a draft and returns the stored claim with its assigned ID.
// A duplicate policy number is reported as a conflict error.
func (s *Store) Insert(ctx context.Context, draft Draft) (*Claim, error) {
	claim := &Claim{ID: NewClaimID(), Draft: draft}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO claims (
			id, policy_holder_name, policy_number, vehicle_make, vehicle_model,
			vehicle_year, incident_date, incident_description, adjuster_name,
			status, company, claim_office, point_of_impact
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		claim.ID,
		draft.PolicyHolderName,
		draft.PolicyNumber,
		draft.VehicleMake,
		draft.VehicleModel,
		draft.VehicleYear,
		draft.IncidentDate.UTC().Format(time.RFC3339),
		draft.IncidentDescription,
		draft.AdjusterName,
		draft.Status,
		draft.Company,
		draft.ClaimOffice,
		draft.PointOfImpact,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: claims.policy_number") {
			return nil, fmt.Errorf("a claim with policy number %s already exists", draft.PolicyNumber)
		}
		return nil, fmt.Errorf("inserting claim: %w", err)
	}

	return claim, nil
}

// GetByID retrieves a single claim, or nil if no claim has that ID.
func (s *Store) GetByID(ctx context.Context, id string) (*Claim, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, policy_holder_name, policy_number, vehicle_make, vehicle_model,
			   vehicle_year, incident_date, incident_description, adjuster_name,
			   status, company, claim_office, point_of_impact
		FROM claims WHERE id = ?`, id)

	claim, err := scanClaim(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting claim %s: %w", id, err)
	}
	return claim, nil
}

// List returns the most recently created claims, up to limit (default 50).
func (s *Store) List(ctx context.Context, limit int) ([]Claim, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, policy_holder_name, policy_number, vehicle_make, vehicle_model,
			   vehicle_year, incident_date, incident_description, adjuster_name,
			   status, company, claim_office, point_of_impact
		FROM claims ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing claims: %w", err)
	}
	defer rows.Close()

	var claims []Claim
	for rows.Next() {
		claim, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning claim: %w", err)
		}
		claims = append(claims, *claim)
	}
	return claims, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClaim(row scanner) (*Claim, error) {
	var c Claim
	var incidentDate string
	err := row.Scan(
		&c.ID,
		&c.PolicyHolderName,
		&c.PolicyNumber,
		&c.VehicleMake,
		&c.VehicleModel,
		&c.VehicleYear,
		&incidentDate,
		&c.IncidentDescription,
		&c.AdjusterName,
		&c.Status,
		&c.Company,
		&c.ClaimOffice,
		&c.PointOfImpact,
	)
	if err != nil {
		return nil, err
	}
	if t, perr := time.Parse(time.RFC3339, incidentDate); perr == nil {
		c.IncidentDate = t
	}
	return &c, nil
}
