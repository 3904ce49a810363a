// Package claims implements the auto-insurance claim domain: record types,
// the SQLite-backed store, the read-only query executor, and the HTTP
// submission surface.
package claims

import "time"

// Partial holds claim details extracted from a single user message. Every
// field is optional: string fields use "" for absent, VehicleYear uses 0,
// IncidentDate uses nil. Downstream code treats empty strings the same as
// absent fields.
type Partial struct {
	PolicyHolderName    string     `json:"policy_holder_name,omitempty"`
	PolicyNumber        string     `json:"policy_number,omitempty"`
	VehicleMake         string     `json:"vehicle_make,omitempty"`
	VehicleModel        string     `json:"vehicle_model,omitempty"`
	VehicleYear         int        `json:"vehicle_year,omitempty"`
	IncidentDate        *time.Time `json:"incident_date,omitempty"`
	IncidentDescription string     `json:"incident_description,omitempty"`
	AdjusterName        string     `json:"adjuster_name,omitempty"`
	Status              string     `json:"status,omitempty"`
	Company             string     `json:"company,omitempty"`
	ClaimOffice         string     `json:"claim_office,omitempty"`
	PointOfImpact       string     `json:"point_of_impact,omitempty"`
}

// IsEmpty reports whether no field of the partial is populated.
func (p Partial) IsEmpty() bool {
	return p == Partial{}
}

// Draft is a fully populated claim that has not been stored yet. All fields
// are required; the synthesizer guarantees they are populated.
type Draft struct {
	PolicyHolderName    string    `json:"policy_holder_name"`
	PolicyNumber        string    `json:"policy_number"`
	VehicleMake         string    `json:"vehicle_make"`
	VehicleModel        string    `json:"vehicle_model"`
	VehicleYear         int       `json:"vehicle_year"`
	IncidentDate        time.Time `json:"incident_date"`
	IncidentDescription string    `json:"incident_description"`
	AdjusterName        string    `json:"adjuster_name"`
	Status              string    `json:"status"`
	Company             string    `json:"company"`
	ClaimOffice         string    `json:"claim_office"`
	PointOfImpact       string    `json:"point_of_impact"`
}

// Claim is a stored claim record. The ID is assigned by the store on
// creation and is immutable thereafter; this system never updates or
// deletes stored claims.
type Claim struct {
	ID string `json:"id"`
	Draft
}

// Row is a single result row from a read-only query, keyed by column name.
type Row map[string]any
