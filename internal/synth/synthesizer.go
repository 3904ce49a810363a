// Package synth fills sparse partial claims into complete drafts using
// reference tables and cross-field consistency rules.
package synth

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/ziadkadry99/claimpilot/internal/claims"
)

// Synthesizer completes partial claims. Randomness comes from an injected
// source so tests can seed it; a Synthesizer is safe for concurrent use.
type Synthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Synthesizer. A nil rng gets a time-seeded source.
func New(rng *rand.Rand) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{rng: rng}
}

// incident date range for generated claims
var (
	incidentRangeStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	incidentRangeEnd   = time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
)

// Synthesize fills every missing field of the partial and returns a complete
// draft plus non-fatal notes about substitutions it had to make. Extracted
// values always win when present and valid; empty strings count as absent.
func (s *Synthesizer) Synthesize(p claims.Partial) (claims.Draft, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var notes []string

	d := claims.Draft{
		PolicyHolderName: orElse(p.PolicyHolderName, func() string { return s.pick(holderNames) }),
		PolicyNumber:     orElse(p.PolicyNumber, s.policyNumber),
		AdjusterName:     orElse(p.AdjusterName, func() string { return s.pick(adjusterNames) }),
		Status:           orElse(p.Status, func() string { return s.pick(statuses) }),
	}

	v := defaultVehicles[s.rng.Intn(len(defaultVehicles))]
	d.VehicleMake = orElse(p.VehicleMake, func() string { return v.make_ })
	d.VehicleModel = orElse(p.VehicleModel, func() string { return v.model })
	d.VehicleYear = p.VehicleYear
	if d.VehicleYear == 0 {
		d.VehicleYear = v.year
	}

	if p.IncidentDate != nil {
		d.IncidentDate = *p.IncidentDate
	} else {
		d.IncidentDate = s.incidentDate()
	}

	d.IncidentDescription, d.PointOfImpact = s.descriptionAndImpact(p)

	var companyNotes []string
	d.Company, d.ClaimOffice, companyNotes = s.companyAndOffice(p)
	notes = append(notes, companyNotes...)

	return d, notes
}

// descriptionAndImpact applies the joint synthesis rules: an extracted impact
// always wins; an extracted description is matched against the canonical
// table to pick a consistent impact; with neither present, one table entry
// supplies both fields.
func (s *Synthesizer) descriptionAndImpact(p claims.Partial) (desc, impact string) {
	desc = strings.TrimSpace(p.IncidentDescription)
	impact = strings.TrimSpace(p.PointOfImpact)

	if desc == "" {
		ii := incidentImpacts[s.rng.Intn(len(incidentImpacts))]
		desc = ii.description
		if impact == "" {
			impact = ii.impact
		}
		return desc, impact
	}

	if impact != "" {
		return desc, impact
	}

	lower := strings.ToLower(desc)
	for _, ii := range incidentImpacts {
		canonical := strings.ToLower(ii.description)
		if strings.Contains(lower, canonical) || strings.Contains(canonical, lower) {
			return desc, ii.impact
		}
	}
	return desc, s.pick(defaultImpacts)
}

// companyAndOffice enforces that the returned pair appears together in the
// reference table, substituting where the extracted values are incompatible.
func (s *Synthesizer) companyAndOffice(p claims.Partial) (company, office string, notes []string) {
	company = strings.TrimSpace(p.Company)
	office = strings.TrimSpace(p.ClaimOffice)

	if company != "" {
		offices, known := companyOffices[company]
		if known {
			if office != "" && !contains(offices, office) {
				substituted := s.pick(offices)
				notes = append(notes, fmt.Sprintf("%q is not a %s office; substituted %q", office, company, substituted))
				office = substituted
			} else if office == "" {
				office = s.pick(offices)
			}
			return company, office, notes
		}

		replacement := s.pick(companyNames)
		notes = append(notes, fmt.Sprintf("company %q is not recognized; substituted %q", company, replacement))
		company = replacement
		office = s.pick(companyOffices[company])
		return company, office, notes
	}

	company = s.pick(companyNames)
	if office == "" {
		office = s.pick(companyOffices[company])
		return company, office, notes
	}

	// An office was given without a company: adopt the company that lists it.
	for _, name := range companyNames {
		if contains(companyOffices[name], office) {
			return name, office, notes
		}
	}

	substituted := s.pick(companyOffices[company])
	notes = append(notes, fmt.Sprintf("%q is not a known claim office; substituted %q", office, substituted))
	return company, substituted, notes
}

func (s *Synthesizer) policyNumber() string {
	return fmt.Sprintf("POL-%06d", 100000+s.rng.Intn(900000))
}

func (s *Synthesizer) incidentDate() time.Time {
	span := int(incidentRangeEnd.Sub(incidentRangeStart).Seconds())
	return incidentRangeStart.Add(time.Duration(s.rng.Intn(span+1)) * time.Second)
}

func (s *Synthesizer) pick(values []string) string {
	return values[s.rng.Intn(len(values))]
}

// orElse returns the trimmed value, or the generated fallback when the value
// is empty. Empty strings are treated the same as absent fields.
func orElse(value string, generate func() string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return generate()
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
