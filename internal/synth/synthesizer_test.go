package synth

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/ziadkadry99/claimpilot/internal/claims"
)

func newSeeded(t *testing.T) *Synthesizer {
	t.Helper()
	return New(rand.New(rand.NewSource(42)))
}

func TestSynthesizeFillsEveryField(t *testing.T) {
	s := newSeeded(t)

	d, _ := s.Synthesize(claims.Partial{})

	checks := map[string]string{
		"PolicyHolderName":    d.PolicyHolderName,
		"PolicyNumber":        d.PolicyNumber,
		"VehicleMake":         d.VehicleMake,
		"VehicleModel":        d.VehicleModel,
		"IncidentDescription": d.IncidentDescription,
		"AdjusterName":        d.AdjusterName,
		"Status":              d.Status,
		"Company":             d.Company,
		"ClaimOffice":         d.ClaimOffice,
		"PointOfImpact":       d.PointOfImpact,
	}
	for name, v := range checks {
		if v == "" {
			t.Errorf("%s is empty", name)
		}
	}
	if d.VehicleYear == 0 {
		t.Error("VehicleYear is zero")
	}
	if d.IncidentDate.IsZero() {
		t.Error("IncidentDate is zero")
	}
}

func TestSynthesizeKeepsExtractedValues(t *testing.T) {
	s := newSeeded(t)
	date := time.Date(2025, 2, 10, 14, 30, 0, 0, time.UTC)

	p := claims.Partial{
		PolicyHolderName:    "John Carter",
		PolicyNumber:        "HN12345678",
		VehicleMake:         "Honda",
		VehicleModel:        "Accord",
		VehicleYear:         2020,
		IncidentDate:        &date,
		IncidentDescription: "Rear-ended at a traffic signal",
		AdjusterName:        "Ryan Cooper",
		Status:              "Submitted",
		Company:             "Alpha Insurance",
		ClaimOffice:         "Chicago Office",
		PointOfImpact:       "Rear bumper",
	}

	d, notes := s.Synthesize(p)

	want := claims.Draft{
		PolicyHolderName:    "John Carter",
		PolicyNumber:        "HN12345678",
		VehicleMake:         "Honda",
		VehicleModel:        "Accord",
		VehicleYear:         2020,
		IncidentDate:        date,
		IncidentDescription: "Rear-ended at a traffic signal",
		AdjusterName:        "Ryan Cooper",
		Status:              "Submitted",
		Company:             "Alpha Insurance",
		ClaimOffice:         "Chicago Office",
		PointOfImpact:       "Rear bumper",
	}
	if d != want {
		t.Errorf("Synthesize changed populated fields:\n got %+v\nwant %+v", d, want)
	}
	if len(notes) != 0 {
		t.Errorf("expected no notes for a fully valid partial, got %v", notes)
	}
}

func TestEmptyStringTreatedAsAbsent(t *testing.T) {
	s := newSeeded(t)

	d, _ := s.Synthesize(claims.Partial{
		PolicyHolderName: "",
		Company:          "  ",
	})
	if d.PolicyHolderName == "" || strings.TrimSpace(d.Company) == "" {
		t.Errorf("empty-string fields were not filled: %+v", d)
	}
}

func TestCompanyOfficePairAlwaysValid(t *testing.T) {
	tests := []struct {
		name    string
		partial claims.Partial
	}{
		{"both absent", claims.Partial{}},
		{"valid pair", claims.Partial{Company: "Beta Insurance", ClaimOffice: "Miami Office"}},
		{"known company, wrong office", claims.Partial{Company: "Beta Insurance", ClaimOffice: "Chicago Office"}},
		{"unknown company", claims.Partial{Company: "Omega Insurance", ClaimOffice: "Chicago Office"}},
		{"office only", claims.Partial{ClaimOffice: "Denver Office"}},
		{"unknown office only", claims.Partial{ClaimOffice: "Mars Office"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSeeded(t)
			d, _ := s.Synthesize(tt.partial)
			offices, ok := companyOffices[d.Company]
			if !ok {
				t.Fatalf("unknown company %q", d.Company)
			}
			if !contains(offices, d.ClaimOffice) {
				t.Errorf("office %q is not valid for company %q", d.ClaimOffice, d.Company)
			}
		})
	}
}

func TestValidCompanyOfficePairUnchanged(t *testing.T) {
	for company, offices := range companyOffices {
		for _, office := range offices {
			s := newSeeded(t)
			d, notes := s.Synthesize(claims.Partial{Company: company, ClaimOffice: office})
			if d.Company != company || d.ClaimOffice != office {
				t.Errorf("valid pair (%q, %q) changed to (%q, %q)", company, office, d.Company, d.ClaimOffice)
			}
			if len(notes) != 0 {
				t.Errorf("valid pair (%q, %q) produced notes %v", company, office, notes)
			}
		}
	}
}

func TestOfficeOnlyAdoptsOwningCompany(t *testing.T) {
	s := newSeeded(t)
	d, _ := s.Synthesize(claims.Partial{ClaimOffice: "Seattle Office"})
	if d.Company != "Gamma Insurance" {
		t.Errorf("Company = %q, want Gamma Insurance for Seattle Office", d.Company)
	}
	if d.ClaimOffice != "Seattle Office" {
		t.Errorf("ClaimOffice = %q, want Seattle Office", d.ClaimOffice)
	}
}

func TestSubstitutionsProduceNotes(t *testing.T) {
	s := newSeeded(t)
	_, notes := s.Synthesize(claims.Partial{Company: "Beta Insurance", ClaimOffice: "Chicago Office"})
	if len(notes) == 0 {
		t.Fatal("expected a note about the substituted office")
	}
	if !strings.Contains(notes[0], "Chicago Office") {
		t.Errorf("note %q does not mention the discarded office", notes[0])
	}

	s = newSeeded(t)
	_, notes = s.Synthesize(claims.Partial{Company: "Omega Insurance"})
	if len(notes) == 0 {
		t.Fatal("expected a note about the unrecognized company")
	}
}

func TestImpactMatchedFromDescription(t *testing.T) {
	tests := []struct {
		desc       string
		wantImpact string
	}{
		// Canonical phrase contained in a longer description.
		{"This morning I was rear-ended at a traffic signal on Main St", "Rear bumper"},
		// Description contained in a canonical phrase.
		{"hail damage", "Roof/Hood/Trunk"},
	}

	for _, tt := range tests {
		s := newSeeded(t)
		d, _ := s.Synthesize(claims.Partial{IncidentDescription: tt.desc})
		if d.IncidentDescription != tt.desc {
			t.Errorf("description changed: %q", d.IncidentDescription)
		}
		if d.PointOfImpact != tt.wantImpact {
			t.Errorf("impact for %q = %q, want %q", tt.desc, d.PointOfImpact, tt.wantImpact)
		}
	}
}

func TestUnmatchedDescriptionGetsKnownImpact(t *testing.T) {
	s := newSeeded(t)
	d, _ := s.Synthesize(claims.Partial{IncidentDescription: "a meteor landed on the car"})
	if !contains(defaultImpacts, d.PointOfImpact) {
		t.Errorf("impact %q is not from the reference table", d.PointOfImpact)
	}
}

func TestExtractedImpactWins(t *testing.T) {
	s := newSeeded(t)
	d, _ := s.Synthesize(claims.Partial{
		IncidentDescription: "Rear-ended at a traffic signal",
		PointOfImpact:       "Driver side",
	})
	if d.PointOfImpact != "Driver side" {
		t.Errorf("impact = %q, want the extracted value", d.PointOfImpact)
	}
}

func TestJointSynthesisIsConsistent(t *testing.T) {
	// With neither field present, description and impact must come from the
	// same table entry.
	for seed := int64(0); seed < 20; seed++ {
		s := New(rand.New(rand.NewSource(seed)))
		d, _ := s.Synthesize(claims.Partial{})
		found := false
		for _, ii := range incidentImpacts {
			if ii.description == d.IncidentDescription && ii.impact == d.PointOfImpact {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("seed %d: (%q, %q) is not a table pair", seed, d.IncidentDescription, d.PointOfImpact)
		}
	}
}

func TestIncidentDateWithinRange(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		s := New(rand.New(rand.NewSource(seed)))
		d, _ := s.Synthesize(claims.Partial{})
		if d.IncidentDate.Before(incidentRangeStart) || d.IncidentDate.After(incidentRangeEnd) {
			t.Errorf("seed %d: date %v outside [%v, %v]", seed, d.IncidentDate, incidentRangeStart, incidentRangeEnd)
		}
	}
}

func TestSeededSynthesisIsReproducible(t *testing.T) {
	a, _ := New(rand.New(rand.NewSource(7))).Synthesize(claims.Partial{})
	b, _ := New(rand.New(rand.NewSource(7))).Synthesize(claims.Partial{})
	if a != b {
		t.Errorf("same seed produced different drafts:\n%+v\n%+v", a, b)
	}
}
