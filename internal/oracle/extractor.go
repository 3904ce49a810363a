package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ziadkadry99/claimpilot/internal/claims"
	"github.com/ziadkadry99/claimpilot/internal/llm"
)

// Extractor pulls explicitly mentioned claim details out of a user message.
type Extractor struct {
	provider llm.Provider
	model    string
}

// NewExtractor creates an Extractor over the given provider.
func NewExtractor(provider llm.Provider, model string) *Extractor {
	return &Extractor{provider: provider, model: model}
}

// Extract returns a sparse partial claim containing only details the user
// actually stated. Fields the message does not mention stay zero.
func (e *Extractor) Extract(ctx context.Context, text string) (claims.Partial, error) {
	resp, err := e.provider.Complete(ctx, llm.CompletionRequest{
		Model: e.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: extractorSystemPrompt},
			{Role: llm.RoleUser, Content: text},
		},
		MaxTokens:   512,
		Temperature: 0,
		JSONMode:    true,
	})
	if err != nil {
		return claims.Partial{}, fmt.Errorf("extraction completion: %w", err)
	}

	partial, err := parsePartial(resp.Content)
	if err != nil {
		return claims.Partial{}, fmt.Errorf("parsing extraction response: %w", err)
	}
	return partial, nil
}

// rawPartial tolerates the loose typing of model output: years may come back
// as strings, dates in several ISO 8601 shapes.
type rawPartial struct {
	PolicyHolderName    string `json:"policy_holder_name"`
	PolicyNumber        string `json:"policy_number"`
	VehicleMake         string `json:"vehicle_make"`
	VehicleModel        string `json:"vehicle_model"`
	VehicleYear         any    `json:"vehicle_year"`
	IncidentDate        string `json:"incident_date"`
	IncidentDescription string `json:"incident_description"`
	AdjusterName        string `json:"adjuster_name"`
	Status              string `json:"status"`
	Company             string `json:"company"`
	ClaimOffice         string `json:"claim_office"`
	PointOfImpact       string `json:"point_of_impact"`
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parsePartial(content string) (claims.Partial, error) {
	var raw rawPartial
	if err := json.Unmarshal([]byte(extractJSON(content)), &raw); err != nil {
		return claims.Partial{}, err
	}

	p := claims.Partial{
		PolicyHolderName:    strings.TrimSpace(raw.PolicyHolderName),
		PolicyNumber:        strings.TrimSpace(raw.PolicyNumber),
		VehicleMake:         strings.TrimSpace(raw.VehicleMake),
		VehicleModel:        strings.TrimSpace(raw.VehicleModel),
		IncidentDescription: strings.TrimSpace(raw.IncidentDescription),
		AdjusterName:        strings.TrimSpace(raw.AdjusterName),
		Status:              strings.TrimSpace(raw.Status),
		Company:             strings.TrimSpace(raw.Company),
		ClaimOffice:         strings.TrimSpace(raw.ClaimOffice),
		PointOfImpact:       strings.TrimSpace(raw.PointOfImpact),
	}

	switch y := raw.VehicleYear.(type) {
	case float64:
		p.VehicleYear = int(y)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(y)); err == nil {
			p.VehicleYear = n
		}
	}

	if raw.IncidentDate != "" {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw.IncidentDate); err == nil {
				p.IncidentDate = &t
				break
			}
		}
	}

	return p, nil
}
