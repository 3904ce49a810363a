package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// handleChat runs one conversational turn through the engine.
func (s *Server) handleChat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: message"), nil
	}

	st := s.engine.Run(ctx, message)

	var b strings.Builder
	b.WriteString(st.FinalResponse)
	if len(st.Steps) > 0 {
		b.WriteString("\n\nProcessing steps:\n")
		for _, step := range st.Steps {
			fmt.Fprintf(&b, "- %s\n", step)
		}
	}

	return mcp.NewToolResultText(b.String()), nil
}

// handleGetClaim returns one claim as JSON.
func (s *Server) handleGetClaim(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	claimID, err := request.RequireString("claim_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: claim_id"), nil
	}

	claim, err := s.store.GetByID(ctx, claimID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
	}
	if claim == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no claim found with ID %q", claimID)), nil
	}

	data, err := json.MarshalIndent(claim, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding claim: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleListClaims returns the most recent claims as JSON.
func (s *Server) handleListClaims(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 20)
	if limit <= 0 {
		limit = 20
	}

	list, err := s.store.List(ctx, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing claims: %v", err)), nil
	}
	if len(list) == 0 {
		return mcp.NewToolResultText("No claims stored yet."), nil
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding claims: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
