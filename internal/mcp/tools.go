package mcp

import "github.com/mark3labs/mcp-go/mcp"

// chatTool defines the chat MCP tool.
var chatTool = mcp.NewTool("chat",
	mcp.WithDescription("Send a natural-language message about auto insurance claims. Creates a new claim from an incident description, or retrieves existing claims from a request like 'show me claims for John Doe'."),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("The message, e.g. 'I hit a deer this morning' or 'find claim CLM-123'"),
	),
)

// getClaimTool defines the get_claim MCP tool.
var getClaimTool = mcp.NewTool("get_claim",
	mcp.WithDescription("Get a stored claim record by its ID."),
	mcp.WithString("claim_id",
		mcp.Required(),
		mcp.Description("The claim ID, e.g. CLM-9876543210"),
	),
)

// listClaimsTool defines the list_claims MCP tool.
var listClaimsTool = mcp.NewTool("list_claims",
	mcp.WithDescription("List the most recently created claims."),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of claims to return (default 20)"),
	),
)
