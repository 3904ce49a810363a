package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ziadkadry99/claimpilot/internal/claims"
	"github.com/ziadkadry99/claimpilot/internal/oracle"
)

// respond is the final stage. It is deterministic, makes no external calls,
// and selects the response purely from which terminal fields are populated.
// Every branch yields non-empty text.
func (e *Engine) respond(st *TurnState) {
	st.step("Generating final response...")

	if st.Intent == nil {
		st.FinalResponse = "Sorry, I had trouble understanding your initial request."
		return
	}

	switch st.Intent.Action {
	case oracle.ActionCreate:
		st.FinalResponse = createResponse(st)
	case oracle.ActionRetrieve:
		st.FinalResponse = retrieveResponse(st)
	default:
		st.FinalResponse = "Okay, how can I help you specifically with creating or retrieving an auto insurance claim?"
	}
}

func createResponse(st *TurnState) string {
	switch {
	case st.SubmitErr != "":
		return fmt.Sprintf(
			"I tried to create the claim, but encountered an error: %s. The synthesized details were:\n%s",
			st.SubmitErr, formatDraft(st.Draft))

	case st.Submitted != nil:
		return fmt.Sprintf(
			"Successfully created claim with ID: %s. Here are the full details:\n%s",
			st.Submitted.ID, formatClaim(st.Submitted))

	case st.Draft != nil:
		// Submission skipped or confirmation unclear.
		return fmt.Sprintf(
			"The claim was synthesized, but I couldn't confirm it was stored. Details:\n%s",
			formatDraft(st.Draft))

	default:
		return "I understood you want to create a claim, but couldn't finalize the details or submit it."
	}
}

func retrieveResponse(st *TurnState) string {
	switch {
	case st.Query != nil && st.Query.Rejected():
		return st.Query.Rejection

	case st.QueryErr != "":
		return "I tried to retrieve the claims, but encountered a database error: " + st.QueryErr

	case st.Rows != nil:
		if len(st.Rows) == 0 {
			return "I couldn't find any claims matching your criteria."
		}
		return "Found the following claim(s):\n" + formatRows(st.Rows)

	default:
		return "I generated a query for your request, but couldn't retrieve the results."
	}
}

func formatRows(rows []claims.Row) string {
	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "- Claim ID: %s, Status: %s, Holder: %s\n",
			rowField(row, "id"), rowField(row, "status"), rowField(row, "policy_holder_name"))
	}
	return strings.TrimRight(b.String(), "\n")
}

func rowField(row claims.Row, name string) string {
	v, ok := row[name]
	if !ok || v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%v", v)
}

func formatDraft(d *claims.Draft) string {
	if d == nil {
		return "{}"
	}
	return indentJSON(d)
}

func formatClaim(c *claims.Claim) string {
	if c == nil {
		return "{}"
	}
	return indentJSON(c)
}

func indentJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}
