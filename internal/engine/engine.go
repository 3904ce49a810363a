package engine

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/ziadkadry99/claimpilot/internal/claims"
	"github.com/ziadkadry99/claimpilot/internal/oracle"
)

// insufficientDetail is the fixed rejection for a retrieval request with no
// usable details. The query oracle is never invoked in that case.
const insufficientDetail = "Please provide more specific details for the claim you want to retrieve (e.g., claim ID, policy number, status)."

// Engine is the per-turn orchestrator. It is constructed once per process,
// holds no mutable turn state, and is safe to use from concurrent sessions;
// callers are expected to process turns of a single session one at a time.
type Engine struct {
	classifier  Classifier
	extractor   Extractor
	queryGen    QueryGenerator
	executor    Executor
	submitter   Submitter
	synthesizer Synthesizer
	callTimeout time.Duration
}

// Config bundles the engine's collaborators.
type Config struct {
	Classifier  Classifier
	Extractor   Extractor
	QueryGen    QueryGenerator
	Executor    Executor
	Submitter   Submitter
	Synthesizer Synthesizer

	// CallTimeout bounds each collaborator call. Defaults to 30s.
	CallTimeout time.Duration
}

// New creates an Engine with the given collaborators.
func New(cfg Config) *Engine {
	timeout := cfg.CallTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Engine{
		classifier:  cfg.Classifier,
		extractor:   cfg.Extractor,
		queryGen:    cfg.QueryGen,
		executor:    cfg.Executor,
		submitter:   cfg.Submitter,
		synthesizer: cfg.Synthesizer,
		callTimeout: timeout,
	}
}

// Run processes one user message and returns the completed turn state.
// Collaborator failures are captured into the state, never raised: every
// turn ends with a non-empty FinalResponse.
func (e *Engine) Run(ctx context.Context, input string) *TurnState {
	st := &TurnState{Input: input}

	e.classify(ctx, st)

	switch st.Intent.Action {
	case oracle.ActionCreate:
		e.extract(ctx, st)
		e.synthesize(st)
		if st.Draft != nil {
			e.submit(ctx, st)
		}
	case oracle.ActionRetrieve:
		e.generateQuery(ctx, st)
		if st.Query != nil && !st.Query.Rejected() {
			e.execute(ctx, st)
		}
	}

	e.respond(st)
	return st
}

// classify runs the classification stage. Failure is recovered with a forced
// unknown intent rather than a nil one, so routing stays well-defined.
func (e *Engine) classify(ctx context.Context, st *TurnState) {
	st.step("Analyzing your message for intent...")

	callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	intent, err := e.classifier.Classify(callCtx, st.Input)
	if err != nil {
		log.Printf("engine: intent classification failed: %v", err)
		st.step("Could not determine intent; treating the message as unclear.")
		st.Intent = &oracle.Intent{Action: oracle.ActionUnknown}
		return
	}

	st.Intent = &intent
	st.step(fmt.Sprintf("Intent detected: %s", intent.Action))
}

// extract runs the extraction stage. On failure the partial stays nil and the
// turn proceeds; the response stage covers the gap.
func (e *Engine) extract(ctx context.Context, st *TurnState) {
	st.step("Extracting claim details...")

	callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	partial, err := e.extractor.Extract(callCtx, st.Input)
	if err != nil {
		log.Printf("engine: claim extraction failed: %v", err)
		st.step("Could not extract claim details from the message.")
		return
	}

	st.Partial = &partial
	if fields := populatedFields(partial); len(fields) > 0 {
		st.step("Details found: " + strings.Join(fields, ", "))
	} else {
		st.step("No specific details extracted yet.")
	}
}

// synthesize fills the partial into a complete draft. Without an extraction
// result there is nothing to complete and the stage is skipped.
func (e *Engine) synthesize(st *TurnState) {
	if st.Partial == nil {
		return
	}

	st.step("Filling in the remaining claim fields...")
	draft, notes := e.synthesizer.Synthesize(*st.Partial)
	st.Draft = &draft
	for _, note := range notes {
		st.step("Note: " + note)
	}
}

// submit persists the draft via the submitter. Errors are captured, never
// retried: the store owns write-path conflicts such as duplicate policy
// numbers.
func (e *Engine) submit(ctx context.Context, st *TurnState) {
	st.step("Submitting the claim...")

	callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	stored, err := e.submitter.Submit(callCtx, *st.Draft)
	if err != nil {
		log.Printf("engine: claim submission failed: %v", err)
		st.SubmitErr = err.Error()
		return
	}

	st.Submitted = stored
	st.step(fmt.Sprintf("Claim stored with ID %s.", stored.ID))
}

// generateQuery runs the query-generation stage. A retrieval request without
// details short-circuits to a fixed rejection without invoking the oracle.
func (e *Engine) generateQuery(ctx context.Context, st *TurnState) {
	details := strings.TrimSpace(st.Intent.QueryDetails)
	if details == "" {
		st.step("No retrieval details were provided.")
		st.Query = &oracle.QueryResult{Rejection: insufficientDetail}
		return
	}

	st.step("Generating a query for: " + details)

	callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	result, err := e.queryGen.Generate(callCtx, details)
	if err != nil {
		log.Printf("engine: query generation failed: %v", err)
		st.Query = &oracle.QueryResult{Rejection: fmt.Sprintf("Failed to generate a query: %v", err)}
		return
	}

	st.Query = &result
	if result.Rejected() {
		st.step("The request could not be turned into a query.")
	} else if result.Explanation != "" {
		st.step("Query ready: " + result.Explanation)
	}
}

// execute runs the validated query. Execution errors are captured as data.
func (e *Engine) execute(ctx context.Context, st *TurnState) {
	st.step("Searching claim records...")

	callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	rows, err := e.executor.Run(callCtx, st.Query.SQL)
	if err != nil {
		log.Printf("engine: query execution failed: %v", err)
		st.QueryErr = err.Error()
		return
	}

	if rows == nil {
		rows = []claims.Row{}
	}
	st.Rows = rows
	st.step(fmt.Sprintf("Query returned %d row(s).", len(rows)))
}

// populatedFields lists the JSON field names present in a partial, for the
// step log.
func populatedFields(p claims.Partial) []string {
	fields := map[string]bool{
		"policy_holder_name":   p.PolicyHolderName != "",
		"policy_number":        p.PolicyNumber != "",
		"vehicle_make":         p.VehicleMake != "",
		"vehicle_model":        p.VehicleModel != "",
		"vehicle_year":         p.VehicleYear != 0,
		"incident_date":        p.IncidentDate != nil,
		"incident_description": p.IncidentDescription != "",
		"adjuster_name":        p.AdjusterName != "",
		"status":               p.Status != "",
		"company":              p.Company != "",
		"claim_office":         p.ClaimOffice != "",
		"point_of_impact":      p.PointOfImpact != "",
	}

	var out []string
	for name, set := range fields {
		if set {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
