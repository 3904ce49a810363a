package claims

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the claims API under /api/claims on the given router.
// The API accepts new claim submissions and serves read-only lookups; there
// are intentionally no update or delete endpoints.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/claims", func(r chi.Router) {
		r.Post("/", handleCreate(store))
		r.Get("/", handleList(store))
		r.Get("/{id}", handleGetByID(store))
	})
}

func handleCreate(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft Draft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}

		if msg := validateDraft(draft); msg != "" {
			http.Error(w, msg, http.StatusUnprocessableEntity)
			return
		}

		claim, err := store.Insert(r.Context(), draft)
		if err != nil {
			status := http.StatusInternalServerError
			if strings.Contains(err.Error(), "already exists") {
				status = http.StatusConflict
			}
			http.Error(w, err.Error(), status)
			return
		}

		writeJSON(w, http.StatusCreated, claim)
	}
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}

		claims, err := store.List(r.Context(), limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if claims == nil {
			claims = []Claim{}
		}

		writeJSON(w, http.StatusOK, claims)
	}
}

func handleGetByID(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		claim, err := store.GetByID(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if claim == nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, claim)
	}
}

// validateDraft checks required fields, returning an error message or "".
func validateDraft(d Draft) string {
	var missing []string
	check := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	check("policy_holder_name", d.PolicyHolderName)
	check("policy_number", d.PolicyNumber)
	check("vehicle_make", d.VehicleMake)
	check("vehicle_model", d.VehicleModel)
	check("incident_description", d.IncidentDescription)
	check("adjuster_name", d.AdjusterName)
	check("status", d.Status)
	check("company", d.Company)
	check("claim_office", d.ClaimOffice)
	check("point_of_impact", d.PointOfImpact)
	if d.VehicleYear == 0 {
		missing = append(missing, "vehicle_year")
	}
	if d.IncidentDate.IsZero() {
		missing = append(missing, "incident_date")
	}

	if len(missing) > 0 {
		return "missing required fields: " + strings.Join(missing, ", ")
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
