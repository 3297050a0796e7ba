package healthrecords

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"vet-practice-manager/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/health-records", func(hr chi.Router) {
		hr.Get("/", listHandler(svc))
		hr.Post("/", createHandler(svc))
		hr.Patch("/{recordID}", updateHandler(svc))
		hr.Delete("/{recordID}", deleteHandler(svc))
	})
}

type listResponse struct {
	State     string         `json:"state"`
	Data      []HealthRecord `json:"data"`
	Error     string         `json:"error,omitempty"`
	Stale     bool           `json:"stale,omitempty"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty"`
}

type createRequest struct {
	PatientID        string   `json:"patient_id"`
	Type             string   `json:"type"`
	Title            string   `json:"title"`
	Date             string   `json:"date"` // YYYY-MM-DD
	Diagnosis        string   `json:"diagnosis"`
	Treatment        string   `json:"treatment"`
	Medications      []string `json:"medications"`
	Notes            string   `json:"notes"`
	Vitals           Vitals   `json:"vitals"`
	FollowUpRequired bool     `json:"follow_up_required"`
	FollowUpDate     string   `json:"follow_up_date"` // YYYY-MM-DD
	VetID            string   `json:"vet_id"`
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		col, err := svc.List(r.Context(), ListFilter{
			PatientID: strings.TrimSpace(r.URL.Query().Get("patient_id")),
		})
		if err != nil {
			http.Error(w, "request cancelled", http.StatusRequestTimeout)
			return
		}

		col.Items = Filter(col.Items, Query{
			Search:    r.URL.Query().Get("search"),
			Type:      RecordType(r.URL.Query().Get("type")),
			VetID:     r.URL.Query().Get("vet_id"),
			FollowUps: r.URL.Query().Get("follow_ups") == "true",
		})

		resp := listResponse{State: string(col.State), Data: col.Items, Stale: col.Stale}
		if col.Err != nil {
			resp.Error = col.Err.Error()
		}
		if !col.UpdatedAt.IsZero() {
			t := col.UpdatedAt
			resp.UpdatedAt = &t
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := time.Parse("2006-01-02", strings.TrimSpace(req.Date))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		var followUp *time.Time
		if strings.TrimSpace(req.FollowUpDate) != "" {
			t, err := time.Parse("2006-01-02", req.FollowUpDate)
			if err != nil {
				http.Error(w, "follow_up_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			followUp = &t
		}

		vetID := strings.TrimSpace(req.VetID)
		if vetID == "" {
			// Default: el autor es quien firma el request.
			vetID = claims.UserID
		}

		created, err := svc.Create(r.Context(), HealthRecord{
			PatientID:        req.PatientID,
			Type:             RecordType(req.Type),
			Title:            req.Title,
			Date:             date,
			Diagnosis:        req.Diagnosis,
			Treatment:        req.Treatment,
			Medications:      req.Medications,
			Notes:            req.Notes,
			Vitals:           req.Vitals,
			FollowUpRequired: req.FollowUpRequired,
			FollowUpDate:     followUp,
			VetID:            vetID,
		})
		if err != nil {
			writeMutationError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var in UpdateInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "recordID"), in)
		if err != nil {
			writeMutationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "recordID")); err != nil {
			writeMutationError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeMutationError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusBadGateway)
}

// writeJSON está duplicado a propósito en los handlers de cada módulo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
