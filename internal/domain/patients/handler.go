package patients

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
	r.Route("/patients", func(pr chi.Router) {
		pr.Get("/", listHandler(svc))
		pr.Get("/triage", triageHandler(svc))
		pr.Post("/", createHandler(svc))
		pr.Patch("/{patientID}", updateHandler(svc))
		pr.Delete("/{patientID}", deleteHandler(svc))
	})
}

type listResponse struct {
	State     string     `json:"state"`
	Data      []Patient  `json:"data"`
	Error     string     `json:"error,omitempty"`
	Stale     bool       `json:"stale,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toListResponse(c Collection) listResponse {
	resp := listResponse{
		State: string(c.State),
		Data:  c.Items,
		Stale: c.Stale,
	}
	if c.Err != nil {
		resp.Error = c.Err.Error()
	}
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}

type createRequest struct {
	Name             string           `json:"name"`
	Species          string           `json:"species"`
	Breed            string           `json:"breed"`
	Gender           string           `json:"gender"`
	BirthDate        string           `json:"birth_date"` // YYYY-MM-DD
	Weight           float64          `json:"weight"`
	Color            string           `json:"color"`
	Microchip        string           `json:"microchip"`
	OwnerID          string           `json:"owner_id"`
	OwnerName        string           `json:"owner_name"`
	OwnerPhone       string           `json:"owner_phone"`
	OwnerAddress     string           `json:"owner_address"`
	EmergencyContact EmergencyContact `json:"emergency_contact"`
	Status           string           `json:"status"`
	Conditions       []string         `json:"conditions"`
	Allergies        []string         `json:"allergies"`
	Notes            string           `json:"notes"`
	ImageURL         string           `json:"image_url"`
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		col, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "request cancelled", http.StatusRequestTimeout)
			return
		}

		col.Items = Filter(col.Items, Query{
			Search:  r.URL.Query().Get("search"),
			Species: r.URL.Query().Get("species"),
			Status:  ClinicalStatus(r.URL.Query().Get("status")),
			OwnerID: r.URL.Query().Get("owner_id"),
		})

		writeJSON(w, http.StatusOK, toListResponse(col))
	}
}

func triageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		col, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "request cancelled", http.StatusRequestTimeout)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"state":  string(col.State),
			"data":   SortByTriage(col.Items),
			"groups": GroupByStatus(col.Items),
		})
	}
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var birth time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := time.Parse("2006-01-02", req.BirthDate)
			if err != nil {
				http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			birth = t
		}

		created, err := svc.Create(r.Context(), Patient{
			Name:             req.Name,
			Species:          req.Species,
			Breed:            req.Breed,
			Gender:           Gender(req.Gender),
			BirthDate:        birth,
			Weight:           req.Weight,
			Color:            req.Color,
			Microchip:        req.Microchip,
			OwnerID:          req.OwnerID,
			OwnerName:        req.OwnerName,
			OwnerPhone:       req.OwnerPhone,
			OwnerAddress:     req.OwnerAddress,
			EmergencyContact: req.EmergencyContact,
			Status:           ClinicalStatus(req.Status),
			Conditions:       req.Conditions,
			Allergies:        req.Allergies,
			Notes:            req.Notes,
			ImageURL:         req.ImageURL,
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

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "patientID"), in)
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

		if err := svc.Delete(r.Context(), chi.URLParam(r, "patientID")); err != nil {
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
