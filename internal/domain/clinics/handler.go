package clinics

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"vet-practice-manager/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/clinics", func(cr chi.Router) {
		cr.Get("/", listHandler(svc))
		cr.Post("/", createHandler(svc))
		cr.Patch("/{clinicID}", updateHandler(svc))
		cr.Delete("/{clinicID}", deleteHandler(svc))
	})
}

type listResponse struct {
	State     string     `json:"state"`
	Data      []Clinic   `json:"data"`
	Error     string     `json:"error,omitempty"`
	Stale     bool       `json:"stale,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type createRequest struct {
	Name               string            `json:"name"`
	Address            string            `json:"address"`
	City               string            `json:"city"`
	Phone              string            `json:"phone"`
	Email              string            `json:"email"`
	OperatingHours     map[string]string `json:"operating_hours"`
	Services           []string          `json:"services"`
	Active             bool              `json:"active"`
	EmergencyAvailable bool              `json:"emergency_available"`
	LicenseNumber      string            `json:"license_number"`
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		col, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "request cancelled", http.StatusRequestTimeout)
			return
		}

		q := Query{
			Search:  r.URL.Query().Get("search"),
			Service: r.URL.Query().Get("service"),
		}
		if v := r.URL.Query().Get("active"); v != "" {
			b, err := strconv.ParseBool(v)
			if err == nil {
				q.Active = &b
			}
		}
		if v := r.URL.Query().Get("emergency"); v != "" {
			b, err := strconv.ParseBool(v)
			if err == nil {
				q.Emergency = &b
			}
		}
		col.Items = Filter(col.Items, q)

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
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		created, err := svc.Create(r.Context(), Clinic{
			Name:               req.Name,
			Address:            req.Address,
			City:               req.City,
			Phone:              req.Phone,
			Email:              req.Email,
			OperatingHours:     req.OperatingHours,
			Services:           req.Services,
			Active:             req.Active,
			EmergencyAvailable: req.EmergencyAvailable,
			LicenseNumber:      req.LicenseNumber,
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

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "clinicID"), in)
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

		if err := svc.Delete(r.Context(), chi.URLParam(r, "clinicID")); err != nil {
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
