package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vet-practice-manager/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users", func(ur chi.Router) {
		ur.Get("/", listHandler(svc))
		ur.Post("/", createHandler(svc))
		ur.Patch("/{userID}", updateHandler(svc))
		ur.Delete("/{userID}", deleteHandler(svc))
		ur.Post("/{userID}/status", setStatusHandler(svc))
	})

	r.Get("/veterinarians", listVetsHandler(svc))
	r.Get("/admins", listAdminsHandler(svc))
}

type listResponse struct {
	State     string     `json:"state"`
	Data      []User     `json:"data"`
	Error     string     `json:"error,omitempty"`
	Stale     bool       `json:"stale,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type vetListResponse struct {
	State     string         `json:"state"`
	Data      []Veterinarian `json:"data"`
	Error     string         `json:"error,omitempty"`
	Stale     bool           `json:"stale,omitempty"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty"`
}

func toListResponse(c Collection) listResponse {
	resp := listResponse{State: string(c.State), Data: c.Items, Stale: c.Stale}
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
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Role    string      `json:"role"`
	Status  string      `json:"status"`
	Profile *VetProfile `json:"profile"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		col, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "request cancelled", http.StatusRequestTimeout)
			return
		}

		col.Items = Filter(col.Items, Query{
			Search: r.URL.Query().Get("search"),
			Role:   Role(r.URL.Query().Get("role")),
			Status: Status(r.URL.Query().Get("status")),
		})

		writeJSON(w, http.StatusOK, toListResponse(col))
	}
}

func listVetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		col, err := svc.ListVeterinarians(r.Context())
		if err != nil {
			http.Error(w, "request cancelled", http.StatusRequestTimeout)
			return
		}

		col.Items = FilterVeterinarians(col.Items, VetQuery{
			Search:         r.URL.Query().Get("search"),
			Status:         Status(r.URL.Query().Get("status")),
			ClinicID:       r.URL.Query().Get("clinic_id"),
			Specialization: r.URL.Query().Get("specialization"),
		})

		resp := vetListResponse{State: string(col.State), Data: col.Items, Stale: col.Stale}
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

func listAdminsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		col, err := svc.ListAdmins(r.Context())
		if err != nil {
			http.Error(w, "request cancelled", http.StatusRequestTimeout)
			return
		}
		writeJSON(w, http.StatusOK, toListResponse(col))
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

		created, err := svc.Create(r.Context(), User{
			Name:   req.Name,
			Email:  req.Email,
			Role:   Role(req.Role),
			Status: Status(req.Status),
		}, req.Profile)
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

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "userID"), in)
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

		if err := svc.Delete(r.Context(), chi.URLParam(r, "userID")); err != nil {
			writeMutationError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func setStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req setStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.SetStatus(r.Context(), chi.URLParam(r, "userID"), Status(req.Status))
		if err != nil {
			writeMutationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
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
