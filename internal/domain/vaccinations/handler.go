package vaccinations

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
	r.Route("/vaccinations", func(vr chi.Router) {
		vr.Get("/", listHandler(svc))
		vr.Get("/groups", groupsHandler(svc))
		vr.Post("/", createHandler(svc))
		vr.Patch("/{vaccinationID}", updateHandler(svc))
		vr.Delete("/{vaccinationID}", deleteHandler(svc))
	})
}

type listResponse struct {
	State     string        `json:"state"`
	Data      []Vaccination `json:"data"`
	Error     string        `json:"error,omitempty"`
	Stale     bool          `json:"stale,omitempty"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
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
	PatientID        string `json:"patient_id"`
	PatientName      string `json:"patient_name"`
	PatientSpecies   string `json:"patient_species"`
	OwnerName        string `json:"owner_name"`
	VaccineName      string `json:"vaccine_name"`
	VaccineType      string `json:"vaccine_type"`
	Manufacturer     string `json:"manufacturer"`
	BatchNumber      string `json:"batch_number"`
	AdministeredDate string `json:"administered_date"` // YYYY-MM-DD
	NextDueDate      string `json:"next_due_date"`     // opcional; si falta se deriva
	AdministeredBy   string `json:"administered_by"`
	Site             string `json:"site"`
	Route            string `json:"route"`
	Dose             string `json:"dose"`
	Notes            string `json:"notes"`
	Reactions        string `json:"reactions"`
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

		q := Query{
			Search:      r.URL.Query().Get("search"),
			VaccineType: VaccineType(r.URL.Query().Get("vaccine_type")),
			Status:      Status(r.URL.Query().Get("status")),
		}
		col.Items = Filter(col.Items, q, time.Now(), DefaultLookahead)

		writeJSON(w, http.StatusOK, toListResponse(col))
	}
}

func groupsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		col, err := svc.List(r.Context(), ListFilter{})
		if err != nil {
			http.Error(w, "request cancelled", http.StatusRequestTimeout)
			return
		}

		groups := GroupByStatus(col.Items, time.Now(), DefaultLookahead)
		writeJSON(w, http.StatusOK, map[string]any{
			"state":  string(col.State),
			"groups": groups,
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

		administered, err := parseDate(req.AdministeredDate)
		if err != nil {
			http.Error(w, "administered_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		var nextDue time.Time
		if strings.TrimSpace(req.NextDueDate) != "" {
			nextDue, err = parseDate(req.NextDueDate)
			if err != nil {
				http.Error(w, "next_due_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
		}

		created, err := svc.Create(r.Context(), Vaccination{
			PatientID:        req.PatientID,
			PatientName:      req.PatientName,
			PatientSpecies:   req.PatientSpecies,
			OwnerName:        req.OwnerName,
			VaccineName:      req.VaccineName,
			VaccineType:      VaccineType(req.VaccineType),
			Manufacturer:     req.Manufacturer,
			BatchNumber:      req.BatchNumber,
			AdministeredDate: administered,
			NextDueDate:      nextDue,
			AdministeredBy:   req.AdministeredBy,
			Site:             req.Site,
			Route:            req.Route,
			Dose:             req.Dose,
			Notes:            req.Notes,
			Reactions:        req.Reactions,
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

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "vaccinationID"), in)
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

		if err := svc.Delete(r.Context(), chi.URLParam(r, "vaccinationID")); err != nil {
			writeMutationError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}

func writeMutationError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// Falla del colaborador remoto: el cache quedó intacto, el caller
	// recibe el error para reintentar.
	http.Error(w, err.Error(), http.StatusBadGateway)
}

// writeJSON está duplicado a propósito en los handlers de cada módulo,
// igual que en el resto de los dominios: todavía no amerita un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
