package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mem "vet-practice-manager/internal/adapters/vetapi/memory"
	"vet-practice-manager/internal/router"
)

func newTestServer() *httptest.Server {
	// Backend in-memory explícito para no depender de env (DB_DSN etc.).
	b := mem.New()
	return httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: nil,
		Backends: &router.Backends{
			Clinics:      b.Clinics(),
			Users:        b.Users(),
			Patients:     b.Patients(),
			Records:      b.Records(),
			Vaccinations: b.Vaccinations(),
		},
	}))
}

func TestHTTP_EndToEnd_PracticeFlow(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	adminID := "admin-1"

	// 1) Alta de clínica
	clinicID := createResource(t, ts.URL, adminID, "/clinics", map[string]any{
		"name":           "Central Vet",
		"city":           "Córdoba",
		"license_number": "LIC-001",
		"active":         true,
		"services":       []string{"surgery", "vaccination"},
	})

	// 2) Alta de veterinario con perfil => arranca pending
	var vet struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/users", adminID, map[string]any{
			"name":  "Dr. Paz",
			"email": "paz@clinic.com",
			"role":  "veterinarian",
			"profile": map[string]any{
				"license_number": "VET-001",
				"clinic_id":      clinicID,
				"specialization": "Surgery",
			},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create vet, got %d body=%s", st, string(body))
		}
		_ = json.Unmarshal(body, &vet)
		if vet.Status != "pending" {
			t.Fatalf("expected new vet pending, got %s body=%s", vet.Status, string(body))
		}
	}

	// 3) Veterinario sin perfil => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/users", adminID, map[string]any{
			"name":  "Dr. Sol",
			"email": "sol@clinic.com",
			"role":  "veterinarian",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 vet without profile, got %d", st)
		}
	}

	// 4) Activar al veterinario
	{
		st, body := doReq(t, ts.URL, "POST", "/users/"+vet.ID+"/status", adminID, map[string]any{
			"status": "active",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 set status, got %d body=%s", st, string(body))
		}
	}

	// 5) La lista de veterinarios refleja el cambio (cache invalidado por la mutación)
	{
		st, body := doReq(t, ts.URL, "GET", "/veterinarians", adminID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list vets, got %d", st)
		}
		var resp struct {
			State string `json:"state"`
			Data  []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"data"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.State != "ready" {
			t.Fatalf("expected ready state, got %s", resp.State)
		}
		if len(resp.Data) != 1 || resp.Data[0].Status != "active" {
			t.Fatalf("expected active vet in list, body=%s", string(body))
		}
	}

	// 6) Alta de dueño y paciente
	ownerID := createResource(t, ts.URL, adminID, "/users", map[string]any{
		"name":  "Ana García",
		"email": "ana@mail.com",
		"role":  "pet_owner",
	})
	patientID := createResource(t, ts.URL, adminID, "/patients", map[string]any{
		"name":       "Luna",
		"species":    "dog",
		"breed":      "Labrador",
		"owner_id":   ownerID,
		"owner_name": "Ana García",
		"status":     "healthy",
	})

	// 7) Registro médico con follow-up
	createResource(t, ts.URL, adminID, "/health-records", map[string]any{
		"patient_id":         patientID,
		"type":               "checkup",
		"title":              "Annual checkup",
		"date":               "2026-08-01",
		"follow_up_required": true,
		"follow_up_date":     "2026-10-01",
	})

	// 8) Vacuna antirrábica: próxima dosis derivada a +3 años
	administered := time.Now().UTC().AddDate(0, 0, -10)
	{
		st, body := doReq(t, ts.URL, "POST", "/vaccinations", adminID, map[string]any{
			"patient_id":        patientID,
			"vaccine_name":      "Rabivac",
			"vaccine_type":      "rabies",
			"administered_date": administered.Format("2006-01-02"),
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create vaccination, got %d body=%s", st, string(body))
		}
		var resp struct {
			NextDueDate time.Time `json:"next_due_date"`
			Status      string    `json:"status"`
			PatientName string    `json:"patient_name"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.NextDueDate.Year() != administered.Year()+3 {
			t.Fatalf("expected next due +3y for rabies, got %v", resp.NextDueDate)
		}
		if resp.Status != "completed" {
			t.Fatalf("expected completed right after dosing, got %s", resp.Status)
		}
		if resp.PatientName != "Luna" {
			t.Fatalf("expected denormalized patient name, got %q", resp.PatientName)
		}
	}

	// 9) Listado de vacunas filtrado por paciente
	{
		st, body := doReq(t, ts.URL, "GET", "/vaccinations?patient_id="+patientID, adminID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list vaccinations, got %d", st)
		}
		var resp struct {
			State string           `json:"state"`
			Data  []map[string]any `json:"data"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.State != "ready" || len(resp.Data) != 1 {
			t.Fatalf("expected 1 ready vaccination, body=%s", string(body))
		}
	}

	// 10) Mutación de paciente => el próximo read ve el cambio
	{
		st, body := doReq(t, ts.URL, "PATCH", "/patients/"+patientID, adminID, map[string]any{
			"status": "critical",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch patient, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/patients/triage", adminID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 triage, got %d", st)
		}
		var resp struct {
			Data []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"data"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Data) == 0 || resp.Data[0].ID != patientID || resp.Data[0].Status != "critical" {
			t.Fatalf("expected critical patient first in triage, body=%s", string(body))
		}
	}

	// 11) Proyección por búsqueda
	{
		st, body := doReq(t, ts.URL, "GET", "/patients?search=luna", adminID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 search, got %d", st)
		}
		var resp struct {
			Data []map[string]any `json:"data"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Data) != 1 {
			t.Fatalf("expected 1 match for luna, body=%s", string(body))
		}
	}
}

func TestHTTP_MutationsRequireAuth(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	// Sin X-Debug-User-ID no hay claims: toda mutación es 401.
	st, _ := doReq(t, ts.URL, "POST", "/patients", "", map[string]any{
		"name": "Luna", "species": "dog", "owner_id": "o1",
	})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", st)
	}

	// Las lecturas siguen abiertas.
	st, _ = doReq(t, ts.URL, "GET", "/patients", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 open read, got %d", st)
	}
}

func TestHTTP_InvalidInputIs400(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	// Paciente sin especie ni dueño
	st, _ := doReq(t, ts.URL, "POST", "/patients", "admin-1", map[string]any{
		"name": "Luna",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid patient, got %d", st)
	}

	// Estado de cuenta desconocido
	st, _ = doReq(t, ts.URL, "POST", "/users/u1/status", "admin-1", map[string]any{
		"status": "banned",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 unknown status, got %d", st)
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}
}

func createResource(t *testing.T, baseURL, userID, path string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
