package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vet-practice-manager/internal/adapters/vetapi/remote"
	"vet-practice-manager/internal/domain/patients"
	"vet-practice-manager/internal/domain/vaccinations"
	"vet-practice-manager/internal/platform/httpclient"
)

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := remote.NewClient(remote.Config{})
	if !errors.Is(err, remote.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestClient_SendsAPIKeyHeader(t *testing.T) {
	var gotKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer ts.Close()

	c, err := remote.NewClient(remote.Config{BaseURL: ts.URL, APIKey: "secret-key"})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	if _, err := c.Patients().List(context.Background()); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if gotKey != "secret-key" {
		t.Fatalf("expected api key header, got %q", gotKey)
	}
}

func TestClient_PatientsRoundTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/patients":
			writeTestJSON(w, http.StatusOK, []patients.Patient{{ID: "p1", Name: "Luna"}})
		case r.Method == http.MethodPost && r.URL.Path == "/patients":
			var p patients.Patient
			_ = json.NewDecoder(r.Body).Decode(&p)
			p.ID = "p-new"
			writeTestJSON(w, http.StatusCreated, p)
		case r.Method == http.MethodDelete && r.URL.Path == "/patients/p1":
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	c, err := remote.NewClient(remote.Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	api := c.Patients()

	list, err := api.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Luna" {
		t.Fatalf("unexpected list: %#v", list)
	}

	created, err := api.Create(context.Background(), patients.Patient{Name: "Rocky", Species: "dog"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID != "p-new" || created.Name != "Rocky" {
		t.Fatalf("unexpected created: %#v", created)
	}

	if err := api.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestClient_VaccinationsListFilterInQuery(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeTestJSON(w, http.StatusOK, []vaccinations.Vaccination{})
	}))
	defer ts.Close()

	c, err := remote.NewClient(remote.Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	_, err = c.Vaccinations().List(context.Background(), vaccinations.ListFilter{PatientID: "p1"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if gotQuery != "patient_id=p1" {
		t.Fatalf("expected patient filter in query, got %q", gotQuery)
	}
}

func TestClient_Non2xxIsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer ts.Close()

	c, err := remote.NewClient(remote.Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	_, err = c.Patients().List(context.Background())
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", httpErr.StatusCode)
	}
}

func writeTestJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
