package remote

import (
	"context"
	"net/http"

	"vet-practice-manager/internal/domain/patients"
)

type patientsClient struct {
	c *Client
}

func (c *Client) Patients() patients.API {
	return patientsClient{c}
}

func (v patientsClient) List(ctx context.Context) ([]patients.Patient, error) {
	var out []patients.Patient
	if err := v.c.http.DoJSON(ctx, http.MethodGet, "/patients", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (v patientsClient) Create(ctx context.Context, p patients.Patient) (patients.Patient, error) {
	var out patients.Patient
	if err := v.c.http.DoJSON(ctx, http.MethodPost, "/patients", nil, p, &out); err != nil {
		return patients.Patient{}, err
	}
	return out, nil
}

func (v patientsClient) Update(ctx context.Context, id string, in patients.UpdateInput) (patients.Patient, error) {
	var out patients.Patient
	if err := v.c.http.DoJSON(ctx, http.MethodPatch, "/patients/"+id, nil, in, &out); err != nil {
		return patients.Patient{}, err
	}
	return out, nil
}

func (v patientsClient) Delete(ctx context.Context, id string) error {
	return v.c.http.DoJSON(ctx, http.MethodDelete, "/patients/"+id, nil, nil, nil)
}
