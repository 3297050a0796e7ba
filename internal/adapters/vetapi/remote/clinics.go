package remote

import (
	"context"
	"net/http"

	"vet-practice-manager/internal/domain/clinics"
)

type clinicsClient struct {
	c *Client
}

func (c *Client) Clinics() clinics.API {
	return clinicsClient{c}
}

func (v clinicsClient) List(ctx context.Context) ([]clinics.Clinic, error) {
	var out []clinics.Clinic
	if err := v.c.http.DoJSON(ctx, http.MethodGet, "/clinics", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (v clinicsClient) Create(ctx context.Context, c clinics.Clinic) (clinics.Clinic, error) {
	var out clinics.Clinic
	if err := v.c.http.DoJSON(ctx, http.MethodPost, "/clinics", nil, c, &out); err != nil {
		return clinics.Clinic{}, err
	}
	return out, nil
}

func (v clinicsClient) Update(ctx context.Context, id string, in clinics.UpdateInput) (clinics.Clinic, error) {
	var out clinics.Clinic
	if err := v.c.http.DoJSON(ctx, http.MethodPatch, "/clinics/"+id, nil, in, &out); err != nil {
		return clinics.Clinic{}, err
	}
	return out, nil
}

func (v clinicsClient) Delete(ctx context.Context, id string) error {
	return v.c.http.DoJSON(ctx, http.MethodDelete, "/clinics/"+id, nil, nil, nil)
}
