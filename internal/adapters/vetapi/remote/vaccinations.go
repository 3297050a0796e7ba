package remote

import (
	"context"
	"net/http"
	"net/url"

	"vet-practice-manager/internal/domain/vaccinations"
)

type vaccinationsClient struct {
	c *Client
}

func (c *Client) Vaccinations() vaccinations.API {
	return vaccinationsClient{c}
}

func (v vaccinationsClient) List(ctx context.Context, f vaccinations.ListFilter) ([]vaccinations.Vaccination, error) {
	path := "/vaccinations"
	if f.PatientID != "" {
		path += "?patient_id=" + url.QueryEscape(f.PatientID)
	}
	var out []vaccinations.Vaccination
	if err := v.c.http.DoJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (v vaccinationsClient) Create(ctx context.Context, vac vaccinations.Vaccination) (vaccinations.Vaccination, error) {
	var out vaccinations.Vaccination
	if err := v.c.http.DoJSON(ctx, http.MethodPost, "/vaccinations", nil, vac, &out); err != nil {
		return vaccinations.Vaccination{}, err
	}
	return out, nil
}

func (v vaccinationsClient) Update(ctx context.Context, id string, in vaccinations.UpdateInput) (vaccinations.Vaccination, error) {
	var out vaccinations.Vaccination
	if err := v.c.http.DoJSON(ctx, http.MethodPatch, "/vaccinations/"+id, nil, in, &out); err != nil {
		return vaccinations.Vaccination{}, err
	}
	return out, nil
}

func (v vaccinationsClient) Delete(ctx context.Context, id string) error {
	return v.c.http.DoJSON(ctx, http.MethodDelete, "/vaccinations/"+id, nil, nil, nil)
}
