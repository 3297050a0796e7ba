package remote

import (
	"context"
	"net/http"
	"net/url"

	"vet-practice-manager/internal/domain/healthrecords"
)

type recordsClient struct {
	c *Client
}

func (c *Client) Records() healthrecords.API {
	return recordsClient{c}
}

func (v recordsClient) List(ctx context.Context, f healthrecords.ListFilter) ([]healthrecords.HealthRecord, error) {
	path := "/health-records"
	if f.PatientID != "" {
		path += "?patient_id=" + url.QueryEscape(f.PatientID)
	}
	var out []healthrecords.HealthRecord
	if err := v.c.http.DoJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (v recordsClient) Create(ctx context.Context, r healthrecords.HealthRecord) (healthrecords.HealthRecord, error) {
	var out healthrecords.HealthRecord
	if err := v.c.http.DoJSON(ctx, http.MethodPost, "/health-records", nil, r, &out); err != nil {
		return healthrecords.HealthRecord{}, err
	}
	return out, nil
}

func (v recordsClient) Update(ctx context.Context, id string, in healthrecords.UpdateInput) (healthrecords.HealthRecord, error) {
	var out healthrecords.HealthRecord
	if err := v.c.http.DoJSON(ctx, http.MethodPatch, "/health-records/"+id, nil, in, &out); err != nil {
		return healthrecords.HealthRecord{}, err
	}
	return out, nil
}

func (v recordsClient) Delete(ctx context.Context, id string) error {
	return v.c.http.DoJSON(ctx, http.MethodDelete, "/health-records/"+id, nil, nil, nil)
}
