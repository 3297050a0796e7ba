package remote

import (
	"context"
	"net/http"

	"vet-practice-manager/internal/domain/users"
)

type usersClient struct {
	c *Client
}

func (c *Client) Users() users.API {
	return usersClient{c}
}

func (v usersClient) List(ctx context.Context) ([]users.User, error) {
	var out []users.User
	if err := v.c.http.DoJSON(ctx, http.MethodGet, "/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (v usersClient) ListVeterinarians(ctx context.Context) ([]users.Veterinarian, error) {
	var out []users.Veterinarian
	if err := v.c.http.DoJSON(ctx, http.MethodGet, "/veterinarians", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (v usersClient) ListAdmins(ctx context.Context) ([]users.User, error) {
	var out []users.User
	if err := v.c.http.DoJSON(ctx, http.MethodGet, "/admins", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type createUserPayload struct {
	users.User
	Profile *users.VetProfile `json:"profile,omitempty"`
}

func (v usersClient) Create(ctx context.Context, u users.User, profile *users.VetProfile) (users.User, error) {
	var out users.User
	in := createUserPayload{User: u, Profile: profile}
	if err := v.c.http.DoJSON(ctx, http.MethodPost, "/users", nil, in, &out); err != nil {
		return users.User{}, err
	}
	return out, nil
}

func (v usersClient) Update(ctx context.Context, id string, in users.UpdateInput) (users.User, error) {
	var out users.User
	if err := v.c.http.DoJSON(ctx, http.MethodPatch, "/users/"+id, nil, in, &out); err != nil {
		return users.User{}, err
	}
	return out, nil
}

func (v usersClient) Delete(ctx context.Context, id string) error {
	return v.c.http.DoJSON(ctx, http.MethodDelete, "/users/"+id, nil, nil, nil)
}

type setStatusPayload struct {
	Status users.Status `json:"status"`
}

func (v usersClient) SetStatus(ctx context.Context, id string, status users.Status) (users.User, error) {
	var out users.User
	if err := v.c.http.DoJSON(ctx, http.MethodPost, "/users/"+id+"/status", nil, setStatusPayload{Status: status}, &out); err != nil {
		return users.User{}, err
	}
	return out, nil
}
