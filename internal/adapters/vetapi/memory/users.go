package memory

import (
	"context"
	"time"

	"vet-practice-manager/internal/domain/users"

	"github.com/google/uuid"
)

type usersView struct {
	b *Backend
}

func (v usersView) List(ctx context.Context) ([]users.User, error) {
	v.b.mu.RLock()
	defer v.b.mu.RUnlock()

	out := make([]users.User, 0, len(v.b.users))
	for _, r := range v.b.seq {
		if r.kind != "user" {
			continue
		}
		out = append(out, v.b.users[r.id])
	}
	return out, nil
}

func (v usersView) ListVeterinarians(ctx context.Context) ([]users.Veterinarian, error) {
	v.b.mu.RLock()
	defer v.b.mu.RUnlock()

	out := make([]users.Veterinarian, 0)
	for _, r := range v.b.seq {
		if r.kind != "user" {
			continue
		}
		u := v.b.users[r.id]
		if u.Role != users.RoleVeterinarian {
			continue
		}
		out = append(out, users.Veterinarian{
			User:    u,
			Profile: v.b.vetProfiles[u.ID],
		})
	}
	return out, nil
}

func (v usersView) ListAdmins(ctx context.Context) ([]users.User, error) {
	v.b.mu.RLock()
	defer v.b.mu.RUnlock()

	out := make([]users.User, 0)
	for _, r := range v.b.seq {
		if r.kind != "user" {
			continue
		}
		u := v.b.users[r.id]
		if u.Role == users.RoleAdmin {
			out = append(out, u)
		}
	}
	return out, nil
}

func (v usersView) Create(ctx context.Context, u users.User, profile *users.VetProfile) (users.User, error) {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()

	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	v.b.users[u.ID] = u
	if u.Role == users.RoleVeterinarian && profile != nil {
		v.b.vetProfiles[u.ID] = *profile
	}
	v.b.push("user", u.ID)
	return u, nil
}

func (v usersView) Update(ctx context.Context, id string, in users.UpdateInput) (users.User, error) {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()

	u, ok := v.b.users[id]
	if !ok {
		return users.User{}, ErrNotFound
	}

	u = in.Apply(u)
	v.b.users[id] = u
	if in.Profile != nil && u.Role == users.RoleVeterinarian {
		v.b.vetProfiles[id] = *in.Profile
	}
	return u, nil
}

func (v usersView) Delete(ctx context.Context, id string) error {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()

	if _, ok := v.b.users[id]; !ok {
		return ErrNotFound
	}
	delete(v.b.users, id)
	delete(v.b.vetProfiles, id)
	v.b.drop("user", id)
	return nil
}

func (v usersView) SetStatus(ctx context.Context, id string, status users.Status) (users.User, error) {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()

	u, ok := v.b.users[id]
	if !ok {
		return users.User{}, ErrNotFound
	}
	u.Status = status
	v.b.users[id] = u
	return u, nil
}
