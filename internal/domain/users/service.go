package users

import (
	"context"
	"fmt"
	"time"

	"vet-practice-manager/internal/cache"
)

// Collection es el resultado de un read accessor user-like.
type Collection struct {
	State     cache.State
	Items     []User
	Err       error
	Stale     bool
	UpdatedAt time.Time
}

// VetCollection es el read accessor de veterinarios (con perfil).
type VetCollection struct {
	State     cache.State
	Items     []Veterinarian
	Err       error
	Stale     bool
	UpdatedAt time.Time
}

type Service struct {
	api   API
	store *cache.Store
	coord *cache.Coordinator
	now   func() time.Time
}

func NewService(api API, store *cache.Store, coord *cache.Coordinator) *Service {
	return &Service{
		api:   api,
		store: store,
		coord: coord,
		now:   time.Now,
	}
}

var (
	usersKey  = cache.Key{Collection: cache.CollectionUsers}
	vetsKey   = cache.Key{Collection: cache.CollectionVeterinarians}
	adminsKey = cache.Key{Collection: cache.CollectionAdmins}
)

func (s *Service) List(ctx context.Context) (Collection, error) {
	snap, err := s.store.Get(ctx, usersKey, func(ctx context.Context) (any, error) {
		return s.api.List(ctx)
	})
	if err != nil {
		return Collection{State: snap.State}, err
	}
	items, _ := snap.Data.([]User)
	return Collection{State: snap.State, Items: items, Err: snap.Err, Stale: snap.Stale, UpdatedAt: snap.UpdatedAt}, nil
}

func (s *Service) ListVeterinarians(ctx context.Context) (VetCollection, error) {
	snap, err := s.store.Get(ctx, vetsKey, func(ctx context.Context) (any, error) {
		return s.api.ListVeterinarians(ctx)
	})
	if err != nil {
		return VetCollection{State: snap.State}, err
	}
	items, _ := snap.Data.([]Veterinarian)
	return VetCollection{State: snap.State, Items: items, Err: snap.Err, Stale: snap.Stale, UpdatedAt: snap.UpdatedAt}, nil
}

func (s *Service) ListAdmins(ctx context.Context) (Collection, error) {
	snap, err := s.store.Get(ctx, adminsKey, func(ctx context.Context) (any, error) {
		return s.api.ListAdmins(ctx)
	})
	if err != nil {
		return Collection{State: snap.State}, err
	}
	items, _ := snap.Data.([]User)
	return Collection{State: snap.State, Items: items, Err: snap.Err, Stale: snap.Stale, UpdatedAt: snap.UpdatedAt}, nil
}

// Create da de alta un usuario; para veterinarios el perfil es requerido.
func (s *Service) Create(ctx context.Context, u User, profile *VetProfile) (User, error) {
	u = New(u)
	if err := u.Validate(); err != nil {
		return User{}, err
	}
	if u.Role == RoleVeterinarian && profile == nil {
		return User{}, fmt.Errorf("%w: veterinarian requires a profile", ErrInvalidInput)
	}

	var created User
	err := s.coord.Run(ctx, cache.MutationUserWrite, func(ctx context.Context) error {
		var err error
		created, err = s.api.Create(ctx, u, profile)
		return err
	})
	if err != nil {
		return User{}, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (User, error) {
	var updated User
	err := s.coord.Run(ctx, cache.MutationUserWrite, func(ctx context.Context) error {
		var err error
		updated, err = s.api.Update(ctx, id, in)
		return err
	})
	if err != nil {
		return User{}, err
	}
	return updated, nil
}

// Delete es el path genérico: no conoce el rol del usuario borrado, así
// que el Coordinator invalida users, veterinarians y admins por igual.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.coord.Run(ctx, cache.MutationUserWrite, func(ctx context.Context) error {
		return s.api.Delete(ctx, id)
	})
}

// SetStatus es la transición explícita de estado de cuenta.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) (User, error) {
	switch status {
	case StatusActive, StatusInactive, StatusSuspended, StatusPending:
	default:
		return User{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	var updated User
	err := s.coord.Run(ctx, cache.MutationUserWrite, func(ctx context.Context) error {
		var err error
		updated, err = s.api.SetStatus(ctx, id, status)
		return err
	})
	if err != nil {
		return User{}, err
	}
	return updated, nil
}
