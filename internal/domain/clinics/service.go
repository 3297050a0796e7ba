package clinics

import (
	"context"
	"time"

	"vet-practice-manager/internal/cache"
)

// Collection es lo que ve la capa de UI al leer la colección.
type Collection struct {
	State     cache.State
	Items     []Clinic
	Err       error
	Stale     bool
	UpdatedAt time.Time
}

type Service struct {
	api   API
	store *cache.Store
	coord *cache.Coordinator
}

func NewService(api API, store *cache.Store, coord *cache.Coordinator) *Service {
	return &Service{api: api, store: store, coord: coord}
}

var clinicsKey = cache.Key{Collection: cache.CollectionClinics}

func (s *Service) List(ctx context.Context) (Collection, error) {
	snap, err := s.store.Get(ctx, clinicsKey, func(ctx context.Context) (any, error) {
		return s.api.List(ctx)
	})
	if err != nil {
		return Collection{State: snap.State}, err
	}
	items, _ := snap.Data.([]Clinic)
	return Collection{State: snap.State, Items: items, Err: snap.Err, Stale: snap.Stale, UpdatedAt: snap.UpdatedAt}, nil
}

func (s *Service) Create(ctx context.Context, c Clinic) (Clinic, error) {
	c = New(c)
	if err := c.Validate(); err != nil {
		return Clinic{}, err
	}

	var created Clinic
	err := s.coord.Run(ctx, cache.MutationClinicWrite, func(ctx context.Context) error {
		var err error
		created, err = s.api.Create(ctx, c)
		return err
	})
	if err != nil {
		return Clinic{}, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Clinic, error) {
	var updated Clinic
	err := s.coord.Run(ctx, cache.MutationClinicWrite, func(ctx context.Context) error {
		var err error
		updated, err = s.api.Update(ctx, id, in)
		return err
	})
	if err != nil {
		return Clinic{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.coord.Run(ctx, cache.MutationClinicWrite, func(ctx context.Context) error {
		return s.api.Delete(ctx, id)
	})
}
