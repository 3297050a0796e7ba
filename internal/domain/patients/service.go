package patients

import (
	"context"
	"time"

	"vet-practice-manager/internal/cache"
)

// Collection es lo que ve la capa de UI al leer la colección.
type Collection struct {
	State     cache.State
	Items     []Patient
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

var patientsKey = cache.Key{Collection: cache.CollectionPatients}

// List es el read accessor: read-through contra el cache, con la edad
// rederivada desde birth_date en cada lectura.
func (s *Service) List(ctx context.Context) (Collection, error) {
	snap, err := s.store.Get(ctx, patientsKey, func(ctx context.Context) (any, error) {
		return s.api.List(ctx)
	})
	if err != nil {
		return Collection{State: snap.State}, err
	}

	items, _ := snap.Data.([]Patient)
	out := make([]Patient, len(items))
	now := s.now()
	for i, p := range items {
		p.Age = p.AgeAt(now)
		out[i] = p
	}

	return Collection{
		State:     snap.State,
		Items:     out,
		Err:       snap.Err,
		Stale:     snap.Stale,
		UpdatedAt: snap.UpdatedAt,
	}, nil
}

func (s *Service) Create(ctx context.Context, p Patient) (Patient, error) {
	p = New(p)
	if err := p.Validate(); err != nil {
		return Patient{}, err
	}

	var created Patient
	err := s.coord.Run(ctx, cache.MutationPatientWrite, func(ctx context.Context) error {
		var err error
		created, err = s.api.Create(ctx, p)
		return err
	})
	if err != nil {
		return Patient{}, err
	}
	created.Age = created.AgeAt(s.now())
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Patient, error) {
	var updated Patient
	err := s.coord.Run(ctx, cache.MutationPatientWrite, func(ctx context.Context) error {
		var err error
		updated, err = s.api.Update(ctx, id, in)
		return err
	})
	if err != nil {
		return Patient{}, err
	}
	updated.Age = updated.AgeAt(s.now())
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.coord.Run(ctx, cache.MutationPatientWrite, func(ctx context.Context) error {
		return s.api.Delete(ctx, id)
	})
}
