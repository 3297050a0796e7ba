package vaccinations

import (
	"context"
	"time"

	"vet-practice-manager/internal/cache"
)

// Collection es lo que ve la capa de UI al leer la colección:
// estado del cache + datos + error, nunca un resultado a medio aplicar.
type Collection struct {
	State     cache.State
	Items     []Vaccination
	Err       error
	Stale     bool
	UpdatedAt time.Time
}

type Service struct {
	api   API
	store *cache.Store
	coord *cache.Coordinator

	now       func() time.Time
	lookahead time.Duration
}

func NewService(api API, store *cache.Store, coord *cache.Coordinator) *Service {
	return &Service{
		api:       api,
		store:     store,
		coord:     coord,
		now:       time.Now,
		lookahead: DefaultLookahead,
	}
}

func listKey(f ListFilter) cache.Key {
	key := cache.Key{Collection: cache.CollectionVaccinations}
	if f.PatientID != "" {
		key.Filter = "patient_id=" + f.PatientID
	}
	return key
}

// List es el read accessor: read-through contra el cache, con el estado
// derivado recalculado en cada lectura.
func (s *Service) List(ctx context.Context, f ListFilter) (Collection, error) {
	snap, err := s.store.Get(ctx, listKey(f), func(ctx context.Context) (any, error) {
		return s.api.List(ctx, f)
	})
	if err != nil {
		return Collection{State: snap.State}, err
	}

	items, _ := snap.Data.([]Vaccination)
	out := make([]Vaccination, len(items))
	now := s.now()
	for i, v := range items {
		o := Derive(v, now, s.lookahead)
		if !v.StatusOverridden {
			v.Status = o.Status
		}
		out[i] = v
	}

	return Collection{
		State:     snap.State,
		Items:     out,
		Err:       snap.Err,
		Stale:     snap.Stale,
		UpdatedAt: snap.UpdatedAt,
	}, nil
}

func (s *Service) Create(ctx context.Context, v Vaccination) (Vaccination, error) {
	v = New(v)
	if err := v.Validate(); err != nil {
		return Vaccination{}, err
	}
	v.Status = StatusAt(v.NextDueDate, s.now(), s.lookahead)

	var created Vaccination
	err := s.coord.Run(ctx, cache.MutationVaccinationWrite, func(ctx context.Context) error {
		var err error
		created, err = s.api.Create(ctx, v)
		return err
	})
	if err != nil {
		return Vaccination{}, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Vaccination, error) {
	var updated Vaccination
	err := s.coord.Run(ctx, cache.MutationVaccinationWrite, func(ctx context.Context) error {
		var err error
		updated, err = s.api.Update(ctx, id, in)
		return err
	})
	if err != nil {
		return Vaccination{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.coord.Run(ctx, cache.MutationVaccinationWrite, func(ctx context.Context) error {
		return s.api.Delete(ctx, id)
	})
}
