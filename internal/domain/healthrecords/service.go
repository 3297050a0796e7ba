package healthrecords

import (
	"context"
	"time"

	"vet-practice-manager/internal/cache"
)

// Collection es lo que ve la capa de UI al leer la colección.
type Collection struct {
	State     cache.State
	Items     []HealthRecord
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

func listKey(f ListFilter) cache.Key {
	key := cache.Key{Collection: cache.CollectionHealthRecords}
	if f.PatientID != "" {
		key.Filter = "patient_id=" + f.PatientID
	}
	return key
}

func (s *Service) List(ctx context.Context, f ListFilter) (Collection, error) {
	snap, err := s.store.Get(ctx, listKey(f), func(ctx context.Context) (any, error) {
		return s.api.List(ctx, f)
	})
	if err != nil {
		return Collection{State: snap.State}, err
	}
	items, _ := snap.Data.([]HealthRecord)
	return Collection{State: snap.State, Items: items, Err: snap.Err, Stale: snap.Stale, UpdatedAt: snap.UpdatedAt}, nil
}

func (s *Service) Create(ctx context.Context, r HealthRecord) (HealthRecord, error) {
	r = New(r)
	if err := r.Validate(); err != nil {
		return HealthRecord{}, err
	}

	var created HealthRecord
	err := s.coord.Run(ctx, cache.MutationHealthRecordWrite, func(ctx context.Context) error {
		var err error
		created, err = s.api.Create(ctx, r)
		return err
	})
	if err != nil {
		return HealthRecord{}, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (HealthRecord, error) {
	var updated HealthRecord
	err := s.coord.Run(ctx, cache.MutationHealthRecordWrite, func(ctx context.Context) error {
		var err error
		updated, err = s.api.Update(ctx, id, in)
		return err
	})
	if err != nil {
		return HealthRecord{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.coord.Run(ctx, cache.MutationHealthRecordWrite, func(ctx context.Context) error {
		return s.api.Delete(ctx, id)
	})
}
