package memory

import (
	"context"

	"vet-practice-manager/internal/domain/healthrecords"

	"github.com/google/uuid"
)

type recordsView struct {
	b *Backend
}

func (v recordsView) List(ctx context.Context, f healthrecords.ListFilter) ([]healthrecords.HealthRecord, error) {
	v.b.mu.RLock()
	defer v.b.mu.RUnlock()

	out := make([]healthrecords.HealthRecord, 0, len(v.b.records))
	for _, r := range v.b.seq {
		if r.kind != "record" {
			continue
		}
		rec := v.b.records[r.id]
		if f.PatientID != "" && rec.PatientID != f.PatientID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (v recordsView) Create(ctx context.Context, r healthrecords.HealthRecord) (healthrecords.HealthRecord, error) {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()

	r.ID = uuid.NewString()
	v.b.records[r.ID] = r
	v.b.push("record", r.ID)
	return r, nil
}

func (v recordsView) Update(ctx context.Context, id string, in healthrecords.UpdateInput) (healthrecords.HealthRecord, error) {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()

	r, ok := v.b.records[id]
	if !ok {
		return healthrecords.HealthRecord{}, ErrNotFound
	}
	r = in.Apply(r)
	v.b.records[id] = r
	return r, nil
}

func (v recordsView) Delete(ctx context.Context, id string) error {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()

	if _, ok := v.b.records[id]; !ok {
		return ErrNotFound
	}
	delete(v.b.records, id)
	v.b.drop("record", id)
	return nil
}
