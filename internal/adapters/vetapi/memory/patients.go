package memory

import (
	"context"

	"vet-practice-manager/internal/domain/patients"

	"github.com/google/uuid"
)

type patientsView struct {
	b *Backend
}

func (v patientsView) List(ctx context.Context) ([]patients.Patient, error) {
	v.b.mu.RLock()
	defer v.b.mu.RUnlock()

	out := make([]patients.Patient, 0, len(v.b.patients))
	for _, r := range v.b.seq {
		if r.kind != "patient" {
			continue
		}
		out = append(out, v.b.patients[r.id])
	}
	return out, nil
}

func (v patientsView) Create(ctx context.Context, p patients.Patient) (patients.Patient, error) {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()

	p.ID = uuid.NewString()
	v.b.patients[p.ID] = p
	v.b.push("patient", p.ID)
	return p, nil
}

func (v patientsView) Update(ctx context.Context, id string, in patients.UpdateInput) (patients.Patient, error) {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()

	p, ok := v.b.patients[id]
	if !ok {
		return patients.Patient{}, ErrNotFound
	}
	p = in.Apply(p)
	v.b.patients[id] = p
	return p, nil
}

func (v patientsView) Delete(ctx context.Context, id string) error {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()

	if _, ok := v.b.patients[id]; !ok {
		return ErrNotFound
	}
	delete(v.b.patients, id)
	v.b.drop("patient", id)
	return nil
}
