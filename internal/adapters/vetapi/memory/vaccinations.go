package memory

import (
	"context"

	"vet-practice-manager/internal/domain/vaccinations"

	"github.com/google/uuid"
)

type vaccinationsView struct {
	b *Backend
}

func (v vaccinationsView) List(ctx context.Context, f vaccinations.ListFilter) ([]vaccinations.Vaccination, error) {
	v.b.mu.RLock()
	defer v.b.mu.RUnlock()

	out := make([]vaccinations.Vaccination, 0, len(v.b.vaccinations))
	for _, r := range v.b.seq {
		if r.kind != "vaccination" {
			continue
		}
		vac := v.b.vaccinations[r.id]
		if f.PatientID != "" && vac.PatientID != f.PatientID {
			continue
		}
		// Denormalizar datos del paciente si el backend los conoce.
		if p, ok := v.b.patients[vac.PatientID]; ok {
			vac.PatientName = p.Name
			vac.PatientSpecies = p.Species
			vac.OwnerName = p.OwnerName
		}
		out = append(out, vac)
	}
	return out, nil
}

func (v vaccinationsView) Create(ctx context.Context, vac vaccinations.Vaccination) (vaccinations.Vaccination, error) {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()

	vac.ID = uuid.NewString()
	if p, ok := v.b.patients[vac.PatientID]; ok {
		vac.PatientName = p.Name
		vac.PatientSpecies = p.Species
		vac.OwnerName = p.OwnerName
	}
	v.b.vaccinations[vac.ID] = vac
	v.b.push("vaccination", vac.ID)
	return vac, nil
}

func (v vaccinationsView) Update(ctx context.Context, id string, in vaccinations.UpdateInput) (vaccinations.Vaccination, error) {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()

	vac, ok := v.b.vaccinations[id]
	if !ok {
		return vaccinations.Vaccination{}, ErrNotFound
	}
	vac = in.Apply(vac)
	v.b.vaccinations[id] = vac
	return vac, nil
}

func (v vaccinationsView) Delete(ctx context.Context, id string) error {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()

	if _, ok := v.b.vaccinations[id]; !ok {
		return ErrNotFound
	}
	delete(v.b.vaccinations, id)
	v.b.drop("vaccination", id)
	return nil
}
