package memory

import (
	"context"
	"fmt"
	"strings"

	"vet-practice-manager/internal/domain/clinics"

	"github.com/google/uuid"
)

type clinicsView struct {
	b *Backend
}

func (v clinicsView) List(ctx context.Context) ([]clinics.Clinic, error) {
	v.b.mu.RLock()
	defer v.b.mu.RUnlock()

	out := make([]clinics.Clinic, 0, len(v.b.clinics))
	for _, r := range v.b.seq {
		if r.kind != "clinic" {
			continue
		}
		c := v.b.clinics[r.id]
		c.StaffCount = v.b.staffCountLocked(c.ID)
		out = append(out, c)
	}
	return out, nil
}

// staffCountLocked: agregado mantenido por el backend, nunca por el cliente.
func (b *Backend) staffCountLocked(clinicID string) int {
	n := 0
	for _, p := range b.vetProfiles {
		if p.ClinicID == clinicID {
			n++
		}
	}
	return n
}

func (v clinicsView) Create(ctx context.Context, c clinics.Clinic) (clinics.Clinic, error) {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()

	for _, existing := range v.b.clinics {
		if strings.EqualFold(existing.LicenseNumber, c.LicenseNumber) {
			return clinics.Clinic{}, fmt.Errorf("%w: license number already registered", ErrConflict)
		}
	}

	c.ID = uuid.NewString()
	v.b.clinics[c.ID] = c
	v.b.push("clinic", c.ID)
	return c, nil
}

func (v clinicsView) Update(ctx context.Context, id string, in clinics.UpdateInput) (clinics.Clinic, error) {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()

	c, ok := v.b.clinics[id]
	if !ok {
		return clinics.Clinic{}, ErrNotFound
	}

	merged := in.Apply(c)
	if in.LicenseNumber != nil {
		for otherID, other := range v.b.clinics {
			if otherID != id && strings.EqualFold(other.LicenseNumber, merged.LicenseNumber) {
				return clinics.Clinic{}, fmt.Errorf("%w: license number already registered", ErrConflict)
			}
		}
	}
	v.b.clinics[id] = merged
	return merged, nil
}

func (v clinicsView) Delete(ctx context.Context, id string) error {
	v.b.mu.Lock()
	defer v.b.mu.Unlock()

	if _, ok := v.b.clinics[id]; !ok {
		return ErrNotFound
	}
	delete(v.b.clinics, id)
	v.b.drop("clinic", id)
	return nil
}
