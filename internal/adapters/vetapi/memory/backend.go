// Package memory implementa el API de la práctica veterinaria en memoria.
// Sirve para dev y tests: acá el backend "remoto" es este proceso, por eso
// es quien asigna IDs y mantiene los agregados de clínica.
package memory

import (
	"errors"
	"sync"

	"vet-practice-manager/internal/domain/clinics"
	"vet-practice-manager/internal/domain/healthrecords"
	"vet-practice-manager/internal/domain/patients"
	"vet-practice-manager/internal/domain/users"
	"vet-practice-manager/internal/domain/vaccinations"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// Backend guarda todas las colecciones bajo un solo mutex: los agregados
// de clínica cruzan entidades y así se calculan consistentes.
type Backend struct {
	mu sync.RWMutex

	clinics      map[string]clinics.Clinic
	users        map[string]users.User
	vetProfiles  map[string]users.VetProfile
	patients     map[string]patients.Patient
	records      map[string]healthrecords.HealthRecord
	vaccinations map[string]vaccinations.Vaccination

	// seq preserva orden de inserción para listados estables.
	seq []ref
}

type ref struct {
	kind string
	id   string
}

func New() *Backend {
	return &Backend{
		clinics:      make(map[string]clinics.Clinic),
		users:        make(map[string]users.User),
		vetProfiles:  make(map[string]users.VetProfile),
		patients:     make(map[string]patients.Patient),
		records:      make(map[string]healthrecords.HealthRecord),
		vaccinations: make(map[string]vaccinations.Vaccination),
	}
}

func (b *Backend) push(kind, id string) {
	b.seq = append(b.seq, ref{kind: kind, id: id})
}

func (b *Backend) drop(kind, id string) {
	for i, r := range b.seq {
		if r.kind == kind && r.id == id {
			b.seq = append(b.seq[:i], b.seq[i+1:]...)
			return
		}
	}
}

// Vistas por colección: cada una implementa la interfaz API de su dominio.

func (b *Backend) Clinics() clinics.API           { return clinicsView{b} }
func (b *Backend) Users() users.API               { return usersView{b} }
func (b *Backend) Patients() patients.API         { return patientsView{b} }
func (b *Backend) Records() healthrecords.API     { return recordsView{b} }
func (b *Backend) Vaccinations() vaccinations.API { return vaccinationsView{b} }
