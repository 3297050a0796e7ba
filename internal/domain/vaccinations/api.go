package vaccinations

import (
	"context"
	"time"
)

// API es el colaborador remoto para la colección de vacunaciones.
// Los IDs los asigna siempre el backend, nunca el cliente.
type API interface {
	List(ctx context.Context, f ListFilter) ([]Vaccination, error)
	Create(ctx context.Context, v Vaccination) (Vaccination, error)
	Update(ctx context.Context, id string, in UpdateInput) (Vaccination, error)
	Delete(ctx context.Context, id string) error
}

// ListFilter son los parámetros de filtro que viajan al backend
// (forman parte de la cache key). El resto de filtros son proyección local.
type ListFilter struct {
	PatientID string
}

// UpdateInput es un PATCH real: nil = no tocar el campo.
type UpdateInput struct {
	VaccineName      *string      `json:"vaccine_name"`
	VaccineType      *VaccineType `json:"vaccine_type"`
	Manufacturer     *string      `json:"manufacturer"`
	BatchNumber      *string      `json:"batch_number"`
	AdministeredDate *time.Time   `json:"administered_date"`
	NextDueDate      *time.Time   `json:"next_due_date"`
	AdministeredBy   *string      `json:"administered_by"`
	Site             *string      `json:"site"`
	Route            *string      `json:"route"`
	Dose             *string      `json:"dose"`
	Notes            *string      `json:"notes"`
	Reactions        *string      `json:"reactions"`

	// Status setea un override manual del estado derivado.
	Status *Status `json:"status"`
}

// Apply mergea el input sobre una vacunación existente (merge parcial).
// Lo usan los backends que resuelven el PATCH localmente (memory, postgres).
func (in UpdateInput) Apply(v Vaccination) Vaccination {
	if in.VaccineName != nil {
		v.VaccineName = *in.VaccineName
	}
	if in.VaccineType != nil {
		v.VaccineType = *in.VaccineType
	}
	if in.Manufacturer != nil {
		v.Manufacturer = *in.Manufacturer
	}
	if in.BatchNumber != nil {
		v.BatchNumber = *in.BatchNumber
	}
	if in.AdministeredDate != nil {
		v.AdministeredDate = *in.AdministeredDate
	}
	if in.NextDueDate != nil {
		v.NextDueDate = *in.NextDueDate
	}
	if in.AdministeredBy != nil {
		v.AdministeredBy = *in.AdministeredBy
	}
	if in.Site != nil {
		v.Site = *in.Site
	}
	if in.Route != nil {
		v.Route = *in.Route
	}
	if in.Dose != nil {
		v.Dose = *in.Dose
	}
	if in.Notes != nil {
		v.Notes = *in.Notes
	}
	if in.Reactions != nil {
		v.Reactions = *in.Reactions
	}
	if in.Status != nil {
		v.Status = *in.Status
		v.StatusOverridden = true
	}
	// Si cambió la fecha o el tipo y no vino next_due explícito, se rederiva.
	if (in.AdministeredDate != nil || in.VaccineType != nil) && in.NextDueDate == nil {
		v.NextDueDate = NextDueDate(v.AdministeredDate, v.VaccineType)
	}
	return v
}
