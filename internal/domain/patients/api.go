package patients

import (
	"context"
	"time"
)

// API es el colaborador remoto para la colección de pacientes.
type API interface {
	List(ctx context.Context) ([]Patient, error)
	Create(ctx context.Context, p Patient) (Patient, error)
	Update(ctx context.Context, id string, in UpdateInput) (Patient, error)
	Delete(ctx context.Context, id string) error
}

// UpdateInput es un PATCH real: nil = no tocar el campo.
type UpdateInput struct {
	Name             *string           `json:"name"`
	Species          *string           `json:"species"`
	Breed            *string           `json:"breed"`
	Gender           *Gender           `json:"gender"`
	BirthDate        *time.Time        `json:"birth_date"`
	Weight           *float64          `json:"weight"`
	Color            *string           `json:"color"`
	Microchip        *string           `json:"microchip"`
	OwnerID          *string           `json:"owner_id"`
	OwnerName        *string           `json:"owner_name"`
	OwnerPhone       *string           `json:"owner_phone"`
	OwnerAddress     *string           `json:"owner_address"`
	EmergencyContact *EmergencyContact `json:"emergency_contact"`
	Status           *ClinicalStatus   `json:"status"`
	Conditions       *[]string         `json:"conditions"`
	Allergies        *[]string         `json:"allergies"`
	Notes            *string           `json:"notes"`
	ImageURL         *string           `json:"image_url"`
	NextAppointment  *time.Time        `json:"next_appointment"`
}

// Apply mergea el input sobre un paciente existente. Nota: el rol del
// merge es por campo; la edad no se toca nunca, se rederiva al leer.
func (in UpdateInput) Apply(p Patient) Patient {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Species != nil {
		p.Species = *in.Species
	}
	if in.Breed != nil {
		p.Breed = *in.Breed
	}
	if in.Gender != nil {
		p.Gender = *in.Gender
	}
	if in.BirthDate != nil {
		p.BirthDate = *in.BirthDate
	}
	if in.Weight != nil {
		p.Weight = *in.Weight
	}
	if in.Color != nil {
		p.Color = *in.Color
	}
	if in.Microchip != nil {
		p.Microchip = *in.Microchip
	}
	if in.OwnerID != nil {
		p.OwnerID = *in.OwnerID
	}
	if in.OwnerName != nil {
		p.OwnerName = *in.OwnerName
	}
	if in.OwnerPhone != nil {
		p.OwnerPhone = *in.OwnerPhone
	}
	if in.OwnerAddress != nil {
		p.OwnerAddress = *in.OwnerAddress
	}
	if in.EmergencyContact != nil {
		p.EmergencyContact = *in.EmergencyContact
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Conditions != nil {
		p.Conditions = *in.Conditions
	}
	if in.Allergies != nil {
		p.Allergies = *in.Allergies
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.NextAppointment != nil {
		p.NextAppointment = in.NextAppointment
	}
	return p
}
