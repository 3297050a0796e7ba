package vaccinations

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Vaccination representa una vacuna administrada a un paciente, con su
// calendario de renovación. PatientName/PatientSpecies/OwnerName vienen
// denormalizados del API para listados (no son autoritativos acá).
type Vaccination struct {
	ID        string `json:"id"`
	PatientID string `json:"patient_id"`

	PatientName    string `json:"patient_name"`
	PatientSpecies string `json:"patient_species"`
	OwnerName      string `json:"owner_name"`

	VaccineName  string      `json:"vaccine_name"`
	VaccineType  VaccineType `json:"vaccine_type"`
	Manufacturer string      `json:"manufacturer"`
	BatchNumber  string      `json:"batch_number"`

	AdministeredDate time.Time `json:"administered_date"`
	NextDueDate      time.Time `json:"next_due_date"`
	AdministeredBy   string    `json:"administered_by"`

	Site  string `json:"site"`
	Route string `json:"route"`
	Dose  string `json:"dose"`

	Notes     string `json:"notes"`
	Reactions string `json:"reactions"`

	// Status se recalcula en cada lectura a partir de NextDueDate.
	// Si StatusOverridden es true, el valor guardado fue seteado a mano;
	// la proyección igual recalcula y marca la divergencia.
	Status           Status `json:"status"`
	StatusOverridden bool   `json:"status_overridden"`
}

// New arma una Vaccination con defaults seguros: deriva NextDueDate del
// tipo de vacuna si no vino y normaliza strings.
func New(v Vaccination) Vaccination {
	v.PatientID = strings.TrimSpace(v.PatientID)
	v.VaccineName = strings.TrimSpace(v.VaccineName)
	if v.NextDueDate.IsZero() && !v.AdministeredDate.IsZero() {
		v.NextDueDate = NextDueDate(v.AdministeredDate, v.VaccineType)
	}
	return v
}

// Validate chequea que la vacunación esté bien formada antes de cualquier
// llamada remota.
func (v Vaccination) Validate() error {
	if strings.TrimSpace(v.PatientID) == "" {
		return fmt.Errorf("%w: patient reference required", ErrInvalidInput)
	}
	if strings.TrimSpace(v.VaccineName) == "" {
		return fmt.Errorf("%w: vaccine name required", ErrInvalidInput)
	}
	if v.AdministeredDate.IsZero() {
		return fmt.Errorf("%w: administered date required", ErrInvalidInput)
	}
	return nil
}
