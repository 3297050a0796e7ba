package patients

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// EmergencyContact es el contacto de emergencia del dueño.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// Patient representa una mascota bajo atención veterinaria.
// OwnerName/OwnerPhone/OwnerAddress vienen denormalizados del API para
// listados; la referencia autoritativa es OwnerID.
type Patient struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Species string `json:"species"`
	Breed   string `json:"breed"`
	Gender  Gender `json:"gender"`

	// Age NUNCA se persiste como campo editable: se recalcula siempre
	// desde BirthDate (ver AgeAt) para que no pueda divergir.
	BirthDate time.Time `json:"birth_date"`
	Age       int       `json:"age"`

	Weight    float64 `json:"weight"`
	Color     string  `json:"color"`
	Microchip string  `json:"microchip,omitempty"`

	OwnerID      string `json:"owner_id"`
	OwnerName    string `json:"owner_name"`
	OwnerPhone   string `json:"owner_phone"`
	OwnerAddress string `json:"owner_address"`

	EmergencyContact EmergencyContact `json:"emergency_contact"`

	Status ClinicalStatus `json:"status"`

	// Listas de texto libre: preservan orden y permiten duplicados.
	Conditions []string `json:"conditions"`
	Allergies  []string `json:"allergies"`

	Notes           string     `json:"notes"`
	ImageURL        string     `json:"image_url,omitempty"`
	NextAppointment *time.Time `json:"next_appointment,omitempty"`
}

// New arma un Patient con defaults seguros: listas vacías en vez de nil,
// status healthy si no vino, strings normalizados. Así el resto del código
// nunca tiene que distinguir "falta" de "vacío".
func New(p Patient) Patient {
	p.Name = strings.TrimSpace(p.Name)
	p.Species = strings.TrimSpace(p.Species)
	p.Breed = strings.TrimSpace(p.Breed)
	if p.Gender == "" {
		p.Gender = GenderUnknown
	}
	if p.Status == "" {
		p.Status = StatusHealthy
	}
	if p.Conditions == nil {
		p.Conditions = []string{}
	}
	if p.Allergies == nil {
		p.Allergies = []string{}
	}
	return p
}

// Validate: un Patient está bien formado si tiene nombre, especie y
// referencia al dueño. Se rechaza antes de cualquier llamada remota.
func (p Patient) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Species) == "" {
		return fmt.Errorf("%w: species required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.OwnerID) == "" {
		return fmt.Errorf("%w: owner reference required", ErrInvalidInput)
	}
	return nil
}

// AgeAt deriva la edad en años completos desde BirthDate.
func (p Patient) AgeAt(now time.Time) int {
	if p.BirthDate.IsZero() || p.BirthDate.After(now) {
		return 0
	}
	age := now.Year() - p.BirthDate.Year()
	anniversary := p.BirthDate.AddDate(age, 0, 0)
	if anniversary.After(now) {
		age--
	}
	return age
}
