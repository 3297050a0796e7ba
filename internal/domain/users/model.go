package users

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Role define el rol de un usuario. Es inmutable después de la creación:
// ningún path de update acepta rol.
// @Enum admin, veterinarian, pet_owner
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleVeterinarian Role = "veterinarian"
	RolePetOwner     Role = "pet_owner"
)

// Status define el estado de la cuenta. Las transiciones no están
// restringidas (cualquier estado es alcanzable desde cualquier otro),
// pero siempre son explícitas, nunca inferidas.
// @Enum active, inactive, suspended, pending
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
	// StatusPending solo aplica a veterinarios (alta pendiente de revisión).
	StatusPending Status = "pending"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// VetProfile es el perfil profesional adjunto a un User veterinario.
type VetProfile struct {
	LicenseNumber   string `json:"license_number"`
	Specialization  string `json:"specialization"`
	ClinicID        string `json:"clinic_id"`
	YearsExperience int    `json:"years_experience"`
	Education       string `json:"education"`
	Bio             string `json:"bio"`
	ImageURL        string `json:"image_url,omitempty"`
}

// Veterinarian es un User con perfil profesional.
type Veterinarian struct {
	User
	Profile VetProfile `json:"profile"`
}

// New normaliza y aplica defaults seguros.
func New(u User) User {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	if u.Status == "" {
		if u.Role == RoleVeterinarian {
			u.Status = StatusPending
		} else {
			u.Status = StatusActive
		}
	}
	return u
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("%w: email required", ErrInvalidInput)
	}
	switch u.Role {
	case RoleAdmin, RoleVeterinarian, RolePetOwner:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, u.Role)
	}
	return nil
}

// ValidStatus: pending solo existe para veterinarios.
func ValidStatus(role Role, s Status) bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	case StatusPending:
		return role == RoleVeterinarian
	default:
		return false
	}
}
