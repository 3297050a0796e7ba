package clinics

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Weekday keys para OperatingHours ("monday".."sunday").
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Clinic representa una sede veterinaria física.
// StaffCount y PatientCount son agregados read-only que mantiene el
// backend; el cliente nunca los calcula ni los escribe.
type Clinic struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`

	// OperatingHours: por día de la semana, un string libre
	// (p.ej. "09:00-18:00" o "closed").
	OperatingHours map[string]string `json:"operating_hours"`
	Services       []string          `json:"services"`

	StaffCount   int `json:"staff_count"`
	PatientCount int `json:"patient_count"`

	Active             bool `json:"active"`
	EmergencyAvailable bool `json:"emergency_available"`

	// LicenseNumber es único entre clínicas; lo garantiza el backend.
	LicenseNumber string `json:"license_number"`
}

// New aplica defaults seguros: mapas/listas vacíos en vez de nil.
func New(c Clinic) Clinic {
	c.Name = strings.TrimSpace(c.Name)
	c.LicenseNumber = strings.TrimSpace(c.LicenseNumber)
	if c.OperatingHours == nil {
		c.OperatingHours = map[string]string{}
	}
	if c.Services == nil {
		c.Services = []string{}
	}
	return c
}

func (c Clinic) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if strings.TrimSpace(c.LicenseNumber) == "" {
		return fmt.Errorf("%w: license number required", ErrInvalidInput)
	}
	return nil
}

// API es el colaborador remoto para la colección de clínicas.
type API interface {
	List(ctx context.Context) ([]Clinic, error)
	Create(ctx context.Context, c Clinic) (Clinic, error)
	Update(ctx context.Context, id string, in UpdateInput) (Clinic, error)
	Delete(ctx context.Context, id string) error
}

// UpdateInput es un PATCH real: nil = no tocar. Los agregados
// staff/patient count no son actualizables desde el cliente.
type UpdateInput struct {
	Name               *string            `json:"name"`
	Address            *string            `json:"address"`
	City               *string            `json:"city"`
	Phone              *string            `json:"phone"`
	Email              *string            `json:"email"`
	OperatingHours     *map[string]string `json:"operating_hours"`
	Services           *[]string          `json:"services"`
	Active             *bool              `json:"active"`
	EmergencyAvailable *bool              `json:"emergency_available"`
	LicenseNumber      *string            `json:"license_number"`
}

// Apply mergea el input sobre una clínica existente.
func (in UpdateInput) Apply(c Clinic) Clinic {
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.City != nil {
		c.City = *in.City
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.OperatingHours != nil {
		c.OperatingHours = *in.OperatingHours
	}
	if in.Services != nil {
		c.Services = *in.Services
	}
	if in.Active != nil {
		c.Active = *in.Active
	}
	if in.EmergencyAvailable != nil {
		c.EmergencyAvailable = *in.EmergencyAvailable
	}
	if in.LicenseNumber != nil {
		c.LicenseNumber = *in.LicenseNumber
	}
	return c
}
