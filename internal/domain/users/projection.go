package users

import "strings"

// Query son los filtros de proyección local. Search matchea substring
// case-insensitive sobre nombre y email (OR); rol y estado son AND.
type Query struct {
	Search string
	Role   Role
	Status Status
}

// Filter es determinístico: preserva el orden de entrada.
func Filter(items []User, q Query) []User {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]User, 0, len(items))
	for _, u := range items {
		if q.Role != "" && u.Role != q.Role {
			continue
		}
		if q.Status != "" && u.Status != q.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// VetQuery filtra veterinarios; ClinicID y Specialization son AND.
type VetQuery struct {
	Search         string
	Status         Status
	ClinicID       string
	Specialization string
}

func FilterVeterinarians(items []Veterinarian, q VetQuery) []Veterinarian {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]Veterinarian, 0, len(items))
	for _, v := range items {
		if q.Status != "" && v.Status != q.Status {
			continue
		}
		if q.ClinicID != "" && v.Profile.ClinicID != q.ClinicID {
			continue
		}
		if q.Specialization != "" && !strings.EqualFold(v.Profile.Specialization, q.Specialization) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(v.Name), search) &&
			!strings.Contains(strings.ToLower(v.Email), search) {
			continue
		}
		out = append(out, v)
	}
	return out
}
