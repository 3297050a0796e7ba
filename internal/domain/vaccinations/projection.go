package vaccinations

import (
	"strings"
	"time"
)

// Query son los filtros de proyección local sobre un snapshot ready.
// Search matchea substring case-insensitive sobre nombre de paciente,
// dueño y vacuna (OR entre campos); los filtros categóricos se combinan
// con AND.
type Query struct {
	Search      string
	VaccineType VaccineType
	Status      Status
	PatientID   string
}

// Filter es determinístico y sin efectos: mismo snapshot + misma query
// produce siempre el mismo resultado en el mismo orden (orden de entrada).
// El estado se rederiva por ítem al momento de proyectar.
func Filter(items []Vaccination, q Query, now time.Time, lookahead time.Duration) []Vaccination {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]Vaccination, 0, len(items))
	for _, v := range items {
		if q.PatientID != "" && v.PatientID != q.PatientID {
			continue
		}
		if q.VaccineType != "" && v.VaccineType != q.VaccineType {
			continue
		}
		if q.Status != "" && Derive(v, now, lookahead).Status != q.Status {
			continue
		}
		if search != "" && !matchesSearch(v, search) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesSearch(v Vaccination, search string) bool {
	for _, field := range []string{v.PatientName, v.OwnerName, v.VaccineName} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// GroupByStatus particiona por estado derivado (completed / due-soon /
// overdue), recalculando por ítem. Dentro de cada bucket se preserva el
// orden de entrada.
func GroupByStatus(items []Vaccination, now time.Time, lookahead time.Duration) map[Status][]Vaccination {
	out := map[Status][]Vaccination{
		StatusCompleted: {},
		StatusDueSoon:   {},
		StatusOverdue:   {},
	}
	for _, v := range items {
		st := Derive(v, now, lookahead).Status
		out[st] = append(out[st], v)
	}
	return out
}
