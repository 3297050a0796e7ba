package patients

import "strings"

// Query son los filtros de proyección local sobre un snapshot ready.
// Search matchea substring case-insensitive sobre nombre, dueño y raza
// (OR entre campos); los filtros categóricos se combinan con AND.
type Query struct {
	Search  string
	Species string
	Status  ClinicalStatus
	OwnerID string
}

// Filter es determinístico y sin efectos: mismo snapshot + misma query
// produce siempre el mismo resultado en el mismo orden (orden de entrada).
func Filter(items []Patient, q Query) []Patient {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]Patient, 0, len(items))
	for _, p := range items {
		if q.Species != "" && !strings.EqualFold(p.Species, q.Species) {
			continue
		}
		if q.Status != "" && p.Status != q.Status {
			continue
		}
		if q.OwnerID != "" && p.OwnerID != q.OwnerID {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p Patient, search string) bool {
	for _, field := range []string{p.Name, p.OwnerName, p.Breed} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// GroupByStatus particiona por estado clínico, preservando el orden de
// entrada dentro de cada bucket.
func GroupByStatus(items []Patient) map[ClinicalStatus][]Patient {
	out := map[ClinicalStatus][]Patient{
		StatusCritical:  {},
		StatusTreatment: {},
		StatusFollowUp:  {},
		StatusChronic:   {},
		StatusHealthy:   {},
	}
	for _, p := range items {
		out[p.Status] = append(out[p.Status], p)
	}
	return out
}
