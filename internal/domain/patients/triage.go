package patients

import "sort"

// triageRank ordena estados clínicos por urgencia:
// critical > treatment/follow-up > chronic > healthy.
// El estado en sí es autoritativo (lo setea un veterinario); esto es solo
// el orden que usan las vistas de triage.
func triageRank(s ClinicalStatus) int {
	switch s {
	case StatusCritical:
		return 0
	case StatusTreatment, StatusFollowUp:
		return 1
	case StatusChronic:
		return 2
	case StatusHealthy:
		return 3
	default:
		// Estado desconocido: al final, sin romper el orden del resto.
		return 4
	}
}

// SortByTriage devuelve una copia ordenada por urgencia. El sort es
// estable: empates preservan el orden de entrada.
func SortByTriage(items []Patient) []Patient {
	out := make([]Patient, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return triageRank(out[i].Status) < triageRank(out[j].Status)
	})
	return out
}
