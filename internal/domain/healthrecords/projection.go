package healthrecords

import "strings"

// Query son los filtros de proyección local. Search matchea substring
// case-insensitive sobre título y diagnóstico (OR); el resto es AND.
type Query struct {
	Search    string
	Type      RecordType
	VetID     string
	FollowUps bool // solo registros con follow-up pendiente
}

// Filter es determinístico: preserva el orden de entrada.
func Filter(items []HealthRecord, q Query) []HealthRecord {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]HealthRecord, 0, len(items))
	for _, r := range items {
		if q.Type != "" && r.Type != q.Type {
			continue
		}
		if q.VetID != "" && r.VetID != q.VetID {
			continue
		}
		if q.FollowUps && !r.FollowUpRequired {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Title), search) &&
			!strings.Contains(strings.ToLower(r.Diagnosis), search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// GroupByType particiona por tipo de encuentro, preservando el orden.
func GroupByType(items []HealthRecord) map[RecordType][]HealthRecord {
	out := make(map[RecordType][]HealthRecord)
	for _, r := range items {
		out[r.Type] = append(out[r.Type], r)
	}
	return out
}
