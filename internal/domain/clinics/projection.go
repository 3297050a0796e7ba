package clinics

import "strings"

// Query son los filtros de proyección local. Search matchea substring
// case-insensitive sobre nombre y ciudad (OR); el resto es AND.
type Query struct {
	Search    string
	Active    *bool
	Emergency *bool
	Service   string
}

// Filter es determinístico: preserva el orden de entrada.
func Filter(items []Clinic, q Query) []Clinic {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]Clinic, 0, len(items))
	for _, c := range items {
		if q.Active != nil && c.Active != *q.Active {
			continue
		}
		if q.Emergency != nil && c.EmergencyAvailable != *q.Emergency {
			continue
		}
		if q.Service != "" && !offersService(c, q.Service) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.City), search) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func offersService(c Clinic, service string) bool {
	for _, s := range c.Services {
		if strings.EqualFold(s, service) {
			return true
		}
	}
	return false
}
