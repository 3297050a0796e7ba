package vaccinations

import "time"

// DefaultLookahead es la ventana por defecto para considerar una dosis
// como "due-soon" antes de su fecha de vencimiento.
const DefaultLookahead = 30 * 24 * time.Hour

// NextDueDate calcula la próxima dosis a partir de la fecha administrada:
// rabies => +3 años; core y non-core => +1 año.
// Es una función total: un tipo desconocido usa la regla non-core
// (default documentado, no falla en silencio).
func NextDueDate(administered time.Time, t VaccineType) time.Time {
	if t == TypeRabies {
		return administered.AddDate(3, 0, 0)
	}
	return administered.AddDate(1, 0, 0)
}

// StatusAt deriva el estado de una vacunación respecto de now:
// - overdue si now > nextDue
// - due-soon si nextDue cae dentro de la ventana lookahead
// - completed en cualquier otro caso.
// Se reevalúa en cada lectura; nunca se cachea como hecho guardado,
// porque depende del paso del tiempo y no de ninguna escritura.
func StatusAt(nextDue, now time.Time, lookahead time.Duration) Status {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}
	if now.After(nextDue) {
		return StatusOverdue
	}
	if nextDue.Sub(now) <= lookahead {
		return StatusDueSoon
	}
	return StatusCompleted
}

// Outcome es el resultado de derivar el estado de una vacunación.
// Diverged marca que el valor guardado (override manual) no coincide
// con el derivado; la UI decide cómo señalarlo, acá no se pisa nada.
type Outcome struct {
	Status   Status
	Diverged bool
}

// Derive recalcula el estado de v en now. Si hay override manual y el
// valor guardado difiere del derivado, se reporta la divergencia en vez
// de preferir una fuente en silencio.
func Derive(v Vaccination, now time.Time, lookahead time.Duration) Outcome {
	derived := StatusAt(v.NextDueDate, now, lookahead)
	return Outcome{
		Status:   derived,
		Diverged: v.StatusOverridden && v.Status != derived,
	}
}
