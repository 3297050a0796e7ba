package vaccinations

// VaccineType define los tipos de vacuna soportados.
// @Enum core, non-core, rabies
type VaccineType string

const (
	TypeCore    VaccineType = "core"
	TypeNonCore VaccineType = "non-core"
	TypeRabies  VaccineType = "rabies"
)

// Status es el estado derivado de una vacunación respecto a su próxima dosis.
// @Enum completed, due-soon, overdue
type Status string

const (
	StatusCompleted Status = "completed"
	StatusDueSoon   Status = "due-soon"
	StatusOverdue   Status = "overdue"
)
