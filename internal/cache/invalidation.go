package cache

import "context"

// Colecciones cacheables. El nombre es la parte Collection de la Key.
const (
	CollectionClinics       = "clinics"
	CollectionUsers         = "users"
	CollectionVeterinarians = "veterinarians"
	CollectionAdmins        = "admins"
	CollectionPatients      = "patients"
	CollectionHealthRecords = "health-records"
	CollectionVaccinations  = "vaccinations"
)

// Mutation identifica el tipo de escritura contra el API remoto.
type Mutation string

const (
	MutationClinicWrite       Mutation = "clinic:write"
	MutationUserWrite         Mutation = "user:write"
	MutationPatientWrite      Mutation = "patient:write"
	MutationHealthRecordWrite Mutation = "health-record:write"
	MutationVaccinationWrite  Mutation = "vaccination:write"
)

// invalidationScopes declara, por tipo de mutación, qué colecciones quedan
// stale después de una escritura exitosa. Es una tabla, no lógica inferida:
// el delete genérico de usuarios no conoce el rol, así que invalida las
// tres colecciones user-like.
var invalidationScopes = map[Mutation][]string{
	MutationClinicWrite:       {CollectionClinics},
	MutationUserWrite:         {CollectionUsers, CollectionVeterinarians, CollectionAdmins},
	MutationPatientWrite:      {CollectionPatients},
	MutationHealthRecordWrite: {CollectionHealthRecords},
	MutationVaccinationWrite:  {CollectionVaccinations},
}

// ScopeOf expone el alcance declarado de una mutación (copia defensiva).
func ScopeOf(m Mutation) []string {
	scope := invalidationScopes[m]
	out := make([]string, len(scope))
	copy(out, scope)
	return out
}

// Coordinator envuelve cada mutación remota: ejecuta la operación y, solo si
// fue exitosa, invalida las colecciones declaradas para ese tipo de mutación.
// Si la operación falla no se invalida nada: el cache queda en su último
// estado bueno y el caller decide reintentar o mostrar el error.
type Coordinator struct {
	store *Store
}

func NewCoordinator(store *Store) *Coordinator {
	return &Coordinator{store: store}
}

func (c *Coordinator) Run(ctx context.Context, m Mutation, op func(ctx context.Context) error) error {
	if err := op(ctx); err != nil {
		return err
	}
	for _, collection := range invalidationScopes[m] {
		c.store.Invalidate(collection)
	}
	return nil
}
