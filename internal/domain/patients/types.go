package patients

// ClinicalStatus es el estado clínico del paciente. Es un campo
// autoritativo que setea un veterinario, NO un valor derivado; acá solo
// se define el orden de triage (ver triage.go).
// @Enum healthy, treatment, critical, follow-up, chronic
type ClinicalStatus string

const (
	StatusHealthy   ClinicalStatus = "healthy"
	StatusTreatment ClinicalStatus = "treatment"
	StatusCritical  ClinicalStatus = "critical"
	StatusFollowUp  ClinicalStatus = "follow-up"
	StatusChronic   ClinicalStatus = "chronic"
)

// Gender define el sexo del paciente.
// @Enum male, female, unknown
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)
