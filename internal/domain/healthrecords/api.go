package healthrecords

import (
	"context"
	"time"
)

// API es el colaborador remoto para la colección de historias clínicas.
type API interface {
	List(ctx context.Context, f ListFilter) ([]HealthRecord, error)
	Create(ctx context.Context, r HealthRecord) (HealthRecord, error)
	Update(ctx context.Context, id string, in UpdateInput) (HealthRecord, error)
	Delete(ctx context.Context, id string) error
}

// ListFilter viaja al backend y forma parte de la cache key.
type ListFilter struct {
	PatientID string
}

// UpdateInput es un PATCH real: nil = no tocar.
type UpdateInput struct {
	Type             *RecordType `json:"type"`
	Title            *string     `json:"title"`
	Date             *time.Time  `json:"date"`
	Diagnosis        *string     `json:"diagnosis"`
	Treatment        *string     `json:"treatment"`
	Medications      *[]string   `json:"medications"`
	Notes            *string     `json:"notes"`
	Vitals           *Vitals     `json:"vitals"`
	FollowUpRequired *bool       `json:"follow_up_required"`
	FollowUpDate     *time.Time  `json:"follow_up_date"`
}

// Apply mergea el input preservando el invariante de follow-up.
func (in UpdateInput) Apply(r HealthRecord) HealthRecord {
	if in.Type != nil {
		r.Type = *in.Type
	}
	if in.Title != nil {
		r.Title = *in.Title
	}
	if in.Date != nil {
		r.Date = *in.Date
	}
	if in.Diagnosis != nil {
		r.Diagnosis = *in.Diagnosis
	}
	if in.Treatment != nil {
		r.Treatment = *in.Treatment
	}
	if in.Medications != nil {
		r.Medications = *in.Medications
	}
	if in.Notes != nil {
		r.Notes = *in.Notes
	}
	if in.Vitals != nil {
		r.Vitals = *in.Vitals
	}
	if in.FollowUpRequired != nil {
		r.FollowUpRequired = *in.FollowUpRequired
	}
	if in.FollowUpDate != nil {
		r.FollowUpDate = in.FollowUpDate
	}
	if !r.FollowUpRequired {
		r.FollowUpDate = nil
	}
	return r
}
