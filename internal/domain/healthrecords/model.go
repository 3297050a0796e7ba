package healthrecords

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// RecordType define el tipo de encuentro médico.
// @Enum checkup, diagnosis, treatment, test, surgery, emergency
type RecordType string

const (
	TypeCheckup   RecordType = "checkup"
	TypeDiagnosis RecordType = "diagnosis"
	TypeTreatment RecordType = "treatment"
	TypeTest      RecordType = "test"
	TypeSurgery   RecordType = "surgery"
	TypeEmergency RecordType = "emergency"
)

// Vitals son los signos vitales tomados en el encuentro.
type Vitals struct {
	Weight          float64 `json:"weight"`
	Temperature     float64 `json:"temperature"`
	HeartRate       int     `json:"heart_rate"`
	RespiratoryRate int     `json:"respiratory_rate"`
}

// HealthRecord es una entrada del historial médico de un paciente.
type HealthRecord struct {
	ID        string `json:"id"`
	PatientID string `json:"patient_id"`

	Type  RecordType `json:"type"`
	Title string     `json:"title"`
	Date  time.Time  `json:"date"`

	Diagnosis   string   `json:"diagnosis"`
	Treatment   string   `json:"treatment"`
	Medications []string `json:"medications"`
	Notes       string   `json:"notes"`

	Vitals Vitals `json:"vitals"`

	// FollowUpDate solo está presente cuando FollowUpRequired es true.
	FollowUpRequired bool       `json:"follow_up_required"`
	FollowUpDate     *time.Time `json:"follow_up_date,omitempty"`

	VetID string `json:"vet_id"`
}

// New aplica defaults seguros y el invariante de follow-up.
func New(r HealthRecord) HealthRecord {
	r.PatientID = strings.TrimSpace(r.PatientID)
	r.Title = strings.TrimSpace(r.Title)
	if r.Medications == nil {
		r.Medications = []string{}
	}
	if !r.FollowUpRequired {
		r.FollowUpDate = nil
	}
	return r
}

func (r HealthRecord) Validate() error {
	if strings.TrimSpace(r.PatientID) == "" {
		return fmt.Errorf("%w: patient reference required", ErrInvalidInput)
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: title required", ErrInvalidInput)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("%w: date required", ErrInvalidInput)
	}
	if !r.FollowUpRequired && r.FollowUpDate != nil {
		return fmt.Errorf("%w: follow-up date without follow-up flag", ErrInvalidInput)
	}
	return nil
}
