package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vet-practice-manager/internal/domain/patients"

	"github.com/google/uuid"
)

type PatientsRepo struct {
	db *sql.DB
}

func NewPatientsRepo(db *sql.DB) *PatientsRepo {
	return &PatientsRepo{db: db}
}

const patientCols = `
	id, name, species, breed, gender, birth_date, weight, color, microchip,
	owner_id, owner_name, owner_phone, owner_address, emergency_contact,
	status, conditions, allergies, notes, image_url, next_appointment
`

func scanPatient(row interface{ Scan(...any) error }) (patients.Patient, error) {
	var p patients.Patient
	var emergency, conditions, allergies string
	var birth, next sql.NullTime
	err := row.Scan(
		&p.ID, &p.Name, &p.Species, &p.Breed, &p.Gender, &birth, &p.Weight, &p.Color, &p.Microchip,
		&p.OwnerID, &p.OwnerName, &p.OwnerPhone, &p.OwnerAddress, &emergency,
		&p.Status, &conditions, &allergies, &p.Notes, &p.ImageURL, &next,
	)
	if err != nil {
		return patients.Patient{}, err
	}
	if birth.Valid {
		p.BirthDate = birth.Time
	}
	p.NextAppointment = fromNullTime(next)
	p.EmergencyContact = fromJSON[patients.EmergencyContact](emergency)
	p.Conditions = fromJSON[[]string](conditions)
	p.Allergies = fromJSON[[]string](allergies)
	return patients.New(p), nil
}

func (r *PatientsRepo) List(ctx context.Context) ([]patients.Patient, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+patientCols+`
		FROM patients
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) (patients.Patient, error) {
	p.ID = uuid.NewString()
	var birth sql.NullTime
	if !p.BirthDate.IsZero() {
		birth = sql.NullTime{Time: p.BirthDate, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO patients (
			id, name, species, breed, gender, birth_date, weight, color, microchip,
			owner_id, owner_name, owner_phone, owner_address, emergency_contact,
			status, conditions, allergies, notes, image_url, next_appointment, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,now())
	`,
		p.ID, p.Name, p.Species, p.Breed, p.Gender, birth, p.Weight, p.Color, p.Microchip,
		p.OwnerID, p.OwnerName, p.OwnerPhone, p.OwnerAddress, toJSON(p.EmergencyContact),
		p.Status, toJSON(p.Conditions), toJSON(p.Allergies), p.Notes, p.ImageURL, toNullTime(p.NextAppointment),
	)
	if err != nil {
		return patients.Patient{}, err
	}
	return p, nil
}

func (r *PatientsRepo) Update(ctx context.Context, id string, in patients.UpdateInput) (patients.Patient, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id)
	p, err := scanPatient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return patients.Patient{}, ErrNotFound
	}
	if err != nil {
		return patients.Patient{}, err
	}

	p = in.Apply(p)
	var birth sql.NullTime
	if !p.BirthDate.IsZero() {
		birth = sql.NullTime{Time: p.BirthDate, Valid: true}
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE patients
		SET name = $2, species = $3, breed = $4, gender = $5, birth_date = $6,
			weight = $7, color = $8, microchip = $9,
			owner_id = $10, owner_name = $11, owner_phone = $12, owner_address = $13,
			emergency_contact = $14, status = $15, conditions = $16, allergies = $17,
			notes = $18, image_url = $19, next_appointment = $20
		WHERE id = $1
	`,
		p.ID, p.Name, p.Species, p.Breed, p.Gender, birth,
		p.Weight, p.Color, p.Microchip,
		p.OwnerID, p.OwnerName, p.OwnerPhone, p.OwnerAddress,
		toJSON(p.EmergencyContact), p.Status, toJSON(p.Conditions), toJSON(p.Allergies),
		p.Notes, p.ImageURL, toNullTime(p.NextAppointment),
	)
	if err != nil {
		return patients.Patient{}, err
	}
	return p, nil
}

func (r *PatientsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
