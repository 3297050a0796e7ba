package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vet-practice-manager/internal/domain/clinics"

	"github.com/google/uuid"
)

type ClinicsRepo struct {
	db *sql.DB
}

func NewClinicsRepo(db *sql.DB) *ClinicsRepo {
	return &ClinicsRepo{db: db}
}

const clinicCols = `
	id, name, address, city, phone, email,
	operating_hours, services, staff_count, patient_count,
	active, emergency_available, license_number
`

func scanClinic(row interface{ Scan(...any) error }) (clinics.Clinic, error) {
	var c clinics.Clinic
	var hours, services string
	err := row.Scan(
		&c.ID, &c.Name, &c.Address, &c.City, &c.Phone, &c.Email,
		&hours, &services, &c.StaffCount, &c.PatientCount,
		&c.Active, &c.EmergencyAvailable, &c.LicenseNumber,
	)
	if err != nil {
		return clinics.Clinic{}, err
	}
	c.OperatingHours = fromJSON[map[string]string](hours)
	c.Services = fromJSON[[]string](services)
	return clinics.New(c), nil
}

func (r *ClinicsRepo) List(ctx context.Context) ([]clinics.Clinic, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+clinicCols+`
		FROM clinics
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clinics.Clinic, 0)
	for rows.Next() {
		c, err := scanClinic(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ClinicsRepo) Create(ctx context.Context, c clinics.Clinic) (clinics.Clinic, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM clinics WHERE lower(license_number) = lower($1))`,
		c.LicenseNumber,
	).Scan(&exists); err != nil {
		return clinics.Clinic{}, err
	}
	if exists {
		return clinics.Clinic{}, ErrConflict
	}

	c.ID = uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clinics (
			id, name, address, city, phone, email,
			operating_hours, services, staff_count, patient_count,
			active, emergency_available, license_number, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,now())
	`,
		c.ID, c.Name, c.Address, c.City, c.Phone, c.Email,
		toJSON(c.OperatingHours), toJSON(c.Services), c.StaffCount, c.PatientCount,
		c.Active, c.EmergencyAvailable, c.LicenseNumber,
	)
	if err != nil {
		return clinics.Clinic{}, err
	}
	return c, nil
}

func (r *ClinicsRepo) Update(ctx context.Context, id string, in clinics.UpdateInput) (clinics.Clinic, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+clinicCols+` FROM clinics WHERE id = $1`, id)
	c, err := scanClinic(row)
	if errors.Is(err, sql.ErrNoRows) {
		return clinics.Clinic{}, ErrNotFound
	}
	if err != nil {
		return clinics.Clinic{}, err
	}

	c = in.Apply(c)
	_, err = r.db.ExecContext(ctx, `
		UPDATE clinics
		SET name = $2, address = $3, city = $4, phone = $5, email = $6,
			operating_hours = $7, services = $8,
			active = $9, emergency_available = $10, license_number = $11
		WHERE id = $1
	`,
		c.ID, c.Name, c.Address, c.City, c.Phone, c.Email,
		toJSON(c.OperatingHours), toJSON(c.Services),
		c.Active, c.EmergencyAvailable, c.LicenseNumber,
	)
	if err != nil {
		return clinics.Clinic{}, err
	}
	return c, nil
}

func (r *ClinicsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clinics WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
