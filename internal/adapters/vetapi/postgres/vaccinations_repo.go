package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vet-practice-manager/internal/domain/vaccinations"

	"github.com/google/uuid"
)

type VaccinationsRepo struct {
	db *sql.DB
}

func NewVaccinationsRepo(db *sql.DB) *VaccinationsRepo {
	return &VaccinationsRepo{db: db}
}

// Los campos denormalizados del paciente se resuelven con un JOIN para que
// el listado no dependa de copias guardadas.
const vaccinationCols = `
	v.id, v.patient_id,
	COALESCE(p.name, ''), COALESCE(p.species, ''), COALESCE(p.owner_name, ''),
	v.vaccine_name, v.vaccine_type, v.manufacturer, v.batch_number,
	v.administered_date, v.next_due_date, v.administered_by,
	v.site, v.route, v.dose, v.notes, v.reactions,
	v.status, v.status_overridden
`

const vaccinationFrom = ` FROM vaccinations v LEFT JOIN patients p ON p.id = v.patient_id`

func scanVaccination(row interface{ Scan(...any) error }) (vaccinations.Vaccination, error) {
	var v vaccinations.Vaccination
	err := row.Scan(
		&v.ID, &v.PatientID,
		&v.PatientName, &v.PatientSpecies, &v.OwnerName,
		&v.VaccineName, &v.VaccineType, &v.Manufacturer, &v.BatchNumber,
		&v.AdministeredDate, &v.NextDueDate, &v.AdministeredBy,
		&v.Site, &v.Route, &v.Dose, &v.Notes, &v.Reactions,
		&v.Status, &v.StatusOverridden,
	)
	if err != nil {
		return vaccinations.Vaccination{}, err
	}
	return v, nil
}

func (r *VaccinationsRepo) List(ctx context.Context, f vaccinations.ListFilter) ([]vaccinations.Vaccination, error) {
	query := `SELECT ` + vaccinationCols + vaccinationFrom
	args := []any{}
	if f.PatientID != "" {
		query += ` WHERE v.patient_id = $1`
		args = append(args, f.PatientID)
	}
	query += ` ORDER BY v.administered_date ASC, v.created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vaccinations.Vaccination, 0)
	for rows.Next() {
		v, err := scanVaccination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VaccinationsRepo) Create(ctx context.Context, v vaccinations.Vaccination) (vaccinations.Vaccination, error) {
	v.ID = uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vaccinations (
			id, patient_id, vaccine_name, vaccine_type, manufacturer, batch_number,
			administered_date, next_due_date, administered_by,
			site, route, dose, notes, reactions, status, status_overridden, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,now())
	`,
		v.ID, v.PatientID, v.VaccineName, v.VaccineType, v.Manufacturer, v.BatchNumber,
		v.AdministeredDate, v.NextDueDate, v.AdministeredBy,
		v.Site, v.Route, v.Dose, v.Notes, v.Reactions, v.Status, v.StatusOverridden,
	)
	if err != nil {
		return vaccinations.Vaccination{}, err
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+vaccinationCols+vaccinationFrom+` WHERE v.id = $1`, v.ID)
	return scanVaccination(row)
}

func (r *VaccinationsRepo) Update(ctx context.Context, id string, in vaccinations.UpdateInput) (vaccinations.Vaccination, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+vaccinationCols+vaccinationFrom+` WHERE v.id = $1`, id)
	v, err := scanVaccination(row)
	if errors.Is(err, sql.ErrNoRows) {
		return vaccinations.Vaccination{}, ErrNotFound
	}
	if err != nil {
		return vaccinations.Vaccination{}, err
	}

	v = in.Apply(v)
	_, err = r.db.ExecContext(ctx, `
		UPDATE vaccinations
		SET vaccine_name = $2, vaccine_type = $3, manufacturer = $4, batch_number = $5,
			administered_date = $6, next_due_date = $7, administered_by = $8,
			site = $9, route = $10, dose = $11, notes = $12, reactions = $13,
			status = $14, status_overridden = $15
		WHERE id = $1
	`,
		v.ID, v.VaccineName, v.VaccineType, v.Manufacturer, v.BatchNumber,
		v.AdministeredDate, v.NextDueDate, v.AdministeredBy,
		v.Site, v.Route, v.Dose, v.Notes, v.Reactions,
		v.Status, v.StatusOverridden,
	)
	if err != nil {
		return vaccinations.Vaccination{}, err
	}
	return v, nil
}

func (r *VaccinationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vaccinations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
