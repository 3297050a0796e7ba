package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vet-practice-manager/internal/domain/healthrecords"

	"github.com/google/uuid"
)

type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

const recordCols = `
	id, patient_id, type, title, date, diagnosis, treatment, medications,
	notes, vitals, follow_up_required, follow_up_date, vet_id
`

func scanRecord(row interface{ Scan(...any) error }) (healthrecords.HealthRecord, error) {
	var rec healthrecords.HealthRecord
	var medications, vitals string
	var followUp sql.NullTime
	err := row.Scan(
		&rec.ID, &rec.PatientID, &rec.Type, &rec.Title, &rec.Date,
		&rec.Diagnosis, &rec.Treatment, &medications,
		&rec.Notes, &vitals, &rec.FollowUpRequired, &followUp, &rec.VetID,
	)
	if err != nil {
		return healthrecords.HealthRecord{}, err
	}
	rec.Medications = fromJSON[[]string](medications)
	rec.Vitals = fromJSON[healthrecords.Vitals](vitals)
	rec.FollowUpDate = fromNullTime(followUp)
	return healthrecords.New(rec), nil
}

func (r *RecordsRepo) List(ctx context.Context, f healthrecords.ListFilter) ([]healthrecords.HealthRecord, error) {
	query := `SELECT ` + recordCols + ` FROM health_records`
	args := []any{}
	if f.PatientID != "" {
		query += ` WHERE patient_id = $1`
		args = append(args, f.PatientID)
	}
	query += ` ORDER BY date ASC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]healthrecords.HealthRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *RecordsRepo) Create(ctx context.Context, rec healthrecords.HealthRecord) (healthrecords.HealthRecord, error) {
	rec.ID = uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO health_records (
			id, patient_id, type, title, date, diagnosis, treatment, medications,
			notes, vitals, follow_up_required, follow_up_date, vet_id, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,now())
	`,
		rec.ID, rec.PatientID, rec.Type, rec.Title, rec.Date,
		rec.Diagnosis, rec.Treatment, toJSON(rec.Medications),
		rec.Notes, toJSON(rec.Vitals), rec.FollowUpRequired, toNullTime(rec.FollowUpDate), rec.VetID,
	)
	if err != nil {
		return healthrecords.HealthRecord{}, err
	}
	return rec, nil
}

func (r *RecordsRepo) Update(ctx context.Context, id string, in healthrecords.UpdateInput) (healthrecords.HealthRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+recordCols+` FROM health_records WHERE id = $1`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return healthrecords.HealthRecord{}, ErrNotFound
	}
	if err != nil {
		return healthrecords.HealthRecord{}, err
	}

	rec = in.Apply(rec)
	_, err = r.db.ExecContext(ctx, `
		UPDATE health_records
		SET type = $2, title = $3, date = $4, diagnosis = $5, treatment = $6,
			medications = $7, notes = $8, vitals = $9,
			follow_up_required = $10, follow_up_date = $11
		WHERE id = $1
	`,
		rec.ID, rec.Type, rec.Title, rec.Date, rec.Diagnosis, rec.Treatment,
		toJSON(rec.Medications), rec.Notes, toJSON(rec.Vitals),
		rec.FollowUpRequired, toNullTime(rec.FollowUpDate),
	)
	if err != nil {
		return healthrecords.HealthRecord{}, err
	}
	return rec, nil
}

func (r *RecordsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM health_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
