package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vet-practice-manager/internal/domain/users"

	"github.com/google/uuid"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	return r.list(ctx, `SELECT id, name, email, role, status, created_at FROM users ORDER BY created_at ASC`)
}

func (r *UsersRepo) ListAdmins(ctx context.Context) ([]users.User, error) {
	return r.list(ctx, `SELECT id, name, email, role, status, created_at FROM users WHERE role = 'admin' ORDER BY created_at ASC`)
}

func (r *UsersRepo) list(ctx context.Context, query string) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		var u users.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) ListVeterinarians(ctx context.Context) ([]users.Veterinarian, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.id, u.name, u.email, u.role, u.status, u.created_at, COALESCE(p.profile, '')
		FROM users u
		LEFT JOIN vet_profiles p ON p.user_id = u.id
		WHERE u.role = 'veterinarian'
		ORDER BY u.created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.Veterinarian, 0)
	for rows.Next() {
		var v users.Veterinarian
		var profile string
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.Status, &v.CreatedAt, &profile); err != nil {
			return nil, err
		}
		v.Profile = fromJSON[users.VetProfile](profile)
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *UsersRepo) Create(ctx context.Context, u users.User, profile *users.VetProfile) (users.User, error) {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, role, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, u.ID, u.Name, u.Email, u.Role, u.Status, u.CreatedAt)
	if err != nil {
		return users.User{}, err
	}

	if u.Role == users.RoleVeterinarian && profile != nil {
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO vet_profiles (user_id, profile) VALUES ($1,$2)
		`, u.ID, toJSON(*profile))
		if err != nil {
			return users.User{}, err
		}
	}
	return u, nil
}

func (r *UsersRepo) Update(ctx context.Context, id string, in users.UpdateInput) (users.User, error) {
	var u users.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, role, status, created_at FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, ErrNotFound
	}
	if err != nil {
		return users.User{}, err
	}

	u = in.Apply(u)
	_, err = r.db.ExecContext(ctx,
		`UPDATE users SET name = $2, email = $3 WHERE id = $1`,
		u.ID, u.Name, u.Email,
	)
	if err != nil {
		return users.User{}, err
	}

	if in.Profile != nil && u.Role == users.RoleVeterinarian {
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO vet_profiles (user_id, profile) VALUES ($1,$2)
			ON CONFLICT (user_id) DO UPDATE SET profile = EXCLUDED.profile
		`, u.ID, toJSON(*in.Profile))
		if err != nil {
			return users.User{}, err
		}
	}
	return u, nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	_, _ = r.db.ExecContext(ctx, `DELETE FROM vet_profiles WHERE user_id = $1`, id)
	return nil
}

func (r *UsersRepo) SetStatus(ctx context.Context, id string, status users.Status) (users.User, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return users.User{}, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.User{}, ErrNotFound
	}

	var u users.User
	err = r.db.QueryRowContext(ctx,
		`SELECT id, name, email, role, status, created_at FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, &u.CreatedAt)
	if err != nil {
		return users.User{}, err
	}
	return u, nil
}
