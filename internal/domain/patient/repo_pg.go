package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthrec/healthrec/internal/platform/apperr"
	"github.com/healthrec/healthrec/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const patientCols = `id, name, email, phone, date_of_birth, gender, address,
	medical_history, created_by, created_at, updated_at`

func (r *repoPG) scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.DateOfBirth.Time,
		&p.Gender, &p.Address, &p.MedicalHistory, &p.CreatedBy,
		&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	row := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO patients (id, name, email, phone, date_of_birth, gender,
			address, medical_history, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING created_at, updated_at`,
		p.ID, p.Name, p.Email, p.Phone, p.DateOfBirth.Time, p.Gender,
		p.Address, p.MedicalHistory, p.CreatedBy)
	return row.Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *repoPG) GetOwned(ctx context.Context, user, id uuid.UUID) (*Patient, error) {
	return r.scanPatient(r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE id = $1 AND created_by = $2`, id, user))
}

func (r *repoPG) ListOwned(ctx context.Context, user uuid.UUID) ([]*Patient, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+patientCols+` FROM patients WHERE created_by = $1 ORDER BY created_at ASC`, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := r.scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	row := r.conn(ctx).QueryRow(ctx, `
		UPDATE patients SET name=$3, email=$4, phone=$5, date_of_birth=$6,
			gender=$7, address=$8, medical_history=$9, updated_at=NOW()
		WHERE id = $1 AND created_by = $2
		RETURNING updated_at`,
		p.ID, p.CreatedBy, p.Name, p.Email, p.Phone, p.DateOfBirth.Time,
		p.Gender, p.Address, p.MedicalHistory)
	err := row.Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.ErrNotFound
	}
	return err
}

// DeleteOwned removes the patient's mapping rows before the patient itself so
// the cascade is part of the store contract rather than a schema side effect.
func (r *repoPG) DeleteOwned(ctx context.Context, user, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		DELETE FROM patient_doctor_mappings m
		USING patients p
		WHERE m.patient_id = p.id AND p.id = $1 AND p.created_by = $2`, id, user); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM patients WHERE id = $1 AND created_by = $2`, id, user)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *repoPG) EmailInUse(ctx context.Context, user uuid.UUID, email string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM patients WHERE created_by = $1 AND email = $2 AND id <> $3)`,
		user, email, excludeID).Scan(&exists)
	return exists, err
}
