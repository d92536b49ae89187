package doctor

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

const doctorCols = `id, name, email, phone, specialization, qualification,
	experience_years, license_number, hospital_affiliation, consultation_fee,
	is_available, created_at, updated_at`

func (r *repoPG) scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Email, &d.Phone, &d.Specialization,
		&d.Qualification, &d.ExperienceYears, &d.LicenseNumber,
		&d.HospitalAffiliation, &d.ConsultationFee, &d.IsAvailable,
		&d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	return &d, err
}

func (r *repoPG) Create(ctx context.Context, d *Doctor) error {
	d.ID = uuid.New()
	row := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO doctors (id, name, email, phone, specialization, qualification,
			experience_years, license_number, hospital_affiliation, consultation_fee,
			is_available)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING created_at, updated_at`,
		d.ID, d.Name, d.Email, d.Phone, d.Specialization, d.Qualification,
		d.ExperienceYears, d.LicenseNumber, d.HospitalAffiliation,
		d.ConsultationFee, d.IsAvailable)
	return row.Scan(&d.CreatedAt, &d.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return r.scanDoctor(r.conn(ctx).QueryRow(ctx, `SELECT `+doctorCols+` FROM doctors WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+doctorCols+` FROM doctors ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Doctor
	for rows.Next() {
		d, err := r.scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, d *Doctor) error {
	row := r.conn(ctx).QueryRow(ctx, `
		UPDATE doctors SET name=$2, email=$3, phone=$4, specialization=$5,
			qualification=$6, experience_years=$7, license_number=$8,
			hospital_affiliation=$9, consultation_fee=$10, is_available=$11,
			updated_at=NOW()
		WHERE id = $1
		RETURNING updated_at`,
		d.ID, d.Name, d.Email, d.Phone, d.Specialization, d.Qualification,
		d.ExperienceYears, d.LicenseNumber, d.HospitalAffiliation,
		d.ConsultationFee, d.IsAvailable)
	err := row.Scan(&d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.ErrNotFound
	}
	return err
}

// Delete removes dependent mapping rows before the doctor itself so the
// cascade is part of the store contract rather than a schema side effect.
func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM patient_doctor_mappings WHERE doctor_id = $1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *repoPG) EmailInUse(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM doctors WHERE email = $1 AND id <> $2)`,
		email, excludeID).Scan(&exists)
	return exists, err
}

func (r *repoPG) LicenseInUse(ctx context.Context, license string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM doctors WHERE license_number = $1 AND id <> $2)`,
		license, excludeID).Scan(&exists)
	return exists, err
}
