package mapping

import (
	"context"

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

const mappingCols = `id, patient_id, doctor_id, assigned_date, notes, is_active`

func (r *repoPG) scanMapping(row pgx.Row) (*Mapping, error) {
	var m Mapping
	err := row.Scan(&m.ID, &m.PatientID, &m.DoctorID, &m.AssignedDate,
		&m.Notes, &m.IsActive)
	return &m, err
}

func (r *repoPG) Create(ctx context.Context, m *Mapping) error {
	m.ID = uuid.New()
	m.IsActive = true
	row := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO patient_doctor_mappings (id, patient_id, doctor_id, notes, is_active)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING assigned_date`,
		m.ID, m.PatientID, m.DoctorID, m.Notes, m.IsActive)
	return row.Scan(&m.AssignedDate)
}

func (r *repoPG) collect(rows pgx.Rows) ([]*Mapping, error) {
	defer rows.Close()
	var items []*Mapping
	for rows.Next() {
		m, err := r.scanMapping(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *repoPG) ListForOwner(ctx context.Context, user uuid.UUID) ([]*Mapping, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT m.id, m.patient_id, m.doctor_id, m.assigned_date, m.notes, m.is_active
		FROM patient_doctor_mappings m
		JOIN patients p ON p.id = m.patient_id
		WHERE p.created_by = $1 AND m.is_active
		ORDER BY m.assigned_date DESC`, user)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *repoPG) ListActiveForPatient(ctx context.Context, patientID uuid.UUID) ([]*Mapping, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+mappingCols+`
		FROM patient_doctor_mappings
		WHERE patient_id = $1 AND is_active
		ORDER BY assigned_date DESC`, patientID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *repoPG) ActiveExists(ctx context.Context, patientID, doctorID uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM patient_doctor_mappings
			WHERE patient_id = $1 AND doctor_id = $2 AND is_active
		)`, patientID, doctorID).Scan(&exists)
	return exists, err
}

func (r *repoPG) DeleteOwned(ctx context.Context, user, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		DELETE FROM patient_doctor_mappings m
		USING patients p
		WHERE m.id = $1 AND m.patient_id = p.id AND p.created_by = $2`, id, user)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
