package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vedavayu/clinic-backend/internal/domain"
)

// DoctorFilter narrows doctor listings; empty fields match everything.
type DoctorFilter struct {
	Name      string
	Specialty string
}

// DoctorRepository persists practitioner profiles.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *domain.Doctor) error
	Update(ctx context.Context, doctor *domain.Doctor) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Doctor, error)
	List(ctx context.Context, filter DoctorFilter) ([]domain.Doctor, error)
}

type doctorRepository struct {
	pool *pgxpool.Pool
}

// NewDoctorRepository constructs repository.
func NewDoctorRepository(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepository{pool: pool}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *domain.Doctor) error {
	const query = `
        INSERT INTO doctors (name, specialty, status, image_url, image_public_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		doctor.Name,
		doctor.Specialty,
		doctor.Status,
		doctor.Photo.URL,
		doctor.Photo.PublicID,
	).Scan(&doctor.ID, &doctor.CreatedAt, &doctor.UpdatedAt)
}

func (r *doctorRepository) Update(ctx context.Context, doctor *domain.Doctor) error {
	const query = `
        UPDATE doctors SET name=$1, specialty=$2, status=$3, image_url=$4, image_public_id=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		doctor.Name,
		doctor.Specialty,
		doctor.Status,
		doctor.Photo.URL,
		doctor.Photo.PublicID,
		doctor.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *doctorRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM doctors WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *doctorRepository) GetByID(ctx context.Context, id string) (*domain.Doctor, error) {
	const query = `
        SELECT id, name, specialty, status, image_url, image_public_id, created_at, updated_at
        FROM doctors WHERE id=$1`

	var doctor domain.Doctor
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&doctor.ID,
		&doctor.Name,
		&doctor.Specialty,
		&doctor.Status,
		&doctor.Photo.URL,
		&doctor.Photo.PublicID,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) List(ctx context.Context, filter DoctorFilter) ([]domain.Doctor, error) {
	const query = `
        SELECT id, name, specialty, status, image_url, image_public_id, created_at, updated_at
        FROM doctors
        WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
          AND ($2 = '' OR specialty ILIKE '%' || $2 || '%')
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, filter.Name, filter.Specialty)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Doctor
	for rows.Next() {
		var doctor domain.Doctor
		if err := rows.Scan(
			&doctor.ID,
			&doctor.Name,
			&doctor.Specialty,
			&doctor.Status,
			&doctor.Photo.URL,
			&doctor.Photo.PublicID,
			&doctor.CreatedAt,
			&doctor.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, doctor)
	}
	return result, rows.Err()
}
