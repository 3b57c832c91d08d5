package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vedavayu/clinic-backend/internal/domain"
)

// PartnerRepository persists affiliated organizations.
type PartnerRepository interface {
	Create(ctx context.Context, partner *domain.Partner) error
	Update(ctx context.Context, partner *domain.Partner) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Partner, error)
	List(ctx context.Context) ([]domain.Partner, error)
}

type partnerRepository struct {
	pool *pgxpool.Pool
}

// NewPartnerRepository constructs repository.
func NewPartnerRepository(pool *pgxpool.Pool) PartnerRepository {
	return &partnerRepository{pool: pool}
}

func (r *partnerRepository) Create(ctx context.Context, partner *domain.Partner) error {
	const query = `
        INSERT INTO partners (name, website, logo_url, logo_public_id, owner_photo_url, owner_photo_public_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		partner.Name,
		partner.Website,
		partner.Logo.URL,
		partner.Logo.PublicID,
		partner.OwnerPhoto.URL,
		partner.OwnerPhoto.PublicID,
	).Scan(&partner.ID, &partner.CreatedAt, &partner.UpdatedAt)
}

func (r *partnerRepository) Update(ctx context.Context, partner *domain.Partner) error {
	const query = `
        UPDATE partners SET name=$1, website=$2, logo_url=$3, logo_public_id=$4,
               owner_photo_url=$5, owner_photo_public_id=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		partner.Name,
		partner.Website,
		partner.Logo.URL,
		partner.Logo.PublicID,
		partner.OwnerPhoto.URL,
		partner.OwnerPhoto.PublicID,
		partner.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *partnerRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM partners WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *partnerRepository) GetByID(ctx context.Context, id string) (*domain.Partner, error) {
	const query = `
        SELECT id, name, website, logo_url, logo_public_id, owner_photo_url, owner_photo_public_id, created_at, updated_at
        FROM partners WHERE id=$1`

	var partner domain.Partner
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&partner.ID,
		&partner.Name,
		&partner.Website,
		&partner.Logo.URL,
		&partner.Logo.PublicID,
		&partner.OwnerPhoto.URL,
		&partner.OwnerPhoto.PublicID,
		&partner.CreatedAt,
		&partner.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &partner, nil
}

func (r *partnerRepository) List(ctx context.Context) ([]domain.Partner, error) {
	const query = `
        SELECT id, name, website, logo_url, logo_public_id, owner_photo_url, owner_photo_public_id, created_at, updated_at
        FROM partners ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Partner
	for rows.Next() {
		var partner domain.Partner
		if err := rows.Scan(
			&partner.ID,
			&partner.Name,
			&partner.Website,
			&partner.Logo.URL,
			&partner.Logo.PublicID,
			&partner.OwnerPhoto.URL,
			&partner.OwnerPhoto.PublicID,
			&partner.CreatedAt,
			&partner.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, partner)
	}
	return result, rows.Err()
}
