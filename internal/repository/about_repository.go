package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vedavayu/clinic-backend/internal/domain"
)

// AboutRepository persists the singleton about-page document.
type AboutRepository interface {
	// Get returns the singleton, or pgx.ErrNoRows when it was never written.
	Get(ctx context.Context) (*domain.About, error)
	// Save inserts or updates the singleton in place.
	Save(ctx context.Context, about *domain.About) error
}

type aboutRepository struct {
	pool *pgxpool.Pool
}

// NewAboutRepository constructs repository.
func NewAboutRepository(pool *pgxpool.Pool) AboutRepository {
	return &aboutRepository{pool: pool}
}

func (r *aboutRepository) Get(ctx context.Context) (*domain.About, error) {
	const query = `
        SELECT id, title, content, mission, vision, journey_image_url, journey_image_public_id,
               doctor_count, therapy_count, updated_at
        FROM about LIMIT 1`

	var about domain.About
	if err := r.pool.QueryRow(ctx, query).Scan(
		&about.ID,
		&about.Title,
		&about.Content,
		&about.Mission,
		&about.Vision,
		&about.JourneyImage.URL,
		&about.JourneyImage.PublicID,
		&about.DoctorCount,
		&about.TherapyCount,
		&about.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &about, nil
}

func (r *aboutRepository) Save(ctx context.Context, about *domain.About) error {
	if about.ID == "" {
		const insert = `
            INSERT INTO about (title, content, mission, vision, journey_image_url, journey_image_public_id,
                               doctor_count, therapy_count)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
            RETURNING id, updated_at`
		return r.pool.QueryRow(ctx, insert,
			about.Title,
			about.Content,
			about.Mission,
			about.Vision,
			about.JourneyImage.URL,
			about.JourneyImage.PublicID,
			about.DoctorCount,
			about.TherapyCount,
		).Scan(&about.ID, &about.UpdatedAt)
	}

	const update = `
        UPDATE about SET title=$1, content=$2, mission=$3, vision=$4, journey_image_url=$5,
               journey_image_public_id=$6, doctor_count=$7, therapy_count=$8, updated_at=NOW()
        WHERE id=$9
        RETURNING updated_at`
	return r.pool.QueryRow(ctx, update,
		about.Title,
		about.Content,
		about.Mission,
		about.Vision,
		about.JourneyImage.URL,
		about.JourneyImage.PublicID,
		about.DoctorCount,
		about.TherapyCount,
		about.ID,
	).Scan(&about.UpdatedAt)
}
