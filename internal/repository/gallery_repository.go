package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vedavayu/clinic-backend/internal/domain"
)

// GalleryRepository persists gallery photos.
type GalleryRepository interface {
	Create(ctx context.Context, image *domain.GalleryImage) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.GalleryImage, error)
	List(ctx context.Context) ([]domain.GalleryImage, error)
}

type galleryRepository struct {
	pool *pgxpool.Pool
}

// NewGalleryRepository constructs repository.
func NewGalleryRepository(pool *pgxpool.Pool) GalleryRepository {
	return &galleryRepository{pool: pool}
}

func (r *galleryRepository) Create(ctx context.Context, image *domain.GalleryImage) error {
	const query = `
        INSERT INTO gallery_images (title, description, image_url, image_public_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		image.Title,
		image.Description,
		image.Photo.URL,
		image.Photo.PublicID,
	).Scan(&image.ID, &image.CreatedAt)
}

func (r *galleryRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM gallery_images WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *galleryRepository) GetByID(ctx context.Context, id string) (*domain.GalleryImage, error) {
	const query = `
        SELECT id, title, description, image_url, image_public_id, created_at
        FROM gallery_images WHERE id=$1`

	var image domain.GalleryImage
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&image.ID,
		&image.Title,
		&image.Description,
		&image.Photo.URL,
		&image.Photo.PublicID,
		&image.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *galleryRepository) List(ctx context.Context) ([]domain.GalleryImage, error) {
	const query = `
        SELECT id, title, description, image_url, image_public_id, created_at
        FROM gallery_images ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.GalleryImage
	for rows.Next() {
		var image domain.GalleryImage
		if err := rows.Scan(
			&image.ID,
			&image.Title,
			&image.Description,
			&image.Photo.URL,
			&image.Photo.PublicID,
			&image.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, image)
	}
	return result, rows.Err()
}
