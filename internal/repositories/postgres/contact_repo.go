package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rockdove/aviation-backend/internal/models"
)

type ContactRepository interface {
	Insert(ctx context.Context, row *models.ContactSubmission) error
	ListNewestFirst(ctx context.Context) ([]models.ContactSubmission, error)
}

type contactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Insert(ctx context.Context, row *models.ContactSubmission) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *contactRepo) ListNewestFirst(ctx context.Context) ([]models.ContactSubmission, error) {
	var rows []models.ContactSubmission
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
