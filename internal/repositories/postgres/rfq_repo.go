package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rockdove/aviation-backend/internal/models"
)

type RFQRepository interface {
	Insert(ctx context.Context, row *models.RFQSubmission) error
	ListNewestFirst(ctx context.Context) ([]models.RFQSubmission, error)
}

type rfqRepo struct {
	db *gorm.DB
}

func NewRFQRepo(db *gorm.DB) RFQRepository {
	return &rfqRepo{db: db}
}

func (r *rfqRepo) Insert(ctx context.Context, row *models.RFQSubmission) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *rfqRepo) ListNewestFirst(ctx context.Context) ([]models.RFQSubmission, error) {
	var rows []models.RFQSubmission
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
