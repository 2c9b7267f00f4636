package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rockdove/aviation-backend/internal/models"
	"github.com/rockdove/aviation-backend/internal/utils"
)

type CareerRepository interface {
	Insert(ctx context.Context, row *models.CareerApplication) error
	// ListNewestFirst returns the blob-free projection only.
	ListNewestFirst(ctx context.Context) ([]models.CareerApplicationSummary, error)
	// GetByID loads the full row, attachment bytes included.
	GetByID(ctx context.Context, id uint) (*models.CareerApplication, error)
}

type careerRepo struct {
	db *gorm.DB
}

func NewCareerRepo(db *gorm.DB) CareerRepository {
	return &careerRepo{db: db}
}

func (r *careerRepo) Insert(ctx context.Context, row *models.CareerApplication) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// summaryColumns keeps resume_data and photo_data out of the listing query
// entirely, not just out of the serialized response.
var summaryColumns = []string{
	"id", "job_type", "job_role", "position", "name", "email", "phone",
	"education", "address", "resume_filename", "resume_mimetype",
	"photo_filename", "photo_mimetype", "created_at",
}

func (r *careerRepo) ListNewestFirst(ctx context.Context) ([]models.CareerApplicationSummary, error) {
	var rows []models.CareerApplicationSummary
	err := r.db.WithContext(ctx).
		Select(summaryColumns).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *careerRepo) GetByID(ctx context.Context, id uint) (*models.CareerApplication, error) {
	var row models.CareerApplication
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
