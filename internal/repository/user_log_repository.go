package repository

import (
	"context"

	"gorm.io/gorm"

	"minops/internal/model"
)

// UserLogFilter narrows audit log listings.
type UserLogFilter struct {
	UserID *uint
	Action model.LogAction
	Limit  int
	Offset int
}

// UserLogRepository persists audit entries. The interface is deliberately
// insert-and-read only; audit rows are never updated or deleted.
type UserLogRepository interface {
	Create(ctx context.Context, entry *model.UserLog) error
	List(ctx context.Context, filter UserLogFilter) ([]model.UserLog, error)
}

type userLogRepository struct {
	db *gorm.DB
}

// NewUserLogRepository builds a GORM-backed repository.
func NewUserLogRepository(db *gorm.DB) UserLogRepository {
	return &userLogRepository{db: db}
}

func (r *userLogRepository) Create(ctx context.Context, entry *model.UserLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *userLogRepository) List(ctx context.Context, filter UserLogFilter) ([]model.UserLog, error) {
	q := r.db.WithContext(ctx).Model(&model.UserLog{}).Order("created_at DESC")

	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var entries []model.UserLog
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
