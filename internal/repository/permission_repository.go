package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"minops/internal/model"
)

// PermissionRepository defines permission persistence operations.
// Permissions are reference data: seeded at deployment, read at runtime.
type PermissionRepository interface {
	Upsert(ctx context.Context, permission *model.Permission) error
	List(ctx context.Context) ([]model.Permission, error)
	ListNames(ctx context.Context) ([]string, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.Permission, error)
}

type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository builds a GORM-backed repository.
func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &permissionRepository{db: db}
}

// Upsert inserts the permission or refreshes its description, keyed by name.
func (r *permissionRepository) Upsert(ctx context.Context, permission *model.Permission) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description"}),
	}).Create(permission).Error
}

func (r *permissionRepository) List(ctx context.Context) ([]model.Permission, error) {
	var permissions []model.Permission
	if err := r.db.WithContext(ctx).Order("name").Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}

func (r *permissionRepository) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&model.Permission{}).Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (r *permissionRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Permission, error) {
	var permissions []model.Permission
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}
