package repository

import (
	"context"

	"gorm.io/gorm"

	"minops/internal/model"
)

// SectorRepository defines sector persistence operations.
type SectorRepository interface {
	Create(ctx context.Context, sector *model.Sector) error
	Update(ctx context.Context, sector *model.Sector) error
	Delete(ctx context.Context, sector *model.Sector) error
	FindByID(ctx context.Context, id uint) (*model.Sector, error)
	ListByMine(ctx context.Context, mineID uint) ([]model.Sector, error)
}

type sectorRepository struct {
	db *gorm.DB
}

// NewSectorRepository builds a GORM-backed repository.
func NewSectorRepository(db *gorm.DB) SectorRepository {
	return &sectorRepository{db: db}
}

func (r *sectorRepository) Create(ctx context.Context, sector *model.Sector) error {
	return r.db.WithContext(ctx).Create(sector).Error
}

func (r *sectorRepository) Update(ctx context.Context, sector *model.Sector) error {
	return r.db.WithContext(ctx).Save(sector).Error
}

func (r *sectorRepository) Delete(ctx context.Context, sector *model.Sector) error {
	return r.db.WithContext(ctx).Select("Sensors").Delete(sector).Error
}

func (r *sectorRepository) FindByID(ctx context.Context, id uint) (*model.Sector, error) {
	var sector model.Sector
	if err := r.db.WithContext(ctx).Preload("Sensors").First(&sector, id).Error; err != nil {
		return nil, err
	}
	return &sector, nil
}

func (r *sectorRepository) ListByMine(ctx context.Context, mineID uint) ([]model.Sector, error) {
	var sectors []model.Sector
	if err := r.db.WithContext(ctx).Where("mine_id = ?", mineID).Order("name").Find(&sectors).Error; err != nil {
		return nil, err
	}
	return sectors, nil
}
