package repository

import (
	"context"

	"gorm.io/gorm"

	"minops/internal/model"
)

// MineRepository defines mine persistence operations. Deleting a mine
// cascades to sectors and sensors through the schema's FK constraints.
type MineRepository interface {
	Create(ctx context.Context, mine *model.Mine) error
	Update(ctx context.Context, mine *model.Mine) error
	Delete(ctx context.Context, mine *model.Mine) error
	FindByID(ctx context.Context, id uint) (*model.Mine, error)
	List(ctx context.Context) ([]model.Mine, error)
}

type mineRepository struct {
	db *gorm.DB
}

// NewMineRepository builds a GORM-backed repository.
func NewMineRepository(db *gorm.DB) MineRepository {
	return &mineRepository{db: db}
}

func (r *mineRepository) Create(ctx context.Context, mine *model.Mine) error {
	return r.db.WithContext(ctx).Create(mine).Error
}

func (r *mineRepository) Update(ctx context.Context, mine *model.Mine) error {
	return r.db.WithContext(ctx).Save(mine).Error
}

func (r *mineRepository) Delete(ctx context.Context, mine *model.Mine) error {
	return r.db.WithContext(ctx).Select("Sectors.Sensors", "Sectors").Delete(mine).Error
}

func (r *mineRepository) FindByID(ctx context.Context, id uint) (*model.Mine, error) {
	var mine model.Mine
	if err := r.db.WithContext(ctx).Preload("Sectors.Sensors").First(&mine, id).Error; err != nil {
		return nil, err
	}
	return &mine, nil
}

func (r *mineRepository) List(ctx context.Context) ([]model.Mine, error) {
	var mines []model.Mine
	if err := r.db.WithContext(ctx).Order("name").Find(&mines).Error; err != nil {
		return nil, err
	}
	return mines, nil
}
