package repository

import (
	"context"

	"gorm.io/gorm"

	"minops/internal/model"
)

// SensorRepository defines sensor persistence operations.
type SensorRepository interface {
	Create(ctx context.Context, sensor *model.Sensor) error
	Update(ctx context.Context, sensor *model.Sensor) error
	Delete(ctx context.Context, sensor *model.Sensor) error
	FindByID(ctx context.Context, id uint) (*model.Sensor, error)
	ListBySector(ctx context.Context, sectorID uint) ([]model.Sensor, error)
}

type sensorRepository struct {
	db *gorm.DB
}

// NewSensorRepository builds a GORM-backed repository.
func NewSensorRepository(db *gorm.DB) SensorRepository {
	return &sensorRepository{db: db}
}

func (r *sensorRepository) Create(ctx context.Context, sensor *model.Sensor) error {
	return r.db.WithContext(ctx).Create(sensor).Error
}

func (r *sensorRepository) Update(ctx context.Context, sensor *model.Sensor) error {
	return r.db.WithContext(ctx).Save(sensor).Error
}

func (r *sensorRepository) Delete(ctx context.Context, sensor *model.Sensor) error {
	return r.db.WithContext(ctx).Delete(sensor).Error
}

func (r *sensorRepository) FindByID(ctx context.Context, id uint) (*model.Sensor, error) {
	var sensor model.Sensor
	if err := r.db.WithContext(ctx).First(&sensor, id).Error; err != nil {
		return nil, err
	}
	return &sensor, nil
}

func (r *sensorRepository) ListBySector(ctx context.Context, sectorID uint) ([]model.Sensor, error) {
	var sensors []model.Sensor
	if err := r.db.WithContext(ctx).Where("sector_id = ?", sectorID).Order("name").Find(&sensors).Error; err != nil {
		return nil, err
	}
	return sensors, nil
}
