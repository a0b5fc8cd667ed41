package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"minops/internal/audit"
	errs "minops/internal/errors"
	"minops/internal/model"
)

func newMineService(mines *MockMineRepository, sectors *MockSectorRepository, sensors *MockSensorRepository) MineService {
	return NewMineService(mines, sectors, sensors, NopRecorder{})
}

func TestMineService_CreateMine(t *testing.T) {
	t.Run("defaults status to active", func(t *testing.T) {
		mockMines := new(MockMineRepository)
		mockMines.On("Create", mock.Anything, mock.AnythingOfType("*model.Mine")).Return(nil)

		svc := newMineService(mockMines, new(MockSectorRepository), new(MockSensorRepository))
		mine, err := svc.CreateMine(context.Background(), "North Shaft", "Kiruna", "", audit.Actor{})

		assert.NoError(t, err)
		assert.Equal(t, model.MineStatusActive, mine.Status)
	})

	t.Run("keeps an explicit status", func(t *testing.T) {
		mockMines := new(MockMineRepository)
		mockMines.On("Create", mock.Anything, mock.AnythingOfType("*model.Mine")).Return(nil)

		svc := newMineService(mockMines, new(MockSectorRepository), new(MockSensorRepository))
		mine, err := svc.CreateMine(context.Background(), "South Shaft", "Kiruna", model.MineStatusMaintenance, audit.Actor{})

		assert.NoError(t, err)
		assert.Equal(t, model.MineStatusMaintenance, mine.Status)
	})
}

func TestMineService_CreateSector(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockMines := new(MockMineRepository)
		mockSectors := new(MockSectorRepository)

		mockMines.On("FindByID", mock.Anything, uint(1)).Return(&model.Mine{ID: 1}, nil)
		mockSectors.On("Create", mock.Anything, mock.AnythingOfType("*model.Sector")).Return(nil)

		svc := newMineService(mockMines, mockSectors, new(MockSensorRepository))
		sector, err := svc.CreateSector(context.Background(), 1, "Level B", decimal.NewFromInt(340), audit.Actor{})

		assert.NoError(t, err)
		assert.Equal(t, uint(1), sector.MineID)
		mockSectors.AssertExpectations(t)
	})

	t.Run("unknown mine", func(t *testing.T) {
		mockMines := new(MockMineRepository)
		mockMines.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		svc := newMineService(mockMines, new(MockSectorRepository), new(MockSensorRepository))
		_, err := svc.CreateSector(context.Background(), 404, "Level B", decimal.Zero, audit.Actor{})

		assert.ErrorIs(t, err, errs.ErrMineNotFound)
	})
}

func TestMineService_CreateSensor(t *testing.T) {
	t.Run("new sensors start active", func(t *testing.T) {
		mockSectors := new(MockSectorRepository)
		mockSensors := new(MockSensorRepository)

		mockSectors.On("FindByID", mock.Anything, uint(2)).Return(&model.Sector{ID: 2, MineID: 1}, nil)
		mockSensors.On("Create", mock.Anything, mock.AnythingOfType("*model.Sensor")).Return(nil)

		svc := newMineService(new(MockMineRepository), mockSectors, mockSensors)
		sensor, err := svc.CreateSensor(context.Background(), 2, "CH4-01", model.SensorTypeGas, "ppm", decimal.NewFromInt(50), audit.Actor{})

		assert.NoError(t, err)
		assert.True(t, sensor.Active)
		assert.Equal(t, model.SensorTypeGas, sensor.Type)
	})

	t.Run("unknown sector", func(t *testing.T) {
		mockSectors := new(MockSectorRepository)
		mockSectors.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		svc := newMineService(new(MockMineRepository), mockSectors, new(MockSensorRepository))
		_, err := svc.CreateSensor(context.Background(), 404, "CH4-01", model.SensorTypeGas, "ppm", decimal.Zero, audit.Actor{})

		assert.ErrorIs(t, err, errs.ErrSectorNotFound)
	})
}

func TestMineService_DeleteMine(t *testing.T) {
	t.Run("removes the mine and its tree", func(t *testing.T) {
		mockMines := new(MockMineRepository)
		mine := &model.Mine{ID: 1, Name: "North Shaft", Sectors: []model.Sector{{ID: 2, MineID: 1}}}
		mockMines.On("FindByID", mock.Anything, uint(1)).Return(mine, nil)
		mockMines.On("Delete", mock.Anything, mine).Return(nil)

		svc := newMineService(mockMines, new(MockSectorRepository), new(MockSensorRepository))
		err := svc.DeleteMine(context.Background(), 1, audit.Actor{})

		assert.NoError(t, err)
		mockMines.AssertExpectations(t)
	})

	t.Run("missing mine", func(t *testing.T) {
		mockMines := new(MockMineRepository)
		mockMines.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		svc := newMineService(mockMines, new(MockSectorRepository), new(MockSensorRepository))
		err := svc.DeleteMine(context.Background(), 404, audit.Actor{})

		assert.ErrorIs(t, err, errs.ErrMineNotFound)
	})
}

func TestMineService_UpdateSensor(t *testing.T) {
	mockSensors := new(MockSensorRepository)
	sensor := &model.Sensor{
		ID:       3,
		SectorID: 2,
		Name:     "CH4-01",
		Type:     model.SensorTypeGas,
		Unit:     "ppm",
		Active:   true,
	}
	mockSensors.On("FindByID", mock.Anything, uint(3)).Return(sensor, nil)
	mockSensors.On("Update", mock.Anything, sensor).Return(nil)

	svc := newMineService(new(MockMineRepository), new(MockSectorRepository), mockSensors)
	updated, err := svc.UpdateSensor(context.Background(), 3, "CH4-01", "ppm",
		decimal.NewFromInt(40), decimal.NewFromFloat(12.5), false, audit.Actor{})

	assert.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, model.SensorTypeGas, updated.Type)
	assert.True(t, updated.LastReading.Equal(decimal.NewFromFloat(12.5)))
}
