package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"minops/internal/audit"
	errs "minops/internal/errors"
	"minops/internal/model"
	"minops/internal/repository"
)

// MineService exposes the mine/sector/sensor inventory. Deletes cascade
// mine→sector→sensor through the schema; readings are static records, no
// telemetry pipeline exists.
type MineService interface {
	CreateMine(ctx context.Context, name, location string, status model.MineStatus, actor audit.Actor) (*model.Mine, error)
	GetMine(ctx context.Context, id uint, actor audit.Actor) (*model.Mine, error)
	ListMines(ctx context.Context) ([]model.Mine, error)
	UpdateMine(ctx context.Context, id uint, name, location string, status model.MineStatus, actor audit.Actor) (*model.Mine, error)
	DeleteMine(ctx context.Context, id uint, actor audit.Actor) error

	CreateSector(ctx context.Context, mineID uint, name string, depthM decimal.Decimal, actor audit.Actor) (*model.Sector, error)
	ListSectors(ctx context.Context, mineID uint) ([]model.Sector, error)
	UpdateSector(ctx context.Context, id uint, name string, depthM decimal.Decimal, actor audit.Actor) (*model.Sector, error)
	DeleteSector(ctx context.Context, id uint, actor audit.Actor) error

	CreateSensor(ctx context.Context, sectorID uint, name string, sensorType model.SensorType, unit string, threshold decimal.Decimal, actor audit.Actor) (*model.Sensor, error)
	ListSensors(ctx context.Context, sectorID uint) ([]model.Sensor, error)
	UpdateSensor(ctx context.Context, id uint, name string, unit string, threshold, lastReading decimal.Decimal, active bool, actor audit.Actor) (*model.Sensor, error)
	DeleteSensor(ctx context.Context, id uint, actor audit.Actor) error
}

type mineService struct {
	mineRepo   repository.MineRepository
	sectorRepo repository.SectorRepository
	sensorRepo repository.SensorRepository
	recorder   audit.Recorder
}

// NewMineService builds a MineService.
func NewMineService(
	mineRepo repository.MineRepository,
	sectorRepo repository.SectorRepository,
	sensorRepo repository.SensorRepository,
	recorder audit.Recorder,
) MineService {
	return &mineService{
		mineRepo:   mineRepo,
		sectorRepo: sectorRepo,
		sensorRepo: sensorRepo,
		recorder:   recorder,
	}
}

func mineSnapshot(m *model.Mine) map[string]any {
	return map[string]any{"name": m.Name, "location": m.Location, "status": m.Status}
}

func sectorSnapshot(s *model.Sector) map[string]any {
	return map[string]any{"mine_id": s.MineID, "name": s.Name, "depth_m": s.DepthM}
}

func sensorSnapshot(s *model.Sensor) map[string]any {
	return map[string]any{
		"sector_id":    s.SectorID,
		"name":         s.Name,
		"type":         s.Type,
		"unit":         s.Unit,
		"threshold":    s.Threshold,
		"last_reading": s.LastReading,
		"active":       s.Active,
	}
}

func (s *mineService) CreateMine(ctx context.Context, name, location string, status model.MineStatus, actor audit.Actor) (*model.Mine, error) {
	if status == "" {
		status = model.MineStatusActive
	}
	mine := &model.Mine{Name: name, Location: location, Status: status}
	if err := s.mineRepo.Create(ctx, mine); err != nil {
		return nil, fmt.Errorf("create mine: %w", err)
	}
	s.recorder.Created(ctx, actor, "mine", mine.ID, mineSnapshot(mine))
	return mine, nil
}

func (s *mineService) GetMine(ctx context.Context, id uint, actor audit.Actor) (*model.Mine, error) {
	mine, err := s.mineRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrMineNotFound
		}
		return nil, err
	}
	s.recorder.Viewed(ctx, actor, "mine", id)
	return mine, nil
}

func (s *mineService) ListMines(ctx context.Context) ([]model.Mine, error) {
	return s.mineRepo.List(ctx)
}

func (s *mineService) UpdateMine(ctx context.Context, id uint, name, location string, status model.MineStatus, actor audit.Actor) (*model.Mine, error) {
	mine, err := s.mineRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrMineNotFound
		}
		return nil, err
	}

	oldValues := mineSnapshot(mine)
	mine.Name = name
	mine.Location = location
	mine.Status = status
	if err := s.mineRepo.Update(ctx, mine); err != nil {
		return nil, fmt.Errorf("update mine: %w", err)
	}

	s.recorder.Updated(ctx, actor, "mine", mine.ID, oldValues, mineSnapshot(mine))
	return mine, nil
}

func (s *mineService) DeleteMine(ctx context.Context, id uint, actor audit.Actor) error {
	mine, err := s.mineRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrMineNotFound
		}
		return err
	}

	oldValues := mineSnapshot(mine)
	if err := s.mineRepo.Delete(ctx, mine); err != nil {
		return fmt.Errorf("delete mine: %w", err)
	}

	s.recorder.Deleted(ctx, actor, "mine", id, oldValues)
	return nil
}

func (s *mineService) CreateSector(ctx context.Context, mineID uint, name string, depthM decimal.Decimal, actor audit.Actor) (*model.Sector, error) {
	if _, err := s.mineRepo.FindByID(ctx, mineID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrMineNotFound
		}
		return nil, err
	}

	sector := &model.Sector{MineID: mineID, Name: name, DepthM: depthM}
	if err := s.sectorRepo.Create(ctx, sector); err != nil {
		return nil, fmt.Errorf("create sector: %w", err)
	}

	s.recorder.Created(ctx, actor, "sector", sector.ID, sectorSnapshot(sector))
	return sector, nil
}

func (s *mineService) ListSectors(ctx context.Context, mineID uint) ([]model.Sector, error) {
	if _, err := s.mineRepo.FindByID(ctx, mineID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrMineNotFound
		}
		return nil, err
	}
	return s.sectorRepo.ListByMine(ctx, mineID)
}

func (s *mineService) UpdateSector(ctx context.Context, id uint, name string, depthM decimal.Decimal, actor audit.Actor) (*model.Sector, error) {
	sector, err := s.sectorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrSectorNotFound
		}
		return nil, err
	}

	oldValues := sectorSnapshot(sector)
	sector.Name = name
	sector.DepthM = depthM
	if err := s.sectorRepo.Update(ctx, sector); err != nil {
		return nil, fmt.Errorf("update sector: %w", err)
	}

	s.recorder.Updated(ctx, actor, "sector", sector.ID, oldValues, sectorSnapshot(sector))
	return sector, nil
}

func (s *mineService) DeleteSector(ctx context.Context, id uint, actor audit.Actor) error {
	sector, err := s.sectorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrSectorNotFound
		}
		return err
	}

	oldValues := sectorSnapshot(sector)
	if err := s.sectorRepo.Delete(ctx, sector); err != nil {
		return fmt.Errorf("delete sector: %w", err)
	}

	s.recorder.Deleted(ctx, actor, "sector", id, oldValues)
	return nil
}

func (s *mineService) CreateSensor(ctx context.Context, sectorID uint, name string, sensorType model.SensorType, unit string, threshold decimal.Decimal, actor audit.Actor) (*model.Sensor, error) {
	if _, err := s.sectorRepo.FindByID(ctx, sectorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrSectorNotFound
		}
		return nil, err
	}

	sensor := &model.Sensor{
		SectorID:  sectorID,
		Name:      name,
		Type:      sensorType,
		Unit:      unit,
		Threshold: threshold,
		Active:    true,
	}
	if err := s.sensorRepo.Create(ctx, sensor); err != nil {
		return nil, fmt.Errorf("create sensor: %w", err)
	}

	s.recorder.Created(ctx, actor, "sensor", sensor.ID, sensorSnapshot(sensor))
	return sensor, nil
}

func (s *mineService) ListSensors(ctx context.Context, sectorID uint) ([]model.Sensor, error) {
	if _, err := s.sectorRepo.FindByID(ctx, sectorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrSectorNotFound
		}
		return nil, err
	}
	return s.sensorRepo.ListBySector(ctx, sectorID)
}

func (s *mineService) UpdateSensor(ctx context.Context, id uint, name string, unit string, threshold, lastReading decimal.Decimal, active bool, actor audit.Actor) (*model.Sensor, error) {
	sensor, err := s.sensorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrSensorNotFound
		}
		return nil, err
	}

	oldValues := sensorSnapshot(sensor)
	sensor.Name = name
	sensor.Unit = unit
	sensor.Threshold = threshold
	sensor.LastReading = lastReading
	sensor.Active = active
	if err := s.sensorRepo.Update(ctx, sensor); err != nil {
		return nil, fmt.Errorf("update sensor: %w", err)
	}

	s.recorder.Updated(ctx, actor, "sensor", sensor.ID, oldValues, sensorSnapshot(sensor))
	return sensor, nil
}

func (s *mineService) DeleteSensor(ctx context.Context, id uint, actor audit.Actor) error {
	sensor, err := s.sensorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrSensorNotFound
		}
		return err
	}

	oldValues := sensorSnapshot(sensor)
	if err := s.sensorRepo.Delete(ctx, sensor); err != nil {
		return fmt.Errorf("delete sensor: %w", err)
	}

	s.recorder.Deleted(ctx, actor, "sensor", id, oldValues)
	return nil
}
