package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SensorType classifies what a sensor measures.
type SensorType string

const (
	SensorTypeGas         SensorType = "gas"
	SensorTypeTemperature SensorType = "temperature"
	SensorTypeHumidity    SensorType = "humidity"
	SensorTypeSeismic     SensorType = "seismic"
)

// Sensor is an installed measuring device within a sector. Readings are
// static inventory data; there is no ingestion pipeline.
type Sensor struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	SectorID    uint            `json:"sector_id" gorm:"not null;index"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	Type        SensorType      `json:"type" gorm:"type:varchar(20);not null;index"`
	Unit        string          `json:"unit" gorm:"size:20"`
	Threshold   decimal.Decimal `json:"threshold" gorm:"type:decimal(20,4);not null;default:0"`
	LastReading decimal.Decimal `json:"last_reading" gorm:"type:decimal(20,4);not null;default:0"`
	Active      bool            `json:"active" gorm:"default:true;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Sector Sector `json:"-" gorm:"foreignKey:SectorID"`
}
