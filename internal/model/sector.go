package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sector is a named zone within a mine.
type Sector struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	MineID    uint            `json:"mine_id" gorm:"not null;index"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	DepthM    decimal.Decimal `json:"depth_m" gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Mine    Mine     `json:"-" gorm:"foreignKey:MineID"`
	Sensors []Sensor `json:"sensors,omitempty" gorm:"foreignKey:SectorID;constraint:OnDelete:CASCADE"`
}
