package model

import "time"

// MineStatus represents the operational status of a mine.
type MineStatus string

const (
	MineStatusActive      MineStatus = "active"
	MineStatusMaintenance MineStatus = "maintenance"
	MineStatusClosed      MineStatus = "closed"
)

// Mine is a physical mining site. Deleting a mine cascades to its
// sectors and their sensors.
type Mine struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"size:255;not null;index"`
	Location  string     `json:"location" gorm:"size:255"`
	Status    MineStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Sectors []Sector `json:"sectors,omitempty" gorm:"foreignKey:MineID;constraint:OnDelete:CASCADE"`
}
