package model

import (
	"time"

	"gorm.io/datatypes"
)

// LogAction is the kind of audited user action.
type LogAction string

const (
	LogActionLogin  LogAction = "login"
	LogActionLogout LogAction = "logout"
	LogActionCreate LogAction = "create"
	LogActionUpdate LogAction = "update"
	LogActionDelete LogAction = "delete"
	LogActionView   LogAction = "view"
)

// UserLog is an append-only audit record of a user action. Rows are only
// ever inserted; the repository exposes no update or delete. The actor
// reference is nulled when the user is deleted so the trail survives.
type UserLog struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      *uint          `json:"user_id,omitempty" gorm:"index"`
	Action      LogAction      `json:"action" gorm:"type:varchar(20);not null;index"`
	EntityType  string         `json:"entity_type,omitempty" gorm:"size:50;index"`
	EntityID    *uint          `json:"entity_id,omitempty"`
	Description string         `json:"description,omitempty" gorm:"size:512"`
	OldValues   datatypes.JSON `json:"old_values,omitempty"`
	NewValues   datatypes.JSON `json:"new_values,omitempty"`
	IPAddress   string         `json:"ip_address,omitempty" gorm:"size:45"`
	UserAgent   string         `json:"user_agent,omitempty" gorm:"size:255"`
	CreatedAt   time.Time      `json:"created_at" gorm:"index"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}
