package model

import "time"

// Role is a named bundle of permissions assigned to users.
//
// Protected marks roles that must keep at least one member at all times;
// deleting the last user of a protected role is rejected, and protected
// roles themselves cannot be deleted.
type Role struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Description string       `json:"description" gorm:"size:255"`
	Protected   bool         `json:"protected" gorm:"default:false"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Permissions []Permission `json:"permissions,omitempty" gorm:"many2many:role_permissions;constraint:OnDelete:CASCADE"`
}
