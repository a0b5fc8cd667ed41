package model

import "time"

// User represents an authenticated user in the system. A user references
// at most one role; the effective permission set is always recomputed
// from the role, never stored on the user.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:255;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"` // Never expose in JSON

	RoleID *uint `json:"role_id,omitempty" gorm:"index"`
	Role   *Role `json:"role,omitempty" gorm:"foreignKey:RoleID"`

	// EmailVerifiedAt is nil until the verification link is followed.
	// Login is blocked while nil; admin-created users are verified up front.
	EmailVerifiedAt   *time.Time `json:"email_verified_at,omitempty"`
	VerificationToken string     `json:"-" gorm:"size:36;index"`
	ResetToken        string     `json:"-" gorm:"size:36;index"`
	ResetTokenExpiry  *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Verified reports whether the user has completed email verification.
func (u *User) Verified() bool {
	return u.EmailVerifiedAt != nil
}
