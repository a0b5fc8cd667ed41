package model

import "time"

// Message is a direct message between two users.
//
// Each party has an independent soft-delete flag; a message stays visible
// to one side after the other side deleted it. ReadAt is set exactly once,
// the first time the recipient fetches the message.
type Message struct {
	ID                   uint       `json:"id" gorm:"primaryKey"`
	SenderID             uint       `json:"sender_id" gorm:"not null;index"`
	RecipientID          uint       `json:"recipient_id" gorm:"not null;index"`
	Content              string     `json:"content" gorm:"type:text;not null"`
	ReadAt               *time.Time `json:"read_at,omitempty"`
	IsDeletedBySender    bool       `json:"-" gorm:"default:false"`
	IsDeletedByRecipient bool       `json:"-" gorm:"default:false"`
	CreatedAt            time.Time  `json:"created_at"`

	Sender    User `json:"-" gorm:"foreignKey:SenderID"`
	Recipient User `json:"-" gorm:"foreignKey:RecipientID"`
}
