package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"minops/internal/model"
)

// MessageRepository defines message persistence operations. Visibility is
// enforced in the queries: each party only ever sees messages their own
// deletion flag has not hidden.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	FindByID(ctx context.Context, id uint) (*model.Message, error)
	ListInbox(ctx context.Context, recipientID uint) ([]model.Message, error)
	ListOutbox(ctx context.Context, senderID uint) ([]model.Message, error)
	// MarkInboxRead stamps read_at on every unread message for the
	// recipient. The read_at IS NULL guard makes re-marking a no-op.
	MarkInboxRead(ctx context.Context, recipientID uint, readAt time.Time) error
	SetDeletedBySender(ctx context.Context, id uint) error
	SetDeletedByRecipient(ctx context.Context, id uint) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository builds a GORM-backed repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) FindByID(ctx context.Context, id uint) (*model.Message, error) {
	var message model.Message
	if err := r.db.WithContext(ctx).First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) ListInbox(ctx context.Context, recipientID uint) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("recipient_id = ? AND is_deleted_by_recipient = ?", recipientID, false).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) ListOutbox(ctx context.Context, senderID uint) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("sender_id = ? AND is_deleted_by_sender = ?", senderID, false).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) MarkInboxRead(ctx context.Context, recipientID uint, readAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Message{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientID).
		Update("read_at", readAt).Error
}

func (r *messageRepository) SetDeletedBySender(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Message{}).
		Where("id = ?", id).
		Update("is_deleted_by_sender", true).Error
}

func (r *messageRepository) SetDeletedByRecipient(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Message{}).
		Where("id = ?", id).
		Update("is_deleted_by_recipient", true).Error
}
