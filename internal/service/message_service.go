package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"minops/internal/audit"
	errs "minops/internal/errors"
	"minops/internal/model"
	"minops/internal/repository"
)

// MessageService exposes direct messaging. Visibility is per-party: a
// message a sender deleted is gone from their view only, and vice versa.
type MessageService interface {
	Send(ctx context.Context, senderID, recipientID uint, content string, actor audit.Actor) (*model.Message, error)
	// Inbox returns the recipient's visible messages and stamps read_at on
	// any that were unread. Re-fetching never changes an existing read_at.
	Inbox(ctx context.Context, recipientID uint) ([]model.Message, error)
	Outbox(ctx context.Context, senderID uint) ([]model.Message, error)
	// Get returns a single message if the party is a participant and has
	// not deleted it from their view.
	Get(ctx context.Context, messageID, partyID uint) (*model.Message, error)
	DeleteForParty(ctx context.Context, messageID, partyID uint) error
}

type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	recorder    audit.Recorder
}

// NewMessageService builds a MessageService.
func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository, recorder audit.Recorder) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		recorder:    recorder,
	}
}

func (s *messageService) Send(ctx context.Context, senderID, recipientID uint, content string, actor audit.Actor) (*model.Message, error) {
	if _, err := s.userRepo.FindByID(ctx, recipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}

	message := &model.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	s.recorder.Created(ctx, actor, "message", message.ID, map[string]any{"recipient_id": recipientID})
	return message, nil
}

func (s *messageService) Inbox(ctx context.Context, recipientID uint) ([]model.Message, error) {
	// Stamp before reading so the returned rows carry their final read_at.
	// The repository's read_at IS NULL guard makes this idempotent.
	if err := s.messageRepo.MarkInboxRead(ctx, recipientID, time.Now()); err != nil {
		return nil, fmt.Errorf("mark inbox read: %w", err)
	}
	return s.messageRepo.ListInbox(ctx, recipientID)
}

func (s *messageService) Outbox(ctx context.Context, senderID uint) ([]model.Message, error) {
	return s.messageRepo.ListOutbox(ctx, senderID)
}

func (s *messageService) Get(ctx context.Context, messageID, partyID uint) (*model.Message, error) {
	message, err := s.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrMessageNotFound
		}
		return nil, err
	}

	switch partyID {
	case message.SenderID:
		if message.IsDeletedBySender {
			return nil, errs.ErrMessageNotFound
		}
	case message.RecipientID:
		if message.IsDeletedByRecipient {
			return nil, errs.ErrMessageNotFound
		}
	default:
		return nil, errs.ErrMessageNotFound
	}
	return message, nil
}

// DeleteForParty hides the message from one party's view. The other
// party's flag, and the row itself, are untouched.
func (s *messageService) DeleteForParty(ctx context.Context, messageID, partyID uint) error {
	message, err := s.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrMessageNotFound
		}
		return err
	}

	switch partyID {
	case message.SenderID:
		if message.IsDeletedBySender {
			return errs.ErrMessageNotFound
		}
		return s.messageRepo.SetDeletedBySender(ctx, messageID)
	case message.RecipientID:
		if message.IsDeletedByRecipient {
			return errs.ErrMessageNotFound
		}
		return s.messageRepo.SetDeletedByRecipient(ctx, messageID)
	default:
		// Not a participant; indistinguishable from a missing message.
		return errs.ErrMessageNotFound
	}
}
