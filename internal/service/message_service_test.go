package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"minops/internal/audit"
	errs "minops/internal/errors"
	"minops/internal/model"
)

func TestMessageService_Send(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockMessages := new(MockMessageRepository)
		mockUsers := new(MockUserRepository)

		mockUsers.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2}, nil)
		mockMessages.On("Create", mock.Anything, mock.AnythingOfType("*model.Message")).Return(nil)

		svc := NewMessageService(mockMessages, mockUsers, NopRecorder{})
		msg, err := svc.Send(context.Background(), 1, 2, "hello", audit.Actor{})

		assert.NoError(t, err)
		assert.Equal(t, uint(1), msg.SenderID)
		assert.Equal(t, uint(2), msg.RecipientID)
		assert.Nil(t, msg.ReadAt)
		assert.False(t, msg.IsDeletedBySender)
		assert.False(t, msg.IsDeletedByRecipient)
	})

	t.Run("unknown recipient", func(t *testing.T) {
		mockMessages := new(MockMessageRepository)
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewMessageService(mockMessages, mockUsers, NopRecorder{})
		_, err := svc.Send(context.Background(), 1, 404, "hello", audit.Actor{})

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestMessageService_Inbox(t *testing.T) {
	// The read stamp happens before the list so returned rows carry their
	// final read_at; the repository's IS NULL guard makes the stamp a
	// no-op for already-read rows.
	mockMessages := new(MockMessageRepository)
	mockUsers := new(MockUserRepository)

	mockMessages.On("MarkInboxRead", mock.Anything, uint(2), mock.AnythingOfType("time.Time")).Return(nil).Twice()
	mockMessages.On("ListInbox", mock.Anything, uint(2)).Return([]model.Message{
		{ID: 1, SenderID: 1, RecipientID: 2, Content: "hello"},
	}, nil).Twice()

	svc := NewMessageService(mockMessages, mockUsers, NopRecorder{})

	first, err := svc.Inbox(context.Background(), 2)
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	// A second fetch is identical: marking again is a no-op.
	second, err := svc.Inbox(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	mockMessages.AssertExpectations(t)
}

func TestMessageService_Get(t *testing.T) {
	msg := &model.Message{ID: 7, SenderID: 1, RecipientID: 2, Content: "hello", IsDeletedBySender: true}

	t.Run("recipient still sees a sender-deleted message", func(t *testing.T) {
		mockMessages := new(MockMessageRepository)
		mockMessages.On("FindByID", mock.Anything, uint(7)).Return(msg, nil)

		svc := NewMessageService(mockMessages, new(MockUserRepository), NopRecorder{})
		got, err := svc.Get(context.Background(), 7, 2)

		assert.NoError(t, err)
		assert.Equal(t, "hello", got.Content)
	})

	t.Run("sender who deleted it gets not found", func(t *testing.T) {
		mockMessages := new(MockMessageRepository)
		mockMessages.On("FindByID", mock.Anything, uint(7)).Return(msg, nil)

		svc := NewMessageService(mockMessages, new(MockUserRepository), NopRecorder{})
		_, err := svc.Get(context.Background(), 7, 1)

		assert.ErrorIs(t, err, errs.ErrMessageNotFound)
	})

	t.Run("non-participant gets not found", func(t *testing.T) {
		mockMessages := new(MockMessageRepository)
		mockMessages.On("FindByID", mock.Anything, uint(7)).Return(msg, nil)

		svc := NewMessageService(mockMessages, new(MockUserRepository), NopRecorder{})
		_, err := svc.Get(context.Background(), 7, 99)

		assert.ErrorIs(t, err, errs.ErrMessageNotFound)
	})
}

func TestMessageService_DeleteForParty(t *testing.T) {
	base := func() *model.Message {
		return &model.Message{ID: 7, SenderID: 1, RecipientID: 2, Content: "hello"}
	}

	tests := []struct {
		name          string
		message       *model.Message
		partyID       uint
		setupMock     func(*MockMessageRepository, *model.Message)
		expectedError error
	}{
		{
			name:    "sender hides their copy",
			message: base(),
			partyID: 1,
			setupMock: func(m *MockMessageRepository, msg *model.Message) {
				m.On("FindByID", mock.Anything, uint(7)).Return(msg, nil)
				m.On("SetDeletedBySender", mock.Anything, uint(7)).Return(nil)
			},
		},
		{
			name:    "recipient hides their copy",
			message: base(),
			partyID: 2,
			setupMock: func(m *MockMessageRepository, msg *model.Message) {
				m.On("FindByID", mock.Anything, uint(7)).Return(msg, nil)
				m.On("SetDeletedByRecipient", mock.Anything, uint(7)).Return(nil)
			},
		},
		{
			name: "sender deletion leaves recipient flag alone",
			message: func() *model.Message {
				msg := base()
				msg.IsDeletedBySender = true
				return msg
			}(),
			partyID: 2,
			setupMock: func(m *MockMessageRepository, msg *model.Message) {
				m.On("FindByID", mock.Anything, uint(7)).Return(msg, nil)
				m.On("SetDeletedByRecipient", mock.Anything, uint(7)).Return(nil)
			},
		},
		{
			name: "already hidden for this party",
			message: func() *model.Message {
				msg := base()
				msg.IsDeletedBySender = true
				return msg
			}(),
			partyID: 1,
			setupMock: func(m *MockMessageRepository, msg *model.Message) {
				m.On("FindByID", mock.Anything, uint(7)).Return(msg, nil)
			},
			expectedError: errs.ErrMessageNotFound,
		},
		{
			name:    "non-participant is denied",
			message: base(),
			partyID: 99,
			setupMock: func(m *MockMessageRepository, msg *model.Message) {
				m.On("FindByID", mock.Anything, uint(7)).Return(msg, nil)
			},
			expectedError: errs.ErrMessageNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMessages := new(MockMessageRepository)
			tt.setupMock(mockMessages, tt.message)

			svc := NewMessageService(mockMessages, new(MockUserRepository), NopRecorder{})
			err := svc.DeleteForParty(context.Background(), 7, tt.partyID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockMessages.AssertExpectations(t)
		})
	}
}
