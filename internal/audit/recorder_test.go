package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"minops/internal/model"
	"minops/internal/repository"
)

// MockUserLogRepository is a mock implementation of UserLogRepository.
type MockUserLogRepository struct {
	mock.Mock
}

func (m *MockUserLogRepository) Create(ctx context.Context, entry *model.UserLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockUserLogRepository) List(ctx context.Context, filter repository.UserLogFilter) ([]model.UserLog, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserLog), args.Error(1)
}

func TestRecorder_Record(t *testing.T) {
	actorID := uint(7)
	actor := Actor{UserID: &actorID, IPAddress: "10.0.0.1", UserAgent: "curl/8.0"}

	t.Run("writes one row per action", func(t *testing.T) {
		mockRepo := new(MockUserLogRepository)
		var captured *model.UserLog
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.UserLog")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*model.UserLog)
			}).Return(nil).Once()

		rec := NewRecorder(mockRepo, zap.NewNop())
		entityID := uint(42)
		rec.Record(context.Background(), actor, model.LogActionUpdate, "mine", &entityID, "updated mine #42",
			map[string]any{"name": "North Shaft"}, map[string]any{"name": "North Shaft B"})

		mockRepo.AssertExpectations(t)
		assert.Equal(t, &actorID, captured.UserID)
		assert.Equal(t, model.LogActionUpdate, captured.Action)
		assert.Equal(t, "mine", captured.EntityType)
		assert.Equal(t, &entityID, captured.EntityID)
		assert.JSONEq(t, `{"name":"North Shaft"}`, string(captured.OldValues))
		assert.JSONEq(t, `{"name":"North Shaft B"}`, string(captured.NewValues))
		assert.Equal(t, "10.0.0.1", captured.IPAddress)
		assert.Equal(t, "curl/8.0", captured.UserAgent)
	})

	t.Run("write failure does not propagate", func(t *testing.T) {
		mockRepo := new(MockUserLogRepository)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

		rec := NewRecorder(mockRepo, zap.NewNop())
		assert.NotPanics(t, func() {
			rec.Login(context.Background(), actor)
		})
		mockRepo.AssertExpectations(t)
	})

	t.Run("nil snapshots stay null", func(t *testing.T) {
		mockRepo := new(MockUserLogRepository)
		var captured *model.UserLog
		mockRepo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*model.UserLog)
			}).Return(nil)

		rec := NewRecorder(mockRepo, zap.NewNop())
		rec.Viewed(context.Background(), actor, "sensor", 3)

		assert.Nil(t, captured.OldValues)
		assert.Nil(t, captured.NewValues)
		assert.Equal(t, model.LogActionView, captured.Action)
		assert.Equal(t, "viewed sensor #3", captured.Description)
	})
}

func TestRecorder_ConvenienceActions(t *testing.T) {
	actorID := uint(1)
	actor := Actor{UserID: &actorID}

	tests := []struct {
		name       string
		invoke     func(Recorder)
		wantAction model.LogAction
	}{
		{"login", func(r Recorder) { r.Login(context.Background(), actor) }, model.LogActionLogin},
		{"logout", func(r Recorder) { r.Logout(context.Background(), actor) }, model.LogActionLogout},
		{"created", func(r Recorder) { r.Created(context.Background(), actor, "role", 2, nil) }, model.LogActionCreate},
		{"updated", func(r Recorder) { r.Updated(context.Background(), actor, "role", 2, nil, nil) }, model.LogActionUpdate},
		{"deleted", func(r Recorder) { r.Deleted(context.Background(), actor, "role", 2, nil) }, model.LogActionDelete},
		{"viewed", func(r Recorder) { r.Viewed(context.Background(), actor, "role", 2) }, model.LogActionView},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserLogRepository)
			var captured *model.UserLog
			mockRepo.On("Create", mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					captured = args.Get(1).(*model.UserLog)
				}).Return(nil).Once()

			rec := NewRecorder(mockRepo, zap.NewNop())
			tt.invoke(rec)

			mockRepo.AssertExpectations(t)
			assert.Equal(t, tt.wantAction, captured.Action)
		})
	}
}
