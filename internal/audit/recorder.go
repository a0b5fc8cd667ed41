package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"minops/internal/metrics"
	"minops/internal/model"
	"minops/internal/repository"
)

// Actor identifies who performed an audited action and from where.
// UserID is nil when the actor is unknown or the system itself.
type Actor struct {
	UserID    *uint
	IPAddress string
	UserAgent string
}

// Recorder writes audit log entries. It performs no authorization; it is
// called only from inside already-authorized handlers.
type Recorder interface {
	Record(ctx context.Context, actor Actor, action model.LogAction, entityType string, entityID *uint, description string, oldValues, newValues any)
	Login(ctx context.Context, actor Actor)
	Logout(ctx context.Context, actor Actor)
	Created(ctx context.Context, actor Actor, entityType string, entityID uint, newValues any)
	Updated(ctx context.Context, actor Actor, entityType string, entityID uint, oldValues, newValues any)
	Deleted(ctx context.Context, actor Actor, entityType string, entityID uint, oldValues any)
	Viewed(ctx context.Context, actor Actor, entityType string, entityID uint)
}

type recorder struct {
	repo   repository.UserLogRepository
	logger *zap.Logger
}

// NewRecorder builds the audit recorder.
func NewRecorder(repo repository.UserLogRepository, logger *zap.Logger) Recorder {
	return &recorder{repo: repo, logger: logger}
}

// Record writes one audit row synchronously. Failures are logged and
// counted but never propagated: a lost audit row is recoverable from the
// server log, a failed business operation is not.
func (r *recorder) Record(ctx context.Context, actor Actor, action model.LogAction, entityType string, entityID *uint, description string, oldValues, newValues any) {
	entry := &model.UserLog{
		UserID:      actor.UserID,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
		OldValues:   marshalSnapshot(oldValues),
		NewValues:   marshalSnapshot(newValues),
		IPAddress:   actor.IPAddress,
		UserAgent:   actor.UserAgent,
	}

	if err := r.repo.Create(ctx, entry); err != nil {
		metrics.AuditWriteFailures.Inc()
		r.logger.Error("audit write failed",
			zap.String("action", string(action)),
			zap.String("entity_type", entityType),
			zap.Uintp("entity_id", entityID),
			zap.Error(err),
		)
	}
}

func (r *recorder) Login(ctx context.Context, actor Actor) {
	r.Record(ctx, actor, model.LogActionLogin, "user", actor.UserID, "user logged in", nil, nil)
}

func (r *recorder) Logout(ctx context.Context, actor Actor) {
	r.Record(ctx, actor, model.LogActionLogout, "user", actor.UserID, "user logged out", nil, nil)
}

func (r *recorder) Created(ctx context.Context, actor Actor, entityType string, entityID uint, newValues any) {
	desc := fmt.Sprintf("created %s #%d", entityType, entityID)
	r.Record(ctx, actor, model.LogActionCreate, entityType, &entityID, desc, nil, newValues)
}

func (r *recorder) Updated(ctx context.Context, actor Actor, entityType string, entityID uint, oldValues, newValues any) {
	desc := fmt.Sprintf("updated %s #%d", entityType, entityID)
	r.Record(ctx, actor, model.LogActionUpdate, entityType, &entityID, desc, oldValues, newValues)
}

func (r *recorder) Deleted(ctx context.Context, actor Actor, entityType string, entityID uint, oldValues any) {
	desc := fmt.Sprintf("deleted %s #%d", entityType, entityID)
	r.Record(ctx, actor, model.LogActionDelete, entityType, &entityID, desc, oldValues, nil)
}

func (r *recorder) Viewed(ctx context.Context, actor Actor, entityType string, entityID uint) {
	desc := fmt.Sprintf("viewed %s #%d", entityType, entityID)
	r.Record(ctx, actor, model.LogActionView, entityType, &entityID, desc, nil, nil)
}

func marshalSnapshot(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(payload)
}
