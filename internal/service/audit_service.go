package service

import (
	"context"

	"minops/internal/model"
	"minops/internal/repository"
)

const defaultAuditPageSize = 50

// AuditService exposes read access to the audit log. There is no write
// surface here; writes happen only through the audit.Recorder.
type AuditService interface {
	ListLogs(ctx context.Context, filter repository.UserLogFilter) ([]model.UserLog, error)
}

type auditService struct {
	repo repository.UserLogRepository
}

// NewAuditService builds an AuditService.
func NewAuditService(repo repository.UserLogRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) ListLogs(ctx context.Context, filter repository.UserLogFilter) ([]model.UserLog, error) {
	if filter.Limit <= 0 || filter.Limit > 500 {
		filter.Limit = defaultAuditPageSize
	}
	return s.repo.List(ctx, filter)
}
