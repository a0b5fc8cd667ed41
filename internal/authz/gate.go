package authz

import (
	errs "minops/internal/errors"
	"minops/internal/metrics"
	"minops/internal/model"
)

// Authorize is the enforcement point for protected operations. It returns
// nil to admit the request, errs.ErrUnauthenticated when there is no
// principal, or a MissingPermissionError naming the missing permission.
//
// The gate has no side effects beyond metrics; audit logging is the
// caller's responsibility.
func Authorize(user *model.User, required string) error {
	if user == nil {
		metrics.AuthzDecisions.WithLabelValues("deny_unauthenticated").Inc()
		return errs.ErrUnauthenticated
	}
	if !Resolve(user).Has(required) {
		metrics.AuthzDecisions.WithLabelValues("deny_missing_permission").Inc()
		return &errs.MissingPermissionError{Permission: required}
	}
	metrics.AuthzDecisions.WithLabelValues("allow").Inc()
	return nil
}
