package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthzDecisions counts authorization gate outcomes by result:
	// allow, deny_unauthenticated, deny_missing_permission.
	AuthzDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minops",
		Name:      "authz_decisions_total",
		Help:      "Authorization gate decisions by result.",
	}, []string{"result"})

	// AuditWriteFailures counts audit log rows that could not be persisted.
	// Audit writes are best-effort; this counter is how lost rows surface.
	AuditWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "minops",
		Name:      "audit_write_failures_total",
		Help:      "Audit log writes that failed and were dropped.",
	})

	// MailSendFailures counts verification/reset emails that failed to send.
	MailSendFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "minops",
		Name:      "mail_send_failures_total",
		Help:      "Outbound emails that failed to send.",
	})
)
