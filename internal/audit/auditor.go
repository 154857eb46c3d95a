// filepath: internal/audit/auditor.go
package audit

import (
	"github.com/sirupsen/logrus"

	"wardbulletin/internal/logging"
)

// Auditor records who changed what. Entries go to the structured log so
// operators can grep a single stream for account and content changes.
type Auditor interface {
	Record(action, actor, resource string, details map[string]interface{})
}

var _ Auditor = (*logAuditor)(nil)
var _ Auditor = (*noopAuditor)(nil)

type logAuditor struct{}

type noopAuditor struct{}

// NewAuditor returns a logging auditor when enabled, otherwise a no-op.
func NewAuditor(enabled bool) Auditor {
	if enabled {
		return &logAuditor{}
	}
	return &noopAuditor{}
}

func (a *logAuditor) Record(action, actor, resource string, details map[string]interface{}) {
	fields := logrus.Fields{
		"audit":    true,
		"action":   action,
		"actor":    actor,
		"resource": resource,
	}
	for k, v := range details {
		fields[k] = v
	}
	logging.Log.WithFields(fields).Info("audit event")
}

func (a *noopAuditor) Record(string, string, string, map[string]interface{}) {}
