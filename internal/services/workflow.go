package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/daxterlabs/daxter-backend/internal/logger"
)

// WorkflowTrigger requests a correlation token for a stored record,
// standing in for the external analysis orchestrator. Implementations
// must not block beyond token construction.
type WorkflowTrigger interface {
	Trigger(ctx context.Context, recordID int64) (string, error)
}

type workflowTrigger struct {
	log *logger.Logger
}

func NewWorkflowTrigger(baseLog *logger.Logger) WorkflowTrigger {
	return &workflowTrigger{log: baseLog.With("service", "WorkflowTrigger")}
}

func (t *workflowTrigger) Trigger(_ context.Context, recordID int64) (string, error) {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	token := fmt.Sprintf("wkflow-%d-%s", recordID, suffix)
	t.log.Info("Triggering analysis workflow", "record_id", recordID, "workflow_token", token)
	return token, nil
}
