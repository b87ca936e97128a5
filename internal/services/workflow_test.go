package services

import (
	"context"
	"strings"
	"testing"
)

func TestWorkflowTriggerTokenFormat(t *testing.T) {
	trigger := NewWorkflowTrigger(newTestLogger(t))
	ctx := context.Background()

	token, err := trigger.Trigger(ctx, 42)
	if err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if !strings.HasPrefix(token, "wkflow-42-") {
		t.Fatalf("unexpected token format: %q", token)
	}
	if len(token) == len("wkflow-42-") {
		t.Fatalf("expected entropy suffix on token")
	}

	second, err := trigger.Trigger(ctx, 42)
	if err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if token == second {
		t.Fatalf("expected distinct tokens per trigger call")
	}
}
