package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/types"
)

// Summarizer maps (agentID, kind) to generated text. The simulated
// implementation below stands in for a model call; a real client can be
// swapped in behind this interface.
type Summarizer interface {
	Summarize(ctx context.Context, agentID, kind string) (string, error)
	Model() string
}

type simulatedSummarizer struct {
	log      *logger.Logger
	minDelay time.Duration
	maxDelay time.Duration
}

// NewSimulatedSummarizer returns a Summarizer that sleeps a random interval
// in [minDelay, maxDelay] and emits canned text keyed by kind.
func NewSimulatedSummarizer(baseLog *logger.Logger, minDelay, maxDelay time.Duration) Summarizer {
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &simulatedSummarizer{
		log:      baseLog.With("service", "SimulatedSummarizer"),
		minDelay: minDelay,
		maxDelay: maxDelay,
	}
}

func (s *simulatedSummarizer) Model() string {
	return "GPT-Sim-v1"
}

func (s *simulatedSummarizer) Summarize(ctx context.Context, agentID, kind string) (string, error) {
	delay := s.minDelay
	if spread := s.maxDelay - s.minDelay; spread > 0 {
		delay += time.Duration(rand.Int63n(int64(spread)))
	}
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	s.log.Info("Generating summary", "agent_id", agentID, "summary_kind", kind)

	if kind == types.SummaryKindComplianceAlert {
		return fmt.Sprintf("ALERT: Agent %s detected a potential compliance gap due to incomplete filings. Immediate review required.", agentID), nil
	}
	return fmt.Sprintf("FINANCIAL OVERVIEW: Client %s shows stable revenue growth of 2%% this quarter. System confidence: high.", agentID), nil
}
