package eventbus

import (
	"context"
	"fmt"

	"github.com/grachmannico95/casedesk-be/internal/domain"
	"github.com/grachmannico95/casedesk-be/pkg/logger"
	"github.com/grachmannico95/casedesk-be/pkg/retry"
)

// ActivityConsumer records case events in the activity feed, at most once per
// event id.
type ActivityConsumer struct {
	repo        domain.CaseRepository
	logger      *logger.Logger
	workerCount int
}

func NewActivityConsumer(repo domain.CaseRepository, log *logger.Logger, workerCount int) *ActivityConsumer {
	if workerCount < 1 {
		workerCount = 1
	}
	return &ActivityConsumer{
		repo:        repo,
		logger:      log,
		workerCount: workerCount,
	}
}

func (ac *ActivityConsumer) Consume(ctx context.Context, event Event) error {
	processed, err := ac.repo.IsEventProcessed(ctx, event.ID)
	if err != nil {
		ac.logger.Error(ctx, "Failed to check event processed status",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	if processed {
		ac.logger.Debug(ctx, "Event already processed, skipping",
			"event_id", event.ID,
		)
		return nil
	}

	payload, ok := event.Payload.(CaseEvent)
	if !ok {
		ac.logger.Error(ctx, "Invalid payload type for case activity event",
			"event_id", event.ID,
		)
		return retry.Permanent(fmt.Errorf("invalid payload type %T", event.Payload))
	}

	err = ac.repo.AddActivity(ctx, domain.Activity{
		EventID:   event.ID,
		CaseID:    payload.CaseID,
		Action:    payload.Action,
		Actor:     payload.Actor,
		Timestamp: event.Timestamp,
	})
	if err != nil {
		ac.logger.Error(ctx, "Failed to add activity",
			"event_id", event.ID,
			"case_id", payload.CaseID,
			"error", err,
		)
		return err
	}

	err = ac.repo.MarkEventProcessed(ctx, event.ID)
	if err != nil {
		ac.logger.Error(ctx, "Failed to mark event as processed",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	ac.logger.Debug(ctx, "Activity recorded",
		"event_id", event.ID,
		"case_id", payload.CaseID,
		"action", payload.Action,
	)

	return nil
}

func (ac *ActivityConsumer) GetWorkerCount() int {
	return ac.workerCount
}
