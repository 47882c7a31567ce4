package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-system/models"
	"github.com/yeremiapane/restaurant-system/utils"
)

// EventPublisher pushes committed domain events to the outside world
// (the live board, a message broker).
type EventPublisher interface {
	Publish(ctx context.Context, event models.Event) error
}

// NewEvent stamps a payload with a fresh id and the current time.
func NewEvent(eventType string, data interface{}) models.Event {
	return models.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// MultiPublisher fans an event out to every publisher. A failing publisher
// does not stop the others; the first error is returned.
type MultiPublisher []EventPublisher

func (m MultiPublisher) Publish(ctx context.Context, event models.Event) error {
	var firstErr error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, models.Event) error { return nil }

// publishAfterCommit never fails the calling operation: the state change is
// already durable, so a lost notification is only logged.
func publishAfterCommit(ctx context.Context, p EventPublisher, event models.Event) {
	if err := p.Publish(ctx, event); err != nil {
		utils.ErrorLogger.WithError(err).WithFields(logrus.Fields{
			"event_id":   event.ID,
			"event_type": event.Type,
		}).Error("failed to publish event")
	}
}
