package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the configured bus
const (
	EventGameCreated    = "grid.game_created"
	EventGuessSubmitted = "grid.guess_submitted"
	EventGameOver       = "grid.game_over"
	EventDailyCreated   = "grid.daily_created"
)

// Keys set on event contexts
const (
	EventKeyRow        = "row"
	EventKeyCol        = "col"
	EventKeyCorrect    = "correct"
	EventKeyScore      = "score"
	EventKeyDifficulty = "difficulty"
	EventKeyDate       = "date"
)

// publish sends an event when a bus is configured. Handler failures are
// logged and never fail the operation that raised the event.
func (o *orchestrator) publish(ctx context.Context, eventType string, source, target core.Entity, data map[string]any) {
	if o.eventBus == nil {
		return
	}

	event := events.NewGameEvent(eventType, source, target)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish event",
			"event_type", eventType,
			"error", err)
	}
}
