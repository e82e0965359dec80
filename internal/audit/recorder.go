package audit

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/cashbook-management/internal"
	"github.com/frahmantamala/cashbook-management/internal/core/events"
)

const movementsTable = "movements"

// Recorder turns ledger mutation events into audit entries. It subscribes to
// the synchronous movement events, so the entry lands in the same store
// operation window as the mutation; a failing append is logged and swallowed
// rather than failing the ledger call.
type Recorder struct {
	service *Service
	logger  *slog.Logger
}

func NewRecorder(service *Service, logger *slog.Logger) *Recorder {
	return &Recorder{
		service: service,
		logger:  logger,
	}
}

// Register subscribes the recorder to every ledger mutation event.
func (r *Recorder) Register(bus *events.EventBus) {
	bus.Subscribe(events.EventMovementRecorded, r.handle(ActionInsert))
	bus.Subscribe(events.EventMovementDeleted, r.handle(ActionDelete))
	bus.Subscribe(events.EventMovementRestored, r.handle(ActionRestore))
	bus.Subscribe(events.EventMovementPurged, r.handle(ActionPurge))
}

func (r *Recorder) handle(action Action) events.Handler {
	return func(ctx context.Context, event events.Event) error {
		data, ok := event.Payload().(map[string]interface{})
		if !ok {
			r.logger.Error("unexpected movement event payload", "event_id", event.EventID())
			return nil
		}

		username, _ := data["username"].(string)
		if username == "" {
			// publishers put the actor on the context as well as the payload
			username = internal.UsernameFromContext(ctx)
		}
		movementID, _ := data["movement_id"].(int64)
		description, _ := data["description"].(string)

		if err := r.service.Append(username, action, movementsTable, movementID, description); err != nil {
			r.logger.Error("audit append failed for movement event",
				"event_id", event.EventID(),
				"action", action,
				"movement_id", movementID,
				"error", err)
		}
		return nil
	}
}
