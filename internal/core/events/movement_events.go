package events

// Ledger mutation events. Every mutating movement operation publishes one of
// these synchronously so the audit trail is written in the same call.
const (
	EventMovementRecorded = "movement.recorded"
	EventMovementDeleted  = "movement.deleted"
	EventMovementRestored = "movement.restored"
	EventMovementPurged   = "movement.purged"
)

// MovementEvent builds the payload shared by all ledger mutation events.
func MovementEvent(eventType, username string, movementID int64, description string) BaseEvent {
	return NewBaseEvent(eventType, map[string]interface{}{
		"username":    username,
		"movement_id": movementID,
		"description": description,
	})
}
