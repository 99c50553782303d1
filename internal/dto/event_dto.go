package dto

import "time"

// ActivityEventMessage is the bus payload carried between the publisher and
// the activity-log consumer.
type ActivityEventMessage struct {
	EventType  string                 `json:"event_type"`
	Details    map[string]interface{} `json:"details"`
	OccurredAt time.Time              `json:"occurred_at"`
}
