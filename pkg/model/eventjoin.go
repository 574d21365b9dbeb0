package model

import "time"

// EventJoin records a user's registration of interest in an event. The
// composite unique index guarantees at most one join per (event, user) pair.
// Joins are only ever removed as part of deleting their event.
// swagger:model
type EventJoin struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	EventID   uint      `gorm:"uniqueIndex:idx_event_joins_event_user" json:"eventId"`
	UserEmail string    `gorm:"uniqueIndex:idx_event_joins_event_user" json:"userEmail"`
	JoinedAt  time.Time `json:"joinedAt"`
}
