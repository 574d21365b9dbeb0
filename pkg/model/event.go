package model

import "time"

// Event domain object defining a tree-planting event. UserEmail holds the
// normalized email of the owning user; only the owner can update or delete the
// event.
// swagger:model
type Event struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventType   string    `json:"eventType"`
	Thumbnail   string    `json:"thumbnail"`
	Location    string    `json:"location"`
	Date        time.Time `gorm:"index" json:"date"`
	UserEmail   string    `gorm:"index" json:"userEmail"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
