package activity

import "time"

// Activity is the append-only log shown on the dashboard. Entries are never
// updated or deleted.
type Activity struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	UserName  string    `json:"user_name" gorm:"not null"`
	Action    string    `json:"action" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
