package quicklink

import "time"

type QuickLink struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	URL       string    `json:"url" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateQuickLinkRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required"`
}

type QuickLinkListResponse struct {
	Links []*QuickLink `json:"links"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
