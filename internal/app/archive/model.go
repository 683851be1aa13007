package archive

import "time"

type Archive struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	Category  string    `json:"category" gorm:"not null;default:'etc';index"`
	Title     string    `json:"title" gorm:"not null"`
	Link      string    `json:"link"`
	Content   string    `json:"content" gorm:"type:text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateArchiveRequest struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	Content  string `json:"content"`
}

type UpdateArchiveRequest struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	Content  string `json:"content"`
}

type ArchiveListResponse struct {
	Archives []*Archive `json:"archives"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
