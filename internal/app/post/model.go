package post

import "time"

const (
	TagGeneral = "general"
	TagNotice  = "notice"
	TagUrgent  = "urgent"
	TagIssue   = "issue"
)

func ValidTag(tag string) bool {
	switch tag {
	case TagGeneral, TagNotice, TagUrgent, TagIssue:
		return true
	}
	return false
}

type Post struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	Tag       string    `json:"tag" gorm:"not null;default:'general';index"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text"`
	Author    string    `json:"author"`
	Views     uint64    `json:"views" gorm:"not null;default:0"`
	// Attachment keeps the uploaded file's display name only; the file body
	// itself is never stored.
	Attachment string    `json:"attachment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreatePostRequest struct {
	Tag        string `json:"tag"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Attachment string `json:"attachment"`
}

type UpdatePostRequest struct {
	Tag        string `json:"tag"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Attachment string `json:"attachment"`
}

type PostListResponse struct {
	Posts []*Post `json:"posts"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
