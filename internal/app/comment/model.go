package comment

import "time"

// Parent kinds form a tagged union instead of the untyped post_id the data
// originally carried, so a task and a post with the same numeric id can no
// longer collect each other's comments.
const (
	ParentTask    = "task"
	ParentPost    = "post"
	ParentArchive = "archive"
)

type Comment struct {
	ID         uint64    `json:"id" gorm:"primaryKey"`
	ParentKind string    `json:"parent_kind" gorm:"not null;index:idx_comments_parent"`
	ParentID   uint64    `json:"parent_id" gorm:"not null;index:idx_comments_parent"`
	AuthorName string    `json:"author_name" gorm:"not null"`
	Content    string    `json:"content" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func ValidParentKind(kind string) bool {
	switch kind {
	case ParentTask, ParentPost, ParentArchive:
		return true
	}
	return false
}

type CreateCommentRequest struct {
	ParentKind string `json:"parent_kind" binding:"required"`
	ParentID   uint64 `json:"parent_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
