package project

import (
	"time"

	"backend/internal/app/task"
)

type Project struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Author    string    `json:"author"`
	Period    string    `json:"period"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Todos is a view over tasks referencing this project, never owned data.
	Todos []*task.Task `json:"todos" gorm:"-"`
}

type CreateProjectRequest struct {
	Title  string `json:"title"`
	Period string `json:"period"`
}

type UpdateProjectRequest struct {
	Title  string `json:"title"`
	Period string `json:"period"`
}

type ProjectListResponse struct {
	Projects []*Project `json:"projects"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
