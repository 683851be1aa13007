package db

import (
	"backend/internal/app/activity"
	"backend/internal/app/archive"
	"backend/internal/app/comment"
	"backend/internal/app/member"
	"backend/internal/app/post"
	"backend/internal/app/project"
	"backend/internal/app/quicklink"
	"backend/internal/app/schedule"
	"backend/internal/app/task"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&member.Member{},
		&member.Session{},
		&project.Project{},
		&task.Task{},
		&comment.Comment{},
		&post.Post{},
		&archive.Archive{},
		&schedule.Schedule{},
		&schedule.Holiday{},
		&activity.Activity{},
		&quicklink.QuickLink{},
	)
	if err != nil {
		return err
	}

	logger.Info("Database migrations completed")
	return nil
}
