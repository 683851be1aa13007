package project

import (
	"backend/internal/app/comment"
	"backend/internal/app/task"

	"gorm.io/gorm"
)

type Repository interface {
	Create(p *Project) error
	GetByID(id uint64) (*Project, error)
	List() ([]*Project, error)
	Update(id uint64, title, period string) error
	DeleteCascade(id uint64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(p *Project) error {
	return r.db.Create(p).Error
}

func (r *repository) GetByID(id uint64) (*Project, error) {
	var p Project
	err := r.db.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List() ([]*Project, error) {
	var projects []*Project
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *repository) Update(id uint64, title, period string) error {
	return r.db.Model(&Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "period": period}).Error
}

// DeleteCascade removes the project together with its child tasks and their
// comments in one transaction, so a mid-cascade failure cannot leave
// orphaned rows behind.
func (r *repository) DeleteCascade(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var taskIDs []uint64
		if err := tx.Model(&task.Task{}).
			Where("project_id = ?", id).
			Pluck("id", &taskIDs).Error; err != nil {
			return err
		}
		if err := comment.DeleteByParentTx(tx, comment.ParentTask, taskIDs...); err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&task.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Project{}, id).Error
	})
}
