package task

import (
	"backend/internal/app/comment"

	"gorm.io/gorm"
)

type Repository interface {
	Create(t *Task) error
	GetByID(id uint64) (*Task, error)
	List() ([]*Task, error)
	ListByProject(projectID uint64) ([]*Task, error)
	UpdateFields(id uint64, fields map[string]interface{}) error
	UpdateStatusCAS(id uint64, status string, version uint64) (int64, error)
	DeleteCascade(id uint64) error
	CountActiveByAssignee(name string) (int64, error)
	CountOpenTodosByAssignee(name string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(t *Task) error {
	return r.db.Create(t).Error
}

func (r *repository) GetByID(id uint64) (*Task, error) {
	var t Task
	err := r.db.First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) List() ([]*Task, error) {
	var tasks []*Task
	err := r.db.
		Order("due_date ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *repository) ListByProject(projectID uint64) ([]*Task, error) {
	var tasks []*Task
	err := r.db.
		Where("project_id = ?", projectID).
		Order("start_date ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *repository) UpdateFields(id uint64, fields map[string]interface{}) error {
	return r.db.Model(&Task{}).Where("id = ?", id).Updates(fields).Error
}

// UpdateStatusCAS is the single authoritative status write: it succeeds only
// when the caller still holds the current row version.
func (r *repository) UpdateStatusCAS(id uint64, status string, version uint64) (int64, error) {
	res := r.db.Model(&Task{}).
		Where("id = ? AND version = ?", id, version).
		Updates(map[string]interface{}{
			"status":  status,
			"version": gorm.Expr("version + 1"),
		})
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteCascade(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := comment.DeleteByParentTx(tx, comment.ParentTask, id); err != nil {
			return err
		}
		return tx.Delete(&Task{}, id).Error
	})
}

func (r *repository) CountActiveByAssignee(name string) (int64, error) {
	var count int64
	err := r.db.Model(&Task{}).
		Where("assignee = ? AND status = ?", name, StatusInProgress).
		Count(&count).Error
	return count, err
}

func (r *repository) CountOpenTodosByAssignee(name string) (int64, error) {
	var count int64
	err := r.db.Model(&Task{}).
		Where("assignee = ? AND project_id IS NOT NULL AND status <> ?", name, StatusDone).
		Count(&count).Error
	return count, err
}
