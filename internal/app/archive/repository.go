package archive

import (
	"backend/internal/app/comment"

	"gorm.io/gorm"
)

type Repository interface {
	Create(a *Archive) error
	GetByID(id uint64) (*Archive, error)
	List(category, search string) ([]*Archive, error)
	UpdateFields(id uint64, fields map[string]interface{}) error
	DeleteCascade(id uint64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(a *Archive) error {
	return r.db.Create(a).Error
}

func (r *repository) GetByID(id uint64) (*Archive, error) {
	var a Archive
	err := r.db.First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) List(category, search string) ([]*Archive, error) {
	q := r.db.Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}
	var archives []*Archive
	err := q.Find(&archives).Error
	return archives, err
}

func (r *repository) UpdateFields(id uint64, fields map[string]interface{}) error {
	return r.db.Model(&Archive{}).Where("id = ?", id).Updates(fields).Error
}

func (r *repository) DeleteCascade(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := comment.DeleteByParentTx(tx, comment.ParentArchive, id); err != nil {
			return err
		}
		return tx.Delete(&Archive{}, id).Error
	})
}
