package post

import (
	"backend/internal/app/comment"

	"gorm.io/gorm"
)

type Repository interface {
	Create(p *Post) error
	GetByID(id uint64) (*Post, error)
	List(tag string) ([]*Post, error)
	UpdateFields(id uint64, fields map[string]interface{}) error
	IncrementViews(id uint64) error
	DeleteCascade(id uint64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(p *Post) error {
	return r.db.Create(p).Error
}

func (r *repository) GetByID(id uint64) (*Post, error) {
	var p Post
	err := r.db.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(tag string) ([]*Post, error) {
	q := r.db.Order("created_at DESC")
	if tag != "" {
		q = q.Where("tag = ?", tag)
	}
	var posts []*Post
	err := q.Find(&posts).Error
	return posts, err
}

func (r *repository) UpdateFields(id uint64, fields map[string]interface{}) error {
	return r.db.Model(&Post{}).Where("id = ?", id).Updates(fields).Error
}

func (r *repository) IncrementViews(id uint64) error {
	return r.db.Model(&Post{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *repository) DeleteCascade(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := comment.DeleteByParentTx(tx, comment.ParentPost, id); err != nil {
			return err
		}
		return tx.Delete(&Post{}, id).Error
	})
}
