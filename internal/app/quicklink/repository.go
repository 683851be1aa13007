package quicklink

import "gorm.io/gorm"

type Repository interface {
	Create(l *QuickLink) error
	List() ([]*QuickLink, error)
	Delete(id uint64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(l *QuickLink) error {
	return r.db.Create(l).Error
}

func (r *repository) List() ([]*QuickLink, error) {
	var links []*QuickLink
	err := r.db.Order("id ASC").Find(&links).Error
	return links, err
}

func (r *repository) Delete(id uint64) error {
	return r.db.Delete(&QuickLink{}, id).Error
}
