package activity

import "gorm.io/gorm"

type Repository interface {
	Create(a *Activity) error
	Recent(limit int) ([]*Activity, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(a *Activity) error {
	return r.db.Create(a).Error
}

func (r *repository) Recent(limit int) ([]*Activity, error) {
	var activities []*Activity
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
