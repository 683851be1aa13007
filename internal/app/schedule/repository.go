package schedule

import "gorm.io/gorm"

type Repository interface {
	Create(s *Schedule) error
	List() ([]*Schedule, error)
	ListByMonth(month string) ([]*Schedule, error)
	Delete(id uint64) error
	ListHolidays() ([]*Holiday, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(s *Schedule) error {
	return r.db.Create(s).Error
}

func (r *repository) List() ([]*Schedule, error) {
	var schedules []*Schedule
	err := r.db.Order("date ASC, time ASC").Find(&schedules).Error
	return schedules, err
}

func (r *repository) ListByMonth(month string) ([]*Schedule, error) {
	var schedules []*Schedule
	err := r.db.
		Where("date LIKE ?", month+"%").
		Order("date ASC, time ASC").
		Find(&schedules).Error
	return schedules, err
}

func (r *repository) Delete(id uint64) error {
	return r.db.Delete(&Schedule{}, id).Error
}

func (r *repository) ListHolidays() ([]*Holiday, error) {
	var holidays []*Holiday
	err := r.db.Order("date ASC").Find(&holidays).Error
	return holidays, err
}
