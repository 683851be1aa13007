package member

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(m *Member) error
	GetByID(id uint64) (*Member, error)
	GetByLoginID(loginID string) (*Member, error)
	List() ([]*Member, error)
	Count() (int64, error)
	UpdateFields(id uint64, fields map[string]interface{}) error

	CreateSession(s *Session) error
	GetSessionByKey(key string) (*Session, error)
	DeleteSession(key string) error
	DeleteExpiredSessions() error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(m *Member) error {
	return r.db.Create(m).Error
}

func (r *repository) GetByID(id uint64) (*Member, error) {
	var m Member
	err := r.db.First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) GetByLoginID(loginID string) (*Member, error) {
	var m Member
	err := r.db.Where("login_id = ?", loginID).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns admins first, then members by join order.
func (r *repository) List() ([]*Member, error) {
	var members []*Member
	err := r.db.
		Order("CASE WHEN role = 'admin' THEN 0 ELSE 1 END, created_at ASC").
		Find(&members).Error
	return members, err
}

func (r *repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&Member{}).Count(&count).Error
	return count, err
}

func (r *repository) UpdateFields(id uint64, fields map[string]interface{}) error {
	return r.db.Model(&Member{}).Where("id = ?", id).Updates(fields).Error
}

func (r *repository) CreateSession(s *Session) error {
	return r.db.Create(s).Error
}

func (r *repository) GetSessionByKey(key string) (*Session, error) {
	var s Session
	err := r.db.Where("session_key = ?", key).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) DeleteSession(key string) error {
	return r.db.Where("session_key = ?", key).Delete(&Session{}).Error
}

func (r *repository) DeleteExpiredSessions() error {
	return r.db.Where("expires_at < ?", time.Now().UTC()).Delete(&Session{}).Error
}
