package member

import "time"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

const (
	StatusOnline  = "online"
	StatusAway    = "away"
	StatusOffline = "offline"
	StatusPending = "pending"
)

type Member struct {
	ID           uint64    `json:"id" gorm:"primaryKey"`
	LoginID      string    `json:"login_id" gorm:"unique;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null"`
	Position     string    `json:"position"`
	Skills       []string  `json:"skills" gorm:"serializer:json"`
	Avatar       string    `json:"avatar"`
	Role         string    `json:"role" gorm:"not null;default:'member'"`
	Status       string    `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Workload is derived from assigned work on read, never stored.
	Workload int `json:"workload" gorm:"-"`
}

func (m *Member) IsAdmin() bool {
	return m.Role == RoleAdmin
}

func (m *Member) IsPending() bool {
	return m.Status == StatusPending
}

type Session struct {
	ID         uint64    `gorm:"primaryKey"`
	SessionKey string    `gorm:"unique;not null"`
	MemberID   uint64    `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	ExpiresAt  time.Time `gorm:"not null"`
}

type SignUpRequest struct {
	LoginID  string   `json:"login_id" binding:"required,min=3,max=32"`
	Password string   `json:"password" binding:"required,min=4"`
	Name     string   `json:"name" binding:"required"`
	Position string   `json:"position"`
	Skills   []string `json:"skills"`
}

type SignInRequest struct {
	LoginID  string `json:"login_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInResponse struct {
	SessionKey string  `json:"session_key"`
	Member     *Member `json:"member"`
}

type UpdateProfileRequest struct {
	Name     string   `json:"name"`
	Position string   `json:"position"`
	Skills   []string `json:"skills"`
	Avatar   string   `json:"avatar"`
}

type MemberListResponse struct {
	Members []*Member `json:"members"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
