package schedule

import "time"

const (
	TypeMeeting      = "meeting"
	TypeOffSite      = "off_site"
	TypeBusinessTrip = "business_trip"
	TypeAnnualLeave  = "annual_leave"
	TypeAMHalfDay    = "am_half_day"
	TypePMHalfDay    = "pm_half_day"
	TypeHolidayWork  = "holiday_work"
)

// TargetEveryone is the reserved target meaning "applies to all members",
// distinct from an explicit comma-joined list of names.
const TargetEveryone = "everyone"

// IsPersonalType reports whether an event belongs to one person (leave,
// absence, off-site work). Meetings and any custom type are shared.
func IsPersonalType(t string) bool {
	switch t {
	case TypeOffSite, TypeBusinessTrip, TypeAnnualLeave,
		TypeAMHalfDay, TypePMHalfDay, TypeHolidayWork:
		return true
	}
	return false
}

type Schedule struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	Type      string    `json:"type" gorm:"not null"`
	SubType   string    `json:"sub_type"`
	Content   string    `json:"content"`
	Date      string    `json:"date" gorm:"size:10;not null;index"`
	Time      string    `json:"time" gorm:"size:5"`
	Target    string    `json:"target" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

type Holiday struct {
	ID   uint64 `json:"id" gorm:"primaryKey"`
	Date string `json:"date" gorm:"size:10;unique;not null"`
	Name string `json:"name" gorm:"not null"`
}

type CreateScheduleRequest struct {
	Type    string   `json:"type" binding:"required"`
	SubType string   `json:"sub_type"`
	Content string   `json:"content"`
	Date    string   `json:"date" binding:"required"`
	Time    string   `json:"time"`
	Targets []string `json:"targets"`
}

type MonthViewResponse struct {
	Entries  []Entry    `json:"entries"`
	Holidays []*Holiday `json:"holidays"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
