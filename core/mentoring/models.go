package mentoring

import (
	"time"

	"github.com/edustack/studyhub/core"
)

// MentorSession statuses. Transitions are client-initiated only (cancel).
const (
	StatusScheduled = "scheduled"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var AllStatuses = []string{StatusScheduled, StatusOngoing, StatusCompleted, StatusCancelled}

// Mentor is an alumni mentor profile.
type Mentor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Specialization string   `json:"specialization"`
	Bio            string   `json:"bio,omitempty"`
	Company        string   `json:"company,omitempty"`
	YearsOfExp     int      `json:"years_of_experience"`
	Rating         float64  `json:"rating"`
	StudentsHelped int      `json:"students_helped"`
	IsAvailable    bool     `json:"is_available"`
	Slots          []string `json:"slots,omitempty"`
}

// MentorSession is a booked mentoring slot. MentorName is a denormalized
// snapshot taken at booking time: deleting the mentor afterwards must not
// corrupt the session record.
type MentorSession struct {
	ID            string    `json:"id"`
	MentorID      string    `json:"mentor_id"`
	MentorName    string    `json:"mentor_name"`
	StudentID     string    `json:"student_id"`
	Topic         string    `json:"topic"`
	ScheduledTime string    `json:"scheduled_time"`
	Duration      int       `json:"duration"` // minutes
	Status        string    `json:"status"`
	MeetingLink   string    `json:"meeting_link"`
	BookedAt      time.Time `json:"booked_at"` // UTC
}

type NewSession struct {
	MentorID      string `json:"mentor_id" validate:"required"`
	Topic         string `json:"topic" validate:"required"`
	ScheduledTime string `json:"scheduled_time" validate:"required"`
	Duration      int    `json:"duration" validate:"min=0"`
}

func (ns *NewSession) Validate() error {
	ns.MentorID = core.CleanString(ns.MentorID)
	ns.Topic = core.CleanString(ns.Topic)
	ns.ScheduledTime = core.CleanString(ns.ScheduledTime)
	if ns.Duration == 0 {
		ns.Duration = 30
	}
	return core.TranslateValidatorError(core.Validate.Struct(ns))
}

// MentorFilter matches Specialization as a case-insensitive substring.
type MentorFilter struct {
	Specialization string
}

// SessionFilter applies AND on the set fields.
type SessionFilter struct {
	StudentID string
	Status    string
}
