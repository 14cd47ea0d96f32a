package meeting

import (
	"time"

	"github.com/edustack/studyhub/core"
)

// Meeting types
const (
	TypeLecture    = "LECTURE"
	TypeDiscussion = "DISCUSSION"
	TypeStudyGroup = "STUDY_GROUP"
	TypeWorkshop   = "WORKSHOP"
)

// Meeting statuses. Transitions are client-initiated only; nothing flips a
// meeting by the clock.
const (
	StatusScheduled = "SCHEDULED"
	StatusOngoing   = "ONGOING"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

var (
	AllTypes    = []string{TypeLecture, TypeDiscussion, TypeStudyGroup, TypeWorkshop}
	AllStatuses = []string{StatusScheduled, StatusOngoing, StatusCompleted, StatusCancelled}
)

type Meeting struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description,omitempty"`
	Type            string        `json:"meeting_type"`
	ScheduledBy     string        `json:"scheduled_by"`
	StartTime       time.Time     `json:"start_time"` // UTC
	EndTime         time.Time     `json:"end_time"`   // UTC
	MeetingLink     string        `json:"meeting_link,omitempty"`
	Location        string        `json:"location,omitempty"`
	MaxParticipants int           `json:"max_participants,omitempty"`
	Status          string        `json:"status"`
	CreatedAt       time.Time     `json:"created_at"` // UTC
	Participants    []Participant `json:"participants,omitempty"`
}

type Participant struct {
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joined_at"` // UTC
}

type NewMeeting struct {
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description"`
	Type            string    `json:"meeting_type" validate:"required,meetingtype"`
	StartTime       time.Time `json:"start_time" validate:"required"`
	EndTime         time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	MeetingLink     string    `json:"meeting_link"`
	Location        string    `json:"location"`
	MaxParticipants int       `json:"max_participants" validate:"min=0"`
}

func (nm *NewMeeting) Validate() error {
	nm.Title = core.CleanString(nm.Title)
	nm.Description = core.CleanString(nm.Description)
	nm.Type = core.CleanString(nm.Type)
	nm.MeetingLink = core.CleanString(nm.MeetingLink)
	nm.Location = core.CleanString(nm.Location)
	return core.TranslateValidatorError(core.Validate.Struct(nm))
}

// Filter applies AND on the set fields.
type Filter struct {
	UpcomingOnly bool
	Status       string
}
