package meeting

import (
	"errors"
	"time"

	"github.com/edustack/studyhub/core"
	"github.com/edustack/studyhub/core/session"
)

var (
	// errors
	ErrNotFound = errors.New("meeting not found")
	ErrFull     = errors.New("meeting is full")
)

type (
	Repository interface {
		// CreateMeeting assigns a collection-unique id and prepends the
		// record: default listing order is newest-first.
		CreateMeeting(mtg Meeting) (Meeting, error)
		QueryAllMeetings() ([]Meeting, error)
		GetMeetingByID(id string) (Meeting, error)
		// FilterMeetings applies AND operation on available Filter fields.
		FilterMeetings(filter Filter) ([]Meeting, error)
		SetMeetingStatus(id, status string) (Meeting, error)
		// AddMeetingParticipant is a no-op when the user already joined;
		// ErrFull when the meeting is at capacity.
		AddMeetingParticipant(id string, p Participant) (Meeting, error)
		RemoveMeetingParticipant(id, userID string) (Meeting, error)
		// DeleteMeeting is NOT idempotent: deleting an absent id is ErrNotFound.
		DeleteMeeting(id string) error
	}

	Service struct {
		repo     Repository
		notifier core.Notifier
		log      core.Logger
	}
)

func NewService(repo Repository, notifier core.Notifier, log core.Logger) *Service {
	return &Service{repo: repo, notifier: notifier, log: log}
}

// Create schedules a new meeting attributed to the acting user.
func (svc *Service) Create(nm NewMeeting, actingUser session.User) (Meeting, error) {
	core.SimulateMutationDelay()

	if actingUser.IsZero() {
		svc.notifier.Notify(core.NotifyError, "Error", "You must be logged in to create meetings")
		return Meeting{}, core.ErrNoActingUser
	}
	if err := nm.Validate(); err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", err.Error())
		return Meeting{}, err
	}

	mtg := Meeting{
		Title:           nm.Title,
		Description:     nm.Description,
		Type:            nm.Type,
		ScheduledBy:     attribution(actingUser),
		StartTime:       nm.StartTime.UTC(),
		EndTime:         nm.EndTime.UTC(),
		MeetingLink:     nm.MeetingLink,
		Location:        nm.Location,
		MaxParticipants: nm.MaxParticipants,
		Status:          StatusScheduled,
		CreatedAt:       time.Now().UTC(),
	}
	mtg, err := svc.repo.CreateMeeting(mtg)
	if err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to create meeting")
		return Meeting{}, err
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Meeting created successfully")
	return mtg, nil
}

// Query returns meetings matching the filter, newest first.
func (svc *Service) Query(filter Filter) ([]Meeting, error) {
	core.SimulateQueryDelay()

	mtgs, err := svc.repo.FilterMeetings(filter)
	if err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to fetch meetings")
		return nil, err
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Meetings loaded")
	return mtgs, nil
}

func (svc *Service) GetByID(id string) (Meeting, error) {
	core.SimulateQueryDelay()

	mtg, err := svc.repo.GetMeetingByID(id)
	if err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to fetch meeting")
		return Meeting{}, err
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Meeting loaded")
	return mtg, nil
}

// Join adds the acting user to the meeting's participant list. Advisory:
// the outcome is reported, not returned.
func (svc *Service) Join(id string, actingUser session.User) {
	core.SimulateMutationDelay()

	if actingUser.IsZero() {
		svc.notifier.Notify(core.NotifyError, "Error", "You must be logged in to join meetings")
		return
	}
	p := Participant{UserID: actingUser.ID, Name: attribution(actingUser), JoinedAt: time.Now().UTC()}
	if _, err := svc.repo.AddMeetingParticipant(id, p); err != nil {
		svc.log.Warn("meeting: join not recorded", err)
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to join meeting")
		return
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Joined meeting successfully")
}

// Leave removes the acting user from the meeting's participant list. Advisory.
func (svc *Service) Leave(id string, actingUser session.User) {
	core.SimulateMutationDelay()

	if actingUser.IsZero() {
		svc.notifier.Notify(core.NotifyError, "Error", "You must be logged in to leave meetings")
		return
	}
	if _, err := svc.repo.RemoveMeetingParticipant(id, actingUser.ID); err != nil {
		svc.log.Warn("meeting: leave not recorded", err)
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to leave meeting")
		return
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Left meeting successfully")
}

// Cancel flips the meeting status to CANCELLED.
func (svc *Service) Cancel(id string) (Meeting, error) {
	core.SimulateMutationDelay()

	mtg, err := svc.repo.SetMeetingStatus(id, StatusCancelled)
	if err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to cancel meeting")
		return Meeting{}, err
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Meeting cancelled")
	return mtg, nil
}

func (svc *Service) Delete(id string) error {
	core.SimulateMutationDelay()

	if err := svc.repo.DeleteMeeting(id); err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to delete meeting")
		return err
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Meeting deleted successfully")
	return nil
}

// Participants lists who joined the meeting.
func (svc *Service) Participants(id string) ([]Participant, error) {
	core.SimulateQueryDelay()

	mtg, err := svc.repo.GetMeetingByID(id)
	if err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to fetch participants")
		return nil, err
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Participants loaded")
	return mtg.Participants, nil
}

func attribution(usr session.User) string {
	if usr.Name != "" {
		return usr.Name
	}
	return "Faculty"
}
