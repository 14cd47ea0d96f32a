package mentoring

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/edustack/studyhub/core"
	"github.com/edustack/studyhub/core/session"
)

var (
	// errors
	ErrMentorNotFound  = errors.New("mentor not found")
	ErrSessionNotFound = errors.New("session not found")
)

type (
	Repository interface {
		CreateMentor(m Mentor) (Mentor, error)
		QueryAllMentors() ([]Mentor, error)
		// FilterMentors matches Specialization case-insensitively as a substring.
		FilterMentors(filter MentorFilter) ([]Mentor, error)
		GetMentorByID(id string) (Mentor, error)
		// DeleteMentor is NOT idempotent: deleting an absent id is ErrMentorNotFound.
		// Existing sessions keep their mentor name snapshot.
		DeleteMentor(id string) error

		// CreateSession assigns a collection-unique id and prepends the
		// record: default listing order is newest-first.
		CreateSession(s MentorSession) (MentorSession, error)
		QueryAllSessions() ([]MentorSession, error)
		FilterSessions(filter SessionFilter) ([]MentorSession, error)
		GetSessionByID(id string) (MentorSession, error)
		SetSessionStatus(id, status string) (MentorSession, error)
		// DeleteSession is NOT idempotent: deleting an absent id is ErrSessionNotFound.
		DeleteSession(id string) error
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

// Mentors returns mentors matching the filter.
func (svc *Service) Mentors(filter MentorFilter) ([]Mentor, error) {
	core.SimulateQueryDelay()

	mentors, err := svc.repo.FilterMentors(filter)
	if err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to fetch mentors")
		return nil, err
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Mentors loaded")
	return mentors, nil
}

func (svc *Service) MentorByID(id string) (Mentor, error) {
	core.SimulateQueryDelay()

	mentor, err := svc.repo.GetMentorByID(id)
	if err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to fetch mentor")
		return Mentor{}, err
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Mentor loaded")
	return mentor, nil
}

// Book schedules a mentoring session with the given mentor for the acting user.
// The mentor's name is copied onto the session by value, never referenced live.
func (svc *Service) Book(ns NewSession, actingUser session.User) (MentorSession, error) {
	core.SimulateMutationDelay()

	if actingUser.IsZero() {
		svc.notifier.Notify(core.NotifyError, "Error", "You must be logged in to book sessions")
		return MentorSession{}, core.ErrNoActingUser
	}
	if err := ns.Validate(); err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", err.Error())
		return MentorSession{}, err
	}

	mentor, err := svc.repo.GetMentorByID(ns.MentorID)
	if err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Mentor not found")
		return MentorSession{}, err
	}

	s := MentorSession{
		MentorID:      mentor.ID,
		MentorName:    mentor.Name,
		StudentID:     actingUser.ID,
		Topic:         ns.Topic,
		ScheduledTime: ns.ScheduledTime,
		Duration:      ns.Duration,
		Status:        StatusScheduled,
		MeetingLink:   "https://meet.google.com/" + uuid.New().String(),
		BookedAt:      time.Now().UTC(),
	}
	s, err = svc.repo.CreateSession(s)
	if err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to book session")
		return MentorSession{}, err
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", fmt.Sprintf("Mentoring session booked with %s", mentor.Name))
	return s, nil
}

// Sessions returns booked sessions matching the filter, newest first.
func (svc *Service) Sessions(filter SessionFilter) ([]MentorSession, error) {
	core.SimulateQueryDelay()

	sessions, err := svc.repo.FilterSessions(filter)
	if err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to fetch sessions")
		return nil, err
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Sessions loaded")
	return sessions, nil
}

// Cancel flips the session status to cancelled. Advisory: the outcome is
// reported, not returned.
func (svc *Service) Cancel(id string) {
	core.SimulateMutationDelay()

	if _, err := svc.repo.SetSessionStatus(id, StatusCancelled); err != nil {
		svc.log.Warn("mentoring: cancel not recorded", err)
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to cancel session")
		return
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Session cancelled")
}

func (svc *Service) DeleteSession(id string) error {
	core.SimulateMutationDelay()

	if err := svc.repo.DeleteSession(id); err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to delete session")
		return err
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Session deleted successfully")
	return nil
}
