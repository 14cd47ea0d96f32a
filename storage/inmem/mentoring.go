package inmemdb

import (
	"strings"

	"github.com/edustack/studyhub/core/mentoring"
)

type mentoringRepository struct {
	mentors  *table[mentoring.Mentor]
	sessions *table[mentoring.MentorSession]
}

func NewMentoringRepository(db *DB) mentoring.Repository {
	return &mentoringRepository{mentors: db.mentors, sessions: db.sessions}
}

func (repo *mentoringRepository) CreateMentor(m mentoring.Mentor) (mentoring.Mentor, error) {
	repo.mentors.mutex.Lock()
	defer repo.mentors.mutex.Unlock()

	if m.ID == "" {
		m.ID = repo.mentors.nextID()
	}
	repo.mentors.prepend(m)
	return m, nil
}

func (repo *mentoringRepository) QueryAllMentors() ([]mentoring.Mentor, error) {
	repo.mentors.mutex.RLock()
	defer repo.mentors.mutex.RUnlock()
	return repo.mentors.all(), nil
}

func (repo *mentoringRepository) FilterMentors(filter mentoring.MentorFilter) ([]mentoring.Mentor, error) {
	repo.mentors.mutex.RLock()
	defer repo.mentors.mutex.RUnlock()

	spec := strings.ToLower(filter.Specialization)
	mentors := make([]mentoring.Mentor, 0, len(repo.mentors.rows))
	for _, m := range repo.mentors.rows {
		if spec != "" && !strings.Contains(strings.ToLower(m.Specialization), spec) {
			continue
		}
		mentors = append(mentors, m)
	}
	return mentors, nil
}

func (repo *mentoringRepository) GetMentorByID(id string) (mentoring.Mentor, error) {
	repo.mentors.mutex.RLock()
	defer repo.mentors.mutex.RUnlock()

	for _, m := range repo.mentors.rows {
		if m.ID == id {
			return m, nil
		}
	}
	return mentoring.Mentor{}, mentoring.ErrMentorNotFound
}

func (repo *mentoringRepository) DeleteMentor(id string) error {
	repo.mentors.mutex.Lock()
	defer repo.mentors.mutex.Unlock()

	for i, m := range repo.mentors.rows {
		if m.ID == id {
			repo.mentors.rows = append(repo.mentors.rows[:i], repo.mentors.rows[i+1:]...)
			return nil
		}
	}
	return mentoring.ErrMentorNotFound
}

func (repo *mentoringRepository) CreateSession(s mentoring.MentorSession) (mentoring.MentorSession, error) {
	repo.sessions.mutex.Lock()
	defer repo.sessions.mutex.Unlock()

	s.ID = repo.sessions.nextID()
	repo.sessions.prepend(s)
	return s, nil
}

func (repo *mentoringRepository) QueryAllSessions() ([]mentoring.MentorSession, error) {
	repo.sessions.mutex.RLock()
	defer repo.sessions.mutex.RUnlock()
	return repo.sessions.all(), nil
}

func (repo *mentoringRepository) FilterSessions(filter mentoring.SessionFilter) ([]mentoring.MentorSession, error) {
	repo.sessions.mutex.RLock()
	defer repo.sessions.mutex.RUnlock()

	sessions := make([]mentoring.MentorSession, 0, len(repo.sessions.rows))
	for _, s := range repo.sessions.rows {
		if filter.StudentID != "" && s.StudentID != filter.StudentID {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func (repo *mentoringRepository) GetSessionByID(id string) (mentoring.MentorSession, error) {
	repo.sessions.mutex.RLock()
	defer repo.sessions.mutex.RUnlock()

	for _, s := range repo.sessions.rows {
		if s.ID == id {
			return s, nil
		}
	}
	return mentoring.MentorSession{}, mentoring.ErrSessionNotFound
}

func (repo *mentoringRepository) SetSessionStatus(id, status string) (mentoring.MentorSession, error) {
	repo.sessions.mutex.Lock()
	defer repo.sessions.mutex.Unlock()

	for i, s := range repo.sessions.rows {
		if s.ID == id {
			s.Status = status
			repo.sessions.rows[i] = s
			return s, nil
		}
	}
	return mentoring.MentorSession{}, mentoring.ErrSessionNotFound
}

func (repo *mentoringRepository) DeleteSession(id string) error {
	repo.sessions.mutex.Lock()
	defer repo.sessions.mutex.Unlock()

	for i, s := range repo.sessions.rows {
		if s.ID == id {
			repo.sessions.rows = append(repo.sessions.rows[:i], repo.sessions.rows[i+1:]...)
			return nil
		}
	}
	// strict semantics: a second delete of the same id is an error
	return mentoring.ErrSessionNotFound
}
