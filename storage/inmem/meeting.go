package inmemdb

import (
	"time"

	"github.com/edustack/studyhub/core/meeting"
)

type meetingRepository struct {
	t *table[meeting.Meeting]
}

func NewMeetingRepository(db *DB) meeting.Repository {
	return &meetingRepository{t: db.meetings}
}

func (repo *meetingRepository) CreateMeeting(mtg meeting.Meeting) (meeting.Meeting, error) {
	repo.t.mutex.Lock()
	defer repo.t.mutex.Unlock()

	mtg.ID = repo.t.nextID()
	repo.t.prepend(mtg)
	return mtg, nil
}

func (repo *meetingRepository) QueryAllMeetings() ([]meeting.Meeting, error) {
	repo.t.mutex.RLock()
	defer repo.t.mutex.RUnlock()
	return repo.t.all(), nil
}

func (repo *meetingRepository) GetMeetingByID(id string) (meeting.Meeting, error) {
	repo.t.mutex.RLock()
	defer repo.t.mutex.RUnlock()

	for _, mtg := range repo.t.rows {
		if mtg.ID == id {
			return mtg, nil
		}
	}
	return meeting.Meeting{}, meeting.ErrNotFound
}

func (repo *meetingRepository) FilterMeetings(filter meeting.Filter) ([]meeting.Meeting, error) {
	repo.t.mutex.RLock()
	defer repo.t.mutex.RUnlock()

	now := time.Now().UTC()
	mtgs := make([]meeting.Meeting, 0, len(repo.t.rows))
	for _, mtg := range repo.t.rows {
		if filter.UpcomingOnly && !mtg.StartTime.After(now) {
			continue
		}
		if filter.Status != "" && mtg.Status != filter.Status {
			continue
		}
		mtgs = append(mtgs, mtg)
	}
	return mtgs, nil
}

func (repo *meetingRepository) SetMeetingStatus(id, status string) (meeting.Meeting, error) {
	repo.t.mutex.Lock()
	defer repo.t.mutex.Unlock()

	for i, mtg := range repo.t.rows {
		if mtg.ID == id {
			mtg.Status = status
			repo.t.rows[i] = mtg
			return mtg, nil
		}
	}
	return meeting.Meeting{}, meeting.ErrNotFound
}

func (repo *meetingRepository) AddMeetingParticipant(id string, p meeting.Participant) (meeting.Meeting, error) {
	repo.t.mutex.Lock()
	defer repo.t.mutex.Unlock()

	for i, mtg := range repo.t.rows {
		if mtg.ID != id {
			continue
		}
		for _, existing := range mtg.Participants {
			if existing.UserID == p.UserID { // already joined
				return mtg, nil
			}
		}
		if mtg.MaxParticipants > 0 && len(mtg.Participants) >= mtg.MaxParticipants {
			return meeting.Meeting{}, meeting.ErrFull
		}
		mtg.Participants = append(mtg.Participants, p)
		repo.t.rows[i] = mtg
		return mtg, nil
	}
	return meeting.Meeting{}, meeting.ErrNotFound
}

func (repo *meetingRepository) RemoveMeetingParticipant(id, userID string) (meeting.Meeting, error) {
	repo.t.mutex.Lock()
	defer repo.t.mutex.Unlock()

	for i, mtg := range repo.t.rows {
		if mtg.ID != id {
			continue
		}
		for j, p := range mtg.Participants {
			if p.UserID == userID {
				mtg.Participants = append(mtg.Participants[:j], mtg.Participants[j+1:]...)
				break
			}
		}
		repo.t.rows[i] = mtg
		return mtg, nil
	}
	return meeting.Meeting{}, meeting.ErrNotFound
}

func (repo *meetingRepository) DeleteMeeting(id string) error {
	repo.t.mutex.Lock()
	defer repo.t.mutex.Unlock()

	for i, mtg := range repo.t.rows {
		if mtg.ID == id {
			repo.t.rows = append(repo.t.rows[:i], repo.t.rows[i+1:]...)
			return nil
		}
	}
	// strict semantics: a second delete of the same id is an error
	return meeting.ErrNotFound
}
