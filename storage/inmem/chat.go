package inmemdb

import (
	"github.com/edustack/studyhub/core/chat"
)

type chatRepository struct {
	t *table[chat.Message]
}

func NewChatRepository(db *DB) chat.Repository {
	return &chatRepository{t: db.messages}
}

func (repo *chatRepository) AppendMessage(msg chat.Message) (chat.Message, error) {
	repo.t.mutex.Lock()
	defer repo.t.mutex.Unlock()

	msg.ID = repo.t.nextID()
	repo.t.prepend(msg)
	return msg, nil
}

func (repo *chatRepository) TranscriptMessages() ([]chat.Message, error) {
	repo.t.mutex.RLock()
	defer repo.t.mutex.RUnlock()
	return repo.t.all(), nil
}

func (repo *chatRepository) ResetTranscript(greeting chat.Message) error {
	repo.t.mutex.Lock()
	defer repo.t.mutex.Unlock()

	greeting.ID = repo.t.nextID()
	repo.t.rows = []chat.Message{greeting}
	return nil
}
