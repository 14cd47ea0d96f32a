package chat

import (
	"errors"
	"time"

	"github.com/edustack/studyhub/core"
)

var (
	// errors
	ErrNotFound     = errors.New("message not found")
	ErrEmptyMessage = errors.New("message text is required")
)

type (
	Repository interface {
		// AppendMessage assigns a collection-unique id and prepends the
		// record, like every other store: the raw transcript is newest-first.
		AppendMessage(msg Message) (Message, error)
		// TranscriptMessages returns the raw newest-first transcript.
		TranscriptMessages() ([]Message, error)
		// ResetTranscript drops everything and re-seeds the greeting.
		ResetTranscript(greeting Message) error
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

// Send records the user's message, produces the assistant's deterministic
// reply and records it too. The reply message is returned.
func (svc *Service) Send(text string) (Message, error) {
	core.SimulateMutationDelay()

	if core.CleanString(text) == "" {
		svc.notifier.Notify(core.NotifyError, "Empty message", "Please type a message")
		return Message{}, core.NewValidationError(ErrEmptyMessage, core.FieldError{Field: "text", Error: ErrEmptyMessage.Error()})
	}

	userMsg := Message{Text: text, Sender: SenderUser, SentAt: time.Now().UTC()}
	if _, err := svc.repo.AppendMessage(userMsg); err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to send message")
		return Message{}, err
	}

	reply := Message{Text: Respond(text), Sender: SenderAssistant, SentAt: time.Now().UTC()}
	reply, err := svc.repo.AppendMessage(reply)
	if err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to send message")
		return Message{}, err
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Assistant replied")
	return reply, nil
}

// Transcript returns the conversation in chronological (oldest-first) order,
// the way a chat window reads it.
func (svc *Service) Transcript() ([]Message, error) {
	core.SimulateQueryDelay()

	msgs, err := svc.repo.TranscriptMessages()
	if err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to load conversation")
		return nil, err
	}
	// raw transcript is newest-first; flip for display
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// Clear resets the conversation to the assistant's greeting.
func (svc *Service) Clear() error {
	core.SimulateMutationDelay()

	if err := svc.repo.ResetTranscript(Greeting()); err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to clear conversation")
		return err
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Conversation cleared")
	return nil
}
