package dummymail

import (
	"sync"

	"github.com/edustack/studyhub/core"
)

// Service records outgoing mail instead of sending it, for tests.
type Service struct {
	mu   sync.Mutex
	sent []core.EmailMessage
}

var _ core.EmailService = (*Service)(nil)

func NewService() *Service {
	return &Service{sent: make([]core.EmailMessage, 0)}
}

func (svc *Service) SendMessages(messages ...*core.EmailMessage) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	for _, msg := range messages {
		if msg.HasRecipients() && msg.HasContent() {
			svc.sent = append(svc.sent, *msg)
		}
	}
}

// SentMessages returns a copy of everything sent so far.
func (svc *Service) SentMessages() []core.EmailMessage {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	out := make([]core.EmailMessage, len(svc.sent))
	copy(out, svc.sent)
	return out
}
