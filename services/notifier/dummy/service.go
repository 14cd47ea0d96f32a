package dummynotify

import (
	"sync"

	"github.com/edustack/studyhub/core"
)

// Service records notifications instead of displaying them, for tests.
type Service struct {
	mu   sync.Mutex
	sent []core.Notification
}

var _ core.Notifier = (*Service)(nil)

func NewService() *Service {
	return &Service{sent: make([]core.Notification, 0)}
}

func (svc *Service) Notify(kind core.NotifyKind, title, description string) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.sent = append(svc.sent, core.Notification{Kind: kind, Title: title, Description: description})
}

// Sent returns a copy of everything notified so far, in FIFO order.
func (svc *Service) Sent() []core.Notification {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	out := make([]core.Notification, len(svc.sent))
	copy(out, svc.sent)
	return out
}

// Last returns the most recent notification, if any.
func (svc *Service) Last() (core.Notification, bool) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.sent) == 0 {
		return core.Notification{}, false
	}
	return svc.sent[len(svc.sent)-1], true
}

func (svc *Service) Reset() {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.sent = svc.sent[:0]
}
