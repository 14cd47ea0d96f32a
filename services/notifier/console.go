package notifysvc

import (
	"log"
	"os"

	"github.com/edustack/studyhub/core"
)

type consoleNotifier struct {
	std *log.Logger
}

var _ core.Notifier = (*consoleNotifier)(nil)

// NewConsoleNotifier prints notifications to stdout in FIFO order. It is the
// stand-in for the UI toast surface in local runs.
func NewConsoleNotifier() core.Notifier {
	return &consoleNotifier{std: log.New(os.Stdout, "NOTIFY : ", log.LstdFlags)}
}

func (n consoleNotifier) Notify(kind core.NotifyKind, title, description string) {
	n.std.Printf("[%s] %s: %s", kind, title, description)
}
