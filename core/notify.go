package core

type NotifyKind string

const (
	NotifySuccess NotifyKind = "success"
	NotifyError   NotifyKind = "error"
)

// Notification is a short-lived, user-visible report of an operation outcome.
type Notification struct {
	Kind        NotifyKind
	Title       string
	Description string
}

// Notifier delivers Notifications to the user, in the order they were issued.
// Implementations must never fail the calling operation: delivery problems
// are logged and swallowed.
type Notifier interface {
	Notify(kind NotifyKind, title, description string)
}
