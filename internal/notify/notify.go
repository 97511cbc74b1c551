package notify

import "fmt"

// Kind of a notification.
type Kind string

const (
	Success Kind = "success"
	Info    Kind = "info"
	Warning Kind = "warning"
	Failure Kind = "error"
)

// Notifier is the side-effect sink for user-facing messages.
type Notifier interface {
	Notify(kind Kind, message string)
}

// Console prints notifications to stdout.
type Console struct{}

func (Console) Notify(kind Kind, message string) {
	switch kind {
	case Success:
		fmt.Printf("✅ %s\n", message)
	case Warning:
		fmt.Printf("⚠️  %s\n", message)
	case Failure:
		fmt.Printf("❌ %s\n", message)
	default:
		fmt.Printf("💡 %s\n", message)
	}
}

// Recorder captures notifications for tests.
type Recorder struct {
	Kinds    []Kind
	Messages []string
}

func (r *Recorder) Notify(kind Kind, message string) {
	r.Kinds = append(r.Kinds, kind)
	r.Messages = append(r.Messages, message)
}
