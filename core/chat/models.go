package chat

import "time"

// Message senders
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

type Message struct {
	ID     string    `json:"id"`
	Text   string    `json:"text"`
	Sender string    `json:"sender"`
	SentAt time.Time `json:"sent_at"` // UTC
}

// greetingText opens every transcript and returns after Clear.
const greetingText = "Hello! I'm your AI Study Assistant. I can help you with study topics, " +
	"answer questions about courses, and provide learning tips. What would you like to know?"

// Greeting builds the assistant's opening message.
func Greeting() Message {
	return Message{Text: greetingText, Sender: SenderAssistant, SentAt: time.Now().UTC()}
}
