// Package chat implements the AI console tool: a transcript of operator and
// assistant messages backed by a Responder.
package chat

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single transcript entry.
type Message struct {
	Role Role
	Text string
	// Failed marks an assistant entry that reports a failed request.
	Failed bool
}

// Transcript is an append-only list of messages.
type Transcript struct {
	messages []Message
}

// NewTranscript starts a transcript with the assistant greeting.
func NewTranscript(greeting string) Transcript {
	t := Transcript{}
	if greeting != "" {
		t.messages = append(t.messages, Message{Role: RoleAssistant, Text: greeting})
	}
	return t
}

// Append adds a message to the end of the transcript.
func (t *Transcript) Append(msg Message) {
	// Copy on write so earlier Console values never observe later entries.
	next := make([]Message, len(t.messages), len(t.messages)+1)
	copy(next, t.messages)
	t.messages = append(next, msg)
}

// Messages returns a copy of the transcript entries in order.
func (t Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of entries.
func (t Transcript) Len() int {
	return len(t.messages)
}

// Last returns the most recent entry.
func (t Transcript) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}
