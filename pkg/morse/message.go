package morse

import (
	"time"

	"github.com/google/uuid"
)

// Message records one transcoded utterance.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Morse     string    `json:"morse"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage encodes text and stamps the result with a fresh id and the
// current time.
func NewMessage(text string) Message {
	return Message{
		ID:        uuid.New(),
		Text:      text,
		Morse:     Encode(text),
		Timestamp: time.Now(),
	}
}
