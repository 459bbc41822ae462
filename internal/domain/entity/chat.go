package entity

import "time"

// Message is a single entry in a chat thread, ordered within Chat.Messages.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat represents one summarized article or chat thread in a user's history.
// The ID is unique within a single user's history collection; Title and the
// content fields are overwritten in place on repeated saves with the same ID.
// The JSON tags define the on-disk record format of the history store.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary,omitempty"`
	Messages  []Message `json:"messages,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
