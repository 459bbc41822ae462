// Package summary provides the HTTP handlers for article summarization and
// per-user history management.
package summary

import (
	"time"

	"article-digest/internal/domain/entity"
)

// MessageDTO is the JSON shape of one chat message.
type MessageDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatDTO is the JSON shape of one history record.
type ChatDTO struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Summary   string       `json:"summary,omitempty"`
	Messages  []MessageDTO `json:"messages,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

func toChatDTO(c *entity.Chat) ChatDTO {
	dto := ChatDTO{
		ID:        c.ID,
		Title:     c.Title,
		Summary:   c.Summary,
		Timestamp: c.Timestamp,
	}
	for _, m := range c.Messages {
		dto.Messages = append(dto.Messages, MessageDTO{Role: m.Role, Content: m.Content})
	}
	return dto
}

func toMessages(dtos []MessageDTO) []entity.Message {
	if len(dtos) == 0 {
		return nil
	}
	msgs := make([]entity.Message, len(dtos))
	for i, m := range dtos {
		msgs[i] = entity.Message{Role: m.Role, Content: m.Content}
	}
	return msgs
}
