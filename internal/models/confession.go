package models

import "time"

// Message is one turn of a posted chatbot conversation.
type Message struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// ConfessionPost is an append-only forum post: a chatbot conversation a
// user chose to share. Identifiers are backend-assigned autoincrement
// keys, not positional counts, so they stay unique even if deletion is
// ever added.
type ConfessionPost struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Caption      string    `json:"caption"`
	Conversation []Message `gorm:"serializer:json;not null" json:"conversation"`
	CreatedAt    time.Time `json:"timestamp"`
}

// AnonymizedMessage is a conversation turn with the sender stripped.
type AnonymizedMessage struct {
	Text string `json:"text"`
}

// AnonymizedPost is the public forum view of a confession. Sender
// attribution never appears here.
type AnonymizedPost struct {
	ID           uint                `json:"id"`
	Caption      string              `json:"caption"`
	Conversation []AnonymizedMessage `json:"conversation"`
	Timestamp    time.Time           `json:"timestamp"`
}

// Anonymize strips sender attribution from a post for the forum view.
func (p ConfessionPost) Anonymize() AnonymizedPost {
	msgs := make([]AnonymizedMessage, len(p.Conversation))
	for i, m := range p.Conversation {
		msgs[i] = AnonymizedMessage{Text: m.Text}
	}
	return AnonymizedPost{
		ID:           p.ID,
		Caption:      p.Caption,
		Conversation: msgs,
		Timestamp:    p.CreatedAt,
	}
}
