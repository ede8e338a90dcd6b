package entities

import "strings"

type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
)

type MessageStatus string

const (
	MessageDraft  MessageStatus = "Brouillon"
	MessageSent   MessageStatus = "Envoyé"
	MessageFailed MessageStatus = "Erreur"
)

type Message struct {
	Model
	Type      Channel       `json:"type" binding:"required,oneof=email whatsapp"`
	To        string        `json:"to" binding:"required"`
	Subject   string        `json:"subject,omitempty"`
	Content   string        `json:"content" binding:"required"`
	Status    MessageStatus `json:"status"`
	SentAt    string        `json:"sent_at,omitempty"`
	CreatedAt string        `json:"created_at"`
	Error     string        `json:"error,omitempty"`
}

// MessageTemplate is a reusable body with {{placeholder}} fields.
type MessageTemplate struct {
	ID      int     `json:"id"`
	Channel Channel `json:"channel"`
	Name    string  `json:"name"`
	Subject string  `json:"subject,omitempty"`
	Content string  `json:"content"`
}

// Render substitutes {{key}} placeholders; unknown placeholders are left as-is.
func (t MessageTemplate) Render(values map[string]string) (subject, content string) {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	r := strings.NewReplacer(pairs...)
	return r.Replace(t.Subject), r.Replace(t.Content)
}
