package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/messaging"
	"github.com/smartwork/dashboard/internal/store"
)

// SentAtLayout is the minute-precision timestamp stored on sent messages.
const SentAtLayout = "2006-01-02 15:04"

// Compose is a message to send or keep as a draft. When TemplateID is set
// and Content is empty the template is rendered with Values.
type Compose struct {
	Type       entities.Channel  `json:"type" binding:"required,oneof=email whatsapp"`
	To         string            `json:"to"`
	Subject    string            `json:"subject"`
	Content    string            `json:"content"`
	TemplateID int               `json:"template_id"`
	Values     map[string]string `json:"values"`
	Draft      bool              `json:"draft"`
}

type MessageCounts struct {
	EmailsSent   int `json:"emails_sent"`
	WhatsAppSent int `json:"whatsapp_sent"`
	Drafts       int `json:"drafts"`
	Failed       int `json:"failed"`
}

// MessageService composes, delivers and stores messages.
type MessageService struct {
	*Records[entities.Message, *entities.Message]
	sender messaging.Sender
}

func NewMessageService(sender messaging.Sender, deps Deps) *MessageService {
	return &MessageService{
		Records: &Records[entities.Message, *entities.Message]{
			entity:     "message",
			collection: func(ws *store.Workspace) *store.Messages { return ws.Messages },
			matches: func(m entities.Message, q string) bool {
				return contains(q, m.To, m.Subject, m.Content)
			},
			describe: func(m entities.Message) string { return string(m.Type) + " message to " + m.To },
			deps:     deps.withDefaults(),
		},
		sender: sender,
	}
}

func (s *MessageService) Templates(channel entities.Channel) []entities.MessageTemplate {
	return messaging.Templates(channel)
}

// Send stores the message. Drafts are kept as Brouillon. Anything else is
// delivered: success sets Envoyé and sentAt, failure sets Erreur with the
// delivery error on the message. Delivery failures are not returned.
func (s *MessageService) Send(ctx context.Context, ws *store.Workspace, in Compose) (entities.Message, error) {
	msg := entities.Message{
		Type:      in.Type,
		To:        strings.TrimSpace(in.To),
		Subject:   in.Subject,
		Content:   in.Content,
		CreatedAt: s.deps.today(),
	}

	if in.TemplateID != 0 && msg.Content == "" {
		tpl, ok := messaging.Template(in.TemplateID)
		if !ok || tpl.Channel != in.Type {
			return entities.Message{}, fmt.Errorf("%w: %d", ErrUnknownTemplate, in.TemplateID)
		}
		subject, content := tpl.Render(in.Values)
		msg.Content = content
		if msg.Subject == "" {
			msg.Subject = subject
		}
	}
	if msg.Type != entities.ChannelEmail {
		msg.Subject = ""
	}

	if in.Draft {
		msg.Status = entities.MessageDraft
		return s.Records.Create(ws, msg), nil
	}

	if msg.To == "" || strings.TrimSpace(msg.Content) == "" {
		return entities.Message{}, ErrIncompleteMessage
	}

	err := s.sender.Deliver(ctx, msg)
	if err != nil {
		msg.Status = entities.MessageFailed
		msg.Error = err.Error()
		s.deps.Logger.Warn("message delivery failed",
			zap.String("workspace", ws.ID),
			zap.String("type", string(msg.Type)),
			zap.Error(err))
	} else {
		msg.Status = entities.MessageSent
		msg.SentAt = s.deps.Now().Format(SentAtLayout)
	}

	stored := ws.Messages.Insert(msg)
	s.deps.Journal.LogSend(ws.ID, stored, err)
	return stored, nil
}

func (s *MessageService) Counts(ws *store.Workspace) MessageCounts {
	var c MessageCounts
	for _, m := range ws.Messages.List() {
		switch {
		case m.Status == entities.MessageDraft:
			c.Drafts++
		case m.Status == entities.MessageFailed:
			c.Failed++
		case m.Type == entities.ChannelEmail:
			c.EmailsSent++
		case m.Type == entities.ChannelWhatsApp:
			c.WhatsAppSent++
		}
	}
	return c
}
