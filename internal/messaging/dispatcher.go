package messaging

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/smartwork/dashboard/internal/entities"
)

var (
	ErrUnsupportedChannel = errors.New("unsupported message channel")
	ErrInvalidRecipient   = errors.New("invalid recipient")
)

// Sender delivers one message over its channel.
type Sender interface {
	Deliver(ctx context.Context, msg entities.Message) error
}

// Dispatcher routes WhatsApp messages to the Cloud API when a client is
// configured. Email and unconfigured WhatsApp delivery are recorded in the
// log only.
type Dispatcher struct {
	whatsapp Client
	logger   *zap.Logger
}

// NewDispatcher creates a dispatcher; whatsapp may be nil.
func NewDispatcher(whatsapp Client, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{whatsapp: whatsapp, logger: logger}
}

func (d *Dispatcher) Deliver(ctx context.Context, msg entities.Message) error {
	switch msg.Type {
	case entities.ChannelWhatsApp:
		return d.deliverWhatsApp(ctx, msg)
	case entities.ChannelEmail:
		d.logger.Info("email delivered locally",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject))
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedChannel, msg.Type)
}

func (d *Dispatcher) deliverWhatsApp(ctx context.Context, msg entities.Message) error {
	to := PhoneDigits(msg.To)
	if to == "" {
		return fmt.Errorf("%w: %q", ErrInvalidRecipient, msg.To)
	}

	if d.whatsapp == nil {
		d.logger.Info("whatsapp message delivered locally", zap.String("to", to))
		return nil
	}

	resp, err := d.whatsapp.SendTextMessage(ctx, SendTextMessageRequest{To: to, Body: msg.Content})
	if err != nil {
		d.logger.Error("whatsapp delivery failed", zap.String("to", to), zap.Error(err))
		return err
	}

	fields := []zap.Field{zap.String("to", to)}
	if len(resp.Messages) > 0 {
		fields = append(fields, zap.String("message_id", resp.Messages[0].ID))
	}
	d.logger.Info("whatsapp message sent", fields...)
	return nil
}
