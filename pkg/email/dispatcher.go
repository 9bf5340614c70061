package email

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const backgroundSendTimeout = 30 * time.Second

type EmailService struct {
	relay  Relay
	from   string
	logger *zap.Logger
	wg     sync.WaitGroup
}

func NewEmailService(relay Relay, fromAddress, fromName string, logger *zap.Logger) *EmailService {
	from := fromAddress
	if fromName != "" {
		from = fromName + " <" + fromAddress + ">"
	}
	return &EmailService{
		relay:  relay,
		from:   from,
		logger: logger.Named("email"),
	}
}

// Send renders n and delivers it. In ModeBlocking the delivery error is
// returned; in ModeBestEffort the send runs in the background and Send
// returns nil once the message has rendered.
func (s *EmailService) Send(ctx context.Context, mode Mode, n Notification) error {
	html, err := render(n)
	if err != nil {
		s.logger.Error("failed to render email", zap.String("kind", string(n.Kind)), zap.Error(err))
		return err
	}
	msg := Message{From: s.from, To: n.To, Subject: n.Kind.Subject(), HTML: html}

	if mode == ModeBlocking {
		return s.deliver(ctx, n.Kind, msg)
	}

	// Detached so the request finishing does not cancel the send.
	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), backgroundSendTimeout)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		_ = s.deliver(bg, n.Kind, msg)
	}()
	return nil
}

func (s *EmailService) deliver(ctx context.Context, kind Kind, msg Message) error {
	s.logger.Info("sending email", zap.String("kind", string(kind)), zap.String("to", msg.To))

	id, err := s.relay.Deliver(ctx, msg)
	if err != nil {
		s.logger.Error("failed to send email",
			zap.String("kind", string(kind)),
			zap.String("to", msg.To),
			zap.Error(err),
		)
		return fmt.Errorf("send %s email: %w", kind, err)
	}

	s.logger.Info("email sent", zap.String("kind", string(kind)), zap.String("to", msg.To), zap.String("id", id))
	return nil
}

// Wait blocks until every background send has finished.
func (s *EmailService) Wait() {
	s.wg.Wait()
}
