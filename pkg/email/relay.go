package email

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

// ErrRejected marks a send the provider answered and refused.
var ErrRejected = errors.New("email rejected by provider")

type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Relay hands a rendered message to an outbound mail provider.
type Relay interface {
	Deliver(ctx context.Context, msg Message) (string, error)
}

type ResendRelay struct {
	apiKey string

	once   sync.Once
	client *resend.Client
}

func NewResendRelay(apiKey string) *ResendRelay {
	return &ResendRelay{apiKey: apiKey}
}

func (r *ResendRelay) Deliver(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.once.Do(func() {
		r.client = resend.NewClient(r.apiKey)
	})

	resp, err := r.client.Emails.Send(&resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return "", classify(err)
	}
	return resp.Id, nil
}

// The resend client prefixes API error payloads with "[ERROR]"; anything else
// is a transport or decoding failure.
func classify(err error) error {
	if strings.HasPrefix(err.Error(), "[ERROR]") {
		return fmt.Errorf("%w: %v", ErrRejected, err)
	}
	return err
}

// LogRelay only logs messages. Used when no provider key is configured.
type LogRelay struct {
	logger *zap.Logger
}

func NewLogRelay(logger *zap.Logger) *LogRelay {
	return &LogRelay{logger: logger}
}

func (r *LogRelay) Deliver(_ context.Context, msg Message) (string, error) {
	r.logger.Info("email relay disabled, message dropped",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return "", nil
}
