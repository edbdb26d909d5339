// Package mail delivers the rendered report over an authenticated SMTP
// session.
package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// sendTimeout bounds the whole SMTP session; there is no retry.
const sendTimeout = 30 * time.Second

// plainFallback is the body shown by clients that cannot render HTML.
const plainFallback = "This report requires an HTML capable email client."

// Config holds the SMTP settings for one run.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Sender    string
	Recipient string
	UseTLS    bool
}

// DeliveryError wraps any SMTP protocol failure during send.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("send email: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Send composes a plain+HTML message and delivers it to the single
// configured recipient. The session is opened, used, and closed within
// this one call on every exit path. One attempt, no queuing.
func Send(ctx context.Context, cfg Config, subject, htmlBody string) error {
	tlsPolicy := gomail.NoTLS
	if cfg.UseTLS {
		tlsPolicy = gomail.TLSMandatory
	}

	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(tlsPolicy),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTimeout(sendTimeout),
	)
	if err != nil {
		return &DeliveryError{Err: err}
	}

	msg := gomail.NewMsg()
	if err := msg.From(cfg.Sender); err != nil {
		return &DeliveryError{Err: err}
	}
	if err := msg.To(cfg.Recipient); err != nil {
		return &DeliveryError{Err: err}
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, plainFallback)
	msg.AddAlternativeString(gomail.TypeTextHTML, htmlBody)

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return &DeliveryError{Err: err}
	}
	return nil
}
