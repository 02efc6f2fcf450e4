// workers/mailer.go
package workers

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	gomail "github.com/wneessen/go-mail"
)

// Mailer delivers a single outbound message to a player.
type Mailer interface {
	Send(to, subject, body string) error
}

// NewMailerFromEnv returns an SMTP-backed mailer when SMTP_HOST is set and
// a log-only mailer otherwise, so the service runs without a mail relay in
// development.
func NewMailerFromEnv() Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Warn().Msg("SMTP_HOST not set, outbound mail will only be logged")
		return &LogMailer{}
	}

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "noreply@memory-game.local"
	}
	return &SMTPMailer{
		Host:     host,
		Port:     port,
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     from,
	}
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.From); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	opts := []gomail.Option{gomail.WithPort(m.Port)}
	if m.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.Username),
			gomail.WithPassword(m.Password),
		)
	}
	client, err := gomail.NewClient(m.Host, opts...)
	if err != nil {
		return err
	}
	return client.DialAndSend(msg)
}

// LogMailer writes would-be mails to the log instead of sending them.
type LogMailer struct{}

func (m *LogMailer) Send(to, subject, body string) error {
	log.Info().Str("to", to).Str("subject", subject).Str("body", body).Msg("mail (log only)")
	return nil
}
