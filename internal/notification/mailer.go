package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/wb-go/wbf/logger"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPMailer delivers over plain SMTP. With an empty host it becomes a no-op,
// the same way the telegram channel disables itself without a bot token.
type SMTPMailer struct {
	addr   string
	from   string
	auth   smtp.Auth
	logger logger.Logger
}

func NewSMTPMailer(host string, port int, username, password, from string, log logger.Logger) *SMTPMailer {
	if host == "" {
		log.Warn("smtp host is empty, email notifications disabled")
		return &SMTPMailer{logger: log}
	}

	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &SMTPMailer{
		addr:   fmt.Sprintf("%s:%d", host, port),
		from:   from,
		auth:   auth,
		logger: log,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.addr == "" {
		m.logger.Debug("email skipped (mailer disabled)", logger.String("to", to))
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}
