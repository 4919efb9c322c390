package notify

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/oshokin/camera-sentinel/internal/logger"
)

// SMTPSender delivers messages over SMTP with STARTTLS and plain auth.
// Each Send opens its own session and releases it on every exit path.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	timeout  time.Duration
}

// errNoRecipients is returned when a message has an empty recipient list.
var errNoRecipients = errors.New("message has no recipients")

// NewSMTPSender creates a sender for the given mail server and account.
// An empty username disables authentication.
func NewSMTPSender(host string, port int, username, password string, timeout time.Duration) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		timeout:  timeout,
	}
}

// Send delivers the message in a single scoped SMTP session: dial,
// STARTTLS when offered, authenticate, submit, quit. The connection is
// closed on every path, including failures part-way through.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return errNoRecipients
	}

	address := net.JoinHostPort(s.host, strconv.Itoa(s.port))

	dialer := &net.Dialer{Timeout: s.timeout}

	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return fmt.Errorf("dial %s: %w", address, err)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		_ = conn.Close()

		return fmt.Errorf("smtp handshake: %w", err)
	}

	// Close tears the connection down even if Quit was already sent;
	// the duplicate close error is irrelevant.
	defer func() {
		_ = client.Close()
	}()

	if ok, _ := client.Extension("STARTTLS"); ok {
		//nolint:exhaustruct // Defaults are fine, only the server name matters.
		if err = client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	if s.username != "" {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err = s.submit(client, msg); err != nil {
		return err
	}

	logger.DebugKV(ctx, "Notification delivered", "recipients", msg.To)

	return client.Quit()
}

// submit runs the MAIL/RCPT/DATA sequence for the message.
func (s *SMTPSender) submit(client *smtp.Client, msg Message) error {
	if err := client.Mail(msg.From); err != nil {
		return fmt.Errorf("mail from %s: %w", msg.From, err)
	}

	for _, recipient := range msg.To {
		if err := client.Rcpt(recipient); err != nil {
			return fmt.Errorf("rcpt to %s: %w", recipient, err)
		}
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}

	if _, err = writer.Write(msg.Render()); err != nil {
		_ = writer.Close()

		return fmt.Errorf("write message: %w", err)
	}

	if err = writer.Close(); err != nil {
		return fmt.Errorf("finish message: %w", err)
	}

	return nil
}
