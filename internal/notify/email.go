package notify

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/btcmonitor/internal/pkg/validator"
)

// ImplicitTLSPort is the SMTP submission port that speaks TLS from the first byte.
const ImplicitTLSPort = 465

// SMTPSettings configures the email channel.
type SMTPSettings struct {
	Host     string `validate:"required"`
	Port     int    `validate:"required,min=1,max=65535"`
	From     string `validate:"required,email"`
	Password string `validate:"required"`
	To       string `validate:"required,email"`

	// StartTLS upgrades a plain connection instead of dialing TLS directly.
	// Ignored on ImplicitTLSPort.
	StartTLS bool
}

// Configured reports whether any SMTP field is set.
func (s SMTPSettings) Configured() bool {
	return s.Host != "" || s.From != "" || s.To != "" || s.Password != ""
}

// Address returns host:port.
func (s SMTPSettings) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

func (s SMTPSettings) implicitTLS() bool {
	return s.Port == ImplicitTLSPort || !s.StartTLS
}

// sendFunc transmits an already formatted message.
type sendFunc func(ctx context.Context, s SMTPSettings, msg []byte) error

// Email sends notifications as plain-text mail.
type Email struct {
	settings SMTPSettings
	send     sendFunc
	now      func() time.Time
}

var _ Notifier = (*Email)(nil)

// NewEmail validates settings and returns an Email notifier.
func NewEmail(settings SMTPSettings) (*Email, error) {
	if err := validator.Validate(settings); err != nil {
		return nil, fmt.Errorf("%w: smtp: %w", ErrInvalidConfiguration, err)
	}

	return &Email{
		settings: settings,
		send:     sendMail,
		now:      time.Now,
	}, nil
}

// Deliver implements Notifier.
func (e *Email) Deliver(ctx context.Context, title, message string) error {
	msg := buildMessage(e.settings.From, e.settings.To, title, message, e.now())
	if err := e.send(ctx, e.settings, msg); err != nil {
		return fmt.Errorf("send email via %s: %w", e.settings.Address(), err)
	}
	return nil
}

// buildMessage renders an RFC 5322 message with a UTF-8 plain-text body.
func buildMessage(from, to, subject, body string, date time.Time) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&b, "Date: %s\r\n", date.Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")

	body = strings.ReplaceAll(body, "\r\n", "\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	b.WriteString("\r\n")

	return b.Bytes()
}

// smtpTimeout bounds a whole SMTP conversation when ctx has no earlier deadline.
var smtpTimeout = 30 * time.Second

// sendMail dials the server, authenticates with PLAIN and submits msg.
// Cancelling ctx closes the connection, unblocking any pending read.
func sendMail(ctx context.Context, s SMTPSettings, msg []byte) error {
	tlsConfig := &tls.Config{ServerName: s.Host, MinVersion: tls.VersionTLS12}

	dialer := &net.Dialer{Timeout: smtpTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", s.Address())
	if err != nil {
		return err
	}

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	deadline := time.Now().Add(smtpTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return err
	}

	if s.implicitTLS() {
		tlsConn := tls.Client(conn, tlsConfig)
		if err := tlsConn.HandshakeContext(ctx); err != nil {
			conn.Close()
			return err
		}
		conn = tlsConn
	}

	c, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if !s.implicitTLS() {
		if err := c.StartTLS(tlsConfig); err != nil {
			return err
		}
	}

	if err := c.Auth(smtp.PlainAuth("", s.From, s.Password, s.Host)); err != nil {
		return err
	}

	if err := c.Mail(s.From); err != nil {
		return err
	}
	if err := c.Rcpt(s.To); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return c.Quit()
}
