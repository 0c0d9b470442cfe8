// Package mailer relays notification emails through an external SMTP
// service.
//
// Unlike most mail integrations, the sender credentials arrive with each
// request (they belong to the caller, not the server), so the relay holds
// only the SMTP endpoint. One synchronous attempt per send: no queue, no
// retry. Callers bound the attempt with a context deadline.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dalemusser/foodhub/internal/app/system/htmlsanitize"
)

// Credentials identify the sending account at the SMTP service.
type Credentials struct {
	Address  string // sender email address, also the SMTP username
	Password string
}

// Message is a single outbound email.
type Message struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string // sanitized before relay
}

// Relay sends messages through a fixed SMTP endpoint with caller-supplied
// credentials.
type Relay struct {
	host string
	port int
	log  *zap.Logger
}

// New constructs a Relay for the given SMTP host and port.
func New(host string, port int, logger *zap.Logger) *Relay {
	return &Relay{
		host: host,
		port: port,
		log:  logger,
	}
}

// Send relays msg in a single attempt, authenticating as creds. The
// context deadline bounds the whole exchange, dial included. The HTML body
// is sanitized before it leaves the server; the caller's markup is
// user-supplied and untrusted.
func (r *Relay) Send(ctx context.Context, creds Credentials, msg Message) error {
	addr := net.JoinHostPort(r.host, fmt.Sprintf("%d", r.port))

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial smtp %s: %w", addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, r.host)
	if err != nil {
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: r.host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	auth := smtp.PlainAuth("", creds.Address, creds.Password, r.host)
	if err := c.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := c.Mail(creds.Address); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := c.Rcpt(msg.To); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(r.Build(creds.Address, msg)); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish message: %w", err)
	}

	if err := c.Quit(); err != nil {
		r.log.Warn("smtp quit failed", zap.Error(err))
	}
	return nil
}

// Build assembles the raw RFC 5322 message: multipart/alternative with the
// plain-text part first and the sanitized HTML part last.
func (r *Relay) Build(from string, msg Message) []byte {
	const boundary = "foodhub-alt-boundary"

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(msg.TextBody)
	b.WriteString("\r\n")

	if msg.HTMLBody != "" {
		fmt.Fprintf(&b, "--%s\r\n", boundary)
		b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
		b.WriteString(htmlsanitize.Sanitize(msg.HTMLBody))
		b.WriteString("\r\n")
	}

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}
