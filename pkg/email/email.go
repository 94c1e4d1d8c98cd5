package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"rrdesigns-backend/config"
	"rrdesigns-backend/internal/domain"

	"github.com/google/uuid"
)

const defaultTimeout = 30 * time.Second

// SMTPSender delivers messages over SMTP, one connection per message.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	secure   bool
	timeout  time.Duration
}

var _ domain.Mailer = (*SMTPSender)(nil)

// NewSMTPSender creates a sender from the SMTP settings in cfg
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	timeout := cfg.SMTPTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		secure:   cfg.SMTPSecure,
		timeout:  timeout,
	}
}

// Send performs a single delivery attempt. The whole exchange is bounded by
// the configured timeout, or the context deadline if that is sooner.
func (s *SMTPSender) Send(ctx context.Context, msg *domain.EmailMessage) error {
	if msg.FromAddress == "" || msg.ToAddress == "" {
		return errors.New("email: sender and recipient addresses are required")
	}

	raw, err := BuildMIME(msg, time.Now())
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}

	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	conn, err := s.dial(ctx, deadline)
	if err != nil {
		return fmt.Errorf("failed to connect to smtp server: %w", err)
	}
	_ = conn.SetDeadline(deadline)

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to start smtp session: %w", err)
	}
	defer client.Close()

	if !s.secure {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
				return fmt.Errorf("failed to start tls: %w", err)
			}
		}
	}

	if s.username != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			auth := smtp.PlainAuth("", s.username, s.password, s.host)
			if err := client.Auth(auth); err != nil {
				return fmt.Errorf("smtp authentication failed: %w", err)
			}
		}
	}

	if err := client.Mail(msg.FromAddress); err != nil {
		return fmt.Errorf("smtp MAIL FROM rejected: %w", err)
	}
	if err := client.Rcpt(msg.ToAddress); err != nil {
		return fmt.Errorf("smtp RCPT TO rejected: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA rejected: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		w.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp server rejected message: %w", err)
	}

	return client.Quit()
}

func (s *SMTPSender) dial(ctx context.Context, deadline time.Time) (net.Conn, error) {
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	dialer := &net.Dialer{Deadline: deadline}
	if s.secure {
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: &tls.Config{ServerName: s.host}}
		return tlsDialer.DialContext(ctx, "tcp", addr)
	}
	return dialer.DialContext(ctx, "tcp", addr)
}

// BuildMIME renders msg as a multipart/alternative message with a
// plain-text part followed by the HTML part.
func BuildMIME(msg *domain.EmailMessage, now time.Time) ([]byte, error) {
	// Checked before formatting: net/mail drops CR and LF silently.
	for _, f := range []struct{ key, value string }{
		{"From", msg.FromName + msg.FromAddress},
		{"To", msg.ToAddress},
		{"Reply-To", msg.ReplyTo},
		{"Subject", msg.Subject},
	} {
		if strings.ContainsAny(f.value, "\r\n") {
			return nil, fmt.Errorf("email: header %s contains a line break", f.key)
		}
	}

	var buf bytes.Buffer

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	type header struct{ key, value string }
	headers := []header{
		{"From", formatAddress(msg.FromName, msg.FromAddress)},
		{"To", formatAddress("", msg.ToAddress)},
	}
	if msg.ReplyTo != "" {
		headers = append(headers, header{"Reply-To", formatAddress("", msg.ReplyTo)})
	}
	headers = append(headers,
		header{"Subject", mime.QEncoding.Encode("utf-8", msg.Subject)},
		header{"Date", now.Format(time.RFC1123Z)},
		header{"Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), messageIDDomain(msg.FromAddress))},
		header{"MIME-Version", "1.0"},
		header{"Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", mw.Boundary())},
	)
	for _, h := range headers {
		fmt.Fprintf(&buf, "%s: %s\r\n", h.key, h.value)
	}
	buf.WriteString("\r\n")

	parts := []struct{ contentType, content string }{
		{"text/plain; charset=UTF-8", msg.TextBody},
		{"text/html; charset=UTF-8", msg.HTMLBody},
	}
	for _, p := range parts {
		pw, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {p.contentType},
			"Content-Transfer-Encoding": {"quoted-printable"},
		})
		if err != nil {
			return nil, err
		}
		qp := quotedprintable.NewWriter(pw)
		if _, err := qp.Write([]byte(p.content)); err != nil {
			return nil, err
		}
		if err := qp.Close(); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	buf.Write(body.Bytes())
	return buf.Bytes(), nil
}

// formatAddress writes a value without "@" as given instead of letting
// net/mail append an empty domain.
func formatAddress(name, addr string) string {
	addr = strings.TrimSpace(addr)
	if !strings.Contains(addr, "@") {
		return addr
	}
	return (&mail.Address{Name: name, Address: addr}).String()
}

func messageIDDomain(addr string) string {
	if at := strings.LastIndex(addr, "@"); at >= 0 && at < len(addr)-1 {
		return addr[at+1:]
	}
	return "localhost"
}
