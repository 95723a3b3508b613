package smtp

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"strings"

	"github.com/warriorcenter/cms-api/internal/config"
	"github.com/warriorcenter/cms-api/internal/core/ports"
)

// Sender delivers mail over SMTP with implicit TLS (port 465).
type Sender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func New(cfg config.SMTP, from string) ports.MailSender {
	return &Sender{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.User,
		password: cfg.Password,
		from:     from,
	}
}

func (s *Sender) Send(ctx context.Context, msg ports.MailMessage) error {
	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(s.host, s.port))
	if err != nil {
		return fmt.Errorf("failed to dial smtp host: %w", err)
	}

	tlsConn := tls.Client(conn, &tls.Config{ServerName: s.host})
	client, err := smtp.NewClient(tlsConn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create smtp client: %w", err)
	}
	defer client.Close()

	if err := client.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
		return fmt.Errorf("smtp auth failed: %w", err)
	}
	if err := client.Mail(s.from); err != nil {
		return fmt.Errorf("smtp MAIL failed: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("smtp RCPT failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA failed: %w", err)
	}
	if _, err := w.Write([]byte(compose(s.from, msg))); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	return client.Quit()
}

// compose builds a multipart/alternative message with plain-text and HTML
// parts, matching what the previous notification system sent.
func compose(from string, msg ports.MailMessage) string {
	var b strings.Builder
	mw := multipart.NewWriter(&b)

	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: multipart/alternative; boundary=%q\r\n\r\n",
		from, msg.To, msg.Subject, mw.Boundary())

	text, _ := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/plain; charset=utf-8"}})
	fmt.Fprintf(text, "%s\r\n", msg.Text)

	html, _ := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/html; charset=utf-8"}})
	fmt.Fprintf(html, "%s\r\n", msg.HTML)

	mw.Close()

	return headers + b.String()
}
