package mail

import (
	"log"

	gomail "gopkg.in/gomail.v2"
)

// Content is one rendered email payload.
type Content struct {
	Subject string
	Text    string
	HTML    string
}

// Sender delivers notification emails. Implementations report success as a
// boolean; delivery problems never surface as errors to callers.
type Sender interface {
	Send(to string, content Content) bool
}

// SMTPSender delivers mail through the configured SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	logger *log.Logger
}

// NewSMTPSender builds a sender around the relay coordinates. Credentials
// may be empty for relays that accept unauthenticated mail.
func NewSMTPSender(host string, port int, username, password, from string, logger *log.Logger) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		logger: logger,
	}
}

// Send delivers one message as multipart text+HTML and reports whether it
// went out. Failures are logged and swallowed; there are no retries.
func (s *SMTPSender) Send(to string, content Content) bool {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", content.Subject)
	m.SetBody("text/plain", content.Text)
	m.AddAlternative("text/html", content.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		if s.logger != nil {
			s.logger.Printf("email send to %s failed: %v", to, err)
		}
		return false
	}
	return true
}
