package mail

import (
	"io"

	"gopkg.in/gomail.v2"

	"artistic-unity/internal/config"
)

// Attachment is an in-memory file carried by a message. ContentID lets the
// HTML body reference the attachment inline via cid:.
type Attachment struct {
	Filename    string
	ContentType string
	ContentID   string
	Data        []byte
}

type Message struct {
	To          string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// Sender delivers one message. Implementations must tolerate concurrent
// calls from within a single request.
type Sender interface {
	Send(msg Message) error
}

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *SMTPSender) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	for _, att := range msg.Attachments {
		att := att
		m.Embed(att.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(att.Data)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {att.ContentType},
				"Content-ID":   {"<" + att.ContentID + ">"},
			}),
		)
	}

	return s.dialer.DialAndSend(m)
}
