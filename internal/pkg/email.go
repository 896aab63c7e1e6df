package pkg

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends templated HTML mail through an SMTP relay.
type Mailer struct {
	cfg SMTPConfig
}

func NewMailer(cfg SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send delivers one message addressed to every recipient in to.
func (m *Mailer) Send(to []string, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(msg)
}

func SubscribeConfirmationHTML() string {
	return `<p>Hello,</p><p>You are now subscribed to disaster alerts from Relief Link.</p><p>We will notify you at this address when a new alert is broadcast in your area.</p>`
}

func BroadcastHTML(content string) string {
	return fmt.Sprintf(`<p><b>Disaster alert</b></p><p>%s</p><p>Stay safe. Follow the instructions of local authorities.</p>`, content)
}
