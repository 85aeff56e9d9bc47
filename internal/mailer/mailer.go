package mailer

import (
	"log/slog"

	"gopkg.in/gomail.v2"

	config "socialpulse/configs"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg config.SMTP) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
