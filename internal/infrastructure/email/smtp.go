package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"dunner/internal/domain/reminder"
)

type SMTPConfig struct {
	Host             string
	Port             int
	Username         string
	Password         string
	FromAddress      string
	FromName         string
	CollectionsInbox string
}

// SMTPEmailService delivers reminder notifications to the collections inbox.
type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendReminderEmail(ctx context.Context, r *reminder.Reminder) error {
	subject := r.Title()

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>Invoice: %s</p>
			<p>%s</p>
			<p>Scheduled for: %s</p>
		</body>
		</html>
	`, r.Title(), r.InvoiceRef(), r.Message(), r.RemindAt().Format("2006-01-02 15:04"))

	plainBody := fmt.Sprintf(`
%s

Invoice: %s

%s

Scheduled for: %s
	`, r.Title(), r.InvoiceRef(), r.Message(), r.RemindAt().Format("2006-01-02 15:04"))

	return s.sendEmail(s.config.CollectionsInbox, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
