package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	return &SMTPEmailService{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

// SendContactInvitation mails a ticket contact who has no account yet.
func (s *SMTPEmailService) SendContactInvitation(to, contactName, ticketNumber string) error {
	subject := fmt.Sprintf("You have been added as a contact on ticket %s", ticketNumber)
	body := fmt.Sprintf(`Hello %s,

You have been listed as a contact on support ticket %s.
Create an account at %s/register to follow its progress.

DeskFlow
`, contactName, ticketNumber, s.config.BaseURL)

	return s.send(to, subject, body)
}

func (s *SMTPEmailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
