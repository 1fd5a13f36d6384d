package email

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"keepnote/internal/config"
	"keepnote/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendReminderDue notifies a user that one of their reminders is due.
func (s *Sender) SendReminderDue(to, name string, rem *models.Reminder) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Reminder: %s", rem.Name)

	body := fmt.Sprintf("Dear %s,\n\n", name)
	body += fmt.Sprintf("Your reminder %q is due", rem.Name)
	if rem.RemindAt != nil {
		body += fmt.Sprintf(" (scheduled for %s)", rem.RemindAt.Format(time.RFC1123))
	}
	body += ".\n"
	if rem.Description != "" {
		body += "\n" + rem.Description + "\n"
	}
	body += "\nBest regards,\nKeepnote"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
