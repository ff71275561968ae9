package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/westernstar/blog/pkg/mailer"
)

// ContactService relays contact-form submissions as email. Synchronous
// and best-effort: no retry, no queue, no delivery confirmation.
type ContactService struct {
	Sender  mailer.Sender
	To      string // fixed recipient
	Subject string
	Enabled bool
	Logger  *logrus.Logger
}

func NewContactService(sender mailer.Sender, to, subject string, enabled bool, logger *logrus.Logger) *ContactService {
	return &ContactService{Sender: sender, To: to, Subject: subject, Enabled: enabled, Logger: logger}
}

// ContactMessage is one contact-form submission. All four fields are
// required.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

const relayTimeout = 10 * time.Second

// Send validates the submission and hands it to the mail relay with a
// bounded timeout. Relay failures surface as ErrDeliveryFailed.
func (s *ContactService) Send(ctx context.Context, m ContactMessage) error {
	if strings.TrimSpace(m.Name) == "" ||
		strings.TrimSpace(m.Email) == "" ||
		strings.TrimSpace(m.Phone) == "" ||
		strings.TrimSpace(m.Message) == "" {
		return ErrValidationFailed
	}
	if !s.Enabled {
		s.Logger.WithField("from", m.Email).Info("mail sending disabled, contact message dropped")
		return nil
	}

	body := fmt.Sprintf("From: %s\nEmail: %s\nPhone: %s\n\n%s", m.Name, m.Email, m.Phone, m.Message)

	ctx, cancel := context.WithTimeout(ctx, relayTimeout)
	defer cancel()
	if err := s.Sender.Send(ctx, s.To, s.Subject, body, ""); err != nil {
		s.Logger.WithError(err).WithField("from", m.Email).Error("contact relay failed")
		return ErrDeliveryFailed
	}
	s.Logger.WithField("from", m.Email).Info("contact message relayed")
	return nil
}
