package services

import (
	"context"
	"strings"

	"siris-blog/logger"
	"siris-blog/models"
)

// ValidateContact reports whether every field is present and the email
// contains both "@" and ".". This is a shape check only, not RFC validation.
func ValidateContact(name, email, phone, message string) bool {
	if name == "" || email == "" || phone == "" || message == "" {
		return false
	}
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// Sender delivers a validated submission. mailer.Dispatcher implements it.
type Sender interface {
	Send(ctx context.Context, sub models.ContactSubmission) error
}

// ContactService validates contact submissions and hands them to a Sender.
type ContactService struct {
	sender Sender
	log    logger.Logger
}

func NewContactService(sender Sender, log logger.Logger) *ContactService {
	if log == nil {
		log = logger.Log
	}
	return &ContactService{sender: sender, log: log}
}

// Submit validates sub and, when valid, sends it.
// Delivery errors are logged and reported as ContactDeliveryFailed, never returned.
func (s *ContactService) Submit(ctx context.Context, sub models.ContactSubmission) models.ContactOutcome {
	if !ValidateContact(sub.Name, sub.Email, sub.Phone, sub.Message) {
		s.log.Warn("Validation failed for contact form submission.")
		return models.ContactInvalid
	}

	outcome := models.ContactDelivered
	if err := s.sender.Send(ctx, sub); err != nil {
		s.log.Errorf("Failed to send email: %v", err)
		outcome = models.ContactDeliveryFailed
	} else {
		s.log.Info("Email sent successfully")
	}

	// Logged for both delivery outcomes.
	s.log.Infof("Contact form submitted: %s, %s", sub.Name, sub.Email)
	return outcome
}
