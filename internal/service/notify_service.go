package service

import (
	"fmt"
	"strings"

	"Relief_Link/internal/apperror"
	"Relief_Link/internal/pkg"
)

type SubscriberStore interface {
	Add(email string) (bool, error)
	ListEmails() ([]string, error)
}

type Mailer interface {
	Send(to []string, subject, htmlBody string) error
}

type NotifyService struct {
	repo   SubscriberStore
	mailer Mailer
}

func NewNotifyService(repo SubscriberStore, mailer Mailer) *NotifyService {
	return &NotifyService{repo: repo, mailer: mailer}
}

// Subscribe stores the email (idempotently) and then attempts a
// confirmation mail. The record persists even when delivery fails:
// at-least-stored, best-effort-notified.
func (s *NotifyService) Subscribe(email string) error {
	if !emailRe.MatchString(email) {
		return apperror.Validation("a valid email is required")
	}

	if _, err := s.repo.Add(email); err != nil {
		return err
	}

	if err := s.mailer.Send([]string{email}, "Subscription confirmed", pkg.SubscribeConfirmationHTML()); err != nil {
		return fmt.Errorf("confirmation mail delivery failed: %w", err)
	}
	return nil
}

// Broadcast sends one message addressed to every subscriber and returns
// how many were notified.
func (s *NotifyService) Broadcast(subject, content string) (int, error) {
	var problems []string
	if strings.TrimSpace(subject) == "" {
		problems = append(problems, "subject is required")
	}
	if strings.TrimSpace(content) == "" {
		problems = append(problems, "content is required")
	}
	if len(problems) > 0 {
		return 0, apperror.Validation(strings.Join(problems, ", "))
	}

	emails, err := s.repo.ListEmails()
	if err != nil {
		return 0, err
	}
	if len(emails) == 0 {
		return 0, nil
	}

	if err := s.mailer.Send(emails, subject, pkg.BroadcastHTML(content)); err != nil {
		return 0, fmt.Errorf("broadcast delivery failed: %w", err)
	}
	return len(emails), nil
}
