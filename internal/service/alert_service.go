package service

import (
	"context"
	"log"
	"strings"
	"time"

	"Relief_Link/internal/apperror"
	"Relief_Link/internal/model"
	"Relief_Link/internal/pkg"
)

var severityLevels = map[string]bool{
	"low": true, "medium": true, "high": true,
}

type AlertStore interface {
	Create(alert *model.Alert) error
	ListNewestFirst() ([]model.Alert, error)
}

// AlertPublisher pushes created alerts onto the event bus for downstream
// consumers. Satisfied by pkg.AlertProducer.
type AlertPublisher interface {
	PublishAlert(ctx context.Context, ev pkg.AlertEvent) error
}

type AlertService struct {
	repo     AlertStore
	producer AlertPublisher // nil when no broker is configured
}

func NewAlertService(repo AlertStore, producer AlertPublisher) *AlertService {
	return &AlertService{repo: repo, producer: producer}
}

// Create persists the alert, then publishes it best effort. A broker
// failure never fails the request.
func (s *AlertService) Create(alert *model.Alert) error {
	var problems []string
	if strings.TrimSpace(alert.Type) == "" {
		problems = append(problems, "type is required")
	}
	if strings.TrimSpace(alert.Location) == "" {
		problems = append(problems, "location is required")
	}
	if !severityLevels[alert.Severity] {
		problems = append(problems, "severity must be one of low, medium, high")
	}
	if len(problems) > 0 {
		return apperror.Validation(strings.Join(problems, ", "))
	}

	if err := s.repo.Create(alert); err != nil {
		return err
	}

	s.publish(alert)
	return nil
}

func (s *AlertService) publish(alert *model.Alert) {
	if s.producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ev := pkg.AlertEvent{
		ID:          alert.ID,
		Type:        alert.Type,
		Location:    alert.Location,
		Description: alert.Description,
		Severity:    alert.Severity,
		IssuedAt:    alert.CreatedAt,
	}
	if err := s.producer.PublishAlert(ctx, ev); err != nil {
		log.Printf("alert publish: %v", err)
	}
}

func (s *AlertService) List() ([]model.Alert, error) {
	return s.repo.ListNewestFirst()
}
