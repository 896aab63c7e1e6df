package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"Relief_Link/internal/apperror"
	"Relief_Link/internal/model"
	"Relief_Link/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAlertStore struct {
	alerts []model.Alert
	nextID uint64
}

func (f *fakeAlertStore) Create(alert *model.Alert) error {
	f.nextID++
	alert.ID = f.nextID
	alert.CreatedAt = time.Now()
	f.alerts = append(f.alerts, *alert)
	return nil
}

func (f *fakeAlertStore) ListNewestFirst() ([]model.Alert, error) {
	out := make([]model.Alert, len(f.alerts))
	for i, a := range f.alerts {
		out[len(f.alerts)-1-i] = a
	}
	return out, nil
}

type fakePublisher struct {
	events []pkg.AlertEvent
	err    error
}

func (f *fakePublisher) PublishAlert(ctx context.Context, ev pkg.AlertEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, ev)
	return nil
}

func TestAlertCreateValidation(t *testing.T) {
	svc := NewAlertService(&fakeAlertStore{}, nil)

	err := svc.Create(&model.Alert{Severity: "catastrophic"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	msg := err.Error()
	assert.Contains(t, msg, "type is required")
	assert.Contains(t, msg, "location is required")
	assert.Contains(t, msg, "severity")
}

func TestAlertCreatePublishesEvent(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewAlertService(&fakeAlertStore{}, pub)

	alert := &model.Alert{Type: "flood", Location: "Chennai", Severity: "high"}
	require.NoError(t, svc.Create(alert))

	require.Len(t, pub.events, 1)
	ev := pub.events[0]
	assert.Equal(t, alert.ID, ev.ID)
	assert.Equal(t, "flood", ev.Type)
	assert.Equal(t, "Chennai", ev.Location)
	assert.Equal(t, "high", ev.Severity)
	assert.Equal(t, alert.CreatedAt, ev.IssuedAt)
}

func TestAlertCreateSurvivesPublishFailure(t *testing.T) {
	store := &fakeAlertStore{}
	svc := NewAlertService(store, &fakePublisher{err: errors.New("broker down")})

	require.NoError(t, svc.Create(&model.Alert{Type: "flood", Location: "Chennai", Severity: "low"}))
	assert.Len(t, store.alerts, 1)
}

func TestAlertCreateWithoutProducer(t *testing.T) {
	svc := NewAlertService(&fakeAlertStore{}, nil)
	require.NoError(t, svc.Create(&model.Alert{Type: "quake", Location: "Delhi", Severity: "medium"}))
}

func TestAlertListNewestFirst(t *testing.T) {
	svc := NewAlertService(&fakeAlertStore{}, nil)

	for _, typ := range []string{"flood", "quake", "cyclone"} {
		require.NoError(t, svc.Create(&model.Alert{Type: typ, Location: "x", Severity: "low"}))
	}

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "cyclone", list[0].Type)
}
