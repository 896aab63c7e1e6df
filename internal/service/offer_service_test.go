package service

import (
	"testing"
	"time"

	"Relief_Link/internal/apperror"
	"Relief_Link/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOfferStore struct {
	records []model.ResourceOffer
	nextID  uint64
}

func (f *fakeOfferStore) Create(offer *model.ResourceOffer) error {
	f.nextID++
	offer.ID = f.nextID
	offer.CreatedAt = time.Now()
	f.records = append(f.records, *offer)
	return nil
}

func (f *fakeOfferStore) ListNewestFirst() ([]model.ResourceOffer, error) {
	out := make([]model.ResourceOffer, len(f.records))
	for i, r := range f.records {
		out[len(f.records)-1-i] = r
	}
	return out, nil
}

func (f *fakeOfferStore) DeleteByID(id uint64) (int64, error) {
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func TestOfferSubmitThenList(t *testing.T) {
	svc := NewOfferService(&fakeOfferStore{})

	offer := &model.ResourceOffer{
		Name:         "A",
		Phone:        "+919876543210",
		Email:        "a@x.com",
		Location:     "Delhi",
		ResourceType: "food",
		Quantity:     "10",
		Availability: "immediate",
	}
	require.NoError(t, svc.Submit(offer))

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A", list[0].Name)
	assert.Equal(t, "+919876543210", list[0].Phone)
	assert.Equal(t, "a@x.com", list[0].Email)
	assert.Equal(t, "Delhi", list[0].Location)
	assert.Equal(t, "food", list[0].ResourceType)
	assert.Equal(t, "10", list[0].Quantity)
	assert.Equal(t, "immediate", list[0].Availability)
}

func TestOfferSubmitValidation(t *testing.T) {
	svc := NewOfferService(&fakeOfferStore{})

	err := svc.Submit(&model.ResourceOffer{
		Name:         "A",
		Phone:        "12-34",
		Email:        "not-an-email",
		Location:     "Delhi",
		ResourceType: "other", // not valid for offers
		Quantity:     "0",
		Availability: "someday",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	msg := err.Error()
	assert.Contains(t, msg, "phone")
	assert.Contains(t, msg, "email")
	assert.Contains(t, msg, "resourceType")
	assert.Contains(t, msg, "quantity")
	assert.Contains(t, msg, "availability")
}

func TestOfferDeleteTwice(t *testing.T) {
	svc := NewOfferService(&fakeOfferStore{})

	offer := &model.ResourceOffer{
		Name:         "A",
		Phone:        "+919876543210",
		Email:        "a@x.com",
		Location:     "Delhi",
		ResourceType: "shelter",
		Quantity:     "2",
		Availability: "flexible",
	}
	require.NoError(t, svc.Submit(offer))

	require.NoError(t, svc.Delete(offer.ID))
	assert.ErrorIs(t, svc.Delete(offer.ID), apperror.ErrNotFound)
}
