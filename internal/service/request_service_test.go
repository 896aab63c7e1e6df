package service

import (
	"testing"
	"time"

	"Relief_Link/internal/apperror"
	"Relief_Link/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRequestStore is an in-memory RequestStore. Records are appended in
// insertion order; ListNewestFirst reverses, matching the repository's
// created_at DESC ordering.
type fakeRequestStore struct {
	records   []model.ResourceRequest
	nextID    uint64
	createErr error
}

func (f *fakeRequestStore) Create(req *model.ResourceRequest) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	req.ID = f.nextID
	req.CreatedAt = time.Now()
	f.records = append(f.records, *req)
	return nil
}

func (f *fakeRequestStore) ListNewestFirst() ([]model.ResourceRequest, error) {
	out := make([]model.ResourceRequest, len(f.records))
	for i, r := range f.records {
		out[len(f.records)-1-i] = r
	}
	return out, nil
}

func (f *fakeRequestStore) DeleteByID(id uint64) (int64, error) {
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func validRequest() *model.ResourceRequest {
	return &model.ResourceRequest{
		Name:         "Ravi",
		Phone:        "9876543210",
		Location:     "Chennai",
		ResourceType: "food",
		NPeople:      "5",
		Urgency:      "High",
	}
}

func TestRequestSubmitValid(t *testing.T) {
	store := &fakeRequestStore{}
	svc := NewRequestService(store)

	req := validRequest()
	require.NoError(t, svc.Submit(req))
	assert.NotZero(t, req.ID)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, req.ID, list[0].ID)
}

func TestRequestSubmitNPeople(t *testing.T) {
	tests := []struct {
		nPeople string
		wantErr bool
	}{
		{"5", false},
		{"0", true},
		{"abc", true},
		{"", true},
		{"-3", true},
	}
	for _, tt := range tests {
		svc := NewRequestService(&fakeRequestStore{})
		req := validRequest()
		req.NPeople = tt.nPeople

		err := svc.Submit(req)
		if tt.wantErr {
			require.Error(t, err, "n_people=%q", tt.nPeople)
			assert.ErrorIs(t, err, apperror.ErrValidation)
			assert.Contains(t, err.Error(), "n_people")
		} else {
			assert.NoError(t, err, "n_people=%q", tt.nPeople)
		}
	}
}

func TestRequestSubmitCollectsAllProblems(t *testing.T) {
	svc := NewRequestService(&fakeRequestStore{})

	err := svc.Submit(&model.ResourceRequest{Phone: "12345", ResourceType: "gold", Urgency: "urgent"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	msg := err.Error()
	assert.Contains(t, msg, "name is required")
	assert.Contains(t, msg, "phone must be exactly 10 digits")
	assert.Contains(t, msg, "location is required")
	assert.Contains(t, msg, "resourceType")
	assert.Contains(t, msg, "n_people")
	assert.Contains(t, msg, "urgency")
}

func TestRequestListNewestFirst(t *testing.T) {
	store := &fakeRequestStore{}
	svc := NewRequestService(store)

	for _, name := range []string{"first", "second", "third"} {
		req := validRequest()
		req.Name = name
		require.NoError(t, svc.Submit(req))
	}

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Name)
	assert.Equal(t, "first", list[2].Name)
}

func TestRequestDeleteTwice(t *testing.T) {
	store := &fakeRequestStore{}
	svc := NewRequestService(store)

	req := validRequest()
	require.NoError(t, svc.Submit(req))

	require.NoError(t, svc.Delete(req.ID))

	err := svc.Delete(req.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
