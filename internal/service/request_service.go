package service

import (
	"regexp"
	"strings"

	"Relief_Link/internal/apperror"
	"Relief_Link/internal/model"
)

var (
	localPhoneRe = regexp.MustCompile(`^[0-9]{10}$`)
	nPeopleRe    = regexp.MustCompile(`^[1-9][0-9]*$`)

	requestTypes = map[string]bool{
		"shelter": true, "food": true, "medical": true, "transport": true, "other": true,
	}
	urgencyLevels = map[string]bool{
		"Low": true, "Medium": true, "High": true, "Critical": true,
	}
)

type RequestStore interface {
	Create(req *model.ResourceRequest) error
	ListNewestFirst() ([]model.ResourceRequest, error)
	DeleteByID(id uint64) (int64, error)
}

type RequestService struct {
	repo RequestStore
}

func NewRequestService(repo RequestStore) *RequestService {
	return &RequestService{repo: repo}
}

// Submit validates every field and persists the request. All violations
// are reported at once, joined into a single message.
func (s *RequestService) Submit(req *model.ResourceRequest) error {
	var problems []string
	if strings.TrimSpace(req.Name) == "" {
		problems = append(problems, "name is required")
	}
	if !localPhoneRe.MatchString(req.Phone) {
		problems = append(problems, "phone must be exactly 10 digits")
	}
	if strings.TrimSpace(req.Location) == "" {
		problems = append(problems, "location is required")
	}
	if !requestTypes[req.ResourceType] {
		problems = append(problems, "resourceType must be one of shelter, food, medical, transport, other")
	}
	if !nPeopleRe.MatchString(req.NPeople) {
		problems = append(problems, "n_people must be a positive integer")
	}
	if !urgencyLevels[req.Urgency] {
		problems = append(problems, "urgency must be one of Low, Medium, High, Critical")
	}
	if len(problems) > 0 {
		return apperror.Validation(strings.Join(problems, ", "))
	}

	return s.repo.Create(req)
}

func (s *RequestService) List() ([]model.ResourceRequest, error) {
	return s.repo.ListNewestFirst()
}

// Delete removes the request by id. A second delete of the same id is an
// expected NotFound, not a fault.
func (s *RequestService) Delete(id uint64) error {
	affected, err := s.repo.DeleteByID(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NotFound("resource request not found")
	}
	return nil
}
