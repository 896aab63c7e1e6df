package service

import (
	"regexp"
	"strings"

	"Relief_Link/internal/apperror"
	"Relief_Link/internal/model"
)

var (
	intlPhoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	quantityRe  = regexp.MustCompile(`^[1-9][0-9]*$`)

	offerTypes = map[string]bool{
		"shelter": true, "food": true, "medical": true, "transport": true,
	}
	availabilityTiers = map[string]bool{
		"immediate": true, "within24": true, "within48": true, "flexible": true,
	}
)

type OfferStore interface {
	Create(offer *model.ResourceOffer) error
	ListNewestFirst() ([]model.ResourceOffer, error)
	DeleteByID(id uint64) (int64, error)
}

type OfferService struct {
	repo OfferStore
}

func NewOfferService(repo OfferStore) *OfferService {
	return &OfferService{repo: repo}
}

func (s *OfferService) Submit(offer *model.ResourceOffer) error {
	var problems []string
	if strings.TrimSpace(offer.Name) == "" {
		problems = append(problems, "name is required")
	}
	if !intlPhoneRe.MatchString(offer.Phone) {
		problems = append(problems, "phone must be a valid phone number")
	}
	if !emailRe.MatchString(offer.Email) {
		problems = append(problems, "a valid email is required")
	}
	if strings.TrimSpace(offer.Location) == "" {
		problems = append(problems, "location is required")
	}
	if !offerTypes[offer.ResourceType] {
		problems = append(problems, "resourceType must be one of shelter, food, medical, transport")
	}
	if !quantityRe.MatchString(offer.Quantity) {
		problems = append(problems, "quantity must be a positive integer")
	}
	if !availabilityTiers[offer.Availability] {
		problems = append(problems, "availability must be one of immediate, within24, within48, flexible")
	}
	if len(problems) > 0 {
		return apperror.Validation(strings.Join(problems, ", "))
	}

	return s.repo.Create(offer)
}

func (s *OfferService) List() ([]model.ResourceOffer, error) {
	return s.repo.ListNewestFirst()
}

func (s *OfferService) Delete(id uint64) error {
	affected, err := s.repo.DeleteByID(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NotFound("resource offer not found")
	}
	return nil
}
