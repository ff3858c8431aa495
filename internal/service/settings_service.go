package service

import (
	"strings"

	"github.com/dj1alilou/windyluxury/internal/model"
	"github.com/dj1alilou/windyluxury/internal/repository"

	"github.com/shopspring/decimal"
)

type SettingsService interface {
	Get() (*model.Settings, error)
	Update(incoming *model.Settings) (*model.Settings, error)
	GetPrice(wilaya string, deliveryType model.DeliveryType) decimal.Decimal
	UpsertWilaya(wilaya model.DeliveryWilaya) error
	RemoveWilaya(index int) error
	SeedDefaultWilayas() (int, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get() (*model.Settings, error) {
	return s.repo.Get()
}

// Update merges the incoming fields into the settings document and writes
// the whole document back. The wilaya list replaces wholesale when sent.
func (s *settingsService) Update(incoming *model.Settings) (*model.Settings, error) {
	current, err := s.repo.Get()
	if err != nil {
		return nil, err
	}
	if incoming.StoreName != "" {
		current.StoreName = incoming.StoreName
	}
	if incoming.StorePhone != "" {
		current.StorePhone = incoming.StorePhone
	}
	if incoming.StoreEmail != "" {
		current.StoreEmail = incoming.StoreEmail
	}
	if incoming.Facebook != "" {
		current.Facebook = incoming.Facebook
	}
	if incoming.Instagram != "" {
		current.Instagram = incoming.Instagram
	}
	if incoming.DeliveryWilayas != nil {
		current.DeliveryWilayas = incoming.DeliveryWilayas
	}
	if err := s.repo.Save(current); err != nil {
		return nil, err
	}
	return current, nil
}

// GetPrice matches the wilaya case-insensitively. An empty or unmatched
// wilaya, or an unknown delivery type, prices delivery at zero — this
// free-delivery fallback is intentional compatibility behavior, probably
// not what a merchant wants.
func (s *settingsService) GetPrice(wilaya string, deliveryType model.DeliveryType) decimal.Decimal {
	if wilaya == "" {
		return decimal.Zero
	}
	settings, err := s.repo.Get()
	if err != nil {
		return decimal.Zero
	}
	for _, w := range settings.DeliveryWilayas {
		if strings.EqualFold(w.Name, wilaya) {
			switch deliveryType {
			case model.DeliveryHome:
				return w.HomePrice
			case model.DeliveryOffice:
				return w.OfficePrice
			}
			return decimal.Zero
		}
	}
	return decimal.Zero
}

// UpsertWilaya overwrites the prices of an existing entry (matched by
// name, case-insensitively) or appends a new one, preserving list order.
func (s *settingsService) UpsertWilaya(wilaya model.DeliveryWilaya) error {
	settings, err := s.repo.Get()
	if err != nil {
		return err
	}
	for i := range settings.DeliveryWilayas {
		if strings.EqualFold(settings.DeliveryWilayas[i].Name, wilaya.Name) {
			settings.DeliveryWilayas[i].HomePrice = wilaya.HomePrice
			settings.DeliveryWilayas[i].OfficePrice = wilaya.OfficePrice
			return s.repo.Save(settings)
		}
	}
	settings.DeliveryWilayas = append(settings.DeliveryWilayas, wilaya)
	return s.repo.Save(settings)
}

// RemoveWilaya removes by position in the currently loaded list. The index
// is not a stable key; this mirrors the admin UI's row-based deletion.
func (s *settingsService) RemoveWilaya(index int) error {
	settings, err := s.repo.Get()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(settings.DeliveryWilayas) {
		return ErrInvalidIndex
	}
	settings.DeliveryWilayas = append(settings.DeliveryWilayas[:index], settings.DeliveryWilayas[index+1:]...)
	return s.repo.Save(settings)
}

// SeedDefaultWilayas adds any canonical wilaya not already present,
// leaving existing entries and their prices untouched. Idempotent.
func (s *settingsService) SeedDefaultWilayas() (int, error) {
	settings, err := s.repo.Get()
	if err != nil {
		return 0, err
	}
	existing := make(map[string]bool, len(settings.DeliveryWilayas))
	for _, w := range settings.DeliveryWilayas {
		existing[strings.ToLower(w.Name)] = true
	}
	added := 0
	for _, w := range model.DefaultWilayas() {
		if !existing[strings.ToLower(w.Name)] {
			settings.DeliveryWilayas = append(settings.DeliveryWilayas, w)
			added++
		}
	}
	if added == 0 {
		return 0, nil
	}
	return added, s.repo.Save(settings)
}
