package board

import (
	"github.com/julianstephens/dashlit/internal/models"
)

// Settings returns the stored settings with defaults filled in.
func (s *Service) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings()
}

// UpdateSettings applies change to the current settings and saves them. A
// change that returns an error leaves the stored settings untouched.
func (s *Service) UpdateSettings(change func(*models.Settings) error) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.settings()
	if err := change(&settings); err != nil {
		return models.Settings{}, err
	}
	if err := s.store.SaveSettings(settings); err != nil {
		return models.Settings{}, err
	}
	s.record(models.CategorySystem, "Settings updated", "", s.now(settings))
	return settings, nil
}
