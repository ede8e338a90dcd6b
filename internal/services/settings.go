package services

import (
	"fmt"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/store"
)

// SettingsService keeps the company profile, work hours and invoicing
// defaults of each workspace. A workspace starts from the service defaults.
type SettingsService struct {
	defaults entities.Settings
	deps     Deps
}

func NewSettingsService(defaults entities.Settings, deps Deps) *SettingsService {
	return &SettingsService{defaults: defaults, deps: deps.withDefaults()}
}

func (s *SettingsService) initial() entities.Settings {
	return s.defaults
}

func (s *SettingsService) Get(ws *store.Workspace) entities.Settings {
	return ws.Settings(s.initial)
}

// Update replaces the workspace settings. Invalid settings leave the current
// ones in place.
func (s *SettingsService) Update(ws *store.Workspace, next entities.Settings) (entities.Settings, error) {
	updated, err := ws.UpdateSettings(s.initial, func(cur *entities.Settings) error {
		if err := next.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}
		*cur = next
		return nil
	})
	if err != nil {
		return updated, err
	}
	s.deps.Journal.LogChange(ws.ID, entities.AuditEventUpdate, "settings", 0, "Updated settings")
	return updated, nil
}
