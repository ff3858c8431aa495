package filestore

import (
	"time"

	"github.com/dj1alilou/windyluxury/internal/model"
)

const settingsFile = "settings.json"

type settingsStore struct {
	s *Store
}

func (st *settingsStore) Get() (*model.Settings, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	settings := model.Settings{ID: model.SettingsID}
	if err := st.s.read(settingsFile, &settings); err != nil {
		return nil, err
	}
	settings.ID = model.SettingsID
	return &settings, nil
}

func (st *settingsStore) Save(settings *model.Settings) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	settings.ID = model.SettingsID
	settings.UpdatedAt = time.Now()
	return st.s.write(settingsFile, settings)
}
