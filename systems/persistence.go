package systems

import (
	"encoding/json"

	"github.com/automoto/seekthescounge/logger"
	"github.com/quasilyte/gdata"
)

// SavedSettings is what survives between runs.
type SavedSettings struct {
	Character string `json:"character"`
	ShowDebug bool   `json:"showDebug"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager

// InitPersistence opens the per-user save location.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "seekthescounge",
	})
	if err != nil {
		logger.For("persistence").WithError(err).Warn("could not initialize persistence")
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings returns nil when nothing was saved or persistence is off.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		logger.For("persistence").WithError(err).Warn("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.For("persistence").WithError(err).Warn("could not parse saved settings")
		return nil, err
	}
	return &settings, nil
}

func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		logger.For("persistence").WithError(err).Warn("could not save settings")
		return err
	}
	return nil
}

// RememberCharacter stores the last picked character, keeping other fields.
func RememberCharacter(id string) {
	saved, _ := LoadSettings()
	if saved == nil {
		saved = &SavedSettings{}
	}
	saved.Character = id
	_ = SaveSettings(saved)
}
