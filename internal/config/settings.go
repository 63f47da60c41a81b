// internal/config/settings.go
package config

import (
	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// Settings holds the runtime switches that may come from the environment
// or the command line.
type Settings struct {
	Mute       bool   `config:"GARDEN_MUTE"`
	Fullscreen bool   `config:"GARDEN_FULLSCREEN"`
	Seed       int64  `config:"GARDEN_SEED"` // 0 = сид от текущего времени
	LogLevel   string `config:"GARDEN_LOG_LEVEL"`
	DefsDir    string `config:"GARDEN_DEFS_DIR"`
	PprofAddr  string `config:"GARDEN_PPROF_ADDR"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		LogLevel: "info",
	}
}

// LoadSettings reads Settings from the environment on top of the defaults.
func LoadSettings() (Settings, error) {
	s := DefaultSettings()
	if err := jlconfig.FromEnv().To(&s); err != nil {
		return Settings{}, eris.Wrap(err, "failed to load settings from environment")
	}
	return s, nil
}
