package appconfig

import "github.com/ilyakaznacheev/cleanenv"

type AppConfig struct {
	Port        string `env:"SHOWDOWN_PORT" env-default:"7777"`
	HistoryPath string `env:"SHOWDOWN_HISTORY_PATH" env-default:"showdown.db"`
	Debug       bool   `env:"SHOWDOWN_DEBUG" env-default:"false"`
}

// LoadAppConfig reads environment variables into an AppConfig instance
func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
