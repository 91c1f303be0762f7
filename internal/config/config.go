package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Classifier struct {
		EmotionURL     string `yaml:"emotion_url"`
		RiskURL        string `yaml:"risk_url"`
		TimeoutSeconds int64  `yaml:"timeout_seconds"`
	} `yaml:"classifier"`
	Crisis struct {
		Phrases        []string `yaml:"phrases"`
		NegativeLabels []string `yaml:"negative_labels"`
		RiskThreshold  float64  `yaml:"risk_threshold"`
	} `yaml:"crisis"`
	Trends struct {
		MoodSwingStdDev float64 `yaml:"mood_swing_std_dev"`
	} `yaml:"trends"`
	Auth struct {
		JWTSecret     string `yaml:"jwt_secret"`
		TokenTTLHours int64  `yaml:"token_ttl_hours"`
	} `yaml:"auth"`
	Telegram struct {
		Enabled  bool   `yaml:"enabled"`
		BotToken string `yaml:"bot_token"`
	} `yaml:"telegram"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
}

// LoadConfig reads configuration from the specified YAML file.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return config, nil
}
