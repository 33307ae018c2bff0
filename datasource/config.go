package datasource

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Geocoding struct {
		BaseURL         string `yaml:"baseURL"`
		Language        string `yaml:"language"`        // language of returned place names
		SuggestionCount int    `yaml:"suggestionCount"` // max results for Suggest
	} `yaml:"geocoding"`

	Forecast struct {
		BaseURL      string `yaml:"baseURL"`
		ForecastDays int    `yaml:"forecastDays"`
	} `yaml:"forecast"`

	// Timeout bounds every upstream request
	Timeout time.Duration `yaml:"timeout"`

	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Preferences struct {
		Path string `yaml:"path"` // SQLite file; empty keeps preferences in memory
	} `yaml:"preferences"`

	// Locations are looked up together by the batch endpoint
	Locations []string `yaml:"locations"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.Geocoding.BaseURL = "https://geocoding-api.open-meteo.com"
	config.Geocoding.Language = "en"
	config.Geocoding.SuggestionCount = 5
	config.Forecast.BaseURL = "https://api.open-meteo.com"
	config.Forecast.ForecastDays = 1
	config.Timeout = 10 * time.Second
	config.Server.Port = 8080
	config.Preferences.Path = "weathermine.db"
	config.Locations = []string{"London", "New York", "Tokyo"}
	return config
}

// LoadConfig loads configuration from a YAML or JSON file on top of DefaultConfig
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// ApplyEnv overrides config values from WEATHERMINE_* environment variables
func (c *Config) ApplyEnv() {
	c.Geocoding.BaseURL = getEnv("WEATHERMINE_GEOCODING_URL", c.Geocoding.BaseURL)
	c.Forecast.BaseURL = getEnv("WEATHERMINE_FORECAST_URL", c.Forecast.BaseURL)
	c.Preferences.Path = getEnv("WEATHERMINE_PREFERENCES_PATH", c.Preferences.Path)
	c.Server.Port = getEnvInt("WEATHERMINE_PORT", c.Server.Port)

	if v := os.Getenv("WEATHERMINE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}

	if v := os.Getenv("WEATHERMINE_LOCATIONS"); v != "" {
		var locations []string
		for _, loc := range strings.Split(v, ",") {
			if loc = strings.TrimSpace(loc); loc != "" {
				locations = append(locations, loc)
			}
		}
		c.Locations = locations
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
