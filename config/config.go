package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode     string `mapstructure:"mode"`
	Handlers struct {
		Prometheus struct {
			Port string `mapstructure:"port"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
	Providers struct {
		Places struct {
			BaseURL string        `mapstructure:"baseURL"`
			APIKey  string        `mapstructure:"apiKey"`
			Timeout time.Duration `mapstructure:"timeout"`
		} `mapstructure:"places"`
		Weather struct {
			BaseURL string        `mapstructure:"baseURL"`
			APIKey  string        `mapstructure:"apiKey"`
			Timeout time.Duration `mapstructure:"timeout"`
		} `mapstructure:"weather"`
	} `mapstructure:"providers"`
	Discovery struct {
		DefaultRadiusMeters int           `mapstructure:"defaultRadiusMeters"`
		DefaultMinRating    float64       `mapstructure:"defaultMinRating"`
		MaxWorkers          int           `mapstructure:"maxWorkers"`
		ResultTTL           time.Duration `mapstructure:"resultTTL"`
	} `mapstructure:"discovery"`
	Server struct {
		HTTPPort string        `mapstructure:"HTTPPort"`
		Timeout  time.Duration `mapstructure:"HTTPTimeout"`
	} `mapstructure:"server"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	// Add file-based config paths
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	// Try to load file-based config
	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %s", err)
		}
	}

	// Unmarshal the config into the Config struct
	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %s", err)
	}

	// API keys come from the environment, never from checked-in config
	if key := os.Getenv("GOOGLE_PLACES_API_KEY"); key != "" {
		config.Providers.Places.APIKey = key
	}
	if key := os.Getenv("OPENWEATHERMAP_API_KEY"); key != "" {
		config.Providers.Weather.APIKey = key
	}

	fmt.Println("Successfully loaded app configs...")
	return config, nil
}
