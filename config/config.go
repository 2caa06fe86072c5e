package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const DefaultSourceURL = "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json"

type Config struct {
	App     AppConfig
	Source  SourceConfig
	Listing ListingConfig
	Redis   RedisConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type SourceConfig struct {
	URL     string
	Timeout time.Duration
}

type ListingConfig struct {
	PageSize        int
	MaxPageButtons  int
	SuggestionLimit int
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// .env is optional, the environment alone is enough
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SOURCE_URL", DefaultSourceURL)
	v.SetDefault("SOURCE_TIMEOUT", "10s")
	v.SetDefault("LISTING_PAGE_SIZE", 5)
	v.SetDefault("LISTING_MAX_PAGE_BUTTONS", 5)
	v.SetDefault("LISTING_SUGGESTION_LIMIT", 3)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_TTL", "5m")
}

func fromViper(v *viper.Viper) *Config {
	timeout := v.GetDuration("SOURCE_TIMEOUT")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ttl := v.GetDuration("REDIS_TTL")
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	pageSize := v.GetInt("LISTING_PAGE_SIZE")
	if pageSize <= 0 {
		pageSize = 5
	}

	maxButtons := v.GetInt("LISTING_MAX_PAGE_BUTTONS")
	if maxButtons <= 0 {
		maxButtons = 5
	}

	suggestionLimit := v.GetInt("LISTING_SUGGESTION_LIMIT")
	if suggestionLimit <= 0 {
		suggestionLimit = 3
	}

	return &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Source: SourceConfig{
			URL:     v.GetString("SOURCE_URL"),
			Timeout: timeout,
		},
		Listing: ListingConfig{
			PageSize:        pageSize,
			MaxPageButtons:  maxButtons,
			SuggestionLimit: suggestionLimit,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			TTL:      ttl,
		},
	}
}
