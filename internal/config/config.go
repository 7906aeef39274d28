package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultListen    = "127.0.0.1:5522"
	DefaultMongoDb   = "tdapi"
	DefaultCacheSize = 1024
	DefaultCacheTTL  = "10m"
)

type Config struct {
	Listen    string            `json:"Listen"`
	Mongo     map[string]string `json:"Mongo"`
	Debug     bool              `json:"Debug"`
	CacheSize int               `json:"CacheSize"`
	CacheTTL  string            `json:"CacheTTL"`
}

// InitConfiguration reads the json config at path (skipped when path is
// empty), applies .env and TDAPI_* environment overrides and fills defaults.
func InitConfiguration(path string) (*Config, error) {
	var cfg = Config{}
	if path != "" {
		err := UnmarshalJsonFile(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	if _, err := cfg.CacheTTLDuration(); err != nil {
		return nil, err
	}
	if cfg.CacheSize < 0 {
		return nil, fmt.Errorf("invalid CacheSize %d", cfg.CacheSize)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("TDAPI_LISTEN"); ok {
		c.Listen = v
	}
	if v, ok := os.LookupEnv("TDAPI_MONGO_URI"); ok {
		c.mongo()["uri"] = v
	}
	if v, ok := os.LookupEnv("TDAPI_MONGO_DB"); ok {
		c.mongo()["db"] = v
	}
	if v, ok := os.LookupEnv("TDAPI_DEBUG"); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid TDAPI_DEBUG: %w", err)
		}
		c.Debug = debug
	}

	return nil
}

func (c *Config) setDefaults() {
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.mongo()["db"] == "" {
		c.Mongo["db"] = DefaultMongoDb
	}
	if c.CacheSize == 0 {
		c.CacheSize = DefaultCacheSize
	}
	if c.CacheTTL == "" {
		c.CacheTTL = DefaultCacheTTL
	}
}

func (c *Config) mongo() map[string]string {
	if c.Mongo == nil {
		c.Mongo = make(map[string]string)
	}
	return c.Mongo
}

func (c *Config) CacheTTLDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid CacheTTL: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid CacheTTL %s", c.CacheTTL)
	}

	return d, nil
}

func UnmarshalJsonFile(path string, dest interface{}) error {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read json file: %w", err)
	}
	if err := json.Unmarshal(byteValue, dest); err != nil {
		return fmt.Errorf("failed to parse json file: %w", err)
	}

	return nil
}
