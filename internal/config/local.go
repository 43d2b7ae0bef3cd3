package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"roomstudio/pkg/logger"
)

// Config represents the root configuration structure
type Config struct {
	Server         ServerConfig              `yaml:"server"`
	Catalog        CatalogConfig             `yaml:"catalog"`
	RemoteMetadata RemoteMetadataConfig      `yaml:"remote_metadata"`
	Providers      map[string]ProviderConfig `yaml:"providers"`
	Recommendation RecommendationConfig      `yaml:"recommendation"`
	Suggestions    SuggestionConfig          `yaml:"suggestions"`
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// CatalogConfig extends the built-in alias vocabulary. Extra aliases are
// validated at boot and merged once; the table never changes afterwards.
type CatalogConfig struct {
	Aliases   map[string]string `yaml:"aliases"`
	CacheSize int               `yaml:"cache_size"`
}

// RemoteMetadataConfig configures the remote display-metadata origin
type RemoteMetadataConfig struct {
	URL          string        `yaml:"url"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

// ProviderConfig configures a recommendation source
type ProviderConfig struct {
	APIKey       string `yaml:"api_key"`
	BaseURL      string `yaml:"base_url"`
	DefaultModel string `yaml:"default_model"`
}

// RecommendationConfig bounds the fan-out to recommendation sources
type RecommendationConfig struct {
	TimeoutMs int `yaml:"timeout_ms"`
}

// SuggestionConfig selects how default furniture is chosen when sources
// return nothing.
type SuggestionConfig struct {
	Type  string                 `yaml:"type"` // "room_defaults" or "dynamic_expression"
	Rules []SuggestionRuleConfig `yaml:"rules"`
}

// SuggestionRuleConfig pairs an expr condition over room_type and style with
// the items to suggest when it holds.
type SuggestionRuleConfig struct {
	Condition string   `yaml:"condition"`
	Items     []string `yaml:"items"`
}

const DefaultConfigTemplate = `server:
  port: 8080
  host: "127.0.0.1"
catalog:
  cache_size: 1024
  aliases:
    lounger: chair
remote_metadata:
  url: ""
  poll_interval: 60s
providers:
  google:
    api_key: ""
    default_model: "gemini-2.5-flash"
  local_vllm:
    base_url: "http://192.168.1.100:8000/v1"
recommendation:
  timeout_ms: 15000
suggestions:
  type: "dynamic_expression"
  rules:
    - condition: "room_type == 'office' && style == 'minimal'"
      items: ["desk", "chair", "lamp"]
`

const (
	defaultPort         = 8080
	defaultHost         = "127.0.0.1"
	defaultPollInterval = time.Minute
)

// LoadLocalConfig loads configuration from ROOMSTUDIO_CONFIG_PATH or ~/.config/roomstudio/config.yaml.
// If the configuration file doesn't exist, it creates a template for the user.
// A .env file in the working directory is loaded first when present.
func LoadLocalConfig() (*Config, error) {
	_ = godotenv.Load()

	configPath := os.Getenv("ROOMSTUDIO_CONFIG_PATH")
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		configPath = filepath.Join(home, ".config", "roomstudio", "config.yaml")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		logger.Printf("Config file missing at %s, creating default template...", configPath)
		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate), 0644); err != nil {
			return nil, fmt.Errorf("failed to write default config template: %w", err)
		}
		return nil, fmt.Errorf("generated default config at %s. Please update it and restart", configPath)
	}

	return LoadFile(configPath)
}

// LoadFile parses the YAML file at path and applies defaults and environment
// overrides.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var conf Config
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse yaml config: %w", err)
	}
	conf.applyDefaults()
	conf.applyEnv()
	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}
	if c.Server.Host == "" {
		c.Server.Host = defaultHost
	}
	if c.RemoteMetadata.PollInterval <= 0 {
		c.RemoteMetadata.PollInterval = defaultPollInterval
	}
}

// applyEnv lets secrets live outside the YAML file.
func (c *Config) applyEnv() {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return
	}
	if c.Providers == nil {
		c.Providers = make(map[string]ProviderConfig)
	}
	p := c.Providers["google"]
	p.APIKey = key
	c.Providers["google"] = p
}
