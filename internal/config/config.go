// Package config provides configuration loading and management for the crane dashboard server.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/plantops/crane-dashboard/internal/telemetry"
)

// EnvPrefix is the prefix of every environment variable read by the server
const EnvPrefix = "CRANE_DASHBOARD"

const (
	// SourceTypeSheets reads rows from the Google Sheets values API
	SourceTypeSheets = "sheets"

	// SourceTypeExcel reads rows from a local xlsx workbook
	SourceTypeExcel = "excel"
)

const (
	// CacheTypeMemory keeps cached reads in process memory
	CacheTypeMemory = "memory"

	// CacheTypeRedis keeps cached reads in Redis
	CacheTypeRedis = "redis"
)

const (
	// DefaultSyncInterval is the period between scheduled sync passes
	DefaultSyncInterval = 3 * time.Minute

	// DefaultCacheTTL is the lifetime of a cached read
	DefaultCacheTTL = 5 * time.Minute

	// DefaultSheetsBaseURL is the Google Sheets API endpoint
	DefaultSheetsBaseURL = "https://sheets.googleapis.com"

	// DefaultSheetsTimeout bounds a single Sheets API request
	DefaultSheetsTimeout = 30 * time.Second

	// DefaultMQTTTopicPrefix is the root topic alerts are published under
	DefaultMQTTTopicPrefix = "cranes/alerts"

	// DefaultMQTTPublishTimeout bounds waiting for a publish acknowledgement
	DefaultMQTTPublishTimeout = 5 * time.Second

	// DefaultRedisKeyPrefix namespaces every cache key in Redis
	DefaultRedisKeyPrefix = "crane-dashboard:"
)

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	Sync      SyncConfig        `yaml:"sync"`
	Source    SourceConfig      `yaml:"source"`
	Cache     CacheConfig       `yaml:"cache"`
	Notify    NotifyConfig      `yaml:"notify"`
	Telemetry *telemetry.Config `yaml:"telemetry,omitempty"`
}

// SyncConfig defines the periodic sync settings
type SyncConfig struct {
	// Interval is the period between scheduled passes (e.g., "3m")
	// Defaults to 3 minutes if not specified
	Interval string `yaml:"interval,omitempty"`

	// IngestOnSchedule makes every scheduled pass re-read the source before warming the cache
	IngestOnSchedule bool `yaml:"ingestOnSchedule,omitempty"`
}

// SourceConfig defines where crane, failure and maintenance rows are read from
type SourceConfig struct {
	// Type is either "sheets" or "excel"
	Type string `yaml:"type"`

	Sheets *SheetsConfig `yaml:"sheets,omitempty"`
	Excel  *ExcelConfig  `yaml:"excel,omitempty"`

	// Cranes is required for ingestion; the other two are optional
	Cranes      SheetRefConfig  `yaml:"cranes"`
	Failures    *SheetRefConfig `yaml:"failures,omitempty"`
	Maintenance *SheetRefConfig `yaml:"maintenance,omitempty"`
}

// SheetRefConfig points at one sheet of a spreadsheet or workbook
type SheetRefConfig struct {
	// SpreadsheetID is the Sheets document id, or the workbook path for excel sources
	SpreadsheetID string `yaml:"spreadsheetId"`

	// SheetName is the tab to read; the first tab when empty
	SheetName string `yaml:"sheetName,omitempty"`
}

// SheetsConfig defines Google Sheets API settings
type SheetsConfig struct {
	// BaseURL overrides the API endpoint, mostly for tests
	BaseURL string `yaml:"baseUrl,omitempty"`

	// APIKey is the API key used for requests
	// Prefer APIKeyFile or the environment in production
	APIKey string `yaml:"apiKey,omitempty"`

	// APIKeyFile is the path to a file containing the API key
	APIKeyFile string `yaml:"apiKeyFile,omitempty"`

	// Timeout bounds a single request (e.g., "30s")
	Timeout string `yaml:"timeout,omitempty"`

	// MaxRetries bounds the number of retries of a failed request
	MaxRetries uint `yaml:"maxRetries,omitempty"`
}

// ExcelConfig defines local workbook settings
type ExcelConfig struct {
	// Path is the default workbook used when a sheet reference carries no path
	Path string `yaml:"path"`
}

// CacheConfig defines the read cache in front of the record store
type CacheConfig struct {
	// Type is either "memory" (default) or "redis"
	Type string `yaml:"type,omitempty"`

	// TTL is the lifetime of a cached read (e.g., "5m")
	TTL string `yaml:"ttl,omitempty"`

	Redis *RedisConfig `yaml:"redis,omitempty"`
}

// RedisConfig defines the Redis connection used by the redis cache
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`

	// KeyPrefix namespaces all keys; Clear only removes keys under it
	KeyPrefix string `yaml:"keyPrefix,omitempty"`
}

// NotifyConfig defines where generated alerts are published
type NotifyConfig struct {
	MQTT *MQTTConfig `yaml:"mqtt,omitempty"`
}

// MQTTConfig defines the MQTT broker alerts are published to
type MQTTConfig struct {
	// Broker is the broker URL, e.g. "tcp://localhost:1883"
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"clientId,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`

	// TopicPrefix is prepended to "<craneId>/<type>"
	TopicPrefix string `yaml:"topicPrefix,omitempty"`

	// QoS is the MQTT quality of service level (0, 1 or 2)
	QoS byte `yaml:"qos,omitempty"`

	// Retained marks published alerts as retained messages
	Retained bool `yaml:"retained,omitempty"`

	// PublishTimeout bounds waiting for each publish (e.g., "5s")
	PublishTimeout string `yaml:"publishTimeout,omitempty"`
}

// LoadConfig loads and parses configuration from a YAML file
func LoadConfig(opts ...Option) (*Config, error) {
	loaderCfg := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}

	if loaderCfg.path == "" {
		return nil, fmt.Errorf("path is required")
	}

	data, err := os.ReadFile(loaderCfg.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when no file is given:
// a sheets source with nothing referenced and an in-memory cache
func Default() *Config {
	return &Config{
		Source: SourceConfig{Type: SourceTypeSheets},
		Cache:  CacheConfig{Type: CacheTypeMemory},
	}
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config cannot be nil")
	}

	var errs []error

	if c.Sync.Interval != "" {
		if _, err := time.ParseDuration(c.Sync.Interval); err != nil {
			errs = append(errs, fmt.Errorf("sync.interval must be a valid duration (e.g., '3m', '1h'): %w", err))
		}
	}

	errs = append(errs, c.Source.validate()...)
	errs = append(errs, c.Cache.validate()...)

	if c.Notify.MQTT != nil {
		errs = append(errs, c.Notify.MQTT.validate()...)
	}

	if err := c.Telemetry.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("telemetry: %w", err))
	}

	return errors.Join(errs...)
}

func (s *SourceConfig) validate() []error {
	var errs []error
	switch s.Type {
	case "", SourceTypeSheets:
		if s.Sheets != nil && s.Sheets.Timeout != "" {
			if _, err := time.ParseDuration(s.Sheets.Timeout); err != nil {
				errs = append(errs, fmt.Errorf("source.sheets.timeout must be a valid duration: %w", err))
			}
		}
	case SourceTypeExcel:
		if s.Excel == nil || s.Excel.Path == "" {
			if s.Cranes.SpreadsheetID == "" {
				errs = append(errs, fmt.Errorf("source.excel.path is required when source.cranes has no workbook path"))
			}
		}
	default:
		errs = append(errs, fmt.Errorf("source.type must be %q or %q, got %q", SourceTypeSheets, SourceTypeExcel, s.Type))
	}
	return errs
}

func (c *CacheConfig) validate() []error {
	var errs []error
	if c.TTL != "" {
		if d, err := time.ParseDuration(c.TTL); err != nil {
			errs = append(errs, fmt.Errorf("cache.ttl must be a valid duration: %w", err))
		} else if d <= 0 {
			errs = append(errs, fmt.Errorf("cache.ttl must be positive, got %s", c.TTL))
		}
	}
	switch c.Type {
	case "", CacheTypeMemory:
	case CacheTypeRedis:
		if c.Redis == nil || c.Redis.Addr == "" {
			errs = append(errs, fmt.Errorf("cache.redis.addr is required when cache.type is %q", CacheTypeRedis))
		}
	default:
		errs = append(errs, fmt.Errorf("cache.type must be %q or %q, got %q", CacheTypeMemory, CacheTypeRedis, c.Type))
	}
	return errs
}

func (m *MQTTConfig) validate() []error {
	var errs []error
	if m.Broker == "" {
		errs = append(errs, fmt.Errorf("notify.mqtt.broker is required"))
	}
	if m.QoS > 2 {
		errs = append(errs, fmt.Errorf("notify.mqtt.qos must be 0, 1 or 2, got %d", m.QoS))
	}
	if m.PublishTimeout != "" {
		if _, err := time.ParseDuration(m.PublishTimeout); err != nil {
			errs = append(errs, fmt.Errorf("notify.mqtt.publishTimeout must be a valid duration: %w", err))
		}
	}
	return errs
}

// GetSourceType returns the source type, using sheets if not specified
func (s *SourceConfig) GetSourceType() string {
	if s.Type == "" {
		return SourceTypeSheets
	}
	return s.Type
}

// Resolve fills a sheet reference with source-level defaults.
// Excel references without a path use the configured workbook.
func (s *SourceConfig) Resolve(ref SheetRefConfig) SheetRefConfig {
	if ref.SpreadsheetID == "" && s.GetSourceType() == SourceTypeExcel && s.Excel != nil {
		ref.SpreadsheetID = s.Excel.Path
	}
	return ref
}

// GetBaseURL returns the API endpoint, using the public Sheets API if not specified
func (s *SheetsConfig) GetBaseURL() string {
	if s == nil || s.BaseURL == "" {
		return DefaultSheetsBaseURL
	}
	return strings.TrimSuffix(s.BaseURL, "/")
}

// GetTimeout returns the request timeout, using the default if unset or invalid
func (s *SheetsConfig) GetTimeout() time.Duration {
	if s == nil {
		return DefaultSheetsTimeout
	}
	return parseDurationOr(s.Timeout, DefaultSheetsTimeout)
}

// GetAPIKey returns the Sheets API key using the following priority:
// 1. Read from APIKeyFile if specified
// 2. The APIKey field
// 3. CRANE_DASHBOARD_SHEETS_API_KEY environment variable
// 4. GOOGLE_SHEETS_API_KEY environment variable
func (s *SheetsConfig) GetAPIKey() (string, error) {
	if s != nil && s.APIKeyFile != "" {
		data, err := os.ReadFile(filepath.Clean(s.APIKeyFile))
		if err != nil {
			return "", fmt.Errorf("failed to read API key from file %s: %w", s.APIKeyFile, err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	if s != nil && s.APIKey != "" {
		return s.APIKey, nil
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if key := v.GetString("SHEETS_API_KEY"); key != "" {
		return key, nil
	}

	if key := os.Getenv("GOOGLE_SHEETS_API_KEY"); key != "" {
		return key, nil
	}

	return "", fmt.Errorf(
		"no Google Sheets API key configured: set source.sheets.apiKeyFile or %s_SHEETS_API_KEY environment variable",
		EnvPrefix,
	)
}

// GetCacheType returns the cache type, using memory if not specified
func (c *CacheConfig) GetCacheType() string {
	if c.Type == "" {
		return CacheTypeMemory
	}
	return c.Type
}

// GetTTL returns the cache TTL, using the default if unset or invalid
func (c *CacheConfig) GetTTL() time.Duration {
	return parseDurationOr(c.TTL, DefaultCacheTTL)
}

// GetKeyPrefix returns the key prefix, using the default if not specified
func (r *RedisConfig) GetKeyPrefix() string {
	if r.KeyPrefix == "" {
		return DefaultRedisKeyPrefix
	}
	return r.KeyPrefix
}

// GetTopicPrefix returns the topic prefix without a trailing slash
func (m *MQTTConfig) GetTopicPrefix() string {
	if m.TopicPrefix == "" {
		return DefaultMQTTTopicPrefix
	}
	return strings.TrimSuffix(m.TopicPrefix, "/")
}

// GetClientID returns the client id, using a host-derived id if not specified
func (m *MQTTConfig) GetClientID() string {
	if m.ClientID != "" {
		return m.ClientID
	}
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "local"
	}
	return "crane-dashboard-" + host
}

// GetPublishTimeout returns the publish timeout, using the default if unset or invalid
func (m *MQTTConfig) GetPublishTimeout() time.Duration {
	return parseDurationOr(m.PublishTimeout, DefaultMQTTPublishTimeout)
}

func parseDurationOr(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
