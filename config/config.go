package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

// Placeholders used when the mail credentials are not configured.
// They are not valid addresses, so a send attempted with them fails.
const (
	PlaceholderEmail    = "Custom Message / Email does not exist"
	PlaceholderPassword = "Custom Message / Password does not exist"
)

const DefaultFeedURL = "https://api.npoint.io/e52811763db21dfef489"

type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Site    SiteConfig    `yaml:"site"`
	Feed    FeedConfig    `yaml:"feed"`
	Mail    MailConfig    `yaml:"mail"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// AllowedOrigins applies to the JSON API only.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// SiteConfig holds values injected into every page.
type SiteConfig struct {
	OwnerName string `yaml:"owner_name"`
}

type FeedConfig struct {
	URL string `yaml:"url"`

	// Format is "json" or "rss".
	Format          string        `yaml:"format"`
	Timeout         time.Duration `yaml:"timeout"`
	KeepSourceDates bool          `yaml:"keep_source_dates"`

	// CacheTTL of zero disables caching.
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type MailConfig struct {
	Host     string          `yaml:"host"`
	Port     int             `yaml:"port"`
	From     string          `yaml:"from"`
	Password string          `yaml:"password"`
	To       string          `yaml:"to"`
	Timeout  time.Duration   `yaml:"timeout"`
	Quota    MailQuotaConfig `yaml:"quota"`
}

// MailQuotaConfig caps outbound contact mail per minute and per day.
// Zero or negative means unlimited.
type MailQuotaConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	RequestsPerDay    int `yaml:"requests_per_day"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads the .env file next to path, then path itself with ${VAR}
// references expanded. A missing config file yields the defaults.
// Environment variables override file values.
func Load(path string) (*AppConfig, error) {
	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ENV_FILE))

	var c AppConfig
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	c.applyEnv()
	c.setDefaults()

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadDefault loads config.yaml from GetBasePath, or from the working directory.
func LoadDefault() (*AppConfig, error) {
	base := GetBasePath()
	if base == "" {
		base = "."
	}
	return Load(filepath.Join(base, CONFIG_FILE))
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("FEED_URL"); v != "" {
		c.Feed.URL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MY_FROM_EMAIL1"); v != "" {
		c.Mail.From = v
	}
	if v := os.Getenv("PASSWORD"); v != "" {
		c.Mail.Password = v
	}
	if v := os.Getenv("THEIR_EMAIL2"); v != "" {
		c.Mail.To = v
	}
}

func (c *AppConfig) setDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}
	if c.Site.OwnerName == "" {
		c.Site.OwnerName = `Gavin "Siris" Martin`
	}
	if c.Feed.URL == "" {
		c.Feed.URL = DefaultFeedURL
	}
	c.Feed.Format = strings.ToLower(strings.TrimSpace(c.Feed.Format))
	if c.Feed.Format == "" {
		c.Feed.Format = "json"
	}
	if c.Feed.Timeout == 0 {
		c.Feed.Timeout = 10 * time.Second
	}
	if c.Mail.Host == "" {
		c.Mail.Host = "smtp.gmail.com"
	}
	if c.Mail.Port == 0 {
		c.Mail.Port = 587
	}
	if c.Mail.From == "" {
		c.Mail.From = PlaceholderEmail
	}
	if c.Mail.Password == "" {
		c.Mail.Password = PlaceholderPassword
	}
	if c.Mail.To == "" {
		c.Mail.To = PlaceholderEmail
	}
	if c.Mail.Timeout == 0 {
		c.Mail.Timeout = 15 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func (c *AppConfig) validate() error {
	if c.Feed.Format != "json" && c.Feed.Format != "rss" {
		return fmt.Errorf("feed.format must be json or rss, got %q", c.Feed.Format)
	}
	if c.Feed.Timeout < 0 {
		return fmt.Errorf("feed.timeout must not be negative")
	}
	if c.Feed.CacheTTL < 0 {
		return fmt.Errorf("feed.cache_ttl must not be negative")
	}
	if c.Mail.Port < 1 || c.Mail.Port > 65535 {
		return fmt.Errorf("mail.port out of range: %d", c.Mail.Port)
	}
	return nil
}

// MailCredentialsConfigured reports whether real sender/recipient values were supplied.
func (c AppConfig) MailCredentialsConfigured() bool {
	return c.Mail.From != PlaceholderEmail && c.Mail.To != PlaceholderEmail && c.Mail.Password != PlaceholderPassword
}

// GetBasePath walks up from the working directory to the first directory holding config.yaml.
func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
