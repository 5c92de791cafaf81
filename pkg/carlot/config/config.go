package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nekruzvatanshoev/carlot/pkg/carlot/contact"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/dal"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Keys shared by flags, env variables and the config file.
const (
	KeyAddress      = "address"
	KeyCatalog      = "catalog"
	KeyLogLevel     = "log-level"
	KeyLogFormat    = "log-format"
	KeyContactDelay = "contact-delay"
	KeyCORSOrigins  = "cors-origins"
	KeyFeatured     = "featured"
)

// EnvPrefix prefixes every env variable, e.g. CARLOT_ADDRESS.
const EnvPrefix = "CARLOT"

// Config defines the server configuration
type Config struct {
	Address      string
	CatalogFile  string
	LogLevel     string
	LogFormat    string
	ContactDelay time.Duration
	CORSOrigins  []string
	Featured     int
}

// SetDefaults registers defaults and env bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAddress, ":8080")
	v.SetDefault(KeyCatalog, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyContactDelay, contact.DefaultDelay)
	v.SetDefault(KeyCORSOrigins, []string{"*"})
	v.SetDefault(KeyFeatured, 3)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// SERVER_ADDRESS is still honoured for older deployments.
	_ = v.BindEnv(KeyAddress, EnvPrefix+"_ADDRESS", "SERVER_ADDRESS")
}

// Load reads the configuration out of v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Address:      v.GetString(KeyAddress),
		CatalogFile:  v.GetString(KeyCatalog),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
		ContactDelay: v.GetDuration(KeyContactDelay),
		CORSOrigins:  v.GetStringSlice(KeyCORSOrigins),
		Featured:     v.GetInt(KeyFeatured),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration
func (c Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("address is required")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	if c.ContactDelay < 0 {
		return fmt.Errorf("contact delay must not be negative: %s", c.ContactDelay)
	}
	if c.Featured < 0 {
		return fmt.Errorf("featured must not be negative: %d", c.Featured)
	}
	return nil
}

// Logger builds the process logger.
func (c Config) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var l zerolog.Logger
	if c.LogFormat == "json" {
		l = zerolog.New(os.Stdout)
	} else {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	return l.Level(level).With().Timestamp().Logger()
}

// Catalog loads the configured catalog file, or the seeded stock when no
// file is set.
func (c Config) Catalog() (dal.Catalog, error) {
	if c.CatalogFile == "" {
		return dal.Seed(), nil
	}
	f, err := os.Open(c.CatalogFile)
	if err != nil {
		return dal.Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return dal.LoadCatalog(f)
}
