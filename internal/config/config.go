// Package config loads CLI and server configuration from a file, the environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/resumatch/internal/rendering"
	"github.com/jonathan/resumatch/internal/types"
	"github.com/spf13/viper"
)

// StdinPath in place of a file path reads the document from standard input.
const StdinPath = "-"

// EnvPrefix prefixes environment overrides, e.g. RESUMATCH_SERVER_PORT.
const EnvPrefix = "RESUMATCH"

// Config represents the CLI and server configuration.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Inputs
	Job      string `mapstructure:"job" json:"job,omitempty"`             // Path to job description text file
	JobURL   string `mapstructure:"job_url" json:"job_url,omitempty"`     // URL to fetch job posting from
	Resume   string `mapstructure:"resume" json:"resume,omitempty"`       // Path to résumé text file
	JobTitle string `mapstructure:"job_title" json:"job_title,omitempty"` // Optional title boosted into the JD

	// Output
	Format string `mapstructure:"format" json:"format,omitempty"`
	Output string `mapstructure:"output" json:"output,omitempty"`

	// Behavior
	UseBrowser  bool   `mapstructure:"use_browser" json:"use_browser,omitempty"` // Use headless browser for SPA sites
	Verbose     bool   `mapstructure:"verbose" json:"verbose,omitempty"`
	DatabaseURL string `mapstructure:"database_url" json:"database_url,omitempty"` // PostgreSQL connection URL

	Analysis AnalysisConfig `mapstructure:"analysis" json:"analysis"`
	Server   ServerConfig   `mapstructure:"server" json:"server"`
	Redis    RedisConfig    `mapstructure:"redis" json:"redis"`
	Logging  LoggingConfig  `mapstructure:"logging" json:"logging"`
	Fetch    FetchConfig    `mapstructure:"fetch" json:"fetch"`
	Auth     AuthConfig     `mapstructure:"auth" json:"-"`
}

// AnalysisConfig holds default analysis weights.
type AnalysisConfig struct {
	TitleWeight  float64 `mapstructure:"title_weight" json:"title_weight"`
	HardWeight   float64 `mapstructure:"hard_weight" json:"hard_weight"`
	SoftWeight   float64 `mapstructure:"soft_weight" json:"soft_weight"`
	UseStopwords bool    `mapstructure:"use_stopwords" json:"use_stopwords"`
	TopK         int     `mapstructure:"top_k" json:"top_k"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int      `mapstructure:"port" json:"port"`
	RateLimit   bool     `mapstructure:"rate_limit" json:"rate_limit"`
	CORSOrigins []string `mapstructure:"cors_origins" json:"cors_origins,omitempty"`
}

// RedisConfig holds result cache settings. An empty address disables caching.
type RedisConfig struct {
	Address  string        `mapstructure:"address" json:"address,omitempty"`
	Password string        `mapstructure:"password" json:"-"`
	DB       int           `mapstructure:"db" json:"db"`
	TTL      time.Duration `mapstructure:"ttl" json:"ttl"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// FetchConfig holds job posting fetch settings.
type FetchConfig struct {
	Timeout time.Duration `mapstructure:"timeout" json:"timeout"`
}

// AuthConfig holds secrets for user accounts. It is read from the environment only.
type AuthConfig struct {
	JWTSecret          string `mapstructure:"jwt_secret"`
	JWTExpirationHours int    `mapstructure:"jwt_expiration_hours"`
	BcryptCost         int    `mapstructure:"bcrypt_cost"`
	PasswordPepper     string `mapstructure:"password_pepper"`
}

// Default returns the built-in configuration.
func Default() Config {
	settings := types.DefaultSettings()
	return Config{
		Format: string(rendering.FormatText),
		Analysis: AnalysisConfig{
			TitleWeight:  settings.TitleWeight,
			HardWeight:   settings.HardWeight,
			SoftWeight:   settings.SoftWeight,
			UseStopwords: settings.UseStopwords,
			TopK:         types.DefaultTopK,
		},
		Server: ServerConfig{
			Port:      8080,
			RateLimit: true,
		},
		Redis: RedisConfig{
			TTL: 24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Fetch: FetchConfig{
			Timeout: 30 * time.Second,
		},
		Auth: AuthConfig{
			JWTExpirationHours: defaultJWTExpirationHours,
			BcryptCost:         defaultBcryptCost,
		},
	}
}

// LoadConfig loads configuration from a YAML or JSON file, then applies environment overrides.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return load(path)
}

// Load is LoadConfig when path is set, and defaults plus environment overrides otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		return load("")
	}
	return LoadConfig(path)
}

func load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// newViper registers every key with its default so environment overrides apply on Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("job", d.Job)
	v.SetDefault("job_url", d.JobURL)
	v.SetDefault("resume", d.Resume)
	v.SetDefault("job_title", d.JobTitle)
	v.SetDefault("format", d.Format)
	v.SetDefault("output", d.Output)
	v.SetDefault("use_browser", d.UseBrowser)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("database_url", d.DatabaseURL)
	v.SetDefault("analysis.title_weight", d.Analysis.TitleWeight)
	v.SetDefault("analysis.hard_weight", d.Analysis.HardWeight)
	v.SetDefault("analysis.soft_weight", d.Analysis.SoftWeight)
	v.SetDefault("analysis.use_stopwords", d.Analysis.UseStopwords)
	v.SetDefault("analysis.top_k", d.Analysis.TopK)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.rate_limit", d.Server.RateLimit)
	v.SetDefault("server.cors_origins", d.Server.CORSOrigins)
	v.SetDefault("redis.address", d.Redis.Address)
	v.SetDefault("redis.password", d.Redis.Password)
	v.SetDefault("redis.db", d.Redis.DB)
	v.SetDefault("redis.ttl", d.Redis.TTL)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("fetch.timeout", d.Fetch.Timeout)
	v.SetDefault("auth.jwt_expiration_hours", d.Auth.JWTExpirationHours)
	v.SetDefault("auth.bcrypt_cost", d.Auth.BcryptCost)

	// Auth secrets keep their conventional unprefixed names.
	_ = v.BindEnv("auth.jwt_secret", "JWT_SECRET", EnvPrefix+"_AUTH_JWT_SECRET")
	_ = v.BindEnv("auth.jwt_expiration_hours", "JWT_EXPIRATION_HOURS", EnvPrefix+"_AUTH_JWT_EXPIRATION_HOURS")
	_ = v.BindEnv("auth.bcrypt_cost", "BCRYPT_COST", EnvPrefix+"_AUTH_BCRYPT_COST")
	_ = v.BindEnv("auth.password_pepper", "PASSWORD_PEPPER", EnvPrefix+"_AUTH_PASSWORD_PEPPER")
	_ = v.BindEnv("database_url", "DATABASE_URL", EnvPrefix+"_DATABASE_URL")

	return v
}

// Validate checks that the configuration has valid values.
// Required inputs are checked by the CLI after flags are merged.
func (c *Config) Validate() error {
	var errs []error

	if c.Job != "" && c.JobURL != "" {
		errs = append(errs, fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive"))
	}

	if _, err := rendering.ParseFormat(c.Format); err != nil {
		errs = append(errs, fmt.Errorf("config error: %w", err))
	}

	a := c.Analysis
	if a.TitleWeight != 0 && (a.TitleWeight < 1.0 || a.TitleWeight > 2.0) {
		errs = append(errs, fmt.Errorf("config error: 'analysis.title_weight' must be between 1.0 and 2.0"))
	}
	if a.HardWeight != 0 && (a.HardWeight < 1.0 || a.HardWeight > 3.0) {
		errs = append(errs, fmt.Errorf("config error: 'analysis.hard_weight' must be between 1.0 and 3.0"))
	}
	if a.SoftWeight != 0 && (a.SoftWeight < 1.0 || a.SoftWeight > 2.0) {
		errs = append(errs, fmt.Errorf("config error: 'analysis.soft_weight' must be between 1.0 and 2.0"))
	}
	if a.TopK < 0 {
		errs = append(errs, fmt.Errorf("config error: 'analysis.top_k' must be non-negative"))
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("config error: 'server.port' out of range: %d", c.Server.Port))
	}
	if c.Redis.TTL < 0 {
		errs = append(errs, fmt.Errorf("config error: 'redis.ttl' must be non-negative"))
	}

	for _, p := range []struct{ name, path string }{{"job", c.Job}, {"resume", c.Resume}} {
		if p.path == "" || p.path == StdinPath {
			continue
		}
		if _, err := os.Stat(p.path); os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("config error: %s file not found: %s", p.name, p.path))
		}
	}

	return errors.Join(errs...)
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	for _, f := range []struct {
		dst *string
		src string
	}{
		{&result.Job, defaults.Job},
		{&result.JobURL, defaults.JobURL},
		{&result.Resume, defaults.Resume},
		{&result.JobTitle, defaults.JobTitle},
		{&result.Format, defaults.Format},
		{&result.Output, defaults.Output},
		{&result.DatabaseURL, defaults.DatabaseURL},
		{&result.Redis.Address, defaults.Redis.Address},
		{&result.Logging.Level, defaults.Logging.Level},
		{&result.Logging.Format, defaults.Logging.Format},
	} {
		if *f.dst == "" {
			*f.dst = f.src
		}
	}

	if result.Analysis.TitleWeight == 0 {
		result.Analysis.TitleWeight = defaults.Analysis.TitleWeight
	}
	if result.Analysis.HardWeight == 0 {
		result.Analysis.HardWeight = defaults.Analysis.HardWeight
	}
	if result.Analysis.SoftWeight == 0 {
		result.Analysis.SoftWeight = defaults.Analysis.SoftWeight
	}
	if result.Analysis.TopK == 0 {
		result.Analysis.TopK = defaults.Analysis.TopK
	}
	if result.Server.Port == 0 {
		result.Server.Port = defaults.Server.Port
	}
	if result.Redis.TTL == 0 {
		result.Redis.TTL = defaults.Redis.TTL
	}
	if result.Fetch.Timeout == 0 {
		result.Fetch.Timeout = defaults.Fetch.Timeout
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Settings returns the analysis settings described by the configuration.
func (c *Config) Settings() types.AnalysisSettings {
	return types.AnalysisSettings{
		TitleText:    c.JobTitle,
		TitleWeight:  c.Analysis.TitleWeight,
		HardWeight:   c.Analysis.HardWeight,
		SoftWeight:   c.Analysis.SoftWeight,
		UseStopwords: c.Analysis.UseStopwords,
	}
}
