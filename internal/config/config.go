package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/gymctl"
	envPrefix  = "GYM"

	KeyBaseURL        = "api.base_url"
	KeyTimeout        = "api.timeout"
	KeyRateLimit      = "api.rate_limit"
	KeyRateBurst      = "api.rate_burst"
	KeySecretsDir     = "secrets.dir"
	KeySecretsBackend = "secrets.backend"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"

	DefaultBaseURL = "http://localhost:8080/api"

	SecretsBackendChain = "chain"
	SecretsBackendFile  = "file"
	SecretsBackendPass  = "pass"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// Keys lists every setting understood by the client, in display order.
var Keys = []string{
	KeyBaseURL,
	KeyTimeout,
	KeyRateLimit,
	KeyRateBurst,
	KeySecretsDir,
	KeySecretsBackend,
	KeyLogLevel,
	KeyLogFormat,
}

type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64
	RateBurst int
}

type SecretsConfig struct {
	Dir     string
	Backend string
}

type LogConfig struct {
	Level  string
	Format string
}

type Config struct {
	// Path is the settings file location, whether or not it exists yet.
	Path    string
	API     APIConfig
	Secrets SecretsConfig
	Log     LogConfig
}

// Load resolves configuration from defaults, the settings file, a local
// .env file and GYM_* environment variables, in increasing precedence.
func Load(v *viper.Viper, homeDir string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}

	dir := filepath.Join(homeDir, configDir)
	setDefaults(v, dir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	path := filepath.Join(dir, configName+"."+configType)
	if explicit := v.GetString("config"); explicit != "" {
		path = explicit
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}
	if used := v.ConfigFileUsed(); used != "" {
		path = used
	}

	cfg := Config{
		Path: path,
		API: APIConfig{
			BaseURL:   strings.TrimSpace(v.GetString(KeyBaseURL)),
			Timeout:   v.GetDuration(KeyTimeout),
			RateLimit: v.GetFloat64(KeyRateLimit),
			RateBurst: v.GetInt(KeyRateBurst),
		},
		Secrets: SecretsConfig{
			Dir:     v.GetString(KeySecretsDir),
			Backend: strings.ToLower(v.GetString(KeySecretsBackend)),
		},
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api base url is empty")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api timeout %s is negative", c.API.Timeout)
	}
	if c.API.RateLimit < 0 || c.API.RateBurst < 0 {
		return errors.New("api rate limit and burst must not be negative")
	}
	switch c.Secrets.Backend {
	case SecretsBackendChain, SecretsBackendFile, SecretsBackendPass:
	default:
		return fmt.Errorf("unsupported secrets backend %q", c.Secrets.Backend)
	}
	if c.Secrets.Dir == "" {
		return errors.New("secrets dir is empty")
	}

	return nil
}

// EnvName is the environment variable that overrides key.
func EnvName(key string) string {
	return envPrefix + "_" + strings.ToUpper(envKeyReplacer.Replace(key))
}

// Get returns a single resolved setting as text.
func (c Config) Get(key string) (string, bool) {
	switch key {
	case KeyBaseURL:
		return c.API.BaseURL, true
	case KeyTimeout:
		return c.API.Timeout.String(), true
	case KeyRateLimit:
		return fmt.Sprintf("%g", c.API.RateLimit), true
	case KeyRateBurst:
		return fmt.Sprintf("%d", c.API.RateBurst), true
	case KeySecretsDir:
		return c.Secrets.Dir, true
	case KeySecretsBackend:
		return c.Secrets.Backend, true
	case KeyLogLevel:
		return c.Log.Level, true
	case KeyLogFormat:
		return c.Log.Format, true
	default:
		return "", false
	}
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault(KeyBaseURL, DefaultBaseURL)
	v.SetDefault(KeyTimeout, 15*time.Second)
	v.SetDefault(KeyRateLimit, 10.0)
	v.SetDefault(KeyRateBurst, 20)
	v.SetDefault(KeySecretsDir, filepath.Join(dir, "secrets"))
	v.SetDefault(KeySecretsBackend, SecretsBackendChain)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}
