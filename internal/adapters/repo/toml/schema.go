package toml

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/gymctl/internal/config"
	applog "github.com/bnema/gymctl/internal/log"
	"github.com/rs/zerolog"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	API     apiSchema     `toml:"api,omitempty"`
	Secrets secretsSchema `toml:"secrets,omitempty"`
	Log     logSchema     `toml:"log,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported settings schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type apiSchema struct {
	BaseURL   string   `toml:"base_url,omitempty"`
	Timeout   string   `toml:"timeout,omitempty"`
	RateLimit *float64 `toml:"rate_limit,omitempty"`
	RateBurst *int     `toml:"rate_burst,omitempty"`
}

type secretsSchema struct {
	Dir     string `toml:"dir,omitempty"`
	Backend string `toml:"backend,omitempty"`
}

type logSchema struct {
	Level  string `toml:"level,omitempty"`
	Format string `toml:"format,omitempty"`
}

// field binds one dotted settings key to its place in the file.
type field struct {
	get func(*fileSchema) (string, bool)
	set func(*fileSchema, string) error
}

var fields = map[string]field{
	config.KeyBaseURL: stringField(func(s *fileSchema) *string { return &s.API.BaseURL }, parseBaseURL),
	config.KeyTimeout: stringField(func(s *fileSchema) *string { return &s.API.Timeout }, parseTimeout),
	config.KeyRateLimit: {
		get: func(s *fileSchema) (string, bool) {
			if s.API.RateLimit == nil {
				return "", false
			}
			return strconv.FormatFloat(*s.API.RateLimit, 'g', -1, 64), true
		},
		set: func(s *fileSchema, raw string) error {
			if raw == "" {
				s.API.RateLimit = nil
				return nil
			}
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil || value < 0 {
				return fmt.Errorf("rate limit %q must be a non-negative number", raw)
			}
			s.API.RateLimit = &value
			return nil
		},
	},
	config.KeyRateBurst: {
		get: func(s *fileSchema) (string, bool) {
			if s.API.RateBurst == nil {
				return "", false
			}
			return strconv.Itoa(*s.API.RateBurst), true
		},
		set: func(s *fileSchema, raw string) error {
			if raw == "" {
				s.API.RateBurst = nil
				return nil
			}
			value, err := strconv.Atoi(raw)
			if err != nil || value < 0 {
				return fmt.Errorf("rate burst %q must be a non-negative integer", raw)
			}
			s.API.RateBurst = &value
			return nil
		},
	},
	config.KeySecretsDir:     stringField(func(s *fileSchema) *string { return &s.Secrets.Dir }, nil),
	config.KeySecretsBackend: stringField(func(s *fileSchema) *string { return &s.Secrets.Backend }, parseSecretsBackend),
	config.KeyLogLevel:       stringField(func(s *fileSchema) *string { return &s.Log.Level }, parseLogLevel),
	config.KeyLogFormat:      stringField(func(s *fileSchema) *string { return &s.Log.Format }, parseLogFormat),
}

func stringField(ref func(*fileSchema) *string, normalize func(string) (string, error)) field {
	return field{
		get: func(s *fileSchema) (string, bool) {
			value := *ref(s)
			return value, value != ""
		},
		set: func(s *fileSchema, raw string) error {
			if raw != "" && normalize != nil {
				normalized, err := normalize(raw)
				if err != nil {
					return err
				}
				raw = normalized
			}
			*ref(s) = raw
			return nil
		},
	}
}

func parseBaseURL(raw string) (string, error) {
	lower := strings.ToLower(raw)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return "", fmt.Errorf("base url %q must start with http:// or https://", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

func parseTimeout(raw string) (string, error) {
	timeout, err := time.ParseDuration(raw)
	if err != nil || timeout < 0 {
		return "", fmt.Errorf("timeout %q must be a non-negative duration such as 15s", raw)
	}
	return timeout.String(), nil
}

func parseSecretsBackend(raw string) (string, error) {
	backend := strings.ToLower(raw)
	switch backend {
	case config.SecretsBackendChain, config.SecretsBackendFile, config.SecretsBackendPass:
		return backend, nil
	default:
		return "", fmt.Errorf("secrets backend %q must be one of chain, file, pass", raw)
	}
}

func parseLogLevel(raw string) (string, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil || level == zerolog.NoLevel {
		return "", fmt.Errorf("unknown log level %q", raw)
	}
	return level.String(), nil
}

func parseLogFormat(raw string) (string, error) {
	format := strings.ToLower(raw)
	switch format {
	case applog.FormatConsole, applog.FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("log format %q must be console or json", raw)
	}
}
