package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/gymctl/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*SettingsRepository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gymctl", "config.toml")
	repo, err := NewSettingsRepository(path)
	require.NoError(t, err)
	return repo, path
}

func TestSettingsRepositoryRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := NewSettingsRepository("  ")
	require.Error(t, err)
}

func TestSettingsRepositorySetNormalizesValues(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, config.KeyBaseURL, "https://gym.example.com/api/"))
	require.NoError(t, repo.Set(ctx, config.KeyTimeout, "1m30s"))
	require.NoError(t, repo.Set(ctx, config.KeyRateLimit, "2.5"))
	require.NoError(t, repo.Set(ctx, config.KeyRateBurst, "5"))
	require.NoError(t, repo.Set(ctx, config.KeySecretsBackend, "FILE"))
	require.NoError(t, repo.Set(ctx, config.KeyLogLevel, "Debug"))
	require.NoError(t, repo.Set(ctx, config.KeyLogFormat, "json"))

	values, err := repo.Values(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		config.KeyBaseURL:        "https://gym.example.com/api",
		config.KeyTimeout:        "1m30s",
		config.KeyRateLimit:      "2.5",
		config.KeyRateBurst:      "5",
		config.KeySecretsBackend: "file",
		config.KeyLogLevel:       "debug",
		config.KeyLogFormat:      "json",
	}, values)
}

func TestSettingsRepositoryRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		key     string
		value   string
		wantErr string
	}{
		{key: config.KeyBaseURL, value: "ftp://gym", wantErr: "must start with http"},
		{key: config.KeyTimeout, value: "soon", wantErr: "non-negative duration"},
		{key: config.KeyTimeout, value: "-1s", wantErr: "non-negative duration"},
		{key: config.KeyRateLimit, value: "-3", wantErr: "non-negative number"},
		{key: config.KeyRateBurst, value: "1.5", wantErr: "non-negative integer"},
		{key: config.KeySecretsBackend, value: "keyring", wantErr: "one of chain, file, pass"},
		{key: config.KeyLogLevel, value: "loud", wantErr: "unknown log level"},
		{key: config.KeyLogFormat, value: "xml", wantErr: "console or json"},
	}

	for _, tc := range testCases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			repo, path := newTestRepository(t)

			err := repo.Set(context.Background(), tc.key, tc.value)
			require.ErrorContains(t, err, tc.wantErr)

			_, statErr := os.Stat(path)
			assert.True(t, errors.Is(statErr, os.ErrNotExist))
		})
	}
}

func TestSettingsRepositoryUnknownKey(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	err := repo.Set(context.Background(), "api.password", "x")
	require.ErrorIs(t, err, ErrUnknownSetting)
	assert.ErrorContains(t, err, config.KeyBaseURL)
}

func TestSettingsRepositoryUnsetRemovesKey(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, config.KeyRateBurst, "5"))
	require.NoError(t, repo.Set(ctx, config.KeyLogLevel, "info"))
	require.NoError(t, repo.Unset(ctx, config.KeyRateBurst))

	values, err := repo.Values(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{config.KeyLogLevel: "info"}, values)
}

func TestSettingsRepositoryWritesVersionAndPermissions(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	require.NoError(t, repo.Set(context.Background(), config.KeyLogLevel, "info"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(settingsFileMode), info.Mode().Perm())
}

func TestSettingsRepositoryMissingFileHasNoValues(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	values, err := repo.Values(context.Background())
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestSettingsRepositoryMalformedFile(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("api = ["), 0o600))

	_, err := repo.Values(context.Background())
	require.ErrorContains(t, err, "decode settings file")

	err = repo.Set(context.Background(), config.KeyLogLevel, "info")
	require.ErrorContains(t, err, "decode settings file")
}

func TestSettingsRepositoryFutureSchemaVersion(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"version = 999",
		"",
	}, "\n")), 0o600))

	_, err := repo.Values(context.Background())
	require.ErrorContains(t, err, "unsupported settings schema version")
}

func TestSettingsRepositoryPreservesHandWrittenSettings(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"[api]",
		"base_url = \"https://gym.example.com/api\"",
		"",
	}, "\n")), 0o600))

	require.NoError(t, repo.Set(context.Background(), config.KeyLogFormat, "json"))

	values, err := repo.Values(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://gym.example.com/api", values[config.KeyBaseURL])
	assert.Equal(t, "json", values[config.KeyLogFormat])
}

func TestSettingsRepositoryCanceledContext(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, repo.Set(ctx, config.KeyLogLevel, "info"), context.Canceled)
}

func TestSettingsRepositoryFileIsReadByConfigLoader(t *testing.T) {
	repo, path := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, config.KeyBaseURL, "https://gym.example.com/api"))
	require.NoError(t, repo.Set(ctx, config.KeyTimeout, "30s"))
	require.NoError(t, repo.Set(ctx, config.KeyRateLimit, "0"))

	v := viper.New()
	v.Set("config", path)
	cfg, err := config.Load(v, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://gym.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Zero(t, cfg.API.RateLimit)
	assert.Equal(t, 20, cfg.API.RateBurst)
}

func TestSettingsRepositoryConcurrentWritersKeepBothKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	repoA, err := NewSettingsRepository(path)
	require.NoError(t, err)
	repoB, err := NewSettingsRepository(path)
	require.NoError(t, err)

	const writes = 50
	errCh := make(chan error, writes*2)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			errCh <- repoA.Set(context.Background(), config.KeyRateBurst, strconv.Itoa(i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			errCh <- repoB.Set(context.Background(), config.KeyTimeout, strconv.Itoa(i)+"s")
		}
	}()

	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	values, err := repoA.Values(context.Background())
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(writes-1), values[config.KeyRateBurst])
	assert.Equal(t, (time.Duration(writes-1) * time.Second).String(), values[config.KeyTimeout])
}
