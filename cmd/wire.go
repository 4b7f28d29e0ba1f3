package cmd

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bnema/gymctl/internal/adapters/auth"
	"github.com/bnema/gymctl/internal/adapters/backend"
	activitiesrender "github.com/bnema/gymctl/internal/adapters/render/activities"
	tomlrepo "github.com/bnema/gymctl/internal/adapters/repo/toml"
	chainstore "github.com/bnema/gymctl/internal/adapters/secrets/chain"
	filestore "github.com/bnema/gymctl/internal/adapters/secrets/file"
	passstore "github.com/bnema/gymctl/internal/adapters/secrets/pass"
	"github.com/bnema/gymctl/internal/adapters/transport"
	"github.com/bnema/gymctl/internal/application"
	"github.com/bnema/gymctl/internal/config"
	"github.com/bnema/gymctl/internal/domain"
	applog "github.com/bnema/gymctl/internal/log"
	"github.com/bnema/gymctl/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const staleAfter = 5 * time.Minute

// app holds everything a single process needs. Commands share it and
// Close releases it once the command returns.
type app struct {
	cfg         config.Config
	logger      zerolog.Logger
	credentials ports.CredentialStore
	sessions    *application.SessionManager
	cache       *application.ActivityCache
	enrollment  *application.EnrollmentCoordinator
	settings    *tomlrepo.SettingsRepository
	inspector   *auth.Inspector
	render      renderers
	now         func() time.Time

	mu         sync.Mutex
	bootstraps []*application.Bootstrap
}

type renderers struct {
	list      func([]domain.Activity, activitiesrender.RenderOptions) (string, error)
	detail    func(domain.Activity, activitiesrender.RenderOptions) (string, error)
	roster    func([]domain.MemberActivity, activitiesrender.RenderOptions) (string, error)
	dashboard func(activitiesrender.Dashboard, activitiesrender.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := config.Load(viper.New(), homeDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := applog.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	store, err := newCredentialStore(cfg.Secrets)
	if err != nil {
		return nil, fmt.Errorf("wire credential store: %w", err)
	}

	client, err := transport.New(transport.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		RateLimit: cfg.API.RateLimit,
		RateBurst: cfg.API.RateBurst,
		Logger:    logger.With().Str("component", "transport").Logger(),
	})
	if err != nil {
		return nil, fmt.Errorf("wire transport: %w", err)
	}

	settings, err := tomlrepo.NewSettingsRepository(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("wire settings repository: %w", err)
	}

	gateway := backend.NewGateway(client)
	clock := ports.SystemClock{}
	sessions := application.NewSessionManager(gateway, store, client, logger)
	cache := application.NewActivityCache(gateway, clock, logger)

	return &app{
		cfg:         cfg,
		logger:      logger,
		credentials: store,
		sessions:    sessions,
		cache:       cache,
		enrollment:  application.NewEnrollmentCoordinator(gateway, cache, sessions, logger),
		settings:    settings,
		inspector:   auth.NewInspector(clock),
		render: renderers{
			list:      activitiesrender.RenderList,
			detail:    activitiesrender.RenderDetail,
			roster:    activitiesrender.RenderRoster,
			dashboard: activitiesrender.RenderDashboard,
		},
		now: clock.Now,
	}, nil
}

func newCredentialStore(cfg config.SecretsConfig) (ports.CredentialStore, error) {
	switch cfg.Backend {
	case config.SecretsBackendFile:
		return filestore.NewStore(cfg.Dir), nil
	case config.SecretsBackendPass:
		return passstore.NewStore(), nil
	default:
		return chainstore.NewPassFirstWithFileFallback(cfg.Dir)
	}
}

// start runs a bootstrap scoped to the current command. The error is the
// roster refresh failure, if any; the session is restored either way.
func (a *app) start(ctx context.Context, opts application.BootstrapOptions) error {
	bootstrap := application.NewBootstrap(a.sessions, a.cache, a.enrollment, opts, a.logger)

	a.mu.Lock()
	a.bootstraps = append(a.bootstraps, bootstrap)
	a.mu.Unlock()

	return bootstrap.Start(ctx)
}

// currentUser restores the stored session and returns its user, or
// ErrNotAuthenticated when nobody is signed in.
func (a *app) currentUser(ctx context.Context) (domain.UserIdentity, error) {
	a.sessions.Restore(ctx)

	user, ok := a.sessions.Session().User()
	if !ok {
		return domain.UserIdentity{}, domain.ErrNotAuthenticated
	}
	return user, nil
}

func (a *app) renderOptions() activitiesrender.RenderOptions {
	opts := activitiesrender.RenderOptions{
		Now:        a.now(),
		Admin:      a.sessions.IsAdmin(),
		FetchedAt:  a.cache.LastFetched(),
		StaleAfter: staleAfter,
	}
	if a.sessions.IsAuthenticated() {
		opts.IsEnrolled = a.enrollment.IsEnrolled
	}
	return opts
}

func (a *app) Close() {
	a.mu.Lock()
	bootstraps := a.bootstraps
	a.bootstraps = nil
	a.mu.Unlock()

	for _, bootstrap := range bootstraps {
		bootstrap.Close()
	}
}
