package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"sync"

	"github.com/bnema/gymctl/internal/domain"
	"github.com/bnema/gymctl/internal/ports"
	"github.com/rs/zerolog"
)

// SessionKey is the credential store key holding the persisted session.
const SessionKey = "gymctl/session"

const minPasswordLength = 6

var (
	ErrMissingCredentials  = errors.New("email and password are required")
	ErrInvalidRegistration = errors.New("invalid registration")
)

type sessionRecord struct {
	User  *userRecord `json:"user"`
	Token string      `json:"token"`
}

type userRecord struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SessionManager owns the authenticated session. The token held by the
// mirror always equals the token of the current session.
type SessionManager struct {
	backend ports.Backend
	store   ports.CredentialStore
	mirror  ports.TokenMirror
	logger  zerolog.Logger

	mu         sync.RWMutex
	session    domain.Session
	generation uint64

	restoreOnce sync.Once
	ready       chan struct{}
	listeners   observers[domain.Session]
}

func NewSessionManager(backend ports.Backend, store ports.CredentialStore, mirror ports.TokenMirror, logger zerolog.Logger) *SessionManager {
	return &SessionManager{
		backend: backend,
		store:   store,
		mirror:  mirror,
		logger:  logger.With().Str("component", "session").Logger(),
		ready:   make(chan struct{}),
	}
}

// Restore loads the persisted session once. Any problem with the stored
// record leaves the client unauthenticated.
func (m *SessionManager) Restore(ctx context.Context) {
	m.restoreOnce.Do(func() {
		m.mu.RLock()
		startGeneration := m.generation
		m.mu.RUnlock()

		session, err := m.load(ctx)
		if err != nil {
			m.logger.Debug().Err(err).Msg("no usable persisted session")
		}

		m.mu.Lock()
		if m.generation == startGeneration {
			m.session = session
			m.mirror.SetToken(session.Token())
		} else {
			// login or logout finished while the record was loading
			session = m.session
		}
		m.mu.Unlock()

		close(m.ready)
		m.listeners.notify(ctx, session)
	})
}

func (m *SessionManager) load(ctx context.Context) (domain.Session, error) {
	raw, err := m.store.Get(ctx, SessionKey)
	if err != nil {
		return domain.Session{}, fmt.Errorf("read persisted session: %w", err)
	}

	var record sessionRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return domain.Session{}, fmt.Errorf("decode persisted session: %w", err)
	}
	if record.User == nil {
		return domain.Session{}, fmt.Errorf("%w: persisted record has no user", domain.ErrInvalidSession)
	}

	return domain.NewSession(record.User.toDomain(), record.Token)
}

func (m *SessionManager) persist(ctx context.Context, session domain.Session) error {
	user, _ := session.User()
	payload, err := json.Marshal(sessionRecord{User: newUserRecord(user), Token: session.Token()})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := m.store.Put(ctx, SessionKey, string(payload)); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	return nil
}

func (m *SessionManager) Login(ctx context.Context, email, password string) (domain.UserIdentity, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.UserIdentity{}, ErrMissingCredentials
	}

	result, err := m.backend.Login(ctx, email, password)
	if err != nil {
		if isCredentialRejection(err) {
			return domain.UserIdentity{}, &domain.AuthError{Err: err}
		}
		return domain.UserIdentity{}, err
	}

	session, err := domain.NewSession(result.User, result.Token)
	if err != nil {
		return domain.UserIdentity{}, fmt.Errorf("open session: %w", err)
	}

	if err := m.persist(ctx, session); err != nil {
		return domain.UserIdentity{}, fmt.Errorf("persist session: %w", err)
	}

	m.apply(ctx, session)
	m.logger.Info().Str("email", result.User.Email).Str("role", string(result.User.Role)).Msg("logged in")

	return result.User, nil
}

// Register creates an account. It never changes the current session.
func (m *SessionManager) Register(ctx context.Context, name, email, password string) (domain.UserIdentity, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if err := validateRegistration(name, email, password); err != nil {
		return domain.UserIdentity{}, err
	}

	return m.backend.Register(ctx, name, email, password)
}

// Logout clears the session before touching the store, so a failed delete
// still leaves the client unauthenticated.
func (m *SessionManager) Logout(ctx context.Context) error {
	m.apply(ctx, domain.Session{})

	if err := m.store.Delete(ctx, SessionKey); err != nil && !errors.Is(err, domain.ErrCredentialNotFound) {
		return fmt.Errorf("delete persisted session: %w", err)
	}

	m.logger.Info().Msg("logged out")
	return nil
}

func (m *SessionManager) apply(ctx context.Context, session domain.Session) {
	m.mu.Lock()
	m.session = session
	m.generation++
	m.mirror.SetToken(session.Token())
	m.mu.Unlock()

	m.listeners.notify(ctx, session)
}

func (m *SessionManager) Session() domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

func (m *SessionManager) IsAuthenticated() bool {
	return m.Session().IsAuthenticated()
}

func (m *SessionManager) IsAdmin() bool {
	return m.Session().IsAdmin()
}

// Ready reports whether Restore has completed.
func (m *SessionManager) Ready() bool {
	select {
	case <-m.ready:
		return true
	default:
		return false
	}
}

func (m *SessionManager) WaitReady(ctx context.Context) error {
	select {
	case <-m.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe registers fn for every session replacement, including the one
// performed by Restore.
func (m *SessionManager) Subscribe(fn func(context.Context, domain.Session)) func() {
	return m.listeners.add(fn)
}

func isCredentialRejection(err error) bool {
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	switch apiErr.Status {
	case http.StatusUnauthorized, http.StatusBadRequest, http.StatusForbidden:
		return true
	default:
		return false
	}
}

func validateRegistration(name, email, password string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRegistration)
	}
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidRegistration)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: email %q is not valid", ErrInvalidRegistration, email)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidRegistration, minPasswordLength)
	}

	return nil
}

func newUserRecord(user domain.UserIdentity) *userRecord {
	return &userRecord{
		ID:    int64(user.ID),
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}

func (r userRecord) toDomain() domain.UserIdentity {
	return domain.UserIdentity{
		ID:    domain.UserID(r.ID),
		Name:  r.Name,
		Email: r.Email,
		Role:  domain.ParseRole(r.Role),
	}
}
