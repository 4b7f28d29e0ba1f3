package application

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/bnema/gymctl/internal/domain"
	"github.com/bnema/gymctl/internal/ports"
	portmocks "github.com/bnema/gymctl/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bootstrapFixture struct {
	backend     *portmocks.MockBackend
	store       *portmocks.MockCredentialStore
	sessions    *SessionManager
	cache       *ActivityCache
	enrollments *EnrollmentCoordinator
}

func newBootstrapFixture(t *testing.T) bootstrapFixture {
	t.Helper()

	backend := portmocks.NewMockBackend(t)
	store := portmocks.NewMockCredentialStore(t)
	sessions := NewSessionManager(backend, store, &fakeMirror{}, zerolog.Nop())
	cache := NewActivityCache(backend, nil, zerolog.Nop())

	return bootstrapFixture{
		backend:     backend,
		store:       store,
		sessions:    sessions,
		cache:       cache,
		enrollments: NewEnrollmentCoordinator(backend, cache, sessions, zerolog.Nop()),
	}
}

func (f bootstrapFixture) bootstrap(opts BootstrapOptions) *Bootstrap {
	return NewBootstrap(f.sessions, f.cache, f.enrollments, opts, zerolog.Nop())
}

func TestBootstrapStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "restoring", StateRestoring.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "BootstrapState(9)", BootstrapState(9).String())
}

func TestBootstrapAuthenticatedRefreshesRosterExactlyOnce(t *testing.T) {
	t.Parallel()

	f := newBootstrapFixture(t)
	f.store.EXPECT().Get(mock.Anything, SessionKey).Return(persistedMember, nil).Once()
	f.backend.EXPECT().MyActivities(mock.Anything).Return([]domain.MemberActivity{yogaRosterEntry()}, nil).Once()

	boot := f.bootstrap(BootstrapOptions{})
	assert.Equal(t, StateUninitialized, boot.State())

	require.NoError(t, boot.Start(context.Background()))
	require.NoError(t, boot.Start(context.Background()))
	defer boot.Close()

	assert.Equal(t, StateReady, boot.State())
	assert.True(t, f.sessions.Ready())
	assert.True(t, f.enrollments.IsEnrolled(42))
	f.backend.AssertNumberOfCalls(t, "MyActivities", 1)
}

func TestBootstrapUnauthenticatedClearsWithoutNetwork(t *testing.T) {
	t.Parallel()

	f := newBootstrapFixture(t)
	f.store.EXPECT().Get(mock.Anything, SessionKey).Return("", domain.ErrCredentialNotFound).Once()

	boot := f.bootstrap(BootstrapOptions{})
	require.NoError(t, boot.Start(context.Background()))
	defer boot.Close()

	assert.Equal(t, StateReady, boot.State())
	assert.Empty(t, f.enrollments.Roster())
	f.backend.AssertNotCalled(t, "MyActivities", mock.Anything)
}

func TestBootstrapPrefetchesActivitiesAlongsideRestore(t *testing.T) {
	t.Parallel()

	f := newBootstrapFixture(t)
	f.store.EXPECT().Get(mock.Anything, SessionKey).Return("", domain.ErrCredentialNotFound).Once()
	f.backend.EXPECT().ListActivities(mock.Anything, domain.ActivityFilters{}).
		Return([]domain.Activity{yogaActivity(), spinActivity()}, nil).Once()

	boot := f.bootstrap(BootstrapOptions{PrefetchActivities: true})
	require.NoError(t, boot.Start(context.Background()))
	defer boot.Close()

	assert.Equal(t, 2, f.cache.Len())
}

func TestBootstrapPrefetchFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	f := newBootstrapFixture(t)
	listErr := errors.New("backend down")
	f.store.EXPECT().Get(mock.Anything, SessionKey).Return(persistedMember, nil).Once()
	f.backend.EXPECT().ListActivities(mock.Anything, domain.ActivityFilters{}).Return(nil, listErr).Once()
	f.backend.EXPECT().MyActivities(mock.Anything).Return([]domain.MemberActivity{}, nil).Once()

	boot := f.bootstrap(BootstrapOptions{PrefetchActivities: true})
	require.NoError(t, boot.Start(context.Background()))
	defer boot.Close()

	assert.Equal(t, StateReady, boot.State())
	assert.True(t, f.sessions.IsAuthenticated())
	assert.ErrorIs(t, f.cache.LastError(), listErr)
}

func TestBootstrapReturnsRosterFailureButIsReady(t *testing.T) {
	t.Parallel()

	f := newBootstrapFixture(t)
	rosterErr := errors.New("roster down")
	f.store.EXPECT().Get(mock.Anything, SessionKey).Return(persistedMember, nil).Once()
	f.backend.EXPECT().MyActivities(mock.Anything).Return(nil, rosterErr).Once()

	boot := f.bootstrap(BootstrapOptions{})
	err := boot.Start(context.Background())
	defer boot.Close()

	require.ErrorIs(t, err, rosterErr)
	assert.Equal(t, StateReady, boot.State())
}

func TestBootstrapFollowsLoginAndLogoutAfterReady(t *testing.T) {
	t.Parallel()

	f := newBootstrapFixture(t)
	f.store.EXPECT().Get(mock.Anything, SessionKey).Return("", domain.ErrCredentialNotFound).Once()
	f.store.EXPECT().Put(mock.Anything, SessionKey, mock.Anything).Return(nil).Once()
	f.store.EXPECT().Delete(mock.Anything, SessionKey).Return(nil).Once()
	f.backend.EXPECT().Login(mock.Anything, "ana@gym.test", "secret1").
		Return(ports.LoginResult{User: memberIdentity(), Token: "tok-7"}, nil).Once()
	f.backend.EXPECT().MyActivities(mock.Anything).Return([]domain.MemberActivity{yogaRosterEntry()}, nil).Once()

	boot := f.bootstrap(BootstrapOptions{})
	require.NoError(t, boot.Start(context.Background()))
	defer boot.Close()
	require.Empty(t, f.enrollments.Roster())

	_, err := f.sessions.Login(context.Background(), "ana@gym.test", "secret1")
	require.NoError(t, err)
	assert.True(t, f.enrollments.IsEnrolled(42))

	require.NoError(t, f.sessions.Logout(context.Background()))
	assert.Empty(t, f.enrollments.Roster())
	f.backend.AssertNumberOfCalls(t, "MyActivities", 1)
}

func TestBootstrapIgnoresSessionChangesBeforeReady(t *testing.T) {
	t.Parallel()

	f := newBootstrapFixture(t)
	var rosterCalls atomic.Int32
	f.store.EXPECT().Put(mock.Anything, SessionKey, mock.Anything).Return(nil).Once()
	f.backend.EXPECT().Login(mock.Anything, "ana@gym.test", "secret1").
		Return(ports.LoginResult{User: memberIdentity(), Token: "tok-7"}, nil).Once()
	f.backend.EXPECT().MyActivities(mock.Anything).
		RunAndReturn(func(context.Context) ([]domain.MemberActivity, error) {
			rosterCalls.Add(1)
			return []domain.MemberActivity{yogaRosterEntry()}, nil
		})

	boot := f.bootstrap(BootstrapOptions{})
	f.store.EXPECT().Get(mock.Anything, SessionKey).
		RunAndReturn(func(ctx context.Context, key string) (string, error) {
			assert.Equal(t, StateRestoring, boot.State())
			_, err := f.sessions.Login(ctx, "ana@gym.test", "secret1")
			require.NoError(t, err)
			return "", domain.ErrCredentialNotFound
		}).Once()

	require.NoError(t, boot.Start(context.Background()))
	defer boot.Close()

	assert.True(t, f.sessions.IsAuthenticated())
	assert.True(t, f.enrollments.IsEnrolled(42))
	assert.Equal(t, int32(1), rosterCalls.Load())
}

func TestBootstrapCloseStopsFollowingSession(t *testing.T) {
	t.Parallel()

	f := newBootstrapFixture(t)
	f.store.EXPECT().Get(mock.Anything, SessionKey).Return("", domain.ErrCredentialNotFound).Once()
	f.store.EXPECT().Put(mock.Anything, SessionKey, mock.Anything).Return(nil).Once()
	f.backend.EXPECT().Login(mock.Anything, "ana@gym.test", "secret1").
		Return(ports.LoginResult{User: memberIdentity(), Token: "tok-7"}, nil).Once()

	boot := f.bootstrap(BootstrapOptions{})
	require.NoError(t, boot.Start(context.Background()))
	boot.Close()
	boot.Close()

	_, err := f.sessions.Login(context.Background(), "ana@gym.test", "secret1")
	require.NoError(t, err)

	f.backend.AssertNotCalled(t, "MyActivities", mock.Anything)
	assert.Zero(t, f.sessions.listeners.len())
}
