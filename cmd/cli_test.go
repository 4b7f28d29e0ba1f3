package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/gymctl/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsClientVersion(t *testing.T) {
	gym := newFakeGym(t)

	stdout, _, err := executeCLI(t, gym, "version")
	require.NoError(t, err)
	assert.Equal(t, "gym dev\n", stdout)
}

func TestActivitiesListRendersCatalogue(t *testing.T) {
	gym := newFakeGym(t)

	stdout, _, err := executeCLI(t, gym, "activities", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "activities: 2")
	assert.Contains(t, stdout, "#42 Yoga")
	assert.Contains(t, stdout, "#43 Spinning")
	assert.NotContains(t, stdout, "[enrolled]")
	assert.Zero(t, gym.calls("GET /api/me/activities"))
}

func TestActivitiesListJSONOutput(t *testing.T) {
	gym := newFakeGym(t)

	stdout, _, err := executeCLI(t, gym, "activities", "list", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"title\": \"Yoga\"")
	assert.Contains(t, stdout, "\"day\": \"Monday\"")
	assert.Contains(t, stdout, "\"enrolled\": false")
}

func TestActivitiesListShowsFetchingSpinnerMessage(t *testing.T) {
	gym := newFakeGym(t)
	gym.delay = 200 * time.Millisecond

	_, stderr, err := executeCLI(t, gym, "activities", "list")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Fetching activities")
}

func TestActivitiesListPassesFilters(t *testing.T) {
	gym := newFakeGym(t)

	_, _, err := executeCLI(t, gym, "activities", "list", "-q", "yo", "--category", "mind", "--day", "mon", "--json")
	require.NoError(t, err)

	query := gym.lastQuery()
	assert.Equal(t, "yo", query.Get("q"))
	assert.Equal(t, "mind", query.Get("category"))
	assert.Equal(t, "1", query.Get("day"))
}

func TestActivitiesListRejectsUnknownDay(t *testing.T) {
	gym := newFakeGym(t)

	_, _, err := executeCLI(t, gym, "activities", "list", "--day", "someday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown day")
	assert.Zero(t, gym.calls("GET /api/activities"))
}

func TestActivitiesShowUnknownActivity(t *testing.T) {
	gym := newFakeGym(t)

	_, _, err := executeCLI(t, gym, "activities", "show", "999")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestFailedCommandStillClosesApp(t *testing.T) {
	gym := newFakeGym(t)
	t.Setenv("HOME", gym.home)
	t.Setenv("GYM_API_BASE_URL", gym.server.URL+"/api")
	t.Setenv("GYM_SECRETS_BACKEND", "file")

	root, app := newRootCmd()
	require.NotNil(t, app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"activities", "show", "999"})

	err := execute(root, app)
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
	assert.Equal(t, 1, gym.calls("GET /api/activities/{id}"))

	app.mu.Lock()
	defer app.mu.Unlock()
	assert.Empty(t, app.bootstraps)
}

func TestLoginStoresSessionForLaterCommands(t *testing.T) {
	gym := newFakeGym(t)

	stdout, _, err := executeCLI(t, gym, "login", "--email", "ana@gym.test", "--password", "secret123")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged in as Ana <ana@gym.test> (member)")
	assert.Contains(t, stdout, "Enrolled activities: 0")

	stdout, _, err = executeCLI(t, gym, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Ana <ana@gym.test> (member)")
	assert.Contains(t, stdout, "user id: 7")
	assert.Contains(t, stdout, "token: expires in")
}

func TestLoginReadsPasswordFromStdin(t *testing.T) {
	gym := newFakeGym(t)

	stdout, _, err := executeCLIWithInput(t, gym, "secret123\n", "login", "--email", "ana@gym.test")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged in as Ana")
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	gym := newFakeGym(t)

	_, _, err := executeCLI(t, gym, "login", "--email", "ana@gym.test", "--password", "nope")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password.", domain.UserMessage(err))

	_, _, err = executeCLI(t, gym, "whoami")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestLogoutClearsSession(t *testing.T) {
	gym := newFakeGym(t)
	login(t, gym, "ana@gym.test")

	stdout, _, err := executeCLI(t, gym, "logout")
	require.NoError(t, err)
	assert.Equal(t, "Logged out.\n", stdout)

	_, _, err = executeCLI(t, gym, "whoami")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	stdout, _, err = executeCLI(t, gym, "logout")
	require.NoError(t, err)
	assert.Equal(t, "Not signed in.\n", stdout)
}

func TestRegisterValidatesBeforeCallingBackend(t *testing.T) {
	gym := newFakeGym(t)

	_, _, err := executeCLI(t, gym, "register", "--name", "Bo", "--email", "bo@gym.test", "--password", "123")
	require.Error(t, err)
	assert.Zero(t, gym.calls("POST /api/auth/register"))

	stdout, _, err := executeCLI(t, gym, "register", "--name", "Bo", "--email", "bo@gym.test", "--password", "123456")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Account created for Bo <bo@gym.test> (member)")

	_, _, err = executeCLI(t, gym, "whoami")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestEnrollUpdatesRosterAndSlots(t *testing.T) {
	gym := newFakeGym(t)
	login(t, gym, "ana@gym.test")

	stdout, _, err := executeCLI(t, gym, "enroll", "42")
	require.NoError(t, err)
	assert.Equal(t, "Enrolled in Yoga (#42). 4/10 slots left.\n", stdout)

	stdout, _, err = executeCLI(t, gym, "my-activities")
	require.NoError(t, err)
	assert.Contains(t, stdout, "enrolled: 1")
	assert.Contains(t, stdout, "#42 Yoga")

	stdout, _, err = executeCLI(t, gym, "activities", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[enrolled]")

	stdout, _, err = executeCLI(t, gym, "unenroll", "42")
	require.NoError(t, err)
	assert.Equal(t, "Left Yoga (#42). 5/10 slots left.\n", stdout)

	stdout, _, err = executeCLI(t, gym, "my-activities")
	require.NoError(t, err)
	assert.Contains(t, stdout, "You are not enrolled in any activity yet.")
}

func TestEnrollReportsScheduleConflict(t *testing.T) {
	gym := newFakeGym(t)
	login(t, gym, "ana@gym.test")

	_, _, err := executeCLI(t, gym, "enroll", "43")
	require.Error(t, err)

	var conflict *domain.EnrollmentConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ActivityID(43), conflict.ActivityID)
	assert.Contains(t, domain.UserMessage(err), "overlaps")
}

func TestEnrollRequiresLogin(t *testing.T) {
	gym := newFakeGym(t)

	_, _, err := executeCLI(t, gym, "enroll", "42")
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.Zero(t, gym.calls("POST /api/activities/{id}/enroll"))
}

func TestAdminCommandsHiddenFromMembers(t *testing.T) {
	gym := newFakeGym(t)

	stdout, _, err := executeCLI(t, gym, "activities", "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "List activities")
	assert.NotContains(t, stdout, "Add an activity")

	login(t, gym, "root@gym.test")

	stdout, _, err = executeCLI(t, gym, "activities", "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Add an activity")
	assert.Contains(t, stdout, "Remove an activity")
}

func TestAdminCreatesActivity(t *testing.T) {
	gym := newFakeGym(t)
	login(t, gym, "root@gym.test")

	stdout, _, err := executeCLI(t, gym, "activities", "create",
		"--title", "Pilates",
		"--category", "mind",
		"--day", "wed",
		"--start", "18:00",
		"--end", "19:00",
		"--capacity", "12",
		"--instructor", "Mia",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created activity #100.")
	assert.Contains(t, stdout, "#100 Pilates")
	assert.Contains(t, stdout, "gym activities delete 100")

	created := gym.activity(100)
	assert.Equal(t, 3, created.DayOfWeek)
	assert.True(t, created.IsActive)
	assert.Equal(t, "", created.ImageURL)
}

func TestAdminUpdateKeepsUnsetFields(t *testing.T) {
	gym := newFakeGym(t)
	login(t, gym, "root@gym.test")

	stdout, _, err := executeCLI(t, gym, "activities", "update", "42", "--capacity", "20", "--active=false")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Updated activity #42.")
	assert.Contains(t, stdout, "[inactive]")

	updated := gym.activity(42)
	assert.Equal(t, "Yoga", updated.Title)
	assert.Equal(t, "Lu", updated.Instructor)
	assert.Equal(t, 20, updated.Capacity)
	assert.False(t, updated.IsActive)
}

func TestCreateValidatesBeforeCallingBackend(t *testing.T) {
	gym := newFakeGym(t)
	login(t, gym, "root@gym.test")

	_, _, err := executeCLI(t, gym, "activities", "create",
		"--title", "Pilates",
		"--category", "mind",
		"--day", "3",
		"--start", "19:00",
		"--end", "18:00",
		"--capacity", "12",
		"--instructor", "Mia",
	)
	require.ErrorIs(t, err, domain.ErrInvalidActivity)
	assert.Zero(t, gym.calls("POST /api/admin/activities"))
}

func TestAdminDeletesActivity(t *testing.T) {
	gym := newFakeGym(t)
	login(t, gym, "root@gym.test")

	stdout, _, err := executeCLI(t, gym, "activities", "delete", "43")
	require.NoError(t, err)
	assert.Equal(t, "Deleted activity #43.\n", stdout)

	stdout, _, err = executeCLI(t, gym, "activities", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "activities: 1")
	assert.NotContains(t, stdout, "Spinning")
}

func TestDashboardSignedOut(t *testing.T) {
	gym := newFakeGym(t)

	stdout, _, err := executeCLI(t, gym, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not signed in.")
	assert.Contains(t, stdout, "#42 Yoga")
	assert.NotContains(t, stdout, "My Activities")
}

func TestDashboardSignedInShowsRoster(t *testing.T) {
	gym := newFakeGym(t)
	login(t, gym, "ana@gym.test")
	_, _, err := executeCLI(t, gym, "enroll", "42")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, gym, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed in as Ana <ana@gym.test> (member)")
	assert.Contains(t, stdout, "My Activities")
	assert.Contains(t, stdout, "enrolled: 1")
}

func TestDashboardReportsUnavailableCatalogue(t *testing.T) {
	gym := newFakeGym(t)
	gym.failList = true

	stdout, _, err := executeCLI(t, gym, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Activities unavailable: catalogue offline")
}

func TestConfigSetThenShow(t *testing.T) {
	gym := newFakeGym(t)

	stdout, _, err := executeCLI(t, gym, "config", "set", "api.timeout", "30s")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Saved api.timeout")

	stdout, _, err = executeCLI(t, gym, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "30s (file)")
	assert.Contains(t, stdout, gym.server.URL+"/api (env)")
	assert.Contains(t, stdout, "warn (default)")
	assert.Contains(t, stdout, "secrets: file, files under "+filepath.Join(gym.home, ".config", "gymctl", "secrets"))

	_, _, err = executeCLI(t, gym, "config", "unset", "api.timeout")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, gym, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "15s (default)")
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	gym := newFakeGym(t)

	_, _, err := executeCLI(t, gym, "config", "set", "api.colour", "blue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown setting")
}

func executeCLI(t *testing.T, gym *fakeGym, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, gym, "", args...)
}

func executeCLIWithInput(t *testing.T, gym *fakeGym, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", gym.home)
	t.Setenv("GYM_API_BASE_URL", gym.server.URL+"/api")
	t.Setenv("GYM_SECRETS_BACKEND", "file")

	root, app := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(input))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := execute(root, app)
	return stdout.String(), stderr.String(), err
}

func login(t *testing.T, gym *fakeGym, email string) {
	t.Helper()
	_, _, err := executeCLI(t, gym, "login", "--email", email, "--password", "secret123")
	require.NoError(t, err)
}

type fakeUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type fakeActivity struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	DayOfWeek      int    `json:"day_of_week"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Capacity       int    `json:"capacity"`
	Instructor     string `json:"instructor"`
	ImageURL       string `json:"image_url"`
	IsActive       bool   `json:"is_active"`
	AvailableSlots int    `json:"available_slots"`
}

// fakeGym is an in-memory activities API. Activity 43 overlaps with every
// roster, so enrolling in it is always a schedule conflict.
type fakeGym struct {
	t      *testing.T
	home   string
	server *httptest.Server

	delay    time.Duration
	failList bool

	mu         sync.Mutex
	users      map[string]fakeUser
	tokens     map[string]int64
	activities []fakeActivity
	enrolled   map[int64][]int64
	nextID     int64
	hits       map[string]int
	query      url.Values
}

func newFakeGym(t *testing.T) *fakeGym {
	t.Helper()

	gym := &fakeGym{
		t:    t,
		home: t.TempDir(),
		users: map[string]fakeUser{
			"ana@gym.test":  {ID: 7, Name: "Ana", Email: "ana@gym.test", Role: "socio"},
			"root@gym.test": {ID: 1, Name: "Root", Email: "root@gym.test", Role: "admin"},
		},
		tokens: map[string]int64{},
		activities: []fakeActivity{
			{ID: 42, Title: "Yoga", Category: "mind", DayOfWeek: 1, StartTime: "09:00:00", EndTime: "10:00:00", Capacity: 10, Instructor: "Lu", IsActive: true, AvailableSlots: 5},
			{ID: 43, Title: "Spinning", Category: "cardio", DayOfWeek: 1, StartTime: "09:30:00", EndTime: "10:30:00", Capacity: 20, Instructor: "Max", IsActive: true, AvailableSlots: 20},
		},
		enrolled: map[int64][]int64{},
		nextID:   100,
		hits:     map[string]int{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", gym.handleLogin)
	mux.HandleFunc("POST /api/auth/register", gym.handleRegister)
	mux.HandleFunc("GET /api/activities", gym.handleList)
	mux.HandleFunc("GET /api/activities/{id}", gym.handleGet)
	mux.HandleFunc("POST /api/activities/{id}/enroll", gym.authenticated(gym.handleEnroll))
	mux.HandleFunc("DELETE /api/activities/{id}/enroll", gym.authenticated(gym.handleUnenroll))
	mux.HandleFunc("GET /api/me/activities", gym.authenticated(gym.handleRoster))
	mux.HandleFunc("POST /api/admin/activities", gym.authenticated(gym.handleCreate))
	mux.HandleFunc("PUT /api/admin/activities/{id}", gym.authenticated(gym.handleUpdate))
	mux.HandleFunc("DELETE /api/admin/activities/{id}", gym.authenticated(gym.handleDelete))

	gym.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gym.delay > 0 {
			time.Sleep(gym.delay)
		}
		_, pattern := mux.Handler(r)
		gym.mu.Lock()
		gym.hits[pattern]++
		gym.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(gym.server.Close)

	return gym
}

func (g *fakeGym) calls(pattern string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hits[pattern]
}

func (g *fakeGym) lastQuery() url.Values {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.query
}

func (g *fakeGym) activity(id int64) fakeActivity {
	g.mu.Lock()
	defer g.mu.Unlock()
	index := g.indexOf(id)
	require.GreaterOrEqual(g.t, index, 0, "activity %d not found", id)
	return g.activities[index]
}

func (g *fakeGym) indexOf(id int64) int {
	return slices.IndexFunc(g.activities, func(a fakeActivity) bool { return a.ID == id })
}

func (g *fakeGym) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad request", "")
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	user, ok := g.users[body.Email]
	if !ok || body.Password != "secret123" {
		writeError(w, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("fake-gym-key"))
	require.NoError(g.t, err)
	g.tokens[token] = user.ID

	writeJSONResponse(w, http.StatusOK, map[string]any{"token": token, "user": user})
}

func (g *fakeGym) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad request", "")
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextID++
	user := fakeUser{ID: g.nextID, Name: body.Name, Email: body.Email, Role: "socio"}
	g.users[body.Email] = user
	writeJSONResponse(w, http.StatusCreated, user)
}

func (g *fakeGym) handleList(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.query = r.URL.Query()
	if g.failList {
		writeError(w, http.StatusInternalServerError, "catalogue offline", "")
		return
	}

	category := r.URL.Query().Get("category")
	result := make([]fakeActivity, 0, len(g.activities))
	for _, activity := range g.activities {
		if category == "" || activity.Category == category {
			result = append(result, activity)
		}
	}
	writeJSONResponse(w, http.StatusOK, result)
}

func (g *fakeGym) handleGet(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()

	index := g.indexOf(pathID(r))
	if index < 0 {
		writeError(w, http.StatusNotFound, "activity not found", "")
		return
	}
	writeJSONResponse(w, http.StatusOK, g.activities[index])
}

func (g *fakeGym) handleEnroll(w http.ResponseWriter, r *http.Request, userID int64) {
	id := pathID(r)
	index := g.indexOf(id)
	switch {
	case index < 0:
		writeError(w, http.StatusNotFound, "activity not found", "")
	case id == 43:
		writeError(w, http.StatusConflict, "schedule conflict", domain.CodeScheduleConflict)
	case g.activities[index].AvailableSlots == 0:
		writeError(w, http.StatusConflict, "no slots", domain.CodeNoCapacity)
	default:
		g.activities[index].AvailableSlots--
		g.enrolled[userID] = append(g.enrolled[userID], id)
		writeJSONResponse(w, http.StatusCreated, map[string]string{"message": "enrolled"})
	}
}

func (g *fakeGym) handleUnenroll(w http.ResponseWriter, r *http.Request, userID int64) {
	id := pathID(r)
	index := g.indexOf(id)
	if index < 0 || !slices.Contains(g.enrolled[userID], id) {
		writeError(w, http.StatusNotFound, "enrollment not found", "")
		return
	}

	g.activities[index].AvailableSlots++
	g.enrolled[userID] = slices.DeleteFunc(g.enrolled[userID], func(v int64) bool { return v == id })
	w.WriteHeader(http.StatusNoContent)
}

func (g *fakeGym) handleRoster(w http.ResponseWriter, _ *http.Request, userID int64) {
	roster := make([]fakeActivity, 0)
	for _, id := range g.enrolled[userID] {
		if index := g.indexOf(id); index >= 0 {
			roster = append(roster, g.activities[index])
		}
	}
	writeJSONResponse(w, http.StatusOK, roster)
}

func (g *fakeGym) handleCreate(w http.ResponseWriter, r *http.Request, _ int64) {
	var activity fakeActivity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		writeError(w, http.StatusBadRequest, "bad request", "")
		return
	}

	activity.ID = g.nextID
	activity.AvailableSlots = activity.Capacity
	g.nextID++
	g.activities = append(g.activities, activity)
	writeJSONResponse(w, http.StatusCreated, activity)
}

func (g *fakeGym) handleUpdate(w http.ResponseWriter, r *http.Request, _ int64) {
	id := pathID(r)
	index := g.indexOf(id)
	if index < 0 {
		writeError(w, http.StatusNotFound, "activity not found", "")
		return
	}

	var activity fakeActivity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		writeError(w, http.StatusBadRequest, "bad request", "")
		return
	}

	activity.ID = id
	activity.AvailableSlots = g.activities[index].AvailableSlots
	g.activities[index] = activity
	writeJSONResponse(w, http.StatusOK, activity)
}

func (g *fakeGym) handleDelete(w http.ResponseWriter, r *http.Request, _ int64) {
	id := pathID(r)
	g.activities = slices.DeleteFunc(g.activities, func(a fakeActivity) bool { return a.ID == id })
	w.WriteHeader(http.StatusNoContent)
}

func (g *fakeGym) authenticated(next func(http.ResponseWriter, *http.Request, int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g.mu.Lock()
		defer g.mu.Unlock()

		userID, ok := g.tokens[strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")]
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing token", "")
			return
		}
		next(w, r, userID)
	}
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	body := map[string]string{"error": message}
	if code != "" {
		body["code"] = code
	}
	writeJSONResponse(w, status, body)
}

func writeJSONResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
