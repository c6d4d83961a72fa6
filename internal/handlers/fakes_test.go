package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"health-monitoring-backend/internal/config"
	"health-monitoring-backend/internal/handlers"
	"health-monitoring-backend/internal/models"
	"health-monitoring-backend/internal/repository"
	"health-monitoring-backend/internal/routes"
)

// In-memory repository fakes backing the handler tests. They implement the
// same not-found and duplicate semantics as the Postgres implementations.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, username, email, passwordHash string) (int64, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return 0, repository.ErrDuplicateUser
		}
	}
	f.nextID++
	f.users[f.nextID] = &models.User{ID: f.nextID, Username: username, Email: email, Password: passwordHash}
	return f.nextID, nil
}

func (f *fakeUserRepo) FindByUsernameOrEmail(_ context.Context, username, email string) (*models.User, error) {
	for _, u := range f.users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) ProfileByID(_ context.Context, id int64) (*models.Profile, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &models.Profile{
		FullName:   u.FullName,
		Age:        u.Age,
		Gender:     u.Gender,
		Height:     u.Height,
		Weight:     u.Weight,
		OngoingMed: u.OngoingMed,
	}, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id int64, profile models.Profile) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	u.FullName = profile.FullName
	u.Age = profile.Age
	u.Gender = profile.Gender
	u.Height = profile.Height
	u.Weight = profile.Weight
	u.OngoingMed = profile.OngoingMed
	cp := *u
	return &cp, nil
}

type fakeReadingRepo struct {
	users    *fakeUserRepo
	readings map[int64]*models.Reading
	nextID   int64
}

func newFakeReadingRepo(users *fakeUserRepo) *fakeReadingRepo {
	return &fakeReadingRepo{users: users, readings: make(map[int64]*models.Reading)}
}

func (f *fakeReadingRepo) ListByUser(_ context.Context, userID int64) ([]models.Reading, error) {
	var out []models.Reading
	for _, rd := range f.readings {
		if rd.UserID == userID {
			out = append(out, *rd)
		}
	}
	return out, nil
}

func (f *fakeReadingRepo) Create(_ context.Context, userID int64, input models.ReadingInput) (*models.Reading, error) {
	if _, ok := f.users.users[userID]; !ok {
		return nil, repository.ErrUserNotFound
	}
	f.nextID++
	rd := &models.Reading{
		ID:        f.nextID,
		UserID:    userID,
		InputDate: input.InputDate,
		InputTime: input.InputTime,
		Systolic:  input.Systolic,
		Diastolic: input.Diastolic,
		PulseRate: input.PulseRate,
		CreatedAt: time.Now(),
	}
	f.readings[rd.ID] = rd
	cp := *rd
	return &cp, nil
}

func (f *fakeReadingRepo) Update(_ context.Context, id int64, input models.ReadingInput) (*models.Reading, error) {
	rd, ok := f.readings[id]
	if !ok {
		return nil, repository.ErrReadingNotFound
	}
	rd.InputDate = input.InputDate
	rd.InputTime = input.InputTime
	rd.Systolic = input.Systolic
	rd.Diastolic = input.Diastolic
	rd.PulseRate = input.PulseRate
	now := time.Now()
	rd.UpdatedAt = &now
	cp := *rd
	return &cp, nil
}

func (f *fakeReadingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.readings[id]; !ok {
		return repository.ErrReadingNotFound
	}
	delete(f.readings, id)
	return nil
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

type testEnv struct {
	router   http.Handler
	users    *fakeUserRepo
	readings *fakeReadingRepo
	jwtCfg   *config.JWTConfig
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	users := newFakeUserRepo()
	readings := newFakeReadingRepo(users)
	jwtCfg := &config.JWTConfig{Secret: "test-secret", TTL: time.Hour}

	mux := routes.SetupRoutes(
		handlers.NewAuthHandler(users, jwtCfg),
		handlers.NewUserHandler(users),
		handlers.NewReadingHandler(readings),
		handlers.NewHealthHandler(okPinger{}),
	)
	return &testEnv{router: mux, users: users, readings: readings, jwtCfg: jwtCfg}
}

func (e *testEnv) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// seedUser inserts a user directly into the fake store.
func (e *testEnv) seedUser(id int64, username, email, passwordHash string) {
	e.users.users[id] = &models.User{ID: id, Username: username, Email: email, Password: passwordHash}
	if id > e.users.nextID {
		e.users.nextID = id
	}
}
