package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"statusboard/internal/model"
	"statusboard/internal/pkg/jwtutil"
	"statusboard/internal/repository"
	"statusboard/internal/repository/memory"
)

type testEnv struct {
	clock      *clockwork.FakeClock
	users      *memory.UserRepository
	statuses   *memory.StatusRepository
	activities *memory.ActivityRepository
	tokens     *jwtutil.Manager
	metrics    *fakeMetrics

	auth   *AuthService
	user   *UserService
	status *StatusService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	users := memory.NewUserRepository()
	statuses := memory.NewStatusRepository(users)
	activities := memory.NewActivityRepository()
	tokens := jwtutil.NewManager("test-secret", time.Hour, clock)
	metrics := &fakeMetrics{}
	recorder := NewActivityRecorder(nil, activities, clock)

	return &testEnv{
		clock:      clock,
		users:      users,
		statuses:   statuses,
		activities: activities,
		tokens:     tokens,
		metrics:    metrics,
		auth:       NewAuthService(users, tokens, bcrypt.MinCost, recorder, clock),
		user:       NewUserService(users, statuses, activities, recorder),
		status:     NewStatusService(statuses, recorder, metrics, clock, 0),
	}
}

func (e *testEnv) register(t *testing.T, username string) *model.User {
	t.Helper()
	u, err := e.auth.Register(context.Background(), RegisterInput{Username: username, Password: "secret1"})
	require.NoError(t, err)
	return u
}

func (e *testEnv) post(t *testing.T, owner *model.User, content string) *model.Status {
	t.Helper()
	s, err := e.status.Create(context.Background(), CreateStatusInput{ActorID: owner.ID, Content: content})
	require.NoError(t, err)
	e.clock.Advance(time.Second)
	return s
}

type fakeMetrics struct {
	mu        sync.Mutex
	mutations map[string]int
	conflicts map[string]int
}

func (m *fakeMetrics) RecordStatusMutation(action string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mutations == nil {
		m.mutations = map[string]int{}
	}
	m.mutations[action]++
}

func (m *fakeMetrics) RecordUpdateConflict(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conflicts == nil {
		m.conflicts = map[string]int{}
	}
	m.conflicts[operation]++
}

// racingStore lets a competing write land between the read and the
// conditional write of the first Update call.
type racingStore struct {
	StatusStore
	once    sync.Once
	compete func()
}

func (r *racingStore) Update(ctx context.Context, status *model.Status) error {
	r.once.Do(r.compete)
	return r.StatusStore.Update(ctx, status)
}

// staleStore loses every conditional write.
type staleStore struct {
	StatusStore
	calls int
}

func (s *staleStore) Update(context.Context, *model.Status) error {
	s.calls++
	return repository.ErrStaleVersion
}

// failingStore fails every call with err.
type failingStore struct {
	StatusStore
	err error
}

func (f *failingStore) Create(context.Context, *model.Status) error { return f.err }
func (f *failingStore) FindByID(context.Context, string) (*model.Status, error) {
	return nil, f.err
}

var errBoom = errors.New("database unreachable")
