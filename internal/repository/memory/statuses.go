package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"statusboard/internal/model"
	"statusboard/internal/repository"
)

type StatusRepository struct {
	users *UserRepository

	mu   sync.RWMutex
	rows map[string]*statusRow
	seq  uint64
}

type statusRow struct {
	status *model.Status
	seq    uint64
}

// NewStatusRepository returns an empty store. users, when non-nil, is used to
// populate the owner on List.
func NewStatusRepository(users *UserRepository) *StatusRepository {
	return &StatusRepository{users: users, rows: make(map[string]*statusRow)}
}

func (r *StatusRepository) Create(_ context.Context, status *model.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if status.ID == "" {
		status.ID = uuid.NewString()
	}
	if status.Likes == nil {
		status.Likes = []string{}
	}
	if status.Version == 0 {
		status.Version = 1
	}
	stored := status.Clone()
	stored.User = nil
	r.seq++
	r.rows[status.ID] = &statusRow{status: stored, seq: r.seq}
	return nil
}

func (r *StatusRepository) FindByID(_ context.Context, id string) (*model.Status, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return row.status.Clone(), nil
}

func (r *StatusRepository) FindByOwner(_ context.Context, ownerID string) ([]model.Status, error) {
	return r.collect(func(s *model.Status) bool { return s.UserID == ownerID }, false), nil
}

func (r *StatusRepository) List(_ context.Context) ([]model.Status, error) {
	return r.collect(func(*model.Status) bool { return true }, true), nil
}

func (r *StatusRepository) Update(_ context.Context, status *model.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[status.ID]
	if !ok || row.status.Version != status.Version {
		return repository.ErrStaleVersion
	}
	stored := status.Clone()
	stored.User = nil
	stored.UserID = row.status.UserID
	stored.CreatedAt = row.status.CreatedAt
	stored.Version = status.Version + 1
	row.status = stored
	status.Version = stored.Version
	return nil
}

func (r *StatusRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rows, id)
	return nil
}

// collect returns matching statuses newest first; insertion order breaks ties.
func (r *StatusRepository) collect(match func(*model.Status) bool, withOwner bool) []model.Status {
	r.mu.RLock()
	rows := make([]*statusRow, 0, len(r.rows))
	for _, row := range r.rows {
		if match(row.status) {
			rows = append(rows, &statusRow{status: row.status.Clone(), seq: row.seq})
		}
	}
	r.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.status.CreatedAt.Equal(b.status.CreatedAt) {
			return a.status.CreatedAt.After(b.status.CreatedAt)
		}
		return a.seq > b.seq
	})

	out := make([]model.Status, 0, len(rows))
	for _, row := range rows {
		if withOwner && r.users != nil {
			if owner, _ := r.users.FindByID(context.Background(), row.status.UserID); owner != nil {
				row.status.User = owner
			}
		}
		out = append(out, *row.status)
	}
	return out
}
