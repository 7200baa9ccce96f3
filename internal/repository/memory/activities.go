package memory

import (
	"context"
	"sort"
	"sync"

	"statusboard/internal/model"
)

type ActivityRepository struct {
	mu     sync.RWMutex
	rows   []model.Activity
	nextID uint
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

func (r *ActivityRepository) Create(_ context.Context, activity *model.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	activity.ID = r.nextID
	r.rows = append(r.rows, *activity)
	return nil
}

func (r *ActivityRepository) ListByActor(_ context.Context, actorID string) ([]model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Activity, 0)
	for _, a := range r.rows {
		if a.ActorID == actorID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
