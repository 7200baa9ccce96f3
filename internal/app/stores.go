package app

import (
	"context"

	"statusboard/internal/model"
	"statusboard/internal/repository"
)

// Stores return (nil, nil) from lookups that find nothing.

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateDescription(ctx context.Context, id, description string) error
}

// StatusStore.Update must be conditional on the Version read by the caller
// and return repository.ErrStaleVersion when another write got there first.
type StatusStore interface {
	Create(ctx context.Context, status *model.Status) error
	FindByID(ctx context.Context, id string) (*model.Status, error)
	FindByOwner(ctx context.Context, ownerID string) ([]model.Status, error)
	List(ctx context.Context) ([]model.Status, error)
	Update(ctx context.Context, status *model.Status) error
	Delete(ctx context.Context, id string) error
}

type ActivityStore interface {
	Create(ctx context.Context, activity *model.Activity) error
	ListByActor(ctx context.Context, actorID string) ([]model.Activity, error)
}

type PokemonStore interface {
	Create(ctx context.Context, pokemon *model.Pokemon) error
	FindByID(ctx context.Context, id string) (*model.Pokemon, error)
	FindByOwner(ctx context.Context, owner string) ([]model.Pokemon, error)
	List(ctx context.Context, filter repository.PokemonFilter) ([]model.Pokemon, error)
}

// StatusMetrics receives counters from the status service; nil disables them.
type StatusMetrics interface {
	RecordStatusMutation(action string)
	RecordUpdateConflict(operation string)
}
