package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"statusboard/internal/model"
	"statusboard/internal/repository"
)

type PokemonRepository struct {
	mu   sync.RWMutex
	byID map[string]model.Pokemon
}

func NewPokemonRepository() *PokemonRepository {
	return &PokemonRepository{byID: make(map[string]model.Pokemon)}
}

func (r *PokemonRepository) Create(_ context.Context, pokemon *model.Pokemon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pokemon.ID == "" {
		pokemon.ID = uuid.NewString()
	}
	r.byID[pokemon.ID] = *pokemon
	return nil
}

func (r *PokemonRepository) FindByID(_ context.Context, id string) (*model.Pokemon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PokemonRepository) FindByOwner(ctx context.Context, owner string) ([]model.Pokemon, error) {
	return r.List(ctx, repository.PokemonFilter{Owner: owner})
}

func (r *PokemonRepository) List(_ context.Context, filter repository.PokemonFilter) ([]model.Pokemon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// matches the case-insensitive LIKE of the default MySQL collation
	needle := strings.ToLower(filter.NameContains)
	out := make([]model.Pokemon, 0, len(r.byID))
	for _, p := range r.byID {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if filter.Owner != "" && p.Owner != filter.Owner {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
