package app

import (
	"context"
	"strings"

	"statusboard/internal/model"
	"statusboard/internal/repository"
)

type PokemonService struct {
	pokemonRepo PokemonStore
}

type CreatePokemonInput struct {
	Name   string
	Owner  string
	Health *int
	Level  *int
}

func NewPokemonService(pokemonRepo PokemonStore) *PokemonService {
	return &PokemonService{pokemonRepo: pokemonRepo}
}

func (s *PokemonService) List(ctx context.Context, nameContains, owner string) ([]model.Pokemon, error) {
	owner = strings.TrimSpace(owner)
	nameContains = strings.TrimSpace(nameContains)
	if owner != "" && nameContains == "" {
		return s.pokemonRepo.FindByOwner(ctx, owner)
	}
	return s.pokemonRepo.List(ctx, repository.PokemonFilter{NameContains: nameContains, Owner: owner})
}

func (s *PokemonService) Get(ctx context.Context, id string) (*model.Pokemon, error) {
	pokemon, err := s.pokemonRepo.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if pokemon == nil {
		return nil, ErrPokemonNotFound
	}
	return pokemon, nil
}

// Create stores a new pokemon. A missing or zero health or level falls back to
// the defaults; an explicit level outside 0..100 is rejected.
func (s *PokemonService) Create(ctx context.Context, input CreatePokemonInput) (*model.Pokemon, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	pokemon := &model.Pokemon{
		Name:   name,
		Owner:  strings.TrimSpace(input.Owner),
		Health: model.PokemonDefaultHealth,
		Level:  model.PokemonDefaultLevel,
	}
	if input.Health != nil && *input.Health != 0 {
		if *input.Health < 0 {
			return nil, ErrInvalidInput
		}
		pokemon.Health = *input.Health
	}
	if input.Level != nil && *input.Level != 0 {
		if *input.Level < model.PokemonMinLevel || *input.Level > model.PokemonMaxLevel {
			return nil, ErrInvalidInput
		}
		pokemon.Level = *input.Level
	}

	if err := s.pokemonRepo.Create(ctx, pokemon); err != nil {
		return nil, err
	}
	return pokemon, nil
}
