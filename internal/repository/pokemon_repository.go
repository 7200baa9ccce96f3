package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"statusboard/internal/model"
)

// PokemonFilter narrows List; empty fields match everything.
type PokemonFilter struct {
	NameContains string
	Owner        string
}

type PokemonRepository struct {
	db *gorm.DB
}

func NewPokemonRepository(db *gorm.DB) *PokemonRepository {
	return &PokemonRepository{db: db}
}

func (r *PokemonRepository) Create(ctx context.Context, pokemon *model.Pokemon) error {
	if err := r.db.WithContext(ctx).Create(pokemon).Error; err != nil {
		return fmt.Errorf("create pokemon failed: %w", err)
	}
	return nil
}

func (r *PokemonRepository) FindByID(ctx context.Context, id string) (*model.Pokemon, error) {
	var pokemon model.Pokemon
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&pokemon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query pokemon by id failed: %w", err)
	}
	return &pokemon, nil
}

func (r *PokemonRepository) FindByOwner(ctx context.Context, owner string) ([]model.Pokemon, error) {
	return r.List(ctx, PokemonFilter{Owner: owner})
}

func (r *PokemonRepository) List(ctx context.Context, filter PokemonFilter) ([]model.Pokemon, error) {
	query := r.db.WithContext(ctx).Model(&model.Pokemon{})
	if filter.NameContains != "" {
		query = query.Where("name LIKE ?", "%"+escapeLike(filter.NameContains)+"%")
	}
	if filter.Owner != "" {
		query = query.Where("owner = ?", filter.Owner)
	}

	var pokemon []model.Pokemon
	if err := query.Order("name ASC").Find(&pokemon).Error; err != nil {
		return nil, fmt.Errorf("list pokemon failed: %w", err)
	}
	return pokemon, nil
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
