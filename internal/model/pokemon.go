package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PokemonDefaultHealth = 100
	PokemonDefaultLevel  = 1
	PokemonMinLevel      = 0
	PokemonMaxLevel      = 100
)

type Pokemon struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	Name   string `gorm:"size:128;not null;index" json:"name"`
	Owner  string `gorm:"size:64;index" json:"owner"`
	Health int    `gorm:"not null" json:"health"`
	Level  int    `gorm:"not null" json:"level"`
}

func (p *Pokemon) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
