package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"statusboard/internal/app"
	"statusboard/internal/transport/http/response"
)

type PokemonHandler struct {
	pokemonService *app.PokemonService
}

type CreatePokemonRequest struct {
	Name   string `json:"name" binding:"required"`
	Owner  string `json:"owner"`
	Health *int   `json:"health"`
	Level  *int   `json:"level"`
}

func NewPokemonHandler(pokemonService *app.PokemonService) *PokemonHandler {
	return &PokemonHandler{pokemonService: pokemonService}
}

func (h *PokemonHandler) List(c *gin.Context) {
	pokemon, err := h.pokemonService.List(c.Request.Context(), c.Query("name"), c.Query("owner"))
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Error fetching pokemon")
		return
	}
	response.JSON(c, http.StatusOK, pokemon)
}

func (h *PokemonHandler) Get(c *gin.Context) {
	id := c.Param("id")
	pokemon, err := h.pokemonService.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrPokemonNotFound):
			response.Error(c, http.StatusNotFound, fmt.Sprintf("No pokemon with ID %s found", id))
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Error fetching pokemon")
		}
		return
	}
	response.JSON(c, http.StatusOK, pokemon)
}

func (h *PokemonHandler) Create(c *gin.Context) {
	var req CreatePokemonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Pokemon name is required")
		return
	}

	pokemon, err := h.pokemonService.Create(c.Request.Context(), app.CreatePokemonInput{
		Name:   req.Name,
		Owner:  req.Owner,
		Health: req.Health,
		Level:  req.Level,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "Pokemon needs a name, a non-negative health and a level between 0 and 100")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Error creating pokemon")
		}
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"message": "Pokemon created successfully",
		"pokemon": pokemon,
	})
}
