package handler

import (
	"net/http"

	"visionflow/internal/services"
	"visionflow/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type FavoritesHandler struct {
	service *services.FavoritesService
}

func NewFavoritesHandler(service *services.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{service: service}
}

func (h *FavoritesHandler) Save(c *gin.Context) {
	var req httpdto.SaveFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}

	if err := h.service.Save(c.Request.Context(), req.Email, req.Question, req.Answer); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.MessageResponse{Message: "Favorite saved successfully."})
}

func (h *FavoritesHandler) List(c *gin.Context) {
	var req httpdto.FavoritesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}

	favorites, err := h.service.List(c.Request.Context(), req.Email)
	if err != nil {
		writeError(c, err)
		return
	}

	dtos := make([]httpdto.FavoriteDTO, 0, len(favorites))
	for _, f := range favorites {
		dtos = append(dtos, httpdto.FavoriteDTO{
			Email:    f.Email,
			Question: f.Question,
			Answer:   f.Answer,
		})
	}

	c.JSON(http.StatusOK, httpdto.FavoritesResponse{Favorites: dtos})
}

func (h *FavoritesHandler) Delete(c *gin.Context) {
	var req httpdto.DeleteFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}

	if err := h.service.DeleteOne(c.Request.Context(), req.Email, req.Question); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.MessageResponse{Message: "Favorite deleted."})
}

func (h *FavoritesHandler) Clear(c *gin.Context) {
	var req httpdto.FavoritesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}

	if err := h.service.DeleteAll(c.Request.Context(), req.Email); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.MessageResponse{Message: "All favorites cleared."})
}
