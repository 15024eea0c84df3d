package controller

import (
	"net/http"

	"github.com/ksugita/tenrankai/entity"
	"github.com/ksugita/tenrankai/helpers"
	"github.com/ksugita/tenrankai/service"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	FavoriteService *service.FavoriteService
}

type toggleFavoriteRequest struct {
	MuseumID string `json:"museumId" binding:"required"`
}

// Toggle adds or removes the museum from the caller's favorites.
func (c *FavoriteController) Toggle(ctx *gin.Context) {
	claims, ok := requireClaims(ctx)
	if !ok {
		return
	}

	var req toggleFavoriteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, entity.NewValidationError(err.Error()))
		return
	}

	favorited, err := c.FavoriteService.Toggle(ctx.Request.Context(), claims.UID, req.MuseumID)
	if err != nil {
		helpers.CountToggle("favorite", "rejected")
		respondError(ctx, err)
		return
	}

	if favorited {
		helpers.CountToggle("favorite", "added")
	} else {
		helpers.CountToggle("favorite", "removed")
	}

	ctx.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

// List returns the caller's favorite museum ids, newest first.
func (c *FavoriteController) List(ctx *gin.Context) {
	claims, ok := requireClaims(ctx)
	if !ok {
		return
	}

	museumIDs, err := c.FavoriteService.FindMuseumIDs(ctx.Request.Context(), claims.UID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if museumIDs == nil {
		museumIDs = []string{}
	}

	ctx.JSON(http.StatusOK, gin.H{"museumIds": museumIDs})
}
