package controller

import (
	"net/http"

	"github.com/ksugita/tenrankai/entity"
	"github.com/ksugita/tenrankai/helpers"
	"github.com/ksugita/tenrankai/service"

	"github.com/gin-gonic/gin"
)

type BookmarkController struct {
	BookmarkService *service.BookmarkService
}

type toggleBookmarkRequest struct {
	ExhibitionID string `json:"exhibitionId" binding:"required"`
}

// Toggle adds or removes the exhibition from the caller's bookmarks. Pro
// tier only.
func (c *BookmarkController) Toggle(ctx *gin.Context) {
	claims, ok := requireClaims(ctx)
	if !ok {
		return
	}

	var req toggleBookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, entity.NewValidationError(err.Error()))
		return
	}

	bookmarked, err := c.BookmarkService.Toggle(ctx.Request.Context(), claims.UID, req.ExhibitionID)
	if err != nil {
		helpers.CountToggle("bookmark", "rejected")
		respondError(ctx, err)
		return
	}

	if bookmarked {
		helpers.CountToggle("bookmark", "added")
	} else {
		helpers.CountToggle("bookmark", "removed")
	}

	ctx.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

// List returns the caller's bookmarked exhibition ids, newest first.
func (c *BookmarkController) List(ctx *gin.Context) {
	claims, ok := requireClaims(ctx)
	if !ok {
		return
	}

	exhibitionIDs, err := c.BookmarkService.FindExhibitionIDs(ctx.Request.Context(), claims.UID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if exhibitionIDs == nil {
		exhibitionIDs = []string{}
	}

	ctx.JSON(http.StatusOK, gin.H{"exhibitionIds": exhibitionIDs})
}
