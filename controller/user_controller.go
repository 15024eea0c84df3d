package controller

import (
	"net/http"
	"time"

	"github.com/ksugita/tenrankai/entity"
	"github.com/ksugita/tenrankai/service"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

type User struct {
	UID              string `json:"uid"`
	Email            string `json:"email"`
	DisplayName      string `json:"displayName,omitempty"`
	SubscriptionTier string `json:"subscriptionTier"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

type updateUserRequest struct {
	DisplayName string `json:"displayName" binding:"required,max=50"`
}

// Me returns the caller's profile, creating the user document on first
// sign-in from the token claims.
func (c *UserController) Me(ctx *gin.Context) {
	claims, ok := requireClaims(ctx)
	if !ok {
		return
	}

	user, err := c.UserService.FindOneOrCreate(ctx.Request.Context(), claims.UID, claims.Email, claims.Name)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": mapUser(user)})
}

// Update changes the caller's display name.
func (c *UserController) Update(ctx *gin.Context) {
	claims, ok := requireClaims(ctx)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, entity.NewValidationError(err.Error()))
		return
	}

	user, err := c.UserService.UpdateDisplayName(ctx.Request.Context(), claims.UID, req.DisplayName)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": mapUser(user)})
}

func mapUser(user *entity.User) User {
	return User{
		UID:              user.UID,
		Email:            user.Email,
		DisplayName:      user.DisplayName,
		SubscriptionTier: string(user.SubscriptionTier),
		CreatedAt:        user.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        user.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
