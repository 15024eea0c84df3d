package controller

import (
	"net/http"

	"github.com/ksugita/tenrankai/entity"
	"github.com/ksugita/tenrankai/helpers"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// requireClaims fetches the verified token claims, answering 401 when the
// route was reached without the auth middleware having set them.
func requireClaims(ctx *gin.Context) (*helpers.TokenClaims, bool) {
	claims := helpers.GetClaims(ctx)
	if claims == nil {
		respondError(ctx, entity.NewUnauthorizedError("missing token claims"))
		return nil, false
	}
	return claims, true
}

// respondError writes the typed error shape. Untyped errors become 500s and
// are logged with the route; typed ones carry their own status and message.
func respondError(ctx *gin.Context, err error) {
	apiErr := entity.AsAPIError(err)
	if apiErr.Status == http.StatusInternalServerError {
		log.Error().Err(err).Str("url", ctx.Request.URL.String()).Msg("Request failed")
	}

	ctx.JSON(apiErr.Status, apiErr)
}
