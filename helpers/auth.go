package helpers

import (
	"context"
	"net/http"
	"strings"

	"github.com/ksugita/tenrankai/entity"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

const claimsContextKey = "tokenClaims"

// TokenClaims are the identity fields this service consumes from a
// verified bearer ID token.
type TokenClaims struct {
	UID   string
	Email string
	Name  string
}

// TokenVerifier verifies a raw bearer token and extracts its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*TokenClaims, error)
}

// IDTokenVerifier validates ID tokens issued by the identity provider
// against the configured audience.
type IDTokenVerifier struct {
	validator *idtoken.Validator
	audience  string
}

func NewIDTokenVerifier(ctx context.Context, audience string) (*IDTokenVerifier, error) {
	validator, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, err
	}

	return &IDTokenVerifier{
		validator: validator,
		audience:  audience,
	}, nil
}

func (v *IDTokenVerifier) Verify(ctx context.Context, token string) (*TokenClaims, error) {
	payload, err := v.validator.Validate(ctx, token, v.audience)
	if err != nil {
		return nil, entity.NewUnauthorizedError(err.Error())
	}

	claims := &TokenClaims{UID: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		claims.Name = name
	}

	return claims, nil
}

// Authenticate extracts and verifies the bearer token, aborting with 401
// when it is missing or invalid. Verified claims are placed on the gin
// context for handlers.
func Authenticate(verifier TokenVerifier) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			apiErr := entity.NewUnauthorizedError("missing bearer token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, apiErr)
			return
		}

		claims, err := verifier.Verify(ctx.Request.Context(), token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, entity.AsAPIError(err))
			return
		}

		ctx.Set(claimsContextKey, claims)
		ctx.Next()
	}
}

// GetClaims returns the verified token claims set by Authenticate.
func GetClaims(ctx *gin.Context) *TokenClaims {
	value, ok := ctx.Get(claimsContextKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*TokenClaims)
	return claims
}
