package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/foliohub/pkg/apperror"
	"github.com/khoahotran/foliohub/pkg/auth"
	"github.com/khoahotran/foliohub/pkg/logger"
)

const GinContextKeyClaims = "authClaims"

// ExtractBearerToken pulls the token out of an Authorization header
// value. The shape is exactly `Bearer <token>`: case-sensitive scheme,
// one space, non-empty token. Anything else returns "".
func ExtractBearerToken(authHeader string) string {
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return ""
	}
	return parts[1]
}

func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {

		tokenString := ExtractBearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorEnvelope("Unauthorized"))
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorEnvelope("Invalid token"))
			return
		}

		c.Set(GinContextKeyClaims, claims)

		c.Next()
	}
}

func GetClaimsFromGinContext(c *gin.Context) (*auth.PortfolioClaims, bool) {
	v, ok := c.Get(GinContextKeyClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.PortfolioClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}

// ErrorMiddleware turns errors collected via c.Error into the response
// envelope. Unexpected errors are logged with full detail and returned
// as a generic 500.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Error("Request failed", err)
		}

		c.JSON(status, errorEnvelope(apperror.PublicMessage(err)))
	}
}
