package middleware

import (
	"errors"
	"net/http"

	"quote_relay/internal/infrastructure/metrics"
	"quote_relay/internal/usecase"
	"quote_relay/pkg"

	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests without a verified bearer token and stores the
// verified identity in the request context for downstream handlers.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := auth.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			appErr := mapAuthError(err)
			metrics.AuthFailuresTotal.WithLabelValues(appErr.Code).Inc()
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Request = c.Request.WithContext(usecase.WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

func mapAuthError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrMissingToken) {
		return pkg.NewDomainError("MISSING_TOKEN", "Unauthorized: No token provided.", err, http.StatusUnauthorized)
	}
	return pkg.NewDomainError("INVALID_TOKEN", "Forbidden: Invalid token.", err, http.StatusForbidden)
}
