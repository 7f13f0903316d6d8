// Package middleware contains the API-specific echo middleware.
package middleware

import (
	"log/slog"
	"time"

	"todo/internal/delivery/api/response"
	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/service"
	"todo/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddleware rejects requests without a valid bearer token.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.TokenVerifier
	Logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: params.Verifier,
		logger:   params.Logger,
	}
}

// Authenticate verifies the Authorization header. On success the decoded
// user is attached to the request and next runs; otherwise the request is
// answered with the error's status and next never runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return m.reject(c, domainerrors.ErrNoAuthorizationHeader)
		}

		start := time.Now()
		user, err := m.verifier.VerifyUser(header)
		metrics.TokenVerifyDuration.Observe(time.Since(start).Seconds())

		if err != nil {
			return m.reject(c, err)
		}

		metrics.AuthRequestsTotal.WithLabelValues(metrics.OutcomeAuthenticated, "").Inc()
		deliverycontext.SetDecodedUser(c, user)

		return next(c)
	}
}

func (m *AuthMiddleware) reject(c echo.Context, err error) error {
	kind := domainerrors.KindOf(err)
	metrics.AuthRequestsTotal.WithLabelValues(metrics.OutcomeRejected, string(kind)).Inc()

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Request rejected",
		slog.String("kind", string(kind)),
		slog.String("path", c.Request().URL.Path),
		slog.Any("error", err),
	)

	return response.HandleAppError(c, err)
}

// Authenticated returns the user attached by Authenticate. Handlers on
// routes without the middleware get InvalidToken.
func Authenticated(c echo.Context) (*entity.DecodedUser, error) {
	user := deliverycontext.GetDecodedUser(c)
	if user == nil {
		return nil, domainerrors.ErrInvalidToken
	}

	return user, nil
}
