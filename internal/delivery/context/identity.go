package context

import (
	"context"
	"log/slog"

	"todo/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyDecodedUser is the key for the authenticated identity.
const KeyDecodedUser ContextKey = "decoded_user"

// SetDecodedUser stores the identity on both the echo context and the
// request context, so handlers and usecases see the same value. A request
// logger already in the context is tagged with the user id.
func SetDecodedUser(c echo.Context, user *entity.DecodedUser) {
	c.Set(string(KeyDecodedUser), user)

	ctx := WithDecodedUser(c.Request().Context(), user)
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", user.ID.String())))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetDecodedUser returns the identity stored by SetDecodedUser, or nil.
func GetDecodedUser(c echo.Context) *entity.DecodedUser {
	if user, ok := c.Get(string(KeyDecodedUser)).(*entity.DecodedUser); ok {
		return user
	}

	return nil
}

// WithDecodedUser returns a new context carrying the identity.
func WithDecodedUser(ctx context.Context, user *entity.DecodedUser) context.Context {
	return context.WithValue(ctx, KeyDecodedUser, user)
}

// DecodedUserFromContext extracts the identity from context.Context, or nil.
func DecodedUserFromContext(ctx context.Context) *entity.DecodedUser {
	if user, ok := ctx.Value(KeyDecodedUser).(*entity.DecodedUser); ok {
		return user
	}

	return nil
}
