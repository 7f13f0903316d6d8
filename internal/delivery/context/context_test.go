package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"todo/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestDecodedUser_VisibleFromBothContexts(t *testing.T) {
	c := newEchoContext()
	assert.Nil(t, GetDecodedUser(c))
	assert.Nil(t, DecodedUserFromContext(c.Request().Context()))

	user := &entity.DecodedUser{ID: uuid.New(), Email: "a@example.com"}
	SetDecodedUser(c, user)

	assert.Same(t, user, GetDecodedUser(c))
	assert.Same(t, user, DecodedUserFromContext(c.Request().Context()))
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	generated := GetRequestID(c)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", RequestIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestSetDecodedUser_TagsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	c := newEchoContext()
	c.SetRequest(c.Request().WithContext(WithLogger(c.Request().Context(), base)))

	user := &entity.DecodedUser{ID: uuid.New(), Email: "a@example.com"}
	SetDecodedUser(c, user)

	GetLoggerOrDefault(c.Request().Context(), nil).Info("hello")
	assert.Contains(t, buf.String(), "user_id="+user.ID.String())
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := fallback.With(slog.String("request_id", "x"))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}
