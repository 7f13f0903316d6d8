package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todo/internal/delivery/api/response"
	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/service"
	"todo/internal/infra/auth"
	mockSvc "todo/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "middleware-test-signing-key"

type authFixture struct {
	echo        *echo.Echo
	codec       *auth.AccessCodec
	nextCalled  bool
	seenUser    *entity.DecodedUser
	seenCtxUser *entity.DecodedUser
}

func newAuthFixture(t *testing.T, now func() time.Time) *authFixture {
	t.Helper()

	codec, err := auth.NewClaimsCodec[service.Claims](testSigningKey, auth.WithClock(now))
	require.NoError(t, err)

	f := &authFixture{echo: echo.New(), codec: codec}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.echo.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	mw := NewAuthMiddleware(AuthMiddlewareParams{Verifier: codec, Logger: logger})
	f.echo.GET("/api/todo", func(c echo.Context) error {
		f.nextCalled = true
		f.seenUser, _ = Authenticated(c)
		f.seenCtxUser = deliverycontext.DecodedUserFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	}, mw.Authenticate)

	return f
}

func (f *authFixture) do(t *testing.T, header string, set bool) (*httptest.ResponseRecorder, *response.ErrorResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/todo", nil)
	if set {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	if rec.Code == http.StatusOK {
		return rec, nil
	}

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, &body
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	f := newAuthFixture(t, time.Now)

	rec, body := f.do(t, "", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, string(domainerrors.KindNoAuthorizationHeader), body.Error.Code)
	assert.Equal(t, "No Authorization Header", body.Error.Message)
	assert.Nil(t, body.Error.Details)
	assert.False(t, f.nextCalled)
}

func TestAuthenticate_Rejections(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	identity := &entity.Identity{ID: uuid.New(), Email: "a@example.com"}

	issuer := newAuthFixture(t, func() time.Time { return issuedAt })
	token, err := issuer.codec.Issue(identity)
	require.NoError(t, err)

	otherKey, err := auth.NewClaimsCodec[service.Claims]("some-other-key", auth.WithClock(func() time.Time { return issuedAt }))
	require.NoError(t, err)
	foreign, err := otherKey.Issue(identity)
	require.NoError(t, err)

	tests := []struct {
		name     string
		now      time.Time
		header   string
		wantKind domainerrors.Kind
	}{
		{"expired", issuedAt.Add(auth.TokenTTL + time.Minute), "Bearer " + token, domainerrors.KindTokenExpired},
		{"garbage", issuedAt, "Bearer not.a.jwt", domainerrors.KindInvalidToken},
		{"empty bearer", issuedAt, "Bearer ", domainerrors.KindInvalidToken},
		{"signed with another key", issuedAt, "Bearer " + foreign, domainerrors.KindInvalidToken},
		{"control characters", issuedAt, "Bearer \x01" + token, domainerrors.KindInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := tt.now
			f := newAuthFixture(t, func() time.Time { return now })

			rec, body := f.do(t, tt.header, true)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, string(tt.wantKind), body.Error.Code)
			assert.Nil(t, body.Error.Details)
			assert.False(t, f.nextCalled)
		})
	}
}

func TestAuthenticate_AcceptsValidToken(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	f := newAuthFixture(t, func() time.Time { return issuedAt.Add(time.Hour) })
	identity := &entity.Identity{ID: uuid.New(), Email: "a@example.com", Name: "A"}

	issuer := newAuthFixture(t, func() time.Time { return issuedAt })
	token, err := issuer.codec.Issue(identity)
	require.NoError(t, err)

	for _, header := range []string{"Bearer " + token, token} {
		f.nextCalled = false

		rec, _ := f.do(t, header, true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, f.nextCalled)
		require.NotNil(t, f.seenUser)
		assert.Equal(t, identity.ID, f.seenUser.ID)
		assert.Equal(t, identity.Email, f.seenUser.Email)
		assert.Equal(t, f.seenUser, f.seenCtxUser)
	}
}

func TestAuthenticate_PassesHandlerResultThrough(t *testing.T) {
	verifier := mockSvc.NewMockTokenVerifier(t)
	user := &entity.DecodedUser{ID: uuid.New(), Email: "a@example.com"}
	verifier.EXPECT().VerifyUser("Bearer ok").Return(user, nil)

	mw := NewAuthMiddleware(AuthMiddlewareParams{Verifier: verifier, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	handlerErr := domainerrors.ErrTodoNotFound

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/todo/x", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer ok")
	c := e.NewContext(req, httptest.NewRecorder())

	err := mw.Authenticate(func(echo.Context) error { return handlerErr })(c)

	assert.Same(t, handlerErr, err)
}

func TestAuthenticated_WithoutMiddleware(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	user, err := Authenticated(c)

	assert.Nil(t, user)
	require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
