package login

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/hrms-core/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	authMock := new(AuthServiceMock)
	logger := newNoopLogger()

	handler := New(logger, authMock)

	tests := []struct {
		name           string
		form           url.Values
		mockToken      string
		mockErr        error
		wantStatusCode int
		wantToken      string
		wantError      string
	}{
		{
			name:           "успешный вход",
			form:           url.Values{"username": {"user@example.com"}, "password": {"p1"}},
			mockToken:      "tok",
			wantStatusCode: http.StatusOK,
			wantToken:      "tok",
		},
		{
			name:           "отсутствует пароль",
			form:           url.Values{"username": {"user@example.com"}},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Password is a required field",
		},
		{
			name:           "отсутствует email",
			form:           url.Values{"password": {"p1"}},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Username is a required field",
		},
		{
			name:           "неверные учетные данные",
			form:           url.Values{"username": {"user@example.com"}, "password": {"wrong"}},
			mockErr:        auth.ErrInvalidCredentials,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "incorrect email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock.ExpectedCalls = nil
			authMock.Calls = nil

			if tt.mockToken != "" || tt.mockErr != nil {
				authMock.On("Login", mock.Anything, tt.form.Get("username"), tt.form.Get("password")).
					Return(tt.mockToken, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantError != "" {
				errStr, ok := got["error"].(string)
				assert.True(t, ok)
				assert.Equal(t, tt.wantError, errStr)
			} else {
				assert.Equal(t, tt.wantToken, got["access_token"])
				assert.Equal(t, "bearer", got["token_type"])
			}

			authMock.AssertExpectations(t)
		})
	}
}
