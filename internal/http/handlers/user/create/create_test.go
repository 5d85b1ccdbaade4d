package create

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/hrms-core/internal/models"
	"github.com/magabrotheeeer/hrms-core/internal/storage"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Register(ctx context.Context, user models.User, rawPassword string) (*models.User, error) {
	args := m.Called(ctx, user, rawPassword)
	created, _ := args.Get(0).(*models.User)
	return created, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestCreateHandler_ServeHTTP(t *testing.T) {
	logger := newNoopLogger()

	tests := []struct {
		name           string
		requestBody    any
		mockUser       *models.User
		mockErr        error
		wantStatusCode int
		wantError      string
	}{
		{
			name: "успешная регистрация",
			requestBody: Request{
				Email:    "new@example.com",
				Name:     "New Employee",
				Role:     models.RoleEmployee,
				Password: "p1",
			},
			mockUser: &models.User{
				ID:       1,
				Email:    "new@example.com",
				Name:     "New Employee",
				Role:     models.RoleEmployee,
				IsActive: true,
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "некорректный json",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name: "отсутствует email",
			requestBody: Request{
				Name:     "No Email",
				Password: "p1",
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Email is a required field",
		},
		{
			name: "некорректный email",
			requestBody: Request{
				Email:    "not-an-email",
				Name:     "Bad Email",
				Password: "p1",
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Email must be a valid email address",
		},
		{
			name: "email уже занят",
			requestBody: Request{
				Email:    "taken@example.com",
				Name:     "Dup",
				Password: "p1",
			},
			mockErr:        storage.ErrEmailTaken,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "email already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			handler := New(logger, authMock)

			if tt.mockUser != nil || tt.mockErr != nil {
				authMock.On("Register", mock.Anything, mock.Anything, tt.requestBody.(Request).Password).
					Return(tt.mockUser, tt.mockErr).Once()
			}

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				var err error
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/users/", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				assert.Equal(t, "new@example.com", got["email"])
				assert.Equal(t, float64(1), got["id"])
				// Хеш пароля не должен попадать в ответ.
				_, hasHash := got["password_hash"]
				assert.False(t, hasHash)
			}

			authMock.AssertExpectations(t)
		})
	}
}
