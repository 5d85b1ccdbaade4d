package list

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/hrms-core/internal/models"
)

type ProjectServiceMock struct {
	mock.Mock
}

func (m *ProjectServiceMock) List(ctx context.Context) ([]*models.Project, error) {
	args := m.Called(ctx)
	projects, _ := args.Get(0).([]*models.Project)
	return projects, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestListHandler_ServeHTTP(t *testing.T) {
	logger := newNoopLogger()

	tests := []struct {
		name           string
		mockProjects   []*models.Project
		mockError      error
		wantStatusCode int
		wantLen        int
		wantError      string
	}{
		{
			name: "несколько проектов",
			mockProjects: []*models.Project{
				{ID: "north-site", Name: "North Site", Location: models.Location{Lat: 59.93, Lng: 30.33}},
				{ID: "south-site", Name: "South Site", Location: models.Location{Lat: 43.58, Lng: 39.72}},
			},
			wantStatusCode: http.StatusOK,
			wantLen:        2,
		},
		{
			name:           "пустой список",
			mockProjects:   []*models.Project{},
			wantStatusCode: http.StatusOK,
			wantLen:        0,
		},
		{
			name:           "ошибка сервиса",
			mockError:      errors.New("storage unavailable"),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to list projects",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projectMock := new(ProjectServiceMock)
			handler := New(logger, projectMock)

			projectMock.On("List", mock.Anything).
				Return(tt.mockProjects, tt.mockError).Once()

			req := httptest.NewRequest(http.MethodGet, "/projects/", nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			if tt.wantError != "" {
				var got map[string]any
				err := json.NewDecoder(rec.Body).Decode(&got)
				assert.NoError(t, err)
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				var got []map[string]any
				err := json.NewDecoder(rec.Body).Decode(&got)
				assert.NoError(t, err)
				assert.Len(t, got, tt.wantLen)
			}

			projectMock.AssertExpectations(t)
		})
	}
}
