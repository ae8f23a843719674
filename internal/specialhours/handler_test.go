package specialhours

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gymplace/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req SpecialHoursRequest) (*SpecialHours, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SpecialHours), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int, req SpecialHoursRequest) (*SpecialHours, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SpecialHours), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockService) Upcoming(ctx context.Context, today db.Date, limit int) ([]SpecialHours, error) {
	args := m.Called(ctx, today, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SpecialHours), args.Error(1)
}

func (m *MockService) Between(ctx context.Context, from, to db.Date) ([]SpecialHours, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SpecialHours), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc)
	h.now = func() time.Time { return time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC) }
	r.GET("/special-hours", h.Upcoming)
	r.POST("/admin/special-hours", h.Create)
	r.DELETE("/admin/special-hours/:hoursID", h.Delete)
	return r
}

func TestUpcomingHandler(t *testing.T) {
	svc := new(MockService)
	svc.On("Upcoming", mock.Anything, db.NewDate(2025, time.December, 1), 0).
		Return([]SpecialHours{{ID: 1, Date: db.NewDate(2025, time.December, 25), Title: "Christmas Day", IsClosed: true}}, nil)

	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/special-hours", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"date":"2025-12-25"`)
	assert.NotContains(t, w.Body.String(), "open_time")
}

func TestCreateHandler_InvalidHours(t *testing.T) {
	svc := new(MockService)
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, ErrInvalidHours)

	body := `{"date":"2025-12-24","closure_type":"modified","title":"Short day","is_closed":false}`
	req := httptest.NewRequest(http.MethodPost, "/admin/special-hours", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_failed")
}

func TestDeleteHandler(t *testing.T) {
	svc := new(MockService)
	svc.On("Delete", mock.Anything, 3).Return(nil)
	svc.On("Delete", mock.Anything, 4).Return(ErrSpecialHoursNotFound)
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/special-hours/3", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/special-hours/4", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
