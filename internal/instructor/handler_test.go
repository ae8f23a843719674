package instructor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req InstructorRequest) (*Instructor, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Instructor), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int, req InstructorRequest) (*Instructor, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Instructor), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id int) (*Instructor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Instructor), args.Error(1)
}

func (m *MockService) FindByName(ctx context.Context, name string) (*Instructor, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Instructor), args.Error(1)
}

func (m *MockService) List(ctx context.Context) ([]Instructor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Instructor), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc)
	r.GET("/instructors", h.List)
	r.GET("/instructors/:instructorID", h.Get)
	r.POST("/admin/instructors", h.Create)
	return r
}

func TestGetHandler(t *testing.T) {
	svc := new(MockService)
	svc.On("Get", mock.Anything, 1).Return(&Instructor{ID: 1, Name: "Sarah Johnson"}, nil)
	svc.On("Get", mock.Anything, 2).Return(nil, ErrInstructorNotFound)
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/instructors/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sarah Johnson")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/instructors/2", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateHandler_Validation(t *testing.T) {
	svc := new(MockService)
	body, _ := json.Marshal(map[string]interface{}{"name": "No Bio", "years_experience": -1})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/instructors", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
