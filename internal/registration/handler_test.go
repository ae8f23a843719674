package registration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gymplace/internal/api"
	"gymplace/internal/auth"
	"gymplace/internal/member"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, p auth.Principal, classID int) (*Registration, Outcome, error) {
	args := m.Called(ctx, p, classID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*Registration), args.Get(1).(Outcome), args.Error(2)
}

func (m *MockService) Cancel(ctx context.Context, p auth.Principal, classID int) (*Registration, error) {
	args := m.Called(ctx, p, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Registration), args.Error(1)
}

func (m *MockService) AdminCancel(ctx context.Context, registrationID int) (*Registration, error) {
	args := m.Called(ctx, registrationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Registration), args.Error(1)
}

func (m *MockService) MarkAttended(ctx context.Context, registrationID int, attended bool) (*Registration, error) {
	args := m.Called(ctx, registrationID, attended)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Registration), args.Error(1)
}

func (m *MockService) ListMine(ctx context.Context, p auth.Principal, onlyActive bool) ([]Registration, error) {
	args := m.Called(ctx, p, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Registration), args.Error(1)
}

func (m *MockService) ListForMember(ctx context.Context, memberID int, onlyActive bool, limit int) ([]Registration, error) {
	args := m.Called(ctx, memberID, onlyActive, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Registration), args.Error(1)
}

func (m *MockService) ListForClass(ctx context.Context, classID int, onlyActive bool) ([]Registration, error) {
	args := m.Called(ctx, classID, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Registration), args.Error(1)
}

func (m *MockService) IsRegistered(ctx context.Context, memberID, classID int) (bool, error) {
	args := m.Called(ctx, memberID, classID)
	return args.Bool(0), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		auth.SetPrincipal(c, alice)
		c.Next()
	})

	h := NewHandler(svc)
	r.POST("/classes/:classID/register", h.Register)
	r.POST("/classes/:classID/cancel", h.Cancel)
	r.GET("/registrations", h.ListMine)
	r.PUT("/admin/registrations/:registrationID/attended", h.MarkAttended)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name       string
		reg        *Registration
		outcome    Outcome
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "registered", reg: &Registration{ID: 1, ClassName: "Morning Yoga"}, outcome: OutcomeRegistered, wantStatus: http.StatusCreated},
		{name: "reregistered", reg: &Registration{ID: 1}, outcome: OutcomeReregistered, wantStatus: http.StatusOK},
		{name: "already registered", reg: &Registration{ID: 1}, outcome: OutcomeAlreadyRegistered, wantStatus: http.StatusOK},
		{name: "full", err: ErrClassFull, wantStatus: http.StatusConflict, wantCode: api.CodeClassFull},
		{name: "missing class", err: ErrClassNotFound, wantStatus: http.StatusNotFound, wantCode: api.CodeNotFound},
		{name: "missing profile", err: member.ErrNoMemberProfile, wantStatus: http.StatusConflict, wantCode: api.CodeMemberProfileMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.err != nil {
				svc.On("Register", mock.Anything, alice, 7).Return(nil, Outcome(""), tt.err)
			} else {
				svc.On("Register", mock.Anything, alice, 7).Return(tt.reg, tt.outcome, nil)
			}

			w := serve(setupRouter(svc), http.MethodPost, "/classes/7/register", "")

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				var resp api.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantCode, resp.Code)
				return
			}
			var resp RegisterResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.outcome, resp.Outcome)
		})
	}
}

func TestRegisterHandler_MessageNamesClass(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    string
	}{
		{"New registration", OutcomeRegistered, "Successfully registered for Morning Yoga!"},
		{"Re-activated registration", OutcomeReregistered, "Successfully re-registered for Morning Yoga!"},
		{"Already registered", OutcomeAlreadyRegistered, "You are already registered for this class."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("Register", mock.Anything, alice, 7).Return(&Registration{ID: 1, ClassName: "Morning Yoga"}, tt.outcome, nil)

			w := serve(setupRouter(svc), http.MethodPost, "/classes/7/register", "")

			var resp RegisterResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Message)
		})
	}
}

func TestCancelHandler_NotRegistered(t *testing.T) {
	svc := new(MockService)
	svc.On("Cancel", mock.Anything, alice, 7).Return(nil, ErrRegistrationNotFound)

	w := serve(setupRouter(svc), http.MethodPost, "/classes/7/cancel", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMineHandler(t *testing.T) {
	svc := new(MockService)
	svc.On("ListMine", mock.Anything, alice, true).Return([]Registration{{ID: 1}, {ID: 2}}, nil)

	w := serve(setupRouter(svc), http.MethodGet, "/registrations?active=true", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var regs []Registration
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &regs))
	assert.Len(t, regs, 2)
}

func TestMarkAttendedHandler(t *testing.T) {
	svc := new(MockService)
	svc.On("MarkAttended", mock.Anything, 5, false).Return(&Registration{ID: 5}, nil)
	r := setupRouter(svc)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodPut, "/admin/registrations/5/attended", `{"attended": false}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPut, "/admin/registrations/5/attended", `{}`).Code)
}
