package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"task-manager-api/internal/application/ports"
	"task-manager-api/internal/application/services"
	taskDomain "task-manager-api/internal/domain/task"
	domain "task-manager-api/internal/domain/user"
	jwtSvc "task-manager-api/internal/infrastructure/jwt"
	"task-manager-api/internal/interface/api/rest/middleware"
)

const testSecret = "test-secret"

type FakeUserService struct {
	SignUpFunc         func(ctx context.Context, req domain.User, password string) (*domain.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	VerifyFunc         func(ctx context.Context, id domain.ID) (*domain.User, error)
	ChangePasswordFunc func(ctx context.Context, id domain.ID, password string) (*domain.User, error)
	UpdateProfileFunc  func(ctx context.Context, id domain.ID, upd domain.ProfileUpdate) (*domain.User, error)
	HardDeleteFunc     func(ctx context.Context, id domain.ID) (*domain.User, error)
	SoftDeleteFunc     func(ctx context.Context, id domain.ID) (*domain.User, error)
}

func (f *FakeUserService) SignUp(ctx context.Context, req domain.User, password string) (*domain.User, error) {
	if f.SignUpFunc == nil {
		return nil, errors.New("not used")
	}
	return f.SignUpFunc(ctx, req, password)
}
func (f *FakeUserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.FindByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindByEmailFunc(ctx, email)
}
func (f *FakeUserService) Verify(ctx context.Context, id domain.ID) (*domain.User, error) {
	if f.VerifyFunc == nil {
		return nil, errors.New("not used")
	}
	return f.VerifyFunc(ctx, id)
}
func (f *FakeUserService) ChangePassword(ctx context.Context, id domain.ID, password string) (*domain.User, error) {
	if f.ChangePasswordFunc == nil {
		return nil, errors.New("not used")
	}
	return f.ChangePasswordFunc(ctx, id, password)
}
func (f *FakeUserService) UpdateProfile(ctx context.Context, id domain.ID, upd domain.ProfileUpdate) (*domain.User, error) {
	if f.UpdateProfileFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateProfileFunc(ctx, id, upd)
}
func (f *FakeUserService) HardDelete(ctx context.Context, id domain.ID) (*domain.User, error) {
	if f.HardDeleteFunc == nil {
		return nil, errors.New("not used")
	}
	return f.HardDeleteFunc(ctx, id)
}
func (f *FakeUserService) SoftDelete(ctx context.Context, id domain.ID) (*domain.User, error) {
	if f.SoftDeleteFunc == nil {
		return nil, errors.New("not used")
	}
	return f.SoftDeleteFunc(ctx, id)
}

type FakeTaskService struct {
	CreateFunc         func(ctx context.Context, req taskDomain.Task) (*taskDomain.Task, error)
	UpdateFunc         func(ctx context.Context, id taskDomain.ID, callerID domain.ID, upd taskDomain.Update) (*taskDomain.Task, error)
	DeleteFunc         func(ctx context.Context, id taskDomain.ID, callerID domain.ID) (*taskDomain.Task, error)
	ListWithOwnersFunc func(ctx context.Context) ([]*taskDomain.WithOwner, error)
	OverdueFunc        func(ctx context.Context, now time.Time) (taskDomain.Tasks, error)
}

func (f *FakeTaskService) Create(ctx context.Context, req taskDomain.Task) (*taskDomain.Task, error) {
	if f.CreateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFunc(ctx, req)
}
func (f *FakeTaskService) Update(ctx context.Context, id taskDomain.ID, callerID domain.ID, upd taskDomain.Update) (*taskDomain.Task, error) {
	if f.UpdateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateFunc(ctx, id, callerID, upd)
}
func (f *FakeTaskService) Delete(ctx context.Context, id taskDomain.ID, callerID domain.ID) (*taskDomain.Task, error) {
	if f.DeleteFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteFunc(ctx, id, callerID)
}
func (f *FakeTaskService) ListWithOwners(ctx context.Context) ([]*taskDomain.WithOwner, error) {
	if f.ListWithOwnersFunc == nil {
		return nil, errors.New("not used")
	}
	return f.ListWithOwnersFunc(ctx)
}
func (f *FakeTaskService) Overdue(ctx context.Context, now time.Time) (taskDomain.Tasks, error) {
	if f.OverdueFunc == nil {
		return nil, errors.New("not used")
	}
	return f.OverdueFunc(ctx, now)
}

type FakeGuard struct {
	CheckFunc func(ctx context.Context, subjectID string) (*domain.User, error)
}

func (f *FakeGuard) Check(ctx context.Context, subjectID string) (*domain.User, error) {
	if f.CheckFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CheckFunc(ctx, subjectID)
}

func setupUserRouter(t *testing.T, us ports.UserService, guard ports.AccountGuard) (*gin.Engine, *jwtSvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	j := jwtSvc.New(testSecret)

	uc := &UserController{
		userService: us,
		authService: services.NewAuthService(j),
		guard:       guard,
		logger:      zap.NewNop(),
	}

	auth := middleware.AuthMiddleware(j)
	r.POST(RouteSignUp, uc.SignUpHandler)
	r.POST(RouteSignIn, uc.SignInHandler)
	r.GET(RouteVerify, uc.VerifyHandler)
	r.PATCH(RouteChangePass, auth, uc.ChangePasswordHandler)
	r.PATCH(RouteUpdateProfile, auth, uc.UpdateProfileHandler)
	r.GET(RouteHardDelete, auth, uc.HardDeleteHandler)
	r.GET(RouteSoftDelete, auth, uc.SoftDeleteHandler)
	r.GET(RouteLogout, auth, uc.LogoutHandler)

	return r, j
}

func setupTaskRouter(t *testing.T, ts ports.TaskService, guard ports.AccountGuard) (*gin.Engine, *jwtSvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	j := jwtSvc.New(testSecret)

	tc := &TaskController{
		taskService: ts,
		authService: services.NewAuthService(j),
		guard:       guard,
		logger:      zap.NewNop(),
	}

	auth := middleware.AuthMiddleware(j)
	r.POST(RouteTasks, auth, tc.AddHandler)
	r.PATCH(RouteTasks, auth, tc.UpdateHandler)
	r.DELETE(RouteTasks, auth, tc.DeleteHandler)
	r.GET(RouteTasksWithUsers, tc.ListWithUsersHandler)
	r.GET(RouteOverdueTasks, tc.OverdueHandler)

	return r, j
}

func sessionToken(t *testing.T, j *jwtSvc.Service, subjectID string) string {
	t.Helper()
	tok, err := j.Issue(subjectID, "", jwtSvc.SessionTTL)
	require.NoError(t, err)
	return tok
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
