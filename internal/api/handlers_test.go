package api_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/lifeos/internal/api"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/internal/service/mocks"
	"github.com/limbo/lifeos/pkg/entity"
	jwtservice "github.com/limbo/lifeos/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	username = "test_name"
	password = "test_password"
	uid      = uuid.New()
	user     = &entity.User{ID: uid, Name: username}
	jwtSvc   = jwtservice.New("test_secret", time.Hour)
)

type testServer struct {
	users    *mocks.MockUserServiceI
	habits   *mocks.MockHabitsServiceI
	goals    *mocks.MockGoalsServiceI
	points   *mocks.MockPointsServiceI
	stats    *mocks.MockStatsServiceI
	tasks    *mocks.MockTasksServiceI
	rewards  *mocks.MockRewardsServiceI
	settings *mocks.MockSettingsServiceI
	serv     *api.Server
}

func newTestServer(t *testing.T, limiter *api.RateLimiter) *testServer {
	ctrl := gomock.NewController(t)
	ts := &testServer{
		users:    mocks.NewMockUserServiceI(ctrl),
		habits:   mocks.NewMockHabitsServiceI(ctrl),
		goals:    mocks.NewMockGoalsServiceI(ctrl),
		points:   mocks.NewMockPointsServiceI(ctrl),
		stats:    mocks.NewMockStatsServiceI(ctrl),
		tasks:    mocks.NewMockTasksServiceI(ctrl),
		rewards:  mocks.NewMockRewardsServiceI(ctrl),
		settings: mocks.NewMockSettingsServiceI(ctrl),
	}
	ts.serv = api.New(&api.ServicesList{
		UserService:     ts.users,
		HabitsService:   ts.habits,
		GoalsService:    ts.goals,
		PointsService:   ts.points,
		StatsService:    ts.stats,
		TasksService:    ts.tasks,
		RewardsService:  ts.rewards,
		SettingsService: ts.settings,
		JwtService:      jwtSvc,
		AuthLimiter:     limiter,
	})
	return ts
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	ts.serv.Handler().ServeHTTP(rr, req)
	return rr
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	body, err := sonic.ConfigDefault.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func authorized(t *testing.T, req *http.Request) *http.Request {
	token, err := jwtSvc.GenerateToken(user)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestRegister(t *testing.T) {
	ts := newTestServer(t, nil)
	type testCase struct {
		Desc            string
		Body            any
		MockPrepareFunc func()
		Status          int
	}
	testCases := []testCase{
		{
			Desc: "registered",
			Body: api.RegisterRequest{Name: username, Password: password},
			MockPrepareFunc: func() {
				ts.users.EXPECT().Register(gomock.Any(), &service.RegisterRequest{Name: username, Password: password}).
					Return(user, nil)
			},
			Status: http.StatusCreated,
		},
		{
			Desc: "existed user",
			Body: api.RegisterRequest{Name: username, Password: password},
			MockPrepareFunc: func() {
				ts.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserExists)
			},
			Status: http.StatusConflict,
		},
		{
			Desc: "invalid credentials format",
			Body: api.RegisterRequest{Name: "1x", Password: "short"},
			MockPrepareFunc: func() {
				ts.users.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("name too short")))
			},
			Status: http.StatusBadRequest,
		},
		{
			Desc: "service error",
			Body: api.RegisterRequest{Name: username, Password: password},
			MockPrepareFunc: func() {
				ts.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("mocked error"))
			},
			Status: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			rr := ts.do(httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", jsonBody(t, tc.Body)))
			assert.Equal(t, tc.Status, rr.Code)
		})
	}
	t.Run("invalid body", func(t *testing.T) {
		rr := ts.do(httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("{"))))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t, nil)
	t.Run("token issued", func(t *testing.T) {
		ts.users.EXPECT().Login(gomock.Any(), username, password).Return(user, nil)
		rr := ts.do(httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			jsonBody(t, api.LoginRequest{Name: username, Password: password})))
		require.Equal(t, http.StatusOK, rr.Code)
		token := gjson.Get(rr.Body.String(), "token").String()
		claims, err := jwtSvc.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, uid.String(), claims.UserID)
	})
	t.Run("wrong credentials", func(t *testing.T) {
		ts.users.EXPECT().Login(gomock.Any(), username, "wrong").Return(nil, errorvalues.ErrWrongCredentials)
		rr := ts.do(httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			jsonBody(t, api.LoginRequest{Name: username, Password: "wrong"})))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	ts := newTestServer(t, nil)
	t.Run("anonymous read is empty", func(t *testing.T) {
		ts.tasks.EXPECT().List(gomock.Any(), uuid.Nil).Return([]*entity.Task{}, nil)
		rr := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"tasks":[]}`, rr.Body.String())
	})
	t.Run("anonymous write is a no-op", func(t *testing.T) {
		rr := ts.do(httptest.NewRequest(http.MethodPost, "/api/v1/tasks", jsonBody(t, api.CreateTaskRequest{Text: "x"})))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
		req.Header.Set("Authorization", "Token abc")
		assert.Equal(t, http.StatusUnauthorized, ts.do(req).Code)
	})
	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
		req.Header.Set("Authorization", "Bearer abc.def.ghi")
		assert.Equal(t, http.StatusUnauthorized, ts.do(req).Code)
	})
	t.Run("deleted user", func(t *testing.T) {
		ts.users.EXPECT().GetByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
		req := authorized(t, httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil))
		assert.Equal(t, http.StatusUnauthorized, ts.do(req).Code)
	})
	t.Run("authorized", func(t *testing.T) {
		ts.users.EXPECT().GetByID(gomock.Any(), uid).Return(user, nil)
		ts.tasks.EXPECT().List(gomock.Any(), uid).Return([]*entity.Task{{ID: uuid.New(), UserID: uid, Text: "buy milk"}}, nil)
		req := authorized(t, httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil))
		rr := ts.do(req)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "buy milk", gjson.Get(rr.Body.String(), "tasks.0.text").String())
	})
}

func TestHabitsHandlers(t *testing.T) {
	ts := newTestServer(t, nil)
	instanceID := uuid.New()
	t.Run("today in the caller's zone", func(t *testing.T) {
		ts.users.EXPECT().GetByID(gomock.Any(), uid).Return(user, nil)
		ts.habits.EXPECT().Reconcile(gomock.Any(), uid, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, today time.Time) ([]*entity.HabitInstanceView, error) {
				assert.Equal(t, "Asia/Tokyo", today.Location().String())
				return []*entity.HabitInstanceView{{InstanceID: instanceID, Name: "read"}}, nil
			})
		req := authorized(t, httptest.NewRequest(http.MethodGet, "/api/v1/habits/today?tz=Asia/Tokyo", nil))
		rr := ts.do(req)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "read", gjson.Get(rr.Body.String(), "habits.0.name").String())
	})
	t.Run("bad timezone", func(t *testing.T) {
		ts.users.EXPECT().GetByID(gomock.Any(), uid).Return(user, nil)
		req := authorized(t, httptest.NewRequest(http.MethodGet, "/api/v1/habits/today?tz=Mars/Olympus", nil))
		assert.Equal(t, http.StatusBadRequest, ts.do(req).Code)
	})
	t.Run("toggle wrong owner", func(t *testing.T) {
		ts.users.EXPECT().GetByID(gomock.Any(), uid).Return(user, nil)
		ts.habits.EXPECT().Toggle(gomock.Any(), uid, instanceID, true, gomock.Any()).Return(nil, errorvalues.ErrWrongOwner)
		req := authorized(t, httptest.NewRequest(http.MethodPatch, "/api/v1/habits/instances/"+instanceID.String(),
			jsonBody(t, api.ToggleHabitRequest{Completed: true})))
		assert.Equal(t, http.StatusNotFound, ts.do(req).Code)
	})
	t.Run("toggle invalid id", func(t *testing.T) {
		ts.users.EXPECT().GetByID(gomock.Any(), uid).Return(user, nil)
		req := authorized(t, httptest.NewRequest(http.MethodPatch, "/api/v1/habits/instances/nope",
			jsonBody(t, api.ToggleHabitRequest{Completed: true})))
		assert.Equal(t, http.StatusBadRequest, ts.do(req).Code)
	})
	t.Run("duplicate template", func(t *testing.T) {
		ts.users.EXPECT().GetByID(gomock.Any(), uid).Return(user, nil)
		ts.habits.EXPECT().CreateTemplate(gomock.Any(), uid, service.CreateTemplateRequest{Name: "read"}).
			Return(nil, errorvalues.ErrTemplateExists)
		req := authorized(t, httptest.NewRequest(http.MethodPost, "/api/v1/habits", jsonBody(t, api.CreateHabitRequest{Name: "read"})))
		assert.Equal(t, http.StatusConflict, ts.do(req).Code)
	})
	t.Run("retire", func(t *testing.T) {
		templateID := uuid.New()
		ts.users.EXPECT().GetByID(gomock.Any(), uid).Return(user, nil)
		ts.habits.EXPECT().Retire(gomock.Any(), uid, templateID).Return(nil)
		req := authorized(t, httptest.NewRequest(http.MethodDelete, "/api/v1/habits/templates/"+templateID.String(), nil))
		assert.Equal(t, http.StatusNoContent, ts.do(req).Code)
	})
}

func TestGoalsAndPoints(t *testing.T) {
	ts := newTestServer(t, nil)
	t.Run("streak", func(t *testing.T) {
		ts.users.EXPECT().GetByID(gomock.Any(), uid).Return(user, nil)
		ts.goals.EXPECT().Streak(gomock.Any(), uid, gomock.Any()).Return(2, nil)
		rr := ts.do(authorized(t, httptest.NewRequest(http.MethodGet, "/api/v1/goals/streak", nil)))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"streak":2}`, rr.Body.String())
	})
	t.Run("balance", func(t *testing.T) {
		ts.users.EXPECT().GetByID(gomock.Any(), uid).Return(user, nil)
		ts.points.EXPECT().Balance(gomock.Any(), uid).Return(&entity.PointsBalance{UserID: uid, Balance: 70}, nil)
		rr := ts.do(authorized(t, httptest.NewRequest(http.MethodGet, "/api/v1/points", nil)))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"balance":70}`, rr.Body.String())
	})
	t.Run("redeem without enough points", func(t *testing.T) {
		rewardID := uuid.New()
		ts.users.EXPECT().GetByID(gomock.Any(), uid).Return(user, nil)
		ts.rewards.EXPECT().Redeem(gomock.Any(), uid, rewardID).Return(nil, errorvalues.ErrNotEnoughPoints)
		rr := ts.do(authorized(t, httptest.NewRequest(http.MethodPost, "/api/v1/rewards/"+rewardID.String()+"/redeem", nil)))
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
	t.Run("stats with viewer zone", func(t *testing.T) {
		ts.stats.EXPECT().Stats(gomock.Any(), uuid.Nil, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, loc *time.Location) (*entity.Stats, error) {
				assert.Equal(t, "Europe/Berlin", loc.String())
				return service.Aggregate(nil, loc), nil
			})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
		req.Header.Set("X-Timezone", "Europe/Berlin")
		rr := ts.do(req)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, gjson.Get(rr.Body.String(), "counts").Exists())
	})
	t.Run("invalid theme", func(t *testing.T) {
		ts.users.EXPECT().GetByID(gomock.Any(), uid).Return(user, nil)
		ts.settings.EXPECT().SetTheme(gomock.Any(), uid, "magenta").Return(nil, errorvalues.ErrValidation)
		rr := ts.do(authorized(t, httptest.NewRequest(http.MethodPut, "/api/v1/settings/theme",
			jsonBody(t, api.SetThemeRequest{ThemeColor: "magenta"}))))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAccountDeletion(t *testing.T) {
	ts := newTestServer(t, nil)
	t.Run("wrong password", func(t *testing.T) {
		ts.users.EXPECT().GetByID(gomock.Any(), uid).Return(user, nil)
		ts.users.EXPECT().DeleteAccount(gomock.Any(), uid, "wrong").Return(errorvalues.ErrWrongCredentials)
		rr := ts.do(authorized(t, httptest.NewRequest(http.MethodDelete, "/api/v1/auth/account",
			jsonBody(t, api.DeleteAccountRequest{Password: "wrong"}))))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
	t.Run("deleted", func(t *testing.T) {
		ts.users.EXPECT().GetByID(gomock.Any(), uid).Return(user, nil)
		ts.users.EXPECT().DeleteAccount(gomock.Any(), uid, password).Return(nil)
		rr := ts.do(authorized(t, httptest.NewRequest(http.MethodDelete, "/api/v1/auth/account",
			jsonBody(t, api.DeleteAccountRequest{Password: password}))))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
	t.Run("logout", func(t *testing.T) {
		ts.users.EXPECT().GetByID(gomock.Any(), uid).Return(user, nil)
		ts.users.EXPECT().Logout(gomock.Any(), uid)
		rr := ts.do(authorized(t, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestAuthRateLimit(t *testing.T) {
	ts := newTestServer(t, api.NewRateLimiter(0.001, 2))
	ts.users.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrWrongCredentials).Times(2)
	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", jsonBody(t, api.LoginRequest{Name: username, Password: "x"}))
		codes = append(codes, ts.do(req).Code)
	}
	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

func TestServiceEndpoints(t *testing.T) {
	ts := newTestServer(t, nil)
	rr := ts.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = ts.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "lifeos_http_requests_total")
}
