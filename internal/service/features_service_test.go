package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotate(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	ptr := func(t time.Time) *time.Time { return &t }
	type testCase struct {
		Desc      string
		Conn      entity.Connection
		DaysSince *int
		Due       bool
	}
	three, seven, zero := 3, 7, 0
	testCases := []testCase{
		{
			Desc: "never contacted",
			Conn: entity.Connection{ReminderInterval: 7},
			Due:  true,
		},
		{
			Desc:      "recently contacted",
			Conn:      entity.Connection{ReminderInterval: 7, LastContact: ptr(now.AddDate(0, 0, -3))},
			DaysSince: &three,
		},
		{
			Desc:      "interval reached",
			Conn:      entity.Connection{ReminderInterval: 7, LastContact: ptr(now.AddDate(0, 0, -7).Add(5 * time.Hour))},
			DaysSince: &seven,
			Due:       true,
		},
		{
			Desc:      "zero interval uses default",
			Conn:      entity.Connection{LastContact: ptr(now.AddDate(0, 0, -3))},
			DaysSince: &three,
		},
		{
			Desc:      "contacted today",
			Conn:      entity.Connection{ReminderInterval: 1, LastContact: ptr(now.Add(-time.Hour))},
			DaysSince: &zero,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			c := tc.Conn
			service.Annotate(&c, now)
			assert.Equal(t, tc.DaysSince, c.DaysSince)
			assert.Equal(t, tc.Due, c.Due)
		})
	}
}

type connectionsRepoMock struct {
	conns map[uuid.UUID]*entity.Connection
}

func (m *connectionsRepoMock) List(ctx context.Context, uid uuid.UUID) ([]*entity.Connection, error) {
	res := []*entity.Connection{}
	for _, c := range m.conns {
		if c.UserID == uid {
			cp := *c
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (m *connectionsRepoMock) Create(ctx context.Context, c *entity.Connection) error {
	c.ID = uuid.New()
	cp := *c
	m.conns[c.ID] = &cp
	return nil
}

func (m *connectionsRepoMock) Touch(ctx context.Context, id, uid uuid.UUID, at time.Time) (*entity.Connection, error) {
	c, ok := m.conns[id]
	if !ok || c.UserID != uid {
		return nil, errorvalues.ErrConnectionNotFound
	}
	c.LastContact = &at
	cp := *c
	return &cp, nil
}

func TestConnections(t *testing.T) {
	ctx := context.Background()
	wt, _, pub := newWriteThrough()
	repo := &connectionsRepoMock{conns: make(map[uuid.UUID]*entity.Connection)}
	rs := service.NewRomanceService(nil, repo, wt)

	c, err := rs.CreateConnection(ctx, userID, service.CreateConnectionRequest{Name: "Mom"}, today)
	require.NoError(t, err)
	assert.Equal(t, service.DefaultReminderInterval, c.ReminderInterval)
	assert.True(t, c.Due)

	_, err = rs.TouchConnection(ctx, otherUID, c.ID, today)
	assert.ErrorIs(t, err, errorvalues.ErrConnectionNotFound)

	touched, err := rs.TouchConnection(ctx, userID, c.ID, today)
	require.NoError(t, err)
	require.NotNil(t, touched.DaysSince)
	assert.Equal(t, 0, *touched.DaysSince)
	assert.False(t, touched.Due)

	list, err := rs.ListConnections(ctx, userID, today.AddDate(0, 0, 8))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Due)
	assert.Equal(t, []string{"connections", "connections"}, pub.tables())
}

type pointsRepoMock struct {
	balance int
}

func (m *pointsRepoMock) Get(ctx context.Context, uid uuid.UUID) (*entity.PointsBalance, error) {
	return &entity.PointsBalance{UserID: uid, Balance: m.balance}, nil
}

type rewardsRepoMock struct {
	rewards     map[uuid.UUID]*entity.Reward
	redemptions []*entity.Redemption
}

func (m *rewardsRepoMock) ListRewards(ctx context.Context) ([]*entity.Reward, error) {
	res := []*entity.Reward{}
	for _, r := range m.rewards {
		res = append(res, r)
	}
	return res, nil
}

func (m *rewardsRepoMock) GetReward(ctx context.Context, id uuid.UUID) (*entity.Reward, error) {
	r, ok := m.rewards[id]
	if !ok {
		return nil, errorvalues.ErrRewardNotFound
	}
	return r, nil
}

func (m *rewardsRepoMock) CreateRedemption(ctx context.Context, uid, rewardID uuid.UUID) (*entity.Redemption, error) {
	red := &entity.Redemption{ID: uuid.New(), UserID: uid, RewardID: rewardID, RedeemedAt: time.Now()}
	m.redemptions = append(m.redemptions, red)
	return red, nil
}

func (m *rewardsRepoMock) ListRedemptions(ctx context.Context, uid uuid.UUID) ([]*entity.Redemption, error) {
	return m.redemptions, nil
}

func TestRedeem(t *testing.T) {
	ctx := context.Background()
	movie := &entity.Reward{ID: uuid.New(), Title: "Movie night", Cost: 50}
	rewards := &rewardsRepoMock{rewards: map[uuid.UUID]*entity.Reward{movie.ID: movie}}
	points := &pointsRepoMock{balance: 30}
	wt, _, pub := newWriteThrough()
	rs := service.NewRewardsService(rewards, points, wt)

	t.Run("not enough points", func(t *testing.T) {
		_, err := rs.Redeem(ctx, userID, movie.ID)
		assert.ErrorIs(t, err, errorvalues.ErrNotEnoughPoints)
		assert.Empty(t, rewards.redemptions)
	})
	t.Run("unknown reward", func(t *testing.T) {
		_, err := rs.Redeem(ctx, userID, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrRewardNotFound)
	})
	t.Run("redeemed", func(t *testing.T) {
		points.balance = 60
		red, err := rs.Redeem(ctx, userID, movie.ID)
		require.NoError(t, err)
		assert.Equal(t, movie, red.Reward)
		assert.Equal(t, []string{"redemptions"}, pub.tables())
	})
	t.Run("balance", func(t *testing.T) {
		ps := service.NewPointsService(points, nil)
		b, err := ps.Balance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 60, b.Balance)
		b, err = ps.Balance(ctx, uuid.Nil)
		require.NoError(t, err)
		assert.Zero(t, b.Balance)
	})
}

type tasksRepoMock struct {
	tasks map[uuid.UUID]*entity.Task
}

func (m *tasksRepoMock) List(ctx context.Context, uid uuid.UUID) ([]*entity.Task, error) {
	res := []*entity.Task{}
	for _, t := range m.tasks {
		if t.UserID == uid {
			res = append(res, t)
		}
	}
	return res, nil
}

func (m *tasksRepoMock) Create(ctx context.Context, task *entity.Task) error {
	task.ID = uuid.New()
	m.tasks[task.ID] = task
	return nil
}

func (m *tasksRepoMock) Toggle(ctx context.Context, id, uid uuid.UUID) (*entity.Task, error) {
	t, ok := m.tasks[id]
	if !ok || t.UserID != uid {
		return nil, errorvalues.ErrTaskNotFound
	}
	t.Done = !t.Done
	return t, nil
}

func (m *tasksRepoMock) Delete(ctx context.Context, id, uid uuid.UUID) error {
	t, ok := m.tasks[id]
	if !ok || t.UserID != uid {
		return errorvalues.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

func TestTasks(t *testing.T) {
	ctx := context.Background()
	wt, rec, _ := newWriteThrough()
	repo := &tasksRepoMock{tasks: make(map[uuid.UUID]*entity.Task)}
	ts := service.NewTasksService(repo, wt)

	task, err := ts.Create(ctx, userID, service.CreateTaskRequest{Text: "  buy milk  "})
	require.NoError(t, err)
	assert.Equal(t, "buy milk", task.Text)
	assert.Equal(t, "general", task.Category)

	_, err = ts.Create(ctx, userID, service.CreateTaskRequest{Text: "   "})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)

	toggled, err := ts.Toggle(ctx, userID, task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Done)

	assert.ErrorIs(t, ts.Delete(ctx, otherUID, task.ID), errorvalues.ErrTaskNotFound)
	assert.NoError(t, ts.Delete(ctx, userID, task.ID))
	list, err := ts.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, rec.recorded())
}

type settingsRepoMock struct {
	settings map[uuid.UUID]string
}

func (m *settingsRepoMock) Get(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error) {
	color, ok := m.settings[uid]
	if !ok {
		color = "green"
	}
	return &entity.UserSettings{UserID: uid, ThemeColor: color}, nil
}

func (m *settingsRepoMock) Upsert(ctx context.Context, s *entity.UserSettings) error {
	m.settings[s.UserID] = s.ThemeColor
	return nil
}

func TestSettings(t *testing.T) {
	ctx := context.Background()
	wt, _, _ := newWriteThrough()
	ss := service.NewSettingsService(&settingsRepoMock{settings: map[uuid.UUID]string{}}, wt)

	s, err := ss.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "green", s.ThemeColor)

	s, err = ss.SetTheme(ctx, userID, " Purple ")
	require.NoError(t, err)
	assert.Equal(t, "purple", s.ThemeColor)

	_, err = ss.SetTheme(ctx, userID, "magenta")
	assert.ErrorIs(t, err, errorvalues.ErrValidation)

	s, err = ss.Get(ctx, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, "green", s.ThemeColor)
}
