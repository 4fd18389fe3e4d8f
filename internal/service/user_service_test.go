package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/internal/session"
	"github.com/limbo/lifeos/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type usersRepoMock struct {
	state mockState
	users map[string]*entity.User
}

func newUsersRepoMock() *usersRepoMock {
	return &usersRepoMock{users: make(map[string]*entity.User)}
}

func (m *usersRepoMock) Create(ctx context.Context, user *entity.User) error {
	if m.state == stateDBError {
		return errMock
	}
	if _, ok := m.users[user.Name]; ok {
		return errorvalues.ErrUserExists
	}
	cp := *user
	cp.ID = uuid.New()
	m.users[user.Name] = &cp
	return nil
}

func (m *usersRepoMock) FindByName(ctx context.Context, name string) (*entity.User, error) {
	if m.state == stateDBError {
		return nil, errMock
	}
	u, ok := m.users[name]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *usersRepoMock) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	if m.state == stateDBError {
		return nil, errMock
	}
	for _, u := range m.users {
		if u.ID == uid {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errorvalues.ErrUserNotFound
}

func (m *usersRepoMock) Delete(ctx context.Context, uid uuid.UUID) error {
	for name, u := range m.users {
		if u.ID == uid {
			delete(m.users, name)
			return nil
		}
	}
	return errorvalues.ErrUserNotFound
}

type notifierMock struct {
	events []session.AuthState
}

func (n *notifierMock) Notify(event session.Event, uid uuid.UUID) {
	n.events = append(n.events, session.AuthState{Event: event, UserID: uid})
}

func TestUserService(t *testing.T) {
	repo := newUsersRepoMock()
	notifier := &notifierMock{}
	us := service.NewUserService(repo, notifier)
	ctx := context.Background()
	username := "test_user"
	password := "test_password"
	var user *entity.User
	var err error
	t.Run("registered user", func(t *testing.T) {
		user, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		require.NoError(t, err)
		assert.Equal(t, username, user.Name)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	})
	t.Run("error registering already existed user", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("validation error", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Name:     "1bad name",
			Password: "short",
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("login", func(t *testing.T) {
		res, err := us.Login(ctx, username, password)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
		require.NotEmpty(t, notifier.events)
		last := notifier.events[len(notifier.events)-1]
		assert.Equal(t, session.SignedIn, last.Event)
		assert.Equal(t, user.ID, last.UserID)
	})
	t.Run("error login on unexisted user", func(t *testing.T) {
		_, err := us.Login(ctx, "aaaaaaa", "bbbbb")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("error login with wrong password", func(t *testing.T) {
		_, err := us.Login(ctx, username, "wrong_password")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("found by id", func(t *testing.T) {
		res, err := us.GetByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("not found by id", func(t *testing.T) {
		_, err := us.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("logout", func(t *testing.T) {
		n := len(notifier.events)
		us.Logout(ctx, user.ID)
		require.Len(t, notifier.events, n+1)
		assert.Equal(t, session.SignedOut, notifier.events[n].Event)
		us.Logout(ctx, uuid.Nil)
		assert.Len(t, notifier.events, n+1)
	})
	t.Run("failed to delete w/ wrong password", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, "dasdasd")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("deleted", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, password)
		assert.NoError(t, err)
		last := notifier.events[len(notifier.events)-1]
		assert.Equal(t, session.Deleted, last.Event)
		_, err = us.GetByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		repo.state = stateDBError
		defer func() { repo.state = stateSuccess }()
		_, err := us.Login(ctx, username, password)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
}
