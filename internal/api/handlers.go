package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/internal/session"
	"github.com/limbo/lifeos/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	err := httputil.DecodeJSON(r, &req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("registering error: invalid credentials format")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid name or password format", err)
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	err := httputil.DecodeJSON(r, &req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid username or password", nil)
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

// Logout closes the caller's realtime streams. The token itself stays valid until
// it expires.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	uid, _ := session.CurrentUser(r.Context())
	s.userService.Logout(r.Context(), uid)
	httputil.WriteNoContent(w)
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := session.CurrentUser(r.Context())
	if !ok {
		httputil.WriteNoContent(w)
		return
	}
	var req DeleteAccountRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("account deletion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err := s.userService.DeleteAccount(ctx, uid, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("account deletion error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "wrong password", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("account deletion error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
		default:
			logger.Error("account deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting account", nil)
		}
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("account deleted")
}

// writeServiceError maps service sentinels onto status codes. Records owned by
// someone else are reported as missing.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrInvalidSpace):
		logger.Error(op+" error: invalid input", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrWrongOwner),
		errors.Is(err, errorvalues.ErrTemplateNotFound),
		errors.Is(err, errorvalues.ErrInstanceNotFound),
		errors.Is(err, errorvalues.ErrGoalNotFound),
		errors.Is(err, errorvalues.ErrTaskNotFound),
		errors.Is(err, errorvalues.ErrConnectionNotFound),
		errors.Is(err, errorvalues.ErrRewardNotFound),
		errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(op+" error: not found", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, "not found", nil)
	case errors.Is(err, errorvalues.ErrTemplateExists):
		logger.Error(op + " error: already exists")
		httputil.WriteErrorResponse(w, http.StatusConflict, "already exists", nil)
	case errors.Is(err, errorvalues.ErrNotEnoughPoints):
		logger.Error(op + " error: not enough points")
		httputil.WriteErrorResponse(w, http.StatusConflict, "not enough points", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

// viewerLocation reads the caller's IANA zone from ?tz= or the X-Timezone header.
func viewerLocation(r *http.Request) (*time.Location, error) {
	name := r.URL.Query().Get("tz")
	if name == "" {
		name = r.Header.Get("X-Timezone")
	}
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}

// today is the current instant in the caller's zone, so its calendar date is the
// caller's day.
func (s *Server) today(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	loc, err := viewerLocation(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error("invalid timezone", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid timezone", nil)
		return time.Time{}, false
	}
	return s.now().In(loc), true
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error("invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid id in path value", nil)
		return uuid.Nil, false
	}
	return id, true
}

// writer resolves the caller of a write endpoint. Anonymous writes are answered
// with 204 and do nothing.
func writer(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	uid, ok := session.CurrentUser(r.Context())
	if !ok {
		GetLoggerFromCtx(r.Context()).Debug("anonymous write ignored", slog.String("path", r.URL.Path))
		httputil.WriteNoContent(w)
		return uuid.Nil, false
	}
	return uid, true
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httputil.DecodeJSON(r, dst); err != nil {
		GetLoggerFromCtx(r.Context()).Error("invalid request body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

func requestCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Second*10)
}
