package api

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/limbo/lifeos/internal/metrics"
	"github.com/limbo/lifeos/internal/realtime"
	"github.com/limbo/lifeos/internal/session"
	"github.com/limbo/lifeos/pkg/httputil"
)

// Tables a client may watch. points_balance changes arrive through the database
// listener, the rest through the write paths.
var RealtimeTables = []string{
	"habit_templates", "habit_instances", "daily_goals", "life_events", "points_balance",
	"tasks", "moods", "mental_journal", "workouts", "study_sessions", "romance_entries",
	"connections", "entertainment_items", "redemptions", "user_settings",
}

const (
	streamBuffer = 32
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// stream is one websocket client. Changes are queued without blocking the hub.
type stream struct {
	changes chan realtime.Change
	done    chan struct{}
	once    sync.Once
	reason  string
}

func newStream() *stream {
	return &stream{
		changes: make(chan realtime.Change, streamBuffer),
		done:    make(chan struct{}),
	}
}

func (st *stream) send(c realtime.Change) {
	select {
	case <-st.done:
	case st.changes <- c:
	default:
		metrics.RealtimeDropped()
	}
}

func (st *stream) close(reason string) {
	st.once.Do(func() {
		st.reason = reason
		close(st.done)
	})
}

func parseTables(raw string) ([]string, bool) {
	if strings.TrimSpace(raw) == "" {
		return RealtimeTables, true
	}
	var tables []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if !slices.Contains(RealtimeTables, t) {
			return nil, false
		}
		if !slices.Contains(tables, t) {
			tables = append(tables, t)
		}
	}
	return tables, true
}

// Realtime streams the caller's row changes on the requested tables as JSON text
// frames. The stream ends when the client leaves, or the caller signs out or
// deletes the account.
func (s *Server) Realtime(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := session.CurrentUser(r.Context())
	if !ok {
		logger.Error("realtime error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	tables, ok := parseTables(r.URL.Query().Get("tables"))
	if !ok {
		logger.Error("realtime error: unknown table requested")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown table", nil)
		return
	}
	if s.hub == nil {
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "realtime is disabled", nil)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the client.
		logger.Error("realtime error: upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	st := newStream()
	subs := make([]*realtime.Subscription, 0, len(tables))
	for _, table := range tables {
		subs = append(subs, s.hub.Subscribe(table, realtime.MaskAll, func(c realtime.Change) {
			if c.UserID == uid {
				st.send(c)
			}
		}))
	}
	defer func() {
		for _, sub := range subs {
			s.hub.Unsubscribe(sub)
		}
	}()
	if s.sessions != nil {
		authSub := s.sessions.OnAuthStateChange(func(state session.AuthState) {
			if state.UserID != uid {
				return
			}
			switch state.Event {
			case session.SignedOut, session.Deleted:
				st.close(string(state.Event))
			}
		})
		defer authSub.Unsubscribe()
	}
	logger.Info("realtime stream opened", slog.Any("tables", tables))

	go func() {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				st.close("client left")
				return
			}
		}
	}()

	// Every subscription of the stream ends together when the hub closes.
	hubDone := subs[0].Done()
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-hubDone:
			hubDone = nil
			st.close("shutdown")
		case <-st.done:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, st.reason))
			logger.Info("realtime stream closed", slog.String("reason", st.reason))
			return
		case c := <-st.changes:
			payload, err := sonic.Marshal(c)
			if err != nil {
				logger.Error("realtime error: marshalling change", slog.String("error", err.Error()))
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logger.Error("realtime error: write failed", slog.String("error", err.Error()))
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
