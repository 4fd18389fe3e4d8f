package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/limbo/lifeos/internal/api"
	"github.com/limbo/lifeos/internal/realtime"
	"github.com/limbo/lifeos/internal/service/mocks"
	"github.com/limbo/lifeos/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newRealtimeServer(t *testing.T) (*httptest.Server, *realtime.Hub, *session.Manager) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserServiceI(ctrl)
	users.EXPECT().GetByID(gomock.Any(), uid).Return(user, nil).AnyTimes()
	hub := realtime.NewHub()
	sessions := session.NewManager()
	serv := api.New(&api.ServicesList{
		UserService: users,
		JwtService:  jwtSvc,
		Sessions:    sessions,
		Hub:         hub,
	})
	srv := httptest.NewServer(serv.Handler())
	t.Cleanup(func() {
		srv.Close()
		hub.Close()
		sessions.Close()
	})
	return srv, hub, sessions
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	token, err := jwtSvc.GenerateToken(user)
	require.NoError(t, err)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/realtime" + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Authorization": {"Bearer " + token}})
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })
	return conn
}

// publishUntilReceived republishes until the subscription registered by the
// handler picks the change up.
func publishUntilReceived(t *testing.T, hub *realtime.Hub, conn *websocket.Conn, change realtime.Change) []byte {
	received := make(chan []byte, 1)
	go func() {
		_, msg, err := conn.ReadMessage()
		if err == nil {
			received <- msg
		}
		close(received)
	}()
	deadline := time.After(3 * time.Second)
	tick := time.NewTicker(20 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case msg, ok := <-received:
			require.True(t, ok, "connection closed before a change arrived")
			return msg
		case <-tick.C:
			hub.Publish(change)
		case <-deadline:
			t.Fatal("no change received")
		}
	}
}

func TestRealtimeStream(t *testing.T) {
	srv, hub, _ := newRealtimeServer(t)
	conn := dial(t, srv, "?tables=tasks")

	msg := publishUntilReceived(t, hub, conn, realtime.Change{
		Table:  "tasks",
		Op:     realtime.OpInsert,
		UserID: uid,
		Record: []byte(`{"text":"buy milk"}`),
	})
	assert.Equal(t, "tasks", gjson.GetBytes(msg, "table").String())
	assert.Equal(t, "buy milk", gjson.GetBytes(msg, "record.text").String())
}

func TestRealtimeFiltersOtherUsers(t *testing.T) {
	srv, hub, _ := newRealtimeServer(t)
	conn := dial(t, srv, "?tables=tasks,moods")

	hub.Publish(realtime.Change{Table: "tasks", Op: realtime.OpInsert, UserID: uuid.New()})
	msg := publishUntilReceived(t, hub, conn, realtime.Change{Table: "moods", Op: realtime.OpInsert, UserID: uid})
	assert.Equal(t, "moods", gjson.GetBytes(msg, "table").String())
}

func TestRealtimeClosesOnSignOut(t *testing.T) {
	srv, hub, sessions := newRealtimeServer(t)
	conn := dial(t, srv, "")

	publishUntilReceived(t, hub, conn, realtime.Change{Table: "tasks", Op: realtime.OpInsert, UserID: uid})
	sessions.Notify(session.SignedOut, uid)

	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		_, _, err := conn.ReadMessage()
		if err == nil {
			continue
		}
		assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), err.Error())
		return
	}
}

func TestRealtimeClosesOnHubShutdown(t *testing.T) {
	srv, hub, _ := newRealtimeServer(t)
	conn := dial(t, srv, "?tables=tasks")

	publishUntilReceived(t, hub, conn, realtime.Change{Table: "tasks", Op: realtime.OpInsert, UserID: uid})
	hub.Close()

	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		_, _, err := conn.ReadMessage()
		if err == nil {
			continue
		}
		var closeErr *websocket.CloseError
		require.ErrorAs(t, err, &closeErr)
		assert.Equal(t, websocket.CloseNormalClosure, closeErr.Code)
		assert.Equal(t, "shutdown", closeErr.Text)
		return
	}
}

func TestRealtimeRejects(t *testing.T) {
	srv, _, _ := newRealtimeServer(t)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/realtime"

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, err := jwtSvc.GenerateToken(user)
	require.NoError(t, err)
	_, resp, err = websocket.DefaultDialer.Dial(url+"?tables=secrets", http.Header{"Authorization": {"Bearer " + token}})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
