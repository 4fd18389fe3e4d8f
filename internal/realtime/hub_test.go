package realtime_test

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeos/internal/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubDeliversMatchingChanges(t *testing.T) {
	hub := realtime.NewHub()
	defer hub.Close()

	got := make(chan realtime.Change, 4)
	hub.Subscribe("tasks", realtime.MaskInsert, func(c realtime.Change) {
		got <- c
	})
	uid := uuid.New()
	hub.Publish(realtime.Change{Table: "tasks", Op: realtime.OpUpdate, UserID: uid})
	hub.Publish(realtime.Change{Table: "moods", Op: realtime.OpInsert, UserID: uid})
	hub.Publish(realtime.Change{Table: "tasks", Op: realtime.OpInsert, UserID: uid})

	select {
	case c := <-got:
		assert.Equal(t, "tasks", c.Table)
		assert.Equal(t, realtime.OpInsert, c.Op)
		assert.False(t, c.At.IsZero())
	case <-time.After(time.Second):
		t.Fatal("change was not delivered")
	}
	select {
	case c := <-got:
		t.Fatalf("unexpected change delivered: %+v", c)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnsubscribe(t *testing.T) {
	hub := realtime.NewHub()
	defer hub.Close()

	var (
		mu    sync.Mutex
		calls int
	)
	sub := hub.Subscribe("tasks", realtime.MaskAll, func(realtime.Change) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	hub.Unsubscribe(sub)
	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("subscription not stopped")
	}
	hub.Publish(realtime.Change{Table: "tasks", Op: realtime.OpInsert})
	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, calls)
	hub.Unsubscribe(sub)
}

func TestHubPublishNeverBlocks(t *testing.T) {
	hub := realtime.NewHub()
	defer hub.Close()

	release := make(chan struct{})
	hub.Subscribe("tasks", realtime.MaskAll, func(realtime.Change) {
		<-release
	})
	done := make(chan struct{})
	go func() {
		for range 1000 {
			hub.Publish(realtime.Change{Table: "tasks", Op: realtime.OpInsert})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
	close(release)
}

func TestHubClose(t *testing.T) {
	hub := realtime.NewHub()
	sub := hub.Subscribe("tasks", realtime.MaskAll, func(realtime.Change) {})
	hub.Close()
	<-sub.Done()
	late := hub.Subscribe("tasks", realtime.MaskAll, func(realtime.Change) {})
	<-late.Done()
}

func TestParseNotification(t *testing.T) {
	uid := uuid.New()
	testCases := []struct {
		Desc    string
		Payload string
		OK      bool
	}{
		{
			Desc:    "points balance update",
			Payload: `{"table":"points_balance","op":"UPDATE","user_id":"` + uid.String() + `","record":{"user_id":"` + uid.String() + `","balance":30}}`,
			OK:      true,
		},
		{Desc: "not json", Payload: `table=points`, OK: false},
		{Desc: "missing table", Payload: `{"op":"UPDATE","user_id":"` + uid.String() + `"}`, OK: false},
		{Desc: "bad user id", Payload: `{"table":"points_balance","op":"UPDATE","user_id":"nope"}`, OK: false},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			c, ok := realtime.ParseNotification(tc.Payload)
			require.Equal(t, tc.OK, ok)
			if !ok {
				return
			}
			assert.Equal(t, "points_balance", c.Table)
			assert.Equal(t, realtime.OpUpdate, c.Op)
			assert.Equal(t, uid, c.UserID)
			var rec struct {
				Balance int `json:"balance"`
			}
			require.NoError(t, json.Unmarshal(c.Record, &rec))
			assert.Equal(t, 30, rec.Balance)
		})
	}
}
