package service_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(space entity.Space, eventType, details string, at time.Time) *entity.LifeEvent {
	return &entity.LifeEvent{
		ID:        uuid.New(),
		UserID:    userID,
		Space:     space,
		Type:      eventType,
		Details:   []byte(details),
		CreatedAt: at,
	}
}

var (
	d1 = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	d2 = time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
)

func TestAggregate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		stats := service.Aggregate(nil, time.UTC)
		assert.Empty(t, stats.Counts)
		assert.Empty(t, stats.DailySeries)
		assert.Empty(t, stats.SpaceCounts)
	})
	t.Run("study minutes and workouts", func(t *testing.T) {
		events := []*entity.LifeEvent{
			event(entity.SpaceSchool, service.EventStudySession, `{"duration":25}`, d1),
			event(entity.SpaceSchool, service.EventStudySession, `{"duration":15}`, d1.Add(time.Hour)),
			event(entity.SpacePhysical, service.EventWorkout, `{}`, d2),
		}
		stats := service.Aggregate(events, time.UTC)
		assert.Equal(t, 2, stats.Counts[service.EventStudySession])
		assert.Equal(t, 40, stats.DailySeries[service.EventStudySession]["2024-03-01"])
		assert.Equal(t, 1, stats.Counts[service.EventWorkout])
		assert.Equal(t, 2, stats.SpaceCounts[entity.SpaceSchool])
		assert.Equal(t, 1, stats.SpaceCounts[entity.SpacePhysical])
	})
	t.Run("completed media", func(t *testing.T) {
		events := []*entity.LifeEvent{
			event(entity.SpaceEntertainment, service.EventMedia, `{"status":"completed"}`, d1),
			event(entity.SpaceEntertainment, service.EventMedia, `{"status":"planned"}`, d1),
			event(entity.SpaceEntertainment, service.EventMedia, `{"status":"completed"}`, d2),
		}
		stats := service.Aggregate(events, time.UTC)
		assert.Equal(t, 3, stats.Counts[service.EventMedia])
		assert.Equal(t, 2, stats.Counts[service.CountMediaCompleted])
	})
	t.Run("latest mood of the day wins", func(t *testing.T) {
		events := []*entity.LifeEvent{
			event(entity.SpaceMental, service.EventMoodLog, `{"mood":"Sad","mood_score":3}`, d1.Add(2*time.Hour)),
			event(entity.SpaceMental, service.EventMoodLog, `{"mood":"Happy","mood_score":1}`, d1),
			event(entity.SpaceMental, service.EventMoodLog, `{"mood":"Calm","mood_score":5}`, d2),
		}
		stats := service.Aggregate(events, time.UTC)
		assert.Equal(t, 3, stats.Counts[service.EventMoodLog])
		assert.Equal(t, 3, stats.DailySeries[service.EventMoodLog]["2024-03-01"])
		assert.Equal(t, 5, stats.DailySeries[service.EventMoodLog]["2024-03-02"])
	})
	t.Run("day keys follow the viewer's zone", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*60*60)
		late := time.Date(2024, 3, 2, 2, 0, 0, 0, time.UTC)
		events := []*entity.LifeEvent{
			event(entity.SpaceSchool, service.EventStudySession, `{"duration":30}`, late),
		}
		assert.Equal(t, 30, service.Aggregate(events, time.UTC).DailySeries[service.EventStudySession]["2024-03-02"])
		assert.Equal(t, 30, service.Aggregate(events, loc).DailySeries[service.EventStudySession]["2024-03-01"])
	})
	t.Run("order independent", func(t *testing.T) {
		events := []*entity.LifeEvent{
			event(entity.SpaceSchool, service.EventStudySession, `{"duration":25}`, d1),
			event(entity.SpaceSchool, service.EventStudySession, `{"duration":15}`, d2),
			event(entity.SpaceMental, service.EventMoodLog, `{"mood_score":2}`, d1),
			event(entity.SpaceMental, service.EventMoodLog, `{"mood_score":4}`, d1),
			event(entity.SpaceEntertainment, service.EventMedia, `{"status":"completed"}`, d2),
			event(entity.SpacePhysical, service.EventHabitToggle, `{"name":"read","completed":true}`, d2),
		}
		want := service.Aggregate(events, time.UTC)
		r := rand.New(rand.NewSource(1))
		for range 20 {
			shuffled := append([]*entity.LifeEvent(nil), events...)
			r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
			assert.Equal(t, want, service.Aggregate(shuffled, time.UTC))
		}
	})
}

type eventsRepoMock struct {
	state  mockState
	events []*entity.LifeEvent
}

func (m *eventsRepoMock) Create(ctx context.Context, event *entity.LifeEvent) error {
	if m.state == stateDBError {
		return errMock
	}
	event.ID = uuid.New()
	event.CreatedAt = time.Now()
	m.events = append(m.events, event)
	return nil
}

func (m *eventsRepoMock) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.LifeEvent, error) {
	if m.state == stateDBError {
		return nil, errMock
	}
	res := []*entity.LifeEvent{}
	for _, e := range m.events {
		if e.UserID == uid {
			res = append(res, e)
		}
	}
	return res, nil
}

func TestStatsService(t *testing.T) {
	ctx := context.Background()
	repo := &eventsRepoMock{}
	es := service.NewEventsService(repo, nil)
	ss := service.NewStatsService(repo)

	_, err := es.Record(ctx, userID, entity.SpaceSchool, service.EventStudySession, map[string]any{"duration": 25})
	require.NoError(t, err)
	_, err = es.Record(ctx, otherUID, entity.SpaceSchool, service.EventStudySession, map[string]any{"duration": 90})
	require.NoError(t, err)

	stats, err := ss.Stats(ctx, userID, time.Local)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Counts[service.EventStudySession])

	stats, err = ss.Stats(ctx, uuid.Nil, time.UTC)
	require.NoError(t, err)
	assert.Empty(t, stats.Counts)

	repo.state = stateDBError
	_, err = ss.Stats(ctx, userID, time.UTC)
	assert.Error(t, err)
}
