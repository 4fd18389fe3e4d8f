package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	ctx := context.Background()
	type testCase struct {
		Desc      string
		Space     entity.Space
		Type      string
		Details   any
		RepoState mockState
		Error     error
		Want      string
	}
	testCases := []testCase{
		{
			Desc:    "success",
			Space:   entity.SpaceSchool,
			Type:    service.EventStudySession,
			Details: map[string]any{"duration": 25},
			Want:    `{"duration":25}`,
		},
		{
			Desc:  "nil details",
			Space: entity.SpacePlan,
			Type:  "note",
			Want:  `{}`,
		},
		{
			Desc:  "invalid space",
			Space: entity.Space("work"),
			Type:  "note",
			Error: errorvalues.ErrInvalidSpace,
		},
		{
			Desc:  "empty type",
			Space: entity.SpacePlan,
			Error: errorvalues.ErrValidation,
		},
		{
			Desc:      "db error",
			Space:     entity.SpacePlan,
			Type:      "note",
			RepoState: stateDBError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			repo := &eventsRepoMock{state: tc.RepoState}
			pub := &publisherMock{}
			es := service.NewEventsService(repo, pub)
			event, err := es.Record(ctx, userID, tc.Space, tc.Type, tc.Details)
			switch {
			case tc.Error != nil:
				assert.ErrorIs(t, err, tc.Error)
				assert.Empty(t, repo.events)
			case tc.RepoState == stateDBError:
				assert.Error(t, err)
				assert.Empty(t, pub.tables())
			default:
				require.NoError(t, err)
				assert.JSONEq(t, tc.Want, string(event.Details))
				assert.NotEqual(t, uuid.Nil, event.ID)
				assert.Equal(t, []string{"life_events"}, pub.tables())
			}
		})
	}
}

type moodsRepoMock struct {
	state mockState
	moods []*entity.Mood
}

func (m *moodsRepoMock) ListRecent(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Mood, error) {
	if len(m.moods) > limit {
		return m.moods[:limit], nil
	}
	return m.moods, nil
}

func (m *moodsRepoMock) Create(ctx context.Context, mood *entity.Mood) error {
	if m.state == stateDBError {
		return errMock
	}
	mood.ID = uuid.New()
	m.moods = append(m.moods, mood)
	return nil
}

func TestMoodScore(t *testing.T) {
	assert.Equal(t, 1, service.MoodScore("Happy"))
	assert.Equal(t, 2, service.MoodScore("Neutral"))
	assert.Equal(t, 3, service.MoodScore("Sad"))
	assert.Equal(t, 4, service.MoodScore("Stressed"))
	assert.Equal(t, 5, service.MoodScore("Calm"))
	assert.Equal(t, 0, service.MoodScore("happy"))
}

func TestLogMood(t *testing.T) {
	ctx := context.Background()
	t.Run("mirrored with score", func(t *testing.T) {
		wt, rec, pub := newWriteThrough()
		ms := service.NewMentalService(&moodsRepoMock{}, nil, wt)
		mood, err := ms.LogMood(ctx, userID, service.LogMoodRequest{Mood: "Stressed", Note: "exams"})
		require.NoError(t, err)
		assert.Equal(t, "Stressed", mood.Mood)
		events := rec.recorded()
		require.Len(t, events, 1)
		assert.Equal(t, entity.SpaceMental, events[0].Space)
		assert.Equal(t, service.EventMoodLog, events[0].Type)
		assert.Equal(t, 4, events[0].Details.(map[string]any)["mood_score"])
		assert.Equal(t, []string{"moods"}, pub.tables())
	})
	t.Run("unknown mood", func(t *testing.T) {
		wt, rec, _ := newWriteThrough()
		ms := service.NewMentalService(&moodsRepoMock{}, nil, wt)
		_, err := ms.LogMood(ctx, userID, service.LogMoodRequest{Mood: "Angry"})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
		assert.Empty(t, rec.recorded())
	})
	t.Run("failed write is not mirrored", func(t *testing.T) {
		wt, rec, pub := newWriteThrough()
		ms := service.NewMentalService(&moodsRepoMock{state: stateDBError}, nil, wt)
		_, err := ms.LogMood(ctx, userID, service.LogMoodRequest{Mood: "Calm"})
		assert.Error(t, err)
		assert.Empty(t, rec.recorded())
		assert.Empty(t, pub.tables())
	})
	t.Run("failed mirror keeps the write", func(t *testing.T) {
		wt, rec, _ := newWriteThrough()
		rec.fail = true
		repo := &moodsRepoMock{}
		ms := service.NewMentalService(repo, nil, wt)
		mood, err := ms.LogMood(ctx, userID, service.LogMoodRequest{Mood: "Calm"})
		require.NoError(t, err)
		assert.NotNil(t, mood)
		assert.Len(t, repo.moods, 1)
	})
}

type sessionsRepoMock struct {
	sessions []*entity.StudySession
}

func (m *sessionsRepoMock) ListRecent(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.StudySession, error) {
	return m.sessions, nil
}

func (m *sessionsRepoMock) Create(ctx context.Context, s *entity.StudySession) error {
	s.ID = uuid.New()
	m.sessions = append(m.sessions, s)
	return nil
}

func TestFinishSession(t *testing.T) {
	ctx := context.Background()
	wt, rec, _ := newWriteThrough()
	repo := &sessionsRepoMock{}
	ss := service.NewSchoolService(repo, wt)

	_, err := ss.FinishSession(ctx, userID, service.FinishSessionRequest{Kind: "study", Duration: 25})
	require.NoError(t, err)
	_, err = ss.FinishSession(ctx, userID, service.FinishSessionRequest{Kind: "break", Duration: 5})
	require.NoError(t, err)
	_, err = ss.FinishSession(ctx, userID, service.FinishSessionRequest{Kind: "nap", Duration: 5})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)

	assert.Len(t, repo.sessions, 2)
	events := rec.recorded()
	require.Len(t, events, 1)
	assert.Equal(t, entity.SpaceSchool, events[0].Space)
	assert.Equal(t, service.EventStudySession, events[0].Type)
	assert.Equal(t, 25, events[0].Details.(map[string]any)["duration"])
}

type mediaRepoMock struct{}

func (mediaRepoMock) List(ctx context.Context, uid uuid.UUID) ([]*entity.EntertainmentItem, error) {
	return []*entity.EntertainmentItem{}, nil
}

func (mediaRepoMock) Create(ctx context.Context, item *entity.EntertainmentItem) error {
	item.ID = uuid.New()
	return nil
}

type workoutsRepoMock struct{}

func (workoutsRepoMock) List(ctx context.Context, uid uuid.UUID) ([]*entity.Workout, error) {
	return []*entity.Workout{}, nil
}

func (workoutsRepoMock) Create(ctx context.Context, w *entity.Workout) error {
	w.ID = uuid.New()
	return nil
}

func TestMirroredSpaces(t *testing.T) {
	ctx := context.Background()
	wt, rec, _ := newWriteThrough()

	es := service.NewEntertainmentService(mediaRepoMock{}, wt)
	_, err := es.Create(ctx, userID, service.CreateMediaRequest{Title: "Dune", Kind: "book", Status: "completed"})
	require.NoError(t, err)

	ps := service.NewPhysicalService(workoutsRepoMock{}, wt)
	w, err := ps.LogWorkout(ctx, userID, service.LogWorkoutRequest{Exercise: "squat", Sets: 3, Reps: 10}, today)
	require.NoError(t, err)
	assert.Equal(t, entity.Day(today), w.Date)

	events := rec.recorded()
	require.Len(t, events, 2)
	assert.Equal(t, entity.SpaceEntertainment, events[0].Space)
	assert.Equal(t, service.EventMedia, events[0].Type)
	assert.Equal(t, "completed", events[0].Details.(map[string]any)["status"])
	assert.Equal(t, entity.SpacePhysical, events[1].Space)
	assert.Equal(t, service.EventWorkout, events[1].Type)

	empty, err := es.List(ctx, uuid.Nil)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}
