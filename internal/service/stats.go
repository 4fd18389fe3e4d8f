package service

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeos/internal/repository"
	"github.com/limbo/lifeos/pkg/entity"
	"github.com/tidwall/gjson"
)

// Life event types written by the feature services.
const (
	EventHabit        = "habit"
	EventHabitToggle  = "habit_toggle"
	EventMoodLog      = "mood_log"
	EventWorkout      = "workout"
	EventStudySession = "study_session"
	EventDate         = "date"
	EventMedia        = "media"

	// Derived count of media events whose status is completed.
	CountMediaCompleted = "media_completed"
)

// Aggregate folds the event log into chart-ready counts and per-day series.
// Day keys are YYYY-MM-DD in loc. The result does not depend on event order.
func Aggregate(events []*entity.LifeEvent, loc *time.Location) *entity.Stats {
	if loc == nil {
		loc = time.UTC
	}
	stats := &entity.Stats{
		Counts:      make(map[string]int),
		DailySeries: make(map[string]map[string]int),
		SpaceCounts: make(map[entity.Space]int),
	}
	type moodPick struct {
		at    time.Time
		id    uuid.UUID
		score int
	}
	latestMood := make(map[string]moodPick)
	for _, e := range events {
		if e == nil {
			continue
		}
		stats.Counts[e.Type]++
		stats.SpaceCounts[e.Space]++
		day := e.CreatedAt.In(loc).Format(time.DateOnly)
		details := string(e.Details)
		switch e.Type {
		case EventMedia:
			if gjson.Get(details, "status").String() == "completed" {
				stats.Counts[CountMediaCompleted]++
			}
		case EventStudySession:
			series(stats, EventStudySession)[day] += int(gjson.Get(details, "duration").Int())
		case EventMoodLog:
			pick := moodPick{at: e.CreatedAt, id: e.ID, score: int(gjson.Get(details, "mood_score").Int())}
			cur, ok := latestMood[day]
			if !ok || pick.at.After(cur.at) || (pick.at.Equal(cur.at) && bytes.Compare(pick.id[:], cur.id[:]) > 0) {
				latestMood[day] = pick
			}
		}
	}
	for day, pick := range latestMood {
		series(stats, EventMoodLog)[day] = pick.score
	}
	return stats
}

func series(stats *entity.Stats, eventType string) map[string]int {
	s, ok := stats.DailySeries[eventType]
	if !ok {
		s = make(map[string]int)
		stats.DailySeries[eventType] = s
	}
	return s
}

type StatsService struct {
	repo repository.LifeEventsRepositoryI
}

func NewStatsService(repo repository.LifeEventsRepositoryI) *StatsService {
	return &StatsService{
		repo: repo,
	}
}

func (ss *StatsService) Stats(ctx context.Context, uid uuid.UUID, loc *time.Location) (*entity.Stats, error) {
	if uid == uuid.Nil {
		return Aggregate(nil, loc), nil
	}
	events, err := ss.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("life events repository error: " + err.Error())
	}
	return Aggregate(events, loc), nil
}
