package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/realtime"
	"github.com/limbo/lifeos/internal/repository"
	"github.com/limbo/lifeos/pkg/entity"
)

const (
	tableMoods         = "moods"
	tableMentalJournal = "mental_journal"

	recentMoodsLimit = 10
)

type MentalService struct {
	moods   repository.MoodsRepositoryI
	journal repository.JournalRepositoryI
	wt      *WriteThrough
}

func NewMentalService(moods repository.MoodsRepositoryI, journal repository.JournalRepositoryI, wt *WriteThrough) *MentalService {
	return &MentalService{
		moods:   moods,
		journal: journal,
		wt:      wt,
	}
}

func (ms *MentalService) ListMoods(ctx context.Context, uid uuid.UUID) ([]*entity.Mood, error) {
	if uid == uuid.Nil {
		return []*entity.Mood{}, nil
	}
	moods, err := ms.moods.ListRecent(ctx, uid, recentMoodsLimit)
	if err != nil {
		return nil, errors.New("moods repository error: " + err.Error())
	}
	return moods, nil
}

// LogMood stores the mood and mirrors it with its score for the mood trend chart.
func (ms *MentalService) LogMood(ctx context.Context, uid uuid.UUID, req LogMoodRequest) (*entity.Mood, error) {
	if uid == uuid.Nil {
		return nil, nil
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return recorded(ctx, ms.wt, uid, tableMoods, realtime.OpInsert, func() (*entity.Mood, error) {
		m := entity.Mood{UserID: uid, Mood: req.Mood, Note: req.Note}
		if err := ms.moods.Create(ctx, &m); err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return nil, err
			}
			return nil, errors.New("moods repository error: " + err.Error())
		}
		return &m, nil
	}, func(m *entity.Mood) *mirror {
		return &mirror{
			space:     entity.SpaceMental,
			eventType: EventMoodLog,
			details: map[string]any{
				"mood":       m.Mood,
				"note":       m.Note,
				"mood_score": MoodScore(m.Mood),
			},
		}
	})
}

func (ms *MentalService) ListJournal(ctx context.Context, uid uuid.UUID) ([]*entity.JournalEntry, error) {
	if uid == uuid.Nil {
		return []*entity.JournalEntry{}, nil
	}
	entries, err := ms.journal.List(ctx, uid)
	if err != nil {
		return nil, errors.New("journal repository error: " + err.Error())
	}
	return entries, nil
}

func (ms *MentalService) CreateJournalEntry(ctx context.Context, uid uuid.UUID, req CreateJournalRequest) (*entity.JournalEntry, error) {
	if uid == uuid.Nil {
		return nil, nil
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return recorded(ctx, ms.wt, uid, tableMentalJournal, realtime.OpInsert, func() (*entity.JournalEntry, error) {
		e := entity.JournalEntry{UserID: uid, Title: req.Title, Content: req.Content}
		if err := ms.journal.Create(ctx, &e); err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return nil, err
			}
			return nil, errors.New("journal repository error: " + err.Error())
		}
		return &e, nil
	}, nil)
}
