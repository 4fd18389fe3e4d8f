package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/realtime"
	"github.com/limbo/lifeos/internal/repository"
	"github.com/limbo/lifeos/pkg/entity"
)

const tableRedemptions = "redemptions"

// PointsService only reads balances. Writes happen in database triggers on goal
// completion and redemption.
type PointsService struct {
	points repository.PointsRepositoryI
	goals  repository.GoalsRepositoryI
}

func NewPointsService(points repository.PointsRepositoryI, goals repository.GoalsRepositoryI) *PointsService {
	return &PointsService{
		points: points,
		goals:  goals,
	}
}

func (ps *PointsService) Balance(ctx context.Context, uid uuid.UUID) (*entity.PointsBalance, error) {
	if uid == uuid.Nil {
		return &entity.PointsBalance{}, nil
	}
	b, err := ps.points.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("points repository error: " + err.Error())
	}
	return b, nil
}

// Today sums reward points of goals created and completed today.
func (ps *PointsService) Today(ctx context.Context, uid uuid.UUID, today time.Time) (int, error) {
	if uid == uuid.Nil {
		return 0, nil
	}
	total, err := ps.goals.SumCompletedPoints(ctx, uid, entity.Day(today))
	if err != nil {
		return 0, errors.New("goals repository error: " + err.Error())
	}
	return total, nil
}

type RewardsService struct {
	rewards repository.RewardsRepositoryI
	points  repository.PointsRepositoryI
	wt      *WriteThrough
}

func NewRewardsService(rewards repository.RewardsRepositoryI, points repository.PointsRepositoryI, wt *WriteThrough) *RewardsService {
	return &RewardsService{
		rewards: rewards,
		points:  points,
		wt:      wt,
	}
}

func (rs *RewardsService) ListRewards(ctx context.Context) ([]*entity.Reward, error) {
	rewards, err := rs.rewards.ListRewards(ctx)
	if err != nil {
		return nil, errors.New("rewards repository error: " + err.Error())
	}
	return rewards, nil
}

// Redeem buys a reward when the balance covers its cost.
// TODO: move the balance check into the redemption trigger so two parallel
// redemptions cannot both pass it.
func (rs *RewardsService) Redeem(ctx context.Context, uid, rewardID uuid.UUID) (*entity.Redemption, error) {
	if uid == uuid.Nil {
		return nil, nil
	}
	reward, err := rs.rewards.GetReward(ctx, rewardID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRewardNotFound) {
			return nil, err
		}
		return nil, errors.New("rewards repository error: " + err.Error())
	}
	balance, err := rs.points.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("points repository error: " + err.Error())
	}
	if balance.Balance < reward.Cost {
		return nil, errorvalues.ErrNotEnoughPoints
	}
	return recorded(ctx, rs.wt, uid, tableRedemptions, realtime.OpInsert, func() (*entity.Redemption, error) {
		red, err := rs.rewards.CreateRedemption(ctx, uid, rewardID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrRewardNotFound) {
				return nil, err
			}
			return nil, errors.New("rewards repository error: " + err.Error())
		}
		red.Reward = reward
		return red, nil
	}, nil)
}

func (rs *RewardsService) ListRedemptions(ctx context.Context, uid uuid.UUID) ([]*entity.Redemption, error) {
	if uid == uuid.Nil {
		return []*entity.Redemption{}, nil
	}
	list, err := rs.rewards.ListRedemptions(ctx, uid)
	if err != nil {
		return nil, errors.New("rewards repository error: " + err.Error())
	}
	return list, nil
}
