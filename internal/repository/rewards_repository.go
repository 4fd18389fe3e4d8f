package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/pkg/entity"
)

// PointsRepository only reads: points_balance is maintained by database triggers.
type PointsRepository struct {
	conn PgConnection
}

func NewPointsRepo(conn PgConnection) *PointsRepository {
	return &PointsRepository{
		conn: conn,
	}
}

func (pr *PointsRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.PointsBalance, error) {
	balance := entity.PointsBalance{UserID: uid}
	row := pr.conn.QueryRow(ctx, `SELECT balance FROM points_balance WHERE user_id = $1;`, uid)
	if err := row.Scan(&balance.Balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &balance, nil
		}
		return nil, errors.New("getting points balance error: " + err.Error())
	}
	return &balance, nil
}

type RewardsRepository struct {
	conn PgConnection
}

func NewRewardsRepo(conn PgConnection) *RewardsRepository {
	return &RewardsRepository{
		conn: conn,
	}
}

func (rr *RewardsRepository) ListRewards(ctx context.Context) ([]*entity.Reward, error) {
	rows, err := rr.conn.Query(ctx, `SELECT id, title, description, cost FROM rewards ORDER BY cost;`)
	if err != nil {
		return nil, errors.New("listing rewards error: " + err.Error())
	}
	defer rows.Close()
	rewards := make([]*entity.Reward, 0)
	for rows.Next() {
		r := entity.Reward{}
		if err = rows.Scan(&r.ID, &r.Title, &r.Description, &r.Cost); err != nil {
			return nil, errors.New("reward row parsing error: " + err.Error())
		}
		rewards = append(rewards, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected reward rows error: " + err.Error())
	}
	return rewards, nil
}

func (rr *RewardsRepository) GetReward(ctx context.Context, id uuid.UUID) (*entity.Reward, error) {
	r := entity.Reward{ID: id}
	row := rr.conn.QueryRow(ctx, `SELECT title, description, cost FROM rewards WHERE id = $1;`, id)
	if err := row.Scan(&r.Title, &r.Description, &r.Cost); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRewardNotFound
		}
		return nil, errors.New("getting reward error: " + err.Error())
	}
	return &r, nil
}

func (rr *RewardsRepository) CreateRedemption(ctx context.Context, uid, rewardID uuid.UUID) (*entity.Redemption, error) {
	red := entity.Redemption{UserID: uid, RewardID: rewardID}
	row := rr.conn.QueryRow(ctx, `INSERT INTO redemptions (user_id, reward_id) VALUES ($1, $2) RETURNING id, redeemed_at;`,
		uid, rewardID)
	if err := row.Scan(&red.ID, &red.RedeemedAt); err != nil {
		if pgErrorCode(err) == codeFKViolation {
			return nil, errorvalues.ErrRewardNotFound
		}
		return nil, errors.New("creating redemption error: " + err.Error())
	}
	return &red, nil
}

func (rr *RewardsRepository) ListRedemptions(ctx context.Context, uid uuid.UUID) ([]*entity.Redemption, error) {
	rows, err := rr.conn.Query(ctx, `SELECT d.id, d.user_id, d.reward_id, d.redeemed_at, r.title, r.description, r.cost
		FROM redemptions d JOIN rewards r ON r.id = d.reward_id
		WHERE d.user_id = $1 ORDER BY d.redeemed_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing redemptions error: " + err.Error())
	}
	defer rows.Close()
	redemptions := make([]*entity.Redemption, 0)
	for rows.Next() {
		d := entity.Redemption{Reward: &entity.Reward{}}
		if err = rows.Scan(&d.ID, &d.UserID, &d.RewardID, &d.RedeemedAt, &d.Reward.Title, &d.Reward.Description, &d.Reward.Cost); err != nil {
			return nil, errors.New("redemption row parsing error: " + err.Error())
		}
		d.Reward.ID = d.RewardID
		redemptions = append(redemptions, &d)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected redemption rows error: " + err.Error())
	}
	return redemptions, nil
}
