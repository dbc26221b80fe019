package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitlife/loyalty/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	InsertReward = `INSERT INTO REWARDS (id, name, type, points_cost, description, is_active, stock, discount_percentage, category, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW());`
	UpdateReward = `UPDATE REWARDS
					SET name = $2,
					    type = $3,
					    points_cost = $4,
					    description = $5,
					    is_active = $6,
					    stock = $7,
					    discount_percentage = $8,
					    category = $9,
					    updated_at = NOW()
					WHERE id = $1;`
	DeleteReward = `DELETE FROM REWARDS WHERE id = $1;`
	GetReward    = `SELECT id, name, type, points_cost, description, is_active, stock, discount_percentage, category, created_at, updated_at
					FROM REWARDS WHERE id = $1;`
	GetRewards = `SELECT id, name, type, points_cost, description, is_active, stock, discount_percentage, category, created_at, updated_at
					FROM REWARDS ORDER BY created_at;`
	GetActiveRewards = `SELECT id, name, type, points_cost, description, is_active, stock, discount_percentage, category, created_at, updated_at
					FROM REWARDS WHERE is_active ORDER BY created_at;`
	// Запас меняется одним условным оператором: проверка на отрицательный
	// остаток выполняется под блокировкой строки, потерянных обновлений нет
	AdjustStock = `UPDATE REWARDS
					SET stock = stock + $2,
					    updated_at = NOW()
					WHERE id = $1 AND stock IS NOT NULL AND stock + $2 >= 0;`
)

type RewardDatabase struct {
	DB *Database
}

// Создание хранилища
func NewRewardsStorage(db *Database) RewardsStorage {
	return &RewardDatabase{DB: db}
}

func (s *RewardDatabase) AddReward(ctx context.Context, reward models.RewardData) error {
	_, err := s.DB.Pool.Exec(ctx, InsertReward,
		reward.ID, reward.Name, reward.Type, reward.PointsCost, reward.Description,
		reward.IsActive, reward.Stock, reward.DiscountPercentage, reward.Category)
	if err != nil {
		return fmt.Errorf("failed to add reward: %w", err)
	}
	return nil
}

func (s *RewardDatabase) UpdateReward(ctx context.Context, reward models.RewardData) error {
	result, err := s.DB.Pool.Exec(ctx, UpdateReward,
		reward.ID, reward.Name, reward.Type, reward.PointsCost, reward.Description,
		reward.IsActive, reward.Stock, reward.DiscountPercentage, reward.Category)
	if err != nil {
		return fmt.Errorf("failed to update reward: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrRewardNotFound
	}
	return nil
}

// DeleteReward — жёсткое удаление вознаграждения.
// Открытые заявки на удалённое вознаграждение не трогаются: решение по ним
// остаётся за администратором на этапе рассмотрения.
func (s *RewardDatabase) DeleteReward(ctx context.Context, id string) error {
	result, err := s.DB.Pool.Exec(ctx, DeleteReward, id)
	if err != nil {
		return fmt.Errorf("failed to delete reward: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrRewardNotFound
	}
	return nil
}

func (s *RewardDatabase) GetReward(ctx context.Context, id string) (*models.RewardData, error) {
	reward, err := scanReward(s.DB.Pool.QueryRow(ctx, GetReward, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRewardNotFound
		}
		return nil, fmt.Errorf("failed to get reward: %w", err)
	}
	return reward, nil
}

func (s *RewardDatabase) GetRewards(ctx context.Context, activeOnly bool) ([]models.RewardData, error) {
	query := GetRewards
	if activeOnly {
		query = GetActiveRewards
	}
	var rewards []models.RewardData
	rows, err := s.DB.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get rewards: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			return rewards, fmt.Errorf("failed scan reward data: %w", err)
		}
		rewards = append(rewards, *reward)
	}
	return rewards, rows.Err()
}

// AdjustStock — атомарное изменение запаса вознаграждения
func (s *RewardDatabase) AdjustStock(ctx context.Context, id string, delta int64) error {
	result, err := s.DB.Pool.Exec(ctx, AdjustStock, id, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust stock: %w", err)
	}
	if result.RowsAffected() > 0 {
		return nil
	}

	// Строка не изменилась: выясняем причину
	reward, err := s.GetReward(ctx, id)
	if err != nil {
		return err
	}
	if reward.Stock == nil {
		return ErrNoStockTracking
	}
	return ErrInsufficientStock
}

func scanReward(row pgx.Row) (*models.RewardData, error) {
	var (
		id          string
		name        string
		rewardType  string
		pointsCost  decimal.Decimal
		description string
		isActive    bool
		stock       *int64
		discount    *int64
		category    string
		createdAt   time.Time
		updatedAt   time.Time
	)
	err := row.Scan(
		&id,
		&name,
		&rewardType,
		&pointsCost,
		&description,
		&isActive,
		&stock,
		&discount,
		&category,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &models.RewardData{
		ID:                 id,
		Name:               name,
		Type:               rewardType,
		PointsCost:         pointsCost,
		Description:        description,
		IsActive:           isActive,
		Stock:              stock,
		DiscountPercentage: discount,
		Category:           category,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}, nil
}
