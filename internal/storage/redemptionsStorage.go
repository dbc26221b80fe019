package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitlife/loyalty/internal/logger"
	"github.com/fitlife/loyalty/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	// Блокировка строки вознаграждения сериализует конкурирующие обмены
	LockReward = `SELECT name, points_cost, is_active, stock FROM REWARDS WHERE id = $1 FOR UPDATE;`
	DecrStock  = `UPDATE REWARDS
					SET stock = stock - 1,
					    updated_at = NOW()
					WHERE id = $1 AND stock > 0;`
	InsertRedemption = `INSERT INTO REDEMPTIONS (id, user_id, reward_id, transaction_id, points_used, status, created_at)
					VALUES ($1, $2, $3, $4, $5, $6, NOW());`
)

type RedemptionDatabase struct {
	DB *Database
}

// Создание хранилища
func NewRedemptionsStorage(db *Database) RedemptionsStorage {
	return &RedemptionDatabase{DB: db}
}

// Redeem — обмен баллов на вознаграждение одной транзакцией:
// проверка вознаграждения, списание запаса, списание баллов, запись в журнал
// и учётная запись обмена фиксируются все вместе либо не фиксируются вовсе.
// Отказы по бизнес-правилам возвращаются сентинельными ошибками хранилища,
// состояние при этом не меняется.
func (s *RedemptionDatabase) Redeem(ctx context.Context, userID string, rewardID string) (string, error) {
	// Начинаем транзакцию
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("Redeem. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// 1. Загружаем и блокируем вознаграждение
	var (
		name       string
		pointsCost decimal.Decimal
		isActive   bool
		stock      *int64
	)
	err = tx.QueryRow(ctx, LockReward, rewardID).Scan(&name, &pointsCost, &isActive, &stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrRewardNotFound
			return "", err
		}
		return "", fmt.Errorf("failed to lock reward: %w", err)
	}
	if !isActive {
		err = ErrRewardInactive
		return "", err
	}
	if stock != nil && *stock <= 0 {
		err = ErrOutOfStock
		return "", err
	}

	// 2. Списываем запас (stock IS NULL — запас не ограничен)
	if stock != nil {
		var result pgconn.CommandTag
		result, err = tx.Exec(ctx, DecrStock, rewardID)
		if err != nil {
			return "", fmt.Errorf("failed to decrement stock: %w", err)
		}
		if result.RowsAffected() == 0 {
			err = ErrOutOfStock
			return "", err
		}
	}

	// 3. Списываем баллы со счёта
	var result pgconn.CommandTag
	result, err = tx.Exec(ctx, GuardedDebit, userID, pointsCost)
	if err != nil {
		return "", fmt.Errorf("failed to debit account: %w", err)
	}
	if result.RowsAffected() == 0 {
		err = ErrInsufficientPoints
		return "", err
	}

	// 4. Запись в журнал операций
	transactionID := uuid.New().String()
	_, err = tx.Exec(ctx, InsertTransaction,
		transactionID, userID, models.TransactionRedeemed, pointsCost,
		fmt.Sprintf("redeemed reward %q", name), rewardID,
		map[string]any{"reward_name": name})
	if err != nil {
		return "", fmt.Errorf("failed to insert transaction: %w", err)
	}

	// 5. Учётная запись обмена для выдачи вознаграждения
	_, err = tx.Exec(ctx, InsertRedemption,
		uuid.New().String(), userID, rewardID, transactionID, pointsCost,
		models.RequestStatusPending)
	if err != nil {
		return "", fmt.Errorf("failed to insert redemption: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("Redeem. Commit failed: %w", err)
	}
	return transactionID, nil
}
