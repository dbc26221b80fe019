package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitlife/loyalty/internal/logger"
	"github.com/fitlife/loyalty/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	GetAccount = `SELECT user_id, total_points, available_points, earned_points, redeemed_points, updated_at
					FROM ACCOUNTS WHERE user_id=$1;`
	// Ленивое создание счёта: при первом начислении строка появляется,
	// дальше баланс меняется только атомарными инкрементами
	UpsertCredit = `INSERT INTO ACCOUNTS (user_id, total_points, available_points, earned_points, redeemed_points)
					VALUES ($1, $2, $2, $2, 0)
					ON CONFLICT (user_id) DO UPDATE
					SET total_points = ACCOUNTS.total_points + $2,
					    available_points = ACCOUNTS.available_points + $2,
					    earned_points = ACCOUNTS.earned_points + $2,
					    updated_at = NOW();`
	// Списание защищено условием на остаток: проверка и изменение выполняются
	// одним оператором под блокировкой строки
	GuardedDebit = `UPDATE ACCOUNTS
					SET available_points = available_points - $2,
					    redeemed_points = redeemed_points + $2,
					    updated_at = NOW()
					WHERE user_id = $1 AND available_points >= $2;`
	InsertTransaction = `INSERT INTO TRANSACTIONS (id, user_id, type, amount, description, related_id, metadata, created_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, NOW());`
	GetTransactions = `SELECT id, type, amount, description, COALESCE(related_id, ''), metadata, created_at
					FROM TRANSACTIONS WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2;`
	ClaimInactiveAccounts = `SELECT user_id, available_points FROM ACCOUNTS
					WHERE updated_at < $1 AND available_points > 0
					ORDER BY updated_at
					LIMIT $2
					FOR UPDATE SKIP LOCKED;`
	ExpireAccount = `UPDATE ACCOUNTS
					SET available_points = 0,
					    redeemed_points = redeemed_points + available_points,
					    updated_at = NOW()
					WHERE user_id = $1;`
)

type AccountDatabase struct {
	DB *Database
}

// Создание хранилища
func NewAccountsStorage(db *Database) AccountsStorage {
	return &AccountDatabase{DB: db}
}

func (s *AccountDatabase) GetAccount(ctx context.Context, userID string) (*models.AccountData, error) {
	var (
		dbUserID  string
		total     decimal.Decimal
		available decimal.Decimal
		earned    decimal.Decimal
		redeemed  decimal.Decimal
		updatedAt time.Time
	)
	err := s.DB.Pool.QueryRow(ctx, GetAccount, userID).Scan(
		&dbUserID,
		&total,
		&available,
		&earned,
		&redeemed,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &models.AccountData{
		UserID:    dbUserID,
		Total:     total,
		Available: available,
		Earned:    earned,
		Redeemed:  redeemed,
		UpdatedAt: updatedAt,
	}, nil
}

// Credit — начисление баллов и запись в журнал операций в одной транзакции
func (s *AccountDatabase) Credit(ctx context.Context, entry models.TransactionData) error {
	// Начинаем транзакцию
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("Credit. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// Счёт создаётся при первом начислении
	_, err = tx.Exec(ctx, UpsertCredit, entry.UserID, entry.Amount)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	_, err = tx.Exec(ctx, InsertTransaction,
		entry.ID, entry.UserID, entry.Type, entry.Amount, entry.Description,
		nullIfEmpty(entry.RelatedID), entry.Metadata)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("Credit. Commit failed: %w", err)
	}
	return nil
}

// Debit — списание баллов и запись в журнал операций в одной транзакции
func (s *AccountDatabase) Debit(ctx context.Context, entry models.TransactionData) error {
	// Начинаем транзакцию
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("Debit. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// Условие available_points >= amount проверяется под блокировкой строки,
	// отсутствие изменённых строк означает нехватку баллов (или счёта)
	result, err := tx.Exec(ctx, GuardedDebit, entry.UserID, entry.Amount)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if result.RowsAffected() == 0 {
		err = ErrInsufficientPoints
		return err
	}

	_, err = tx.Exec(ctx, InsertTransaction,
		entry.ID, entry.UserID, entry.Type, entry.Amount, entry.Description,
		nullIfEmpty(entry.RelatedID), entry.Metadata)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("Debit. Commit failed: %w", err)
	}
	return nil
}

func (s *AccountDatabase) GetTransactions(ctx context.Context, userID string, limit int) ([]models.TransactionData, error) {
	var transactions []models.TransactionData
	rows, err := s.DB.Pool.Query(ctx, GetTransactions, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	for rows.Next() {
		var (
			id          string
			entryType   string
			amount      decimal.Decimal
			description string
			relatedID   string
			metadata    map[string]any
			createdAt   time.Time
		)
		err := rows.Scan(
			&id,
			&entryType,
			&amount,
			&description,
			&relatedID,
			&metadata,
			&createdAt,
		)
		if err != nil {
			return transactions, fmt.Errorf("failed scan transaction data: %w", err)
		}
		transactions = append(transactions, models.TransactionData{
			ID:          id,
			UserID:      userID,
			Type:        entryType,
			Amount:      amount,
			Description: description,
			RelatedID:   relatedID,
			Metadata:    metadata,
			CreatedAt:   createdAt,
		})
	}
	return transactions, err
}

// ExpireInactive — сгорание баллов по неактивным счетам.
// Счета выбираются с FOR UPDATE SKIP LOCKED, чтобы несколько экземпляров
// сервиса не обрабатывали один и тот же счёт.
func (s *AccountDatabase) ExpireInactive(ctx context.Context, cutoff time.Time, batch int) (int, error) {
	// Начинаем транзакцию
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("ExpireInactive. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	type candidate struct {
		userID    string
		available decimal.Decimal
	}
	var candidates []candidate

	rows, err := tx.Query(ctx, ClaimInactiveAccounts, cutoff, batch)
	if err != nil {
		return 0, fmt.Errorf("failed to claim inactive accounts: %w", err)
	}
	for rows.Next() {
		var c candidate
		if err = rows.Scan(&c.userID, &c.available); err != nil {
			rows.Close()
			return 0, fmt.Errorf("failed scan inactive account: %w", err)
		}
		candidates = append(candidates, c)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to read inactive accounts: %w", err)
	}

	for _, c := range candidates {
		if _, err = tx.Exec(ctx, ExpireAccount, c.userID); err != nil {
			return 0, fmt.Errorf("failed to expire account: %w", err)
		}
		_, err = tx.Exec(ctx, InsertTransaction,
			uuid.New().String(), c.userID, models.TransactionExpired, c.available,
			"points expired after inactivity", nil, nil)
		if err != nil {
			return 0, fmt.Errorf("failed to insert expire transaction: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("ExpireInactive. Commit failed: %w", err)
	}
	return len(candidates), nil
}

// nullIfEmpty - пустые строки храним как NULL
func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
