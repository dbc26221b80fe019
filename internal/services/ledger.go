package services

import (
	"context"
	"errors"

	"github.com/fitlife/loyalty/internal/logger"
	"github.com/fitlife/loyalty/internal/models"
	"github.com/fitlife/loyalty/internal/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidAmount          = errors.New("amount must be a positive integer")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInsufficientPoints     = errors.New("insufficient points")
)

const DefaultHistoryLimit = 50

type LedgerService interface {
	GetBalance(ctx context.Context, login string) (*models.AccountData, error)
	Credit(ctx context.Context, userID string, amount decimal.Decimal, entryType string, description string, relatedID string, metadata map[string]any) error
	Debit(ctx context.Context, userID string, amount decimal.Decimal, description string, relatedID string, metadata map[string]any) (bool, error)
	GrantBonus(ctx context.Context, login string, amount decimal.Decimal, description string, metadata map[string]any) error
	History(ctx context.Context, login string, limit int) ([]models.TransactionData, error)
}

type Ledger struct {
	Accounts storage.AccountsStorage
	Users    storage.UsersStorage
}

// Создание сервиса
func NewLedger(accounts storage.AccountsStorage, users storage.UsersStorage) LedgerService {
	return &Ledger{Accounts: accounts, Users: users}
}

// GetBalance возвращает состояние накопительного счёта пользователя.
// Чтение без побочных эффектов: если счёта ещё нет, возвращается нулевой
// счёт, строка в хранилище появится при первом начислении.
func (s *Ledger) GetBalance(ctx context.Context, login string) (*models.AccountData, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err))
		return nil, err
	}

	account, err := s.Accounts.GetAccount(ctx, user.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return &models.AccountData{UserID: user.UserID}, nil
		}
		logger.Error("Failed to get account", zap.Error(err))
		return nil, err
	}

	return account, nil
}

// Credit начисляет баллы и добавляет запись в журнал операций.
// Счёт создаётся при первом начислении.
func (s *Ledger) Credit(ctx context.Context, userID string, amount decimal.Decimal, entryType string, description string, relatedID string, metadata map[string]any) error {
	if !validAmount(amount) {
		return ErrInvalidAmount
	}
	if entryType != models.TransactionEarned && entryType != models.TransactionBonus {
		return ErrInvalidTransactionType
	}

	entry := models.TransactionData{
		ID:          uuid.New().String(),
		UserID:      userID,
		Type:        entryType,
		Amount:      amount,
		Description: description,
		RelatedID:   relatedID,
		Metadata:    metadata,
	}

	if err := s.Accounts.Credit(ctx, entry); err != nil {
		logger.Error("Failed to credit account:", zap.Error(err))
		return err
	}
	return nil
}

// Debit списывает баллы со счёта. Возвращает false без изменения счёта,
// если доступных баллов не хватает.
func (s *Ledger) Debit(ctx context.Context, userID string, amount decimal.Decimal, description string, relatedID string, metadata map[string]any) (bool, error) {
	if !validAmount(amount) {
		return false, ErrInvalidAmount
	}

	entry := models.TransactionData{
		ID:          uuid.New().String(),
		UserID:      userID,
		Type:        models.TransactionRedeemed,
		Amount:      amount,
		Description: description,
		RelatedID:   relatedID,
		Metadata:    metadata,
	}

	err := s.Accounts.Debit(ctx, entry)
	if err != nil {
		if errors.Is(err, storage.ErrInsufficientPoints) {
			return false, nil
		}
		logger.Error("Failed to debit account:", zap.Error(err))
		return false, err
	}
	return true, nil
}

// GrantBonus — ручное начисление бонусных баллов администратором
func (s *Ledger) GrantBonus(ctx context.Context, login string, amount decimal.Decimal, description string, metadata map[string]any) error {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err))
		return err
	}
	return s.Credit(ctx, user.UserID, amount, models.TransactionBonus, description, "", metadata)
}

// History возвращает журнал операций пользователя, новые записи первыми
func (s *Ledger) History(ctx context.Context, login string, limit int) ([]models.TransactionData, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err))
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	transactions, err := s.Accounts.GetTransactions(ctx, user.UserID, limit)
	if err != nil {
		logger.Error("Failed to get transactions:", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// validAmount - баллы начисляются и списываются только целыми положительными значениями
func validAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.IsInteger()
}
