package storage

import (
	"context"
	"errors"
	"time"

	"github.com/fitlife/loyalty/internal/models"
)

//go:generate mockgen -source=storage.go -destination=mocks/storage.go -package=mocks

type UsersStorage interface {
	AddUser(ctx context.Context, login string, password string, isAdmin bool) error
	GetUser(ctx context.Context, login string) (*models.UserData, error)
}

type AccountsStorage interface {
	GetAccount(ctx context.Context, userID string) (*models.AccountData, error)
	Credit(ctx context.Context, entry models.TransactionData) error
	Debit(ctx context.Context, entry models.TransactionData) error
	GetTransactions(ctx context.Context, userID string, limit int) ([]models.TransactionData, error)
	ExpireInactive(ctx context.Context, cutoff time.Time, batch int) (int, error)
}

type RewardsStorage interface {
	AddReward(ctx context.Context, reward models.RewardData) error
	UpdateReward(ctx context.Context, reward models.RewardData) error
	DeleteReward(ctx context.Context, id string) error
	GetReward(ctx context.Context, id string) (*models.RewardData, error)
	GetRewards(ctx context.Context, activeOnly bool) ([]models.RewardData, error)
	AdjustStock(ctx context.Context, id string, delta int64) error
}

type RequestsStorage interface {
	AddRequest(ctx context.Context, request models.RequestData) error
	GetRequest(ctx context.Context, id string) (*models.RequestData, error)
	GetUserRequests(ctx context.Context, userID string) ([]models.RequestData, error)
	GetRequestsByStatus(ctx context.Context, status string) ([]models.RequestData, error)
	SetStatus(ctx context.Context, id string, from string, to string, processedBy string, adminNotes string) error
}

type RedemptionsStorage interface {
	Redeem(ctx context.Context, userID string, rewardID string) (string, error)
}

type Storage struct {
	Users       UsersStorage
	Accounts    AccountsStorage
	Rewards     RewardsStorage
	Requests    RequestsStorage
	Redemptions RedemptionsStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{
		Users:       NewUsersStorage(db),
		Accounts:    NewAccountsStorage(db),
		Rewards:     NewRewardsStorage(db),
		Requests:    NewRequestsStorage(db),
		Redemptions: NewRedemptionsStorage(db),
	}
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrRewardNotFound  = errors.New("reward not found")
	ErrRequestNotFound = errors.New("request not found")

	ErrAlreadyExists = errors.New("already exists")

	ErrInsufficientPoints = errors.New("insufficient points")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrNoStockTracking    = errors.New("reward stock is unlimited")
	ErrRewardInactive     = errors.New("reward is inactive")
	ErrOutOfStock         = errors.New("reward is out of stock")
	ErrRequestProcessed   = errors.New("request already processed")
)
