package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitlife/loyalty/internal/logger"
	"github.com/fitlife/loyalty/internal/models"
	"github.com/fitlife/loyalty/internal/storage"
	"go.uber.org/zap"
)

type RedemptionService interface {
	Redeem(ctx context.Context, userID string, rewardID string) (*models.RedeemResult, error)
}

type Redemption struct {
	Redemptions storage.RedemptionsStorage
}

// Создание сервиса
func NewRedemption(redemptions storage.RedemptionsStorage) RedemptionService {
	return &Redemption{Redemptions: redemptions}
}

// Redeem — обмен баллов на вознаграждение.
// Вся последовательность (проверка вознаграждения, списание запаса, списание
// баллов, запись журнала) выполняется одной транзакцией хранилища.
// Отказ по бизнес-правилу возвращается данными результата (Success=false,
// Message можно показывать пользователю), ошибка хранилища — как err.
func (s *Redemption) Redeem(ctx context.Context, userID string, rewardID string) (*models.RedeemResult, error) {
	transactionID, err := s.Redemptions.Redeem(ctx, userID, rewardID)
	if err == nil {
		return &models.RedeemResult{
			Success:       true,
			Message:       "reward redeemed",
			TransactionID: transactionID,
		}, nil
	}

	if message, rejected := rejectionMessage(err); rejected {
		logger.Warn("Redemption rejected:", rewardID, message)
		return &models.RedeemResult{Success: false, Message: message}, nil
	}

	logger.Error("Failed to redeem reward:", zap.Error(err))
	return nil, fmt.Errorf("redeem reward: %w", err)
}

// rejectionMessage - сопоставление сентинельных ошибок хранилища с текстами
// отказов, безопасными для показа пользователю
func rejectionMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, storage.ErrRewardNotFound):
		return "reward not found", true
	case errors.Is(err, storage.ErrRewardInactive):
		return "reward is not active", true
	case errors.Is(err, storage.ErrOutOfStock):
		return "reward is out of stock", true
	case errors.Is(err, storage.ErrInsufficientPoints):
		return "insufficient points", true
	}
	return "", false
}
