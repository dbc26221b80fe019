package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitlife/loyalty/internal/logger"
	"github.com/fitlife/loyalty/internal/models"
	"github.com/fitlife/loyalty/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidDecision = errors.New("decision must be approved or rejected")
	ErrInvalidState    = errors.New("request is not pending")
	// Компенсация не прошла: заявка осталась approved без списания баллов,
	// требуется ручное вмешательство администратора
	ErrCompensationFailed = errors.New("compensation failed, request requires manual intervention")
)

type RequestsService interface {
	CreateRequest(ctx context.Context, login string, request models.CreateRequest) (*models.RequestData, error)
	GetUserRequests(ctx context.Context, login string) ([]models.RequestData, error)
	GetRequestsByStatus(ctx context.Context, status string) ([]models.RequestData, error)
	Decide(ctx context.Context, requestID string, decision string, adminNotes string, processedBy string) (*models.DecisionResult, error)
}

type Requests struct {
	Requests storage.RequestsStorage
	Rewards  storage.RewardsStorage
	Users    storage.UsersStorage
	Engine   RedemptionService
}

// Создание сервиса
func NewRequests(requests storage.RequestsStorage, rewards storage.RewardsStorage, users storage.UsersStorage, engine RedemptionService) RequestsService {
	return &Requests{Requests: requests, Rewards: rewards, Users: users, Engine: engine}
}

// CreateRequest создаёт заявку на обмен баллов.
// Имя и стоимость вознаграждения фиксируются на момент создания. Баланс и
// запас здесь не проверяются: к моменту рассмотрения они могут измениться,
// настоящая проверка выполняется при одобрении.
func (s *Requests) CreateRequest(ctx context.Context, login string, request models.CreateRequest) (*models.RequestData, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err))
		return nil, err
	}

	reward, err := s.Rewards.GetReward(ctx, request.RewardID)
	if err != nil {
		if !errors.Is(err, storage.ErrRewardNotFound) {
			logger.Error("Failed to get reward:", zap.Error(err))
		}
		return nil, err
	}

	data := models.RequestData{
		ID:               uuid.New().String(),
		UserID:           user.UserID,
		RewardID:         reward.ID,
		RewardName:       reward.Name,
		RewardPointsCost: reward.PointsCost,
		Status:           models.RequestStatusPending,
		UserNotes:        request.UserNotes,
	}

	if err := s.Requests.AddRequest(ctx, data); err != nil {
		logger.Error("Failed to add request:", zap.Error(err))
		return nil, err
	}
	return &data, nil
}

// GetUserRequests возвращает заявки пользователя, новые первыми
func (s *Requests) GetUserRequests(ctx context.Context, login string) ([]models.RequestData, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err))
		return nil, err
	}
	return s.Requests.GetUserRequests(ctx, user.UserID)
}

func (s *Requests) GetRequestsByStatus(ctx context.Context, status string) ([]models.RequestData, error) {
	return s.Requests.GetRequestsByStatus(ctx, status)
}

// Decide — решение администратора по заявке.
// Отклонение завершает заявку сразу. Одобрение выполняется в два шага:
// заявка помечается approved, затем запускается обмен. Если обмен не прошёл
// (по бизнес-правилу или из-за сбоя хранилища), одобрение автоматически
// отменяется компенсирующим переходом approved → rejected с пояснением, и
// вызывающий получает итог rejected с причиной, а не approved.
func (s *Requests) Decide(ctx context.Context, requestID string, decision string, adminNotes string, processedBy string) (*models.DecisionResult, error) {
	if decision != models.DecisionApprove && decision != models.DecisionReject {
		return nil, ErrInvalidDecision
	}

	request, err := s.Requests.GetRequest(ctx, requestID)
	if err != nil {
		if !errors.Is(err, storage.ErrRequestNotFound) {
			logger.Error("Failed to get request:", zap.Error(err))
		}
		return nil, err
	}
	if request.Status != models.RequestStatusPending {
		return nil, ErrInvalidState
	}

	// Переход из pending защищён в хранилище: из двух конкурирующих решений
	// пройдёт только одно
	err = s.Requests.SetStatus(ctx, requestID, models.RequestStatusPending, decision, processedBy, adminNotes)
	if err != nil {
		if errors.Is(err, storage.ErrRequestProcessed) {
			return nil, ErrInvalidState
		}
		logger.Error("Failed to set request status:", zap.Error(err))
		return nil, err
	}

	if decision == models.DecisionReject {
		return &models.DecisionResult{
			RequestID: requestID,
			Status:    models.RequestStatusRejected,
			Message:   adminNotes,
		}, nil
	}

	// Одобрено: запускаем обмен
	result, redeemErr := s.Engine.Redeem(ctx, request.UserID, request.RewardID)
	if redeemErr == nil && result.Success {
		message := result.Message
		// Каталог могли поправить между созданием заявки и одобрением.
		// Обмен идёт по текущей цене каталога, расхождение со снимком
		// фиксируем в примечании администратора.
		if drift := s.priceDriftNote(ctx, request); drift != "" {
			note := appendNote(adminNotes, drift)
			if err := s.Requests.SetStatus(ctx, requestID, models.RequestStatusApproved, models.RequestStatusApproved, processedBy, note); err != nil {
				logger.Warn("Failed to record price drift note:", zap.Error(err))
			}
			message = appendNote(message, drift)
		}
		return &models.DecisionResult{
			RequestID:     requestID,
			Status:        models.RequestStatusApproved,
			Message:       message,
			TransactionID: result.TransactionID,
		}, nil
	}

	// Обмен не прошёл: компенсируем одобрение
	cause := "redemption failed"
	if redeemErr != nil {
		logger.Error("Redemption failed, compensating approval:", zap.Error(redeemErr))
		cause = fmt.Sprintf("redemption failed: %s", redeemErr.Error())
	} else {
		cause = fmt.Sprintf("redemption rejected: %s", result.Message)
	}
	note := appendNote(adminNotes, "automatic reversal: "+cause+"; contact user")

	if err := s.compensate(ctx, requestID, note); err != nil {
		logger.Error("Compensation failed:", zap.Error(err))
		return nil, fmt.Errorf("%w: %s", ErrCompensationFailed, cause)
	}

	return &models.DecisionResult{
		RequestID:   requestID,
		Status:      models.RequestStatusRejected,
		Message:     cause,
		Compensated: true,
	}, nil
}

// compensate — идемпотентная отмена одобрения: переход approved → rejected.
// Повторный вызов по уже отменённой заявке считается успешным.
func (s *Requests) compensate(ctx context.Context, requestID string, note string) error {
	err := s.Requests.SetStatus(ctx, requestID, models.RequestStatusApproved, models.RequestStatusRejected, "system", note)
	if err == nil {
		return nil
	}
	if errors.Is(err, storage.ErrRequestProcessed) {
		// Заявка уже не approved: убеждаемся, что её уже отменили
		request, getErr := s.Requests.GetRequest(ctx, requestID)
		if getErr == nil && request.Status == models.RequestStatusRejected {
			return nil
		}
	}
	return err
}

// priceDriftNote - примечание о расхождении текущей цены каталога со снимком заявки
func (s *Requests) priceDriftNote(ctx context.Context, request *models.RequestData) string {
	reward, err := s.Rewards.GetReward(ctx, request.RewardID)
	if err != nil {
		return ""
	}
	if reward.PointsCost.Equal(request.RewardPointsCost) {
		return ""
	}
	return fmt.Sprintf("catalog price changed since request: snapshot %s, charged %s",
		request.RewardPointsCost.String(), reward.PointsCost.String())
}

func appendNote(notes string, extra string) string {
	if notes == "" {
		return extra
	}
	return notes + "; " + extra
}
