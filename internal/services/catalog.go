package services

import (
	"context"
	"errors"

	"github.com/fitlife/loyalty/internal/logger"
	"github.com/fitlife/loyalty/internal/models"
	"github.com/fitlife/loyalty/internal/storage"
	"github.com/fitlife/loyalty/internal/validators"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CatalogService interface {
	CreateReward(ctx context.Context, request models.RewardRequest) (*models.RewardData, error)
	UpdateReward(ctx context.Context, id string, request models.RewardRequest) (*models.RewardData, error)
	DeleteReward(ctx context.Context, id string) error
	GetReward(ctx context.Context, id string) (*models.RewardData, error)
	ListRewards(ctx context.Context, activeOnly bool) ([]models.RewardData, error)
	AdjustStock(ctx context.Context, id string, delta int64) (*models.RewardData, error)
}

type Catalog struct {
	Rewards storage.RewardsStorage
}

// Создание сервиса
func NewCatalog(rewards storage.RewardsStorage) CatalogService {
	return &Catalog{Rewards: rewards}
}

// CreateReward добавляет вознаграждение в каталог
func (s *Catalog) CreateReward(ctx context.Context, request models.RewardRequest) (*models.RewardData, error) {
	if err := validators.CheckReward(request); err != nil {
		return nil, err
	}

	reward := models.RewardData{
		ID:                 uuid.New().String(),
		Name:               request.Name,
		Type:               request.Type,
		PointsCost:         decimal.NewFromInt(request.PointsCost),
		Description:        request.Description,
		IsActive:           request.IsActive,
		Stock:              request.Stock,
		DiscountPercentage: request.DiscountPercentage,
		Category:           request.Category,
	}

	if err := s.Rewards.AddReward(ctx, reward); err != nil {
		logger.Error("Failed to add reward:", zap.Error(err))
		return nil, err
	}
	return &reward, nil
}

// UpdateReward изменяет вознаграждение каталога.
// Правка каталога не влияет на уже созданные заявки: имя и стоимость
// зафиксированы в заявке на момент её создания.
func (s *Catalog) UpdateReward(ctx context.Context, id string, request models.RewardRequest) (*models.RewardData, error) {
	if err := validators.CheckReward(request); err != nil {
		return nil, err
	}

	reward := models.RewardData{
		ID:                 id,
		Name:               request.Name,
		Type:               request.Type,
		PointsCost:         decimal.NewFromInt(request.PointsCost),
		Description:        request.Description,
		IsActive:           request.IsActive,
		Stock:              request.Stock,
		DiscountPercentage: request.DiscountPercentage,
		Category:           request.Category,
	}

	if err := s.Rewards.UpdateReward(ctx, reward); err != nil {
		if !errors.Is(err, storage.ErrRewardNotFound) {
			logger.Error("Failed to update reward:", zap.Error(err))
		}
		return nil, err
	}
	return &reward, nil
}

// DeleteReward — жёсткое удаление вознаграждения из каталога
func (s *Catalog) DeleteReward(ctx context.Context, id string) error {
	if err := s.Rewards.DeleteReward(ctx, id); err != nil {
		if !errors.Is(err, storage.ErrRewardNotFound) {
			logger.Error("Failed to delete reward:", zap.Error(err))
		}
		return err
	}
	return nil
}

func (s *Catalog) GetReward(ctx context.Context, id string) (*models.RewardData, error) {
	return s.Rewards.GetReward(ctx, id)
}

func (s *Catalog) ListRewards(ctx context.Context, activeOnly bool) ([]models.RewardData, error) {
	rewards, err := s.Rewards.GetRewards(ctx, activeOnly)
	if err != nil {
		logger.Error("Failed to get rewards:", zap.Error(err))
		return nil, err
	}
	return rewards, nil
}

// AdjustStock атомарно меняет запас вознаграждения и возвращает его
// актуальное состояние
func (s *Catalog) AdjustStock(ctx context.Context, id string, delta int64) (*models.RewardData, error) {
	if err := s.Rewards.AdjustStock(ctx, id, delta); err != nil {
		return nil, err
	}
	return s.Rewards.GetReward(ctx, id)
}
