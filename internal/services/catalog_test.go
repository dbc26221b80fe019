package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fitlife/loyalty/internal/config"
	"github.com/fitlife/loyalty/internal/logger"
	"github.com/fitlife/loyalty/internal/models"
	"github.com/fitlife/loyalty/internal/storage"
	"github.com/fitlife/loyalty/internal/storage/mocks"
	"github.com/fitlife/loyalty/internal/validators"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCatalogService_CreateReward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRewards := mocks.NewMockRewardsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	service := NewCatalog(mockRewards)

	testCases := []struct {
		Name          string
		Request       models.RewardRequest
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:          "Error. Empty name #1",
			Request:       models.RewardRequest{Type: models.RewardTypeProduct, PointsCost: 100},
			SetupMocks:    func() {},
			ExpectedError: validators.ErrEmptyName,
		},
		{
			Name:          "Error. Unknown reward type #2",
			Request:       models.RewardRequest{Name: "bar", Type: "mystery", PointsCost: 100},
			SetupMocks:    func() {},
			ExpectedError: validators.ErrInvalidRewardType,
		},
		{
			Name:          "Error. Non-positive cost #3",
			Request:       models.RewardRequest{Name: "bar", Type: models.RewardTypeProduct, PointsCost: 0},
			SetupMocks:    func() {},
			ExpectedError: validators.ErrInvalidPointsCost,
		},
		{
			Name:          "Error. Negative stock #4",
			Request:       models.RewardRequest{Name: "bar", Type: models.RewardTypeProduct, PointsCost: 100, Stock: int64Ptr(-1)},
			SetupMocks:    func() {},
			ExpectedError: validators.ErrInvalidStock,
		},
		{
			Name:          "Error. Discount on a product reward #5",
			Request:       models.RewardRequest{Name: "bar", Type: models.RewardTypeProduct, PointsCost: 100, DiscountPercentage: int64Ptr(10)},
			SetupMocks:    func() {},
			ExpectedError: validators.ErrDiscountWrongType,
		},
		{
			Name:          "Error. Discount outside 1..100 #6",
			Request:       models.RewardRequest{Name: "sale", Type: models.RewardTypeDiscount, PointsCost: 100, DiscountPercentage: int64Ptr(150)},
			SetupMocks:    func() {},
			ExpectedError: validators.ErrInvalidDiscount,
		},
		{
			Name:    "Error. Storage failure #7",
			Request: models.RewardRequest{Name: "bar", Type: models.RewardTypeProduct, PointsCost: 100},
			SetupMocks: func() {
				mockRewards.EXPECT().AddReward(gomock.Any(), gomock.Any()).Return(errors.New("failed to add reward"))
			},
			ExpectedError: errors.New("failed to add reward"),
		},
		{
			Name:    "Success. Reward is stored with a decimal cost #8",
			Request: models.RewardRequest{Name: "bar", Type: models.RewardTypeProduct, PointsCost: 250, Stock: int64Ptr(5), IsActive: true},
			SetupMocks: func() {
				mockRewards.EXPECT().AddReward(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, reward models.RewardData) error {
						if !reward.PointsCost.Equal(decimal.NewFromInt(250)) {
							t.Errorf("Expected cost 250, got: '%s'", reward.PointsCost)
						}
						if reward.ID == "" {
							t.Errorf("Expected generated reward id")
						}
						return nil
					})
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, err := service.CreateReward(ctx, tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestCatalogService_AdjustStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRewards := mocks.NewMockRewardsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	service := NewCatalog(mockRewards)

	testCases := []struct {
		Name          string
		Delta         int64
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:  "Error. Reward not found #1",
			Delta: 1,
			SetupMocks: func() {
				mockRewards.EXPECT().AdjustStock(gomock.Any(), "reward-1", int64(1)).Return(storage.ErrRewardNotFound)
			},
			ExpectedError: storage.ErrRewardNotFound,
		},
		{
			Name:  "Error. Unlimited reward has no stock to adjust #2",
			Delta: 1,
			SetupMocks: func() {
				mockRewards.EXPECT().AdjustStock(gomock.Any(), "reward-1", int64(1)).Return(storage.ErrNoStockTracking)
			},
			ExpectedError: storage.ErrNoStockTracking,
		},
		{
			Name:  "Error. Decrement below zero #3",
			Delta: -10,
			SetupMocks: func() {
				mockRewards.EXPECT().AdjustStock(gomock.Any(), "reward-1", int64(-10)).Return(storage.ErrInsufficientStock)
			},
			ExpectedError: storage.ErrInsufficientStock,
		},
		{
			Name:  "Success. Returns the refreshed reward #4",
			Delta: 3,
			SetupMocks: func() {
				mockRewards.EXPECT().AdjustStock(gomock.Any(), "reward-1", int64(3)).Return(nil)
				mockRewards.EXPECT().GetReward(gomock.Any(), "reward-1").Return(&models.RewardData{
					ID:    "reward-1",
					Stock: int64Ptr(8),
				}, nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			reward, err := service.AdjustStock(ctx, "reward-1", tc.Delta)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if err == nil && (reward == nil || reward.Stock == nil || *reward.Stock != 8) {
				t.Errorf("Expected refreshed reward with stock 8, got: '%v'", reward)
			}
		})
	}
}
