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
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func TestRedemptionService_Redeem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRedemptions := mocks.NewMockRedemptionsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	redemption := NewRedemption(mockRedemptions)

	testCases := []struct {
		Name           string
		SetupMocks     func()
		ExpectedError  error
		ExpectedResult *models.RedeemResult
	}{
		{
			Name: "Rejected. Reward not found #1",
			SetupMocks: func() {
				mockRedemptions.EXPECT().Redeem(gomock.Any(), "user-1", "reward-1").Return("", storage.ErrRewardNotFound)
			},
			ExpectedError:  nil,
			ExpectedResult: &models.RedeemResult{Success: false, Message: "reward not found"},
		},
		{
			Name: "Rejected. Reward inactive #2",
			SetupMocks: func() {
				mockRedemptions.EXPECT().Redeem(gomock.Any(), "user-1", "reward-1").Return("", storage.ErrRewardInactive)
			},
			ExpectedError:  nil,
			ExpectedResult: &models.RedeemResult{Success: false, Message: "reward is not active"},
		},
		{
			Name: "Rejected. Out of stock #3",
			SetupMocks: func() {
				mockRedemptions.EXPECT().Redeem(gomock.Any(), "user-1", "reward-1").Return("", storage.ErrOutOfStock)
			},
			ExpectedError:  nil,
			ExpectedResult: &models.RedeemResult{Success: false, Message: "reward is out of stock"},
		},
		{
			Name: "Rejected. Insufficient points #4",
			SetupMocks: func() {
				mockRedemptions.EXPECT().Redeem(gomock.Any(), "user-1", "reward-1").Return("", storage.ErrInsufficientPoints)
			},
			ExpectedError:  nil,
			ExpectedResult: &models.RedeemResult{Success: false, Message: "insufficient points"},
		},
		{
			Name: "Error. Storage failure is a fault, not a rejection #5",
			SetupMocks: func() {
				mockRedemptions.EXPECT().Redeem(gomock.Any(), "user-1", "reward-1").Return("", errors.New("failed to begin transaction"))
			},
			ExpectedError:  errors.New("redeem reward: failed to begin transaction"),
			ExpectedResult: nil,
		},
		{
			Name: "Success. #6",
			SetupMocks: func() {
				mockRedemptions.EXPECT().Redeem(gomock.Any(), "user-1", "reward-1").Return("tx-1", nil)
			},
			ExpectedError: nil,
			ExpectedResult: &models.RedeemResult{
				Success:       true,
				Message:       "reward redeemed",
				TransactionID: "tx-1",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			result, err := redemption.Redeem(ctx, "user-1", "reward-1")

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedResult, result)
			if len(diff) != 0 {
				t.Errorf("expected result mismatch:\n %s", diff)
			}
		})
	}
}
