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
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestLedgerService_GetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAccounts := mocks.NewMockAccountsStorage(ctrl)
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	ledger := NewLedger(mockAccounts, mockUsers)

	testCases := []struct {
		Name            string
		Login           string
		SetupMocks      func()
		ExpectedError   error
		ExpectedAccount *models.AccountData
	}{
		{
			Name:  "Error. User not found #1",
			Login: "mda",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(nil, storage.ErrUserNotFound)
			},
			ExpectedError:   storage.ErrUserNotFound,
			ExpectedAccount: nil,
		},
		{
			Name:  "Error. Failed get account #2",
			Login: "mda",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockAccounts.EXPECT().GetAccount(gomock.Any(), "1").Return(nil, errors.New("failed to get account"))
			},
			ExpectedError:   errors.New("failed to get account"),
			ExpectedAccount: nil,
		},
		{
			Name:  "Success. Account is lazy, missing row reads as zero #3",
			Login: "mda",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockAccounts.EXPECT().GetAccount(gomock.Any(), "1").Return(nil, storage.ErrAccountNotFound)
			},
			ExpectedError:   nil,
			ExpectedAccount: &models.AccountData{UserID: "1"},
		},
		{
			Name:  "Success. #4",
			Login: "mda",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockAccounts.EXPECT().GetAccount(gomock.Any(), "1").Return(&models.AccountData{
					UserID:    "1",
					Total:     decimal.NewFromInt(100),
					Available: decimal.NewFromInt(40),
					Earned:    decimal.NewFromInt(100),
					Redeemed:  decimal.NewFromInt(60),
				}, nil)
			},
			ExpectedError: nil,
			ExpectedAccount: &models.AccountData{
				UserID:    "1",
				Total:     decimal.NewFromInt(100),
				Available: decimal.NewFromInt(40),
				Earned:    decimal.NewFromInt(100),
				Redeemed:  decimal.NewFromInt(60),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			account, err := ledger.GetBalance(ctx, tc.Login)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedAccount, account)
			if len(diff) != 0 {
				t.Errorf("expected account mismatch:\n %s", diff)
			}
		})
	}
}

func TestLedgerService_Credit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAccounts := mocks.NewMockAccountsStorage(ctrl)
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	ledger := NewLedger(mockAccounts, mockUsers)

	testCases := []struct {
		Name          string
		Amount        decimal.Decimal
		EntryType     string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:          "Error. Negative amount #1",
			Amount:        decimal.NewFromInt(-10),
			EntryType:     models.TransactionEarned,
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidAmount,
		},
		{
			Name:          "Error. Zero amount #2",
			Amount:        decimal.Zero,
			EntryType:     models.TransactionEarned,
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidAmount,
		},
		{
			Name:          "Error. Fractional amount #3",
			Amount:        decimal.NewFromFloat(10.5),
			EntryType:     models.TransactionEarned,
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidAmount,
		},
		{
			Name:          "Error. Redeemed is not a credit type #4",
			Amount:        decimal.NewFromInt(10),
			EntryType:     models.TransactionRedeemed,
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidTransactionType,
		},
		{
			Name:      "Error. Storage failure #5",
			Amount:    decimal.NewFromInt(10),
			EntryType: models.TransactionEarned,
			SetupMocks: func() {
				mockAccounts.EXPECT().Credit(gomock.Any(), gomock.Any()).Return(errors.New("failed to update account"))
			},
			ExpectedError: errors.New("failed to update account"),
		},
		{
			Name:      "Success. #6",
			Amount:    decimal.NewFromInt(100),
			EntryType: models.TransactionBonus,
			SetupMocks: func() {
				mockAccounts.EXPECT().Credit(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry models.TransactionData) error {
						if entry.Type != models.TransactionBonus {
							t.Errorf("Expected bonus entry, got: '%s'", entry.Type)
						}
						if !entry.Amount.Equal(decimal.NewFromInt(100)) {
							t.Errorf("Expected amount 100, got: '%s'", entry.Amount)
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

			err := ledger.Credit(ctx, "1", tc.Amount, tc.EntryType, "test credit", "", nil)

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

func TestLedgerService_Debit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAccounts := mocks.NewMockAccountsStorage(ctrl)
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	ledger := NewLedger(mockAccounts, mockUsers)

	testCases := []struct {
		Name            string
		Amount          decimal.Decimal
		SetupMocks      func()
		ExpectedError   error
		ExpectedSuccess bool
	}{
		{
			Name:            "Error. Invalid amount #1",
			Amount:          decimal.NewFromInt(-1),
			SetupMocks:      func() {},
			ExpectedError:   ErrInvalidAmount,
			ExpectedSuccess: false,
		},
		{
			Name:   "Success. Insufficient points is not an error, only false #2",
			Amount: decimal.NewFromInt(150),
			SetupMocks: func() {
				mockAccounts.EXPECT().Debit(gomock.Any(), gomock.Any()).Return(storage.ErrInsufficientPoints)
			},
			ExpectedError:   nil,
			ExpectedSuccess: false,
		},
		{
			Name:   "Error. Storage failure #3",
			Amount: decimal.NewFromInt(10),
			SetupMocks: func() {
				mockAccounts.EXPECT().Debit(gomock.Any(), gomock.Any()).Return(errors.New("failed to update account"))
			},
			ExpectedError:   errors.New("failed to update account"),
			ExpectedSuccess: false,
		},
		{
			Name:   "Success. #4",
			Amount: decimal.NewFromInt(10),
			SetupMocks: func() {
				mockAccounts.EXPECT().Debit(gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedError:   nil,
			ExpectedSuccess: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			success, err := ledger.Debit(ctx, "1", tc.Amount, "test debit", "", nil)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if success != tc.ExpectedSuccess {
				t.Errorf("Expected success '%v', got: '%v'", tc.ExpectedSuccess, success)
			}
		})
	}
}

func TestLedgerService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAccounts := mocks.NewMockAccountsStorage(ctrl)
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	ledger := NewLedger(mockAccounts, mockUsers)

	transactions := []models.TransactionData{
		{ID: "2", UserID: "1", Type: models.TransactionRedeemed, Amount: decimal.NewFromInt(50)},
		{ID: "1", UserID: "1", Type: models.TransactionEarned, Amount: decimal.NewFromInt(100)},
	}

	testCases := []struct {
		Name                 string
		Login                string
		Limit                int
		SetupMocks           func()
		ExpectedError        error
		ExpectedTransactions []models.TransactionData
	}{
		{
			Name:  "Error. User not found #1",
			Login: "mda",
			Limit: 10,
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(nil, storage.ErrUserNotFound)
			},
			ExpectedError:        storage.ErrUserNotFound,
			ExpectedTransactions: nil,
		},
		{
			Name:  "Success. Zero limit falls back to default #2",
			Login: "mda",
			Limit: 0,
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockAccounts.EXPECT().GetTransactions(gomock.Any(), "1", DefaultHistoryLimit).Return(transactions, nil)
			},
			ExpectedError:        nil,
			ExpectedTransactions: transactions,
		},
		{
			Name:  "Success. #3",
			Login: "mda",
			Limit: 10,
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockAccounts.EXPECT().GetTransactions(gomock.Any(), "1", 10).Return(transactions, nil)
			},
			ExpectedError:        nil,
			ExpectedTransactions: transactions,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			history, err := ledger.History(ctx, tc.Login, tc.Limit)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedTransactions, history)
			if len(diff) != 0 {
				t.Errorf("expected transactions mismatch:\n %s", diff)
			}
		})
	}
}

func TestLedgerService_GrantBonus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAccounts := mocks.NewMockAccountsStorage(ctrl)
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	ledger := NewLedger(mockAccounts, mockUsers)

	testCases := []struct {
		Name          string
		Login         string
		Amount        decimal.Decimal
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:   "Error. User not found #1",
			Login:  "mda",
			Amount: decimal.NewFromInt(10),
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(nil, storage.ErrUserNotFound)
			},
			ExpectedError: storage.ErrUserNotFound,
		},
		{
			Name:   "Success. #2",
			Login:  "mda",
			Amount: decimal.NewFromInt(10),
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockAccounts.EXPECT().Credit(gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := ledger.GrantBonus(ctx, tc.Login, tc.Amount, "bonus", nil)

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
