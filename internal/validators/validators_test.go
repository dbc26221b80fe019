package validators

import (
	"errors"
	"testing"

	"github.com/fitlife/loyalty/internal/models"
)

func ptr(v int64) *int64 { return &v }

func TestCheckReward(t *testing.T) {
	testCases := []struct {
		Name          string
		Request       models.RewardRequest
		ExpectedError error
	}{
		{
			Name:          "Error. Empty name #1",
			Request:       models.RewardRequest{Type: models.RewardTypeProduct, PointsCost: 100},
			ExpectedError: ErrEmptyName,
		},
		{
			Name:          "Error. Unknown type #2",
			Request:       models.RewardRequest{Name: "bar", Type: "mystery", PointsCost: 100},
			ExpectedError: ErrInvalidRewardType,
		},
		{
			Name:          "Error. Zero cost #3",
			Request:       models.RewardRequest{Name: "bar", Type: models.RewardTypeProduct},
			ExpectedError: ErrInvalidPointsCost,
		},
		{
			Name:          "Error. Negative cost #4",
			Request:       models.RewardRequest{Name: "bar", Type: models.RewardTypeProduct, PointsCost: -5},
			ExpectedError: ErrInvalidPointsCost,
		},
		{
			Name:          "Error. Negative stock #5",
			Request:       models.RewardRequest{Name: "bar", Type: models.RewardTypeProduct, PointsCost: 100, Stock: ptr(-1)},
			ExpectedError: ErrInvalidStock,
		},
		{
			Name:          "Error. Discount on service reward #6",
			Request:       models.RewardRequest{Name: "massage", Type: models.RewardTypeService, PointsCost: 100, DiscountPercentage: ptr(20)},
			ExpectedError: ErrDiscountWrongType,
		},
		{
			Name:          "Error. Discount below range #7",
			Request:       models.RewardRequest{Name: "sale", Type: models.RewardTypeDiscount, PointsCost: 100, DiscountPercentage: ptr(0)},
			ExpectedError: ErrInvalidDiscount,
		},
		{
			Name:          "Error. Discount above range #8",
			Request:       models.RewardRequest{Name: "sale", Type: models.RewardTypeDiscount, PointsCost: 100, DiscountPercentage: ptr(101)},
			ExpectedError: ErrInvalidDiscount,
		},
		{
			Name:          "Success. Unlimited stock #9",
			Request:       models.RewardRequest{Name: "bar", Type: models.RewardTypeProduct, PointsCost: 100},
			ExpectedError: nil,
		},
		{
			Name:          "Success. Discount reward #10",
			Request:       models.RewardRequest{Name: "sale", Type: models.RewardTypeDiscount, PointsCost: 100, DiscountPercentage: ptr(100)},
			ExpectedError: nil,
		},
		{
			Name:          "Success. Zero stock is allowed #11",
			Request:       models.RewardRequest{Name: "bar", Type: models.RewardTypeProduct, PointsCost: 100, Stock: ptr(0)},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			err := CheckReward(tc.Request)
			if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	if !IsValidationError(ErrInvalidStock) {
		t.Errorf("Expected validation error")
	}
	if IsValidationError(errors.New("failed to add reward")) {
		t.Errorf("Expected non-validation error")
	}
}
