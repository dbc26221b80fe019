package validators

import (
	"errors"

	"github.com/fitlife/loyalty/internal/models"
)

var (
	ErrEmptyName          = errors.New("reward name is empty")
	ErrInvalidRewardType  = errors.New("invalid reward type")
	ErrInvalidPointsCost  = errors.New("points cost must be positive")
	ErrInvalidStock       = errors.New("stock must not be negative")
	ErrInvalidDiscount    = errors.New("discount percentage must be between 1 and 100")
	ErrDiscountWrongType  = errors.New("discount percentage is only valid for discount rewards")
)

// IsValidationError - проверка, что ошибка относится к валидации входных данных
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrEmptyName, ErrInvalidRewardType, ErrInvalidPointsCost,
		ErrInvalidStock, ErrInvalidDiscount, ErrDiscountWrongType,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// CheckReward проверяет входящие данные вознаграждения каталога
func CheckReward(request models.RewardRequest) error {
	if request.Name == "" {
		return ErrEmptyName
	}
	switch request.Type {
	case models.RewardTypeProduct, models.RewardTypeDiscount, models.RewardTypeService:
	default:
		return ErrInvalidRewardType
	}
	if request.PointsCost <= 0 {
		return ErrInvalidPointsCost
	}
	// Stock == nil означает неограниченный запас
	if request.Stock != nil && *request.Stock < 0 {
		return ErrInvalidStock
	}
	if request.DiscountPercentage != nil {
		if request.Type != models.RewardTypeDiscount {
			return ErrDiscountWrongType
		}
		if *request.DiscountPercentage < 1 || *request.DiscountPercentage > 100 {
			return ErrInvalidDiscount
		}
	}
	return nil
}
