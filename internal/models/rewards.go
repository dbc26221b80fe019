package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типы вознаграждений
const (
	RewardTypeProduct  = "product"
	RewardTypeDiscount = "discount"
	RewardTypeService  = "service"
)

// RewardData - модель вознаграждения из каталога.
// Stock == nil означает неограниченный запас.
type RewardData struct {
	ID                 string
	Name               string
	Type               string
	PointsCost         decimal.Decimal
	Description        string
	IsActive           bool
	Stock              *int64
	DiscountPercentage *int64
	Category           string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// RewardRequest - модель запроса создания/изменения вознаграждения, приходит извне
type RewardRequest struct {
	Name               string `json:"name"`
	Type               string `json:"type"`
	PointsCost         int64  `json:"points_cost"`
	Description        string `json:"description"`
	IsActive           bool   `json:"is_active"`
	Stock              *int64 `json:"stock,omitempty"`
	DiscountPercentage *int64 `json:"discount_percentage,omitempty"`
	Category           string `json:"category"`
}

// RewardResponse — структура ответа с вознаграждением каталога
type RewardResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Type               string `json:"type"`
	PointsCost         int64  `json:"points_cost"`
	Description        string `json:"description,omitempty"`
	IsActive           bool   `json:"is_active"`
	Stock              *int64 `json:"stock,omitempty"`
	DiscountPercentage *int64 `json:"discount_percentage,omitempty"`
	Category           string `json:"category,omitempty"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

// StockRequest - модель запроса изменения запаса вознаграждения
type StockRequest struct {
	Delta int64 `json:"delta"`
}

// RedeemResult - итог обмена баллов на вознаграждение.
// Success=false с непустым Message — отказ по бизнес-правилу, текст можно
// показывать пользователю как есть.
type RedeemResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id,omitempty"`
}
