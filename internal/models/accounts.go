package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типы операций с баллами
const (
	TransactionEarned   = "earned"
	TransactionRedeemed = "redeemed"
	TransactionExpired  = "expired"
	TransactionBonus    = "bonus"
)

// AccountData - модель накопительного счёта пользователя
type AccountData struct {
	UserID    string
	Total     decimal.Decimal
	Available decimal.Decimal
	Earned    decimal.Decimal
	Redeemed  decimal.Decimal
	UpdatedAt time.Time
}

// TransactionData - модель записи журнала операций с баллами.
// Записи не изменяются и не удаляются после создания.
type TransactionData struct {
	ID          string
	UserID      string
	Type        string
	Amount      decimal.Decimal
	Description string
	RelatedID   string
	Metadata    map[string]any
	CreatedAt   time.Time
}

// BalanceResponse — структура ответа о состоянии счёта
type BalanceResponse struct {
	Total     int64  `json:"total"`
	Available int64  `json:"available"`
	Earned    int64  `json:"earned"`
	Redeemed  int64  `json:"redeemed"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// TransactionResponse — структура ответа с записью журнала операций
type TransactionResponse struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Amount      int64          `json:"amount"`
	Description string         `json:"description,omitempty"`
	RelatedID   string         `json:"related_id,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   string         `json:"created_at"`
}

// CreditRequest - модель запроса начисления баллов (админ)
type CreditRequest struct {
	Login       string         `json:"login"`
	Amount      int64          `json:"amount"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}
