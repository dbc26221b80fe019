package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы заявок на обмен баллов
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// Решения администратора по заявке
const (
	DecisionApprove = "approved"
	DecisionReject  = "rejected"
)

// RequestData - модель заявки пользователя на обмен баллов.
// Имя и стоимость вознаграждения фиксируются на момент создания заявки,
// последующие правки каталога на заявку не влияют.
type RequestData struct {
	ID               string
	UserID           string
	RewardID         string
	RewardName       string
	RewardPointsCost decimal.Decimal
	Status           string
	RequestDate      time.Time
	ProcessedDate    *time.Time
	ProcessedBy      string
	AdminNotes       string
	UserNotes        string
}

// CreateRequest - модель запроса создания заявки, приходит извне
type CreateRequest struct {
	RewardID  string `json:"reward_id"`
	UserNotes string `json:"user_notes,omitempty"`
}

// RequestResponse — структура ответа с заявкой
type RequestResponse struct {
	ID               string `json:"id"`
	UserID           string `json:"user_id"`
	RewardID         string `json:"reward_id"`
	RewardName       string `json:"reward_name"`
	RewardPointsCost int64  `json:"reward_points_cost"`
	Status           string `json:"status"`
	RequestDate      string `json:"request_date"`
	ProcessedDate    string `json:"processed_date,omitempty"`
	ProcessedBy      string `json:"processed_by,omitempty"`
	AdminNotes       string `json:"admin_notes,omitempty"`
	UserNotes        string `json:"user_notes,omitempty"`
}

// DecisionRequest - модель запроса решения администратора, приходит извне
type DecisionRequest struct {
	Decision   string `json:"decision"`
	AdminNotes string `json:"admin_notes,omitempty"`
}

// DecisionResult - итог решения по заявке. Compensated=true означает, что
// одобрение было автоматически отменено из-за сбоя обмена, Message содержит
// причину.
type DecisionResult struct {
	RequestID     string `json:"request_id"`
	Status        string `json:"status"`
	Message       string `json:"message,omitempty"`
	Compensated   bool   `json:"compensated,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}
