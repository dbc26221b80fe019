package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fitlife/loyalty/internal/helpers"
	"github.com/fitlife/loyalty/internal/logger"
	"github.com/fitlife/loyalty/internal/models"
	"github.com/fitlife/loyalty/internal/services"
	"github.com/fitlife/loyalty/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GetBalanceHandler — получение состояния накопительного счёта пользователя
func GetBalanceHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		account, err := l.GetBalance(r.Context(), username)
		if err != nil {
			logger.Error("Failed to get balance:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		response := models.BalanceResponse{
			Total:     account.Total.IntPart(),
			Available: account.Available.IntPart(),
			Earned:    account.Earned.IntPart(),
			Redeemed:  account.Redeemed.IntPart(),
		}
		if !account.UpdatedAt.IsZero() {
			response.UpdatedAt = account.UpdatedAt.Format(time.RFC3339)
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(response)
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// GetHistoryHandler — получение журнала операций с баллами пользователя
func GetHistoryHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err = strconv.Atoi(raw)
			if err != nil || limit < 0 {
				http.Error(w, "Invalid limit", http.StatusBadRequest)
				return
			}
		}

		transactions, err := l.History(r.Context(), username, limit)
		if err != nil {
			logger.Error("Failed to get history:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		if len(transactions) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.TransactionResponse
		for _, t := range transactions {
			item := models.TransactionResponse{
				ID:          t.ID,
				Type:        t.Type,
				Amount:      t.Amount.IntPart(),
				Description: t.Description,
				RelatedID:   t.RelatedID,
				Metadata:    t.Metadata,
				CreatedAt:   t.CreatedAt.Format(time.RFC3339),
			}
			response = append(response, item)
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(response)
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// GrantBonusHandler — ручное начисление бонусных баллов (только администратор)
func GrantBonusHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.CreditRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		err := l.GrantBonus(r.Context(), req.Login, decimal.NewFromInt(req.Amount), req.Description, req.Metadata)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrUserNotFound):
				http.Error(w, "User not found", http.StatusNotFound)
			case errors.Is(err, services.ErrInvalidAmount):
				http.Error(w, "Invalid amount", http.StatusBadRequest)
			default:
				logger.Error("Failed to grant bonus:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}
