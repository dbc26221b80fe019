package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fitlife/loyalty/internal/logger"
	"github.com/fitlife/loyalty/internal/models"
	"github.com/fitlife/loyalty/internal/services"
	"github.com/fitlife/loyalty/internal/storage"
	"github.com/fitlife/loyalty/internal/validators"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GetRewardsHandler — список вознаграждений каталога.
// Пользователь видит только активные, администратор — весь каталог.
func GetRewardsHandler(c services.CatalogService, activeOnly bool) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rewards, err := c.ListRewards(r.Context(), activeOnly)
		if err != nil {
			logger.Error("Failed to get rewards:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		if len(rewards) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		response := make([]models.RewardResponse, 0, len(rewards))
		for _, reward := range rewards {
			response = append(response, toRewardResponse(&reward))
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

// CreateRewardHandler — добавление вознаграждения в каталог
func CreateRewardHandler(c services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.RewardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		reward, err := c.CreateReward(r.Context(), req)
		if err != nil {
			rewardError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err = json.NewEncoder(w).Encode(toRewardResponse(reward)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// UpdateRewardHandler — изменение вознаграждения каталога
func UpdateRewardHandler(c services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req models.RewardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		reward, err := c.UpdateReward(r.Context(), id, req)
		if err != nil {
			rewardError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(toRewardResponse(reward)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// DeleteRewardHandler — удаление вознаграждения из каталога
func DeleteRewardHandler(c services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := c.DeleteReward(r.Context(), id); err != nil {
			rewardError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// AdjustStockHandler — изменение запаса вознаграждения
func AdjustStockHandler(c services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req models.StockRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		reward, err := c.AdjustStock(r.Context(), id, req.Delta)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrRewardNotFound):
				http.Error(w, "Reward not found", http.StatusNotFound)
			case errors.Is(err, storage.ErrInsufficientStock):
				http.Error(w, "Insufficient stock", http.StatusConflict)
			case errors.Is(err, storage.ErrNoStockTracking):
				http.Error(w, "Reward stock is unlimited", http.StatusConflict)
			default:
				logger.Error("Failed to adjust stock:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(toRewardResponse(reward)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// rewardError - сопоставление ошибок каталога с HTTP статусами
func rewardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrRewardNotFound):
		http.Error(w, "Reward not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrAlreadyExists):
		http.Error(w, "Reward already exists", http.StatusConflict)
	case validators.IsValidationError(err):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		logger.Error("Catalog operation failed:", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func toRewardResponse(reward *models.RewardData) models.RewardResponse {
	return models.RewardResponse{
		ID:                 reward.ID,
		Name:               reward.Name,
		Type:               reward.Type,
		PointsCost:         reward.PointsCost.IntPart(),
		Description:        reward.Description,
		IsActive:           reward.IsActive,
		Stock:              reward.Stock,
		DiscountPercentage: reward.DiscountPercentage,
		Category:           reward.Category,
		CreatedAt:          reward.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          reward.UpdatedAt.Format(time.RFC3339),
	}
}
