package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fitlife/loyalty/internal/helpers"
	"github.com/fitlife/loyalty/internal/logger"
	"github.com/fitlife/loyalty/internal/models"
	"github.com/fitlife/loyalty/internal/services"
	"github.com/fitlife/loyalty/internal/storage"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateRequestHandler — создание заявки на обмен баллов
func CreateRequestHandler(s services.RequestsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		var req models.CreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if req.RewardID == "" {
			http.Error(w, "Reward id is required", http.StatusBadRequest)
			return
		}

		request, err := s.CreateRequest(r.Context(), username, req)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrRewardNotFound):
				http.Error(w, "Reward not found", http.StatusNotFound)
			default:
				logger.Error("Failed to create request:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err = json.NewEncoder(w).Encode(toRequestResponse(request)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetUserRequestsHandler — список заявок пользователя
func GetUserRequestsHandler(s services.RequestsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		requests, err := s.GetUserRequests(r.Context(), username)
		if err != nil {
			logger.Error("Failed to get requests:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		writeRequests(w, requests)
	})
}

// GetAdminRequestsHandler — очередь заявок для администратора.
// По умолчанию выдаются ожидающие решения.
func GetAdminRequestsHandler(s services.RequestsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")
		if status == "" {
			status = models.RequestStatusPending
		}
		switch status {
		case models.RequestStatusPending, models.RequestStatusApproved, models.RequestStatusRejected:
		default:
			http.Error(w, "Invalid status", http.StatusBadRequest)
			return
		}

		requests, err := s.GetRequestsByStatus(r.Context(), status)
		if err != nil {
			logger.Error("Failed to get requests:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		writeRequests(w, requests)
	})
}

// DecideRequestHandler — решение администратора по заявке.
// Ответ всегда несёт итоговый статус: одобрение могло быть автоматически
// отменено, если обмен не прошёл.
func DecideRequestHandler(s services.RequestsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных об администраторе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		requestID := chi.URLParam(r, "id")

		var req models.DecisionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		result, err := s.Decide(r.Context(), requestID, req.Decision, req.AdminNotes, username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidDecision):
				http.Error(w, "Invalid decision", http.StatusBadRequest)
			case errors.Is(err, storage.ErrRequestNotFound):
				http.Error(w, "Request not found", http.StatusNotFound)
			case errors.Is(err, services.ErrInvalidState):
				http.Error(w, "Request already processed", http.StatusConflict)
			case errors.Is(err, services.ErrCompensationFailed):
				// Самый тяжёлый случай: заявка зависла в approved без обмена
				logger.Error("Compensation failed:", zap.Error(err))
				http.Error(w, err.Error(), http.StatusInternalServerError)
			default:
				logger.Error("Failed to decide request:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(result); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

func writeRequests(w http.ResponseWriter, requests []models.RequestData) {
	if len(requests) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]models.RequestResponse, 0, len(requests))
	for _, request := range requests {
		response = append(response, toRequestResponse(&request))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func toRequestResponse(request *models.RequestData) models.RequestResponse {
	response := models.RequestResponse{
		ID:               request.ID,
		UserID:           request.UserID,
		RewardID:         request.RewardID,
		RewardName:       request.RewardName,
		RewardPointsCost: request.RewardPointsCost.IntPart(),
		Status:           request.Status,
		RequestDate:      request.RequestDate.Format(time.RFC3339),
		ProcessedBy:      request.ProcessedBy,
		AdminNotes:       request.AdminNotes,
		UserNotes:        request.UserNotes,
	}
	if request.ProcessedDate != nil {
		response.ProcessedDate = request.ProcessedDate.Format(time.RFC3339)
	}
	return response
}
