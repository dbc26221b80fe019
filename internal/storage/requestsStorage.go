package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitlife/loyalty/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	InsertRequest = `INSERT INTO REQUESTS (id, user_id, reward_id, reward_name, reward_points_cost, status, request_date, user_notes)
					VALUES ($1, $2, $3, $4, $5, $6, NOW(), $7);`
	GetRequest = `SELECT id, user_id, reward_id, reward_name, reward_points_cost, status, request_date, processed_date, processed_by, admin_notes, user_notes
					FROM REQUESTS WHERE id = $1;`
	GetUserRequests = `SELECT id, user_id, reward_id, reward_name, reward_points_cost, status, request_date, processed_date, processed_by, admin_notes, user_notes
					FROM REQUESTS WHERE user_id = $1 ORDER BY request_date DESC;`
	GetRequestsByStatus = `SELECT id, user_id, reward_id, reward_name, reward_points_cost, status, request_date, processed_date, processed_by, admin_notes, user_notes
					FROM REQUESTS WHERE status = $1 ORDER BY request_date;`
	// Переход статуса защищён условием на текущий статус: заявку нельзя
	// обработать дважды, компенсация возможна только из approved
	SetRequestStatus = `UPDATE REQUESTS
					SET status = $3,
					    processed_date = NOW(),
					    processed_by = $4,
					    admin_notes = $5
					WHERE id = $1 AND status = $2;`
)

type RequestDatabase struct {
	DB *Database
}

// Создание хранилища
func NewRequestsStorage(db *Database) RequestsStorage {
	return &RequestDatabase{DB: db}
}

func (s *RequestDatabase) AddRequest(ctx context.Context, request models.RequestData) error {
	_, err := s.DB.Pool.Exec(ctx, InsertRequest,
		request.ID, request.UserID, request.RewardID, request.RewardName,
		request.RewardPointsCost, request.Status, request.UserNotes)
	if err != nil {
		return fmt.Errorf("failed to add request: %w", err)
	}
	return nil
}

func (s *RequestDatabase) GetRequest(ctx context.Context, id string) (*models.RequestData, error) {
	request, err := scanRequest(s.DB.Pool.QueryRow(ctx, GetRequest, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return request, nil
}

func (s *RequestDatabase) GetUserRequests(ctx context.Context, userID string) ([]models.RequestData, error) {
	return s.getRequests(ctx, GetUserRequests, userID)
}

func (s *RequestDatabase) GetRequestsByStatus(ctx context.Context, status string) ([]models.RequestData, error) {
	return s.getRequests(ctx, GetRequestsByStatus, status)
}

func (s *RequestDatabase) getRequests(ctx context.Context, query string, arg string) ([]models.RequestData, error) {
	var requests []models.RequestData
	rows, err := s.DB.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to get requests: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return requests, fmt.Errorf("failed scan request data: %w", err)
		}
		requests = append(requests, *request)
	}
	return requests, rows.Err()
}

// SetStatus — переход заявки из статуса from в статус to
func (s *RequestDatabase) SetStatus(ctx context.Context, id string, from string, to string, processedBy string, adminNotes string) error {
	result, err := s.DB.Pool.Exec(ctx, SetRequestStatus, id, from, to, processedBy, adminNotes)
	if err != nil {
		return fmt.Errorf("failed to set request status: %w", err)
	}
	if result.RowsAffected() > 0 {
		return nil
	}

	// Строка не изменилась: либо заявки нет, либо статус уже другой
	if _, err := s.GetRequest(ctx, id); err != nil {
		return err
	}
	return ErrRequestProcessed
}

func scanRequest(row pgx.Row) (*models.RequestData, error) {
	var (
		id            string
		userID        string
		rewardID      string
		rewardName    string
		pointsCost    decimal.Decimal
		status        string
		requestDate   time.Time
		processedDate *time.Time
		processedBy   string
		adminNotes    string
		userNotes     string
	)
	err := row.Scan(
		&id,
		&userID,
		&rewardID,
		&rewardName,
		&pointsCost,
		&status,
		&requestDate,
		&processedDate,
		&processedBy,
		&adminNotes,
		&userNotes,
	)
	if err != nil {
		return nil, err
	}
	return &models.RequestData{
		ID:               id,
		UserID:           userID,
		RewardID:         rewardID,
		RewardName:       rewardName,
		RewardPointsCost: pointsCost,
		Status:           status,
		RequestDate:      requestDate,
		ProcessedDate:    processedDate,
		ProcessedBy:      processedBy,
		AdminNotes:       adminNotes,
		UserNotes:        userNotes,
	}, nil
}
