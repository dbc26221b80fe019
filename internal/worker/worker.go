package worker

import (
	"context"
	"sync"
	"time"

	"github.com/fitlife/loyalty/internal/config"
	"github.com/fitlife/loyalty/internal/logger"
	"github.com/fitlife/loyalty/internal/storage"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "points-expire",
		Timeout: 30 * time.Second, // через 30 сек пробуем снова
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 подряд неудачных обращений к хранилищу
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// ExpireWorker - фоновый воркер сгорания баллов по неактивным счетам
type ExpireWorker struct {
	Accounts     storage.AccountsStorage
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	ExpireAfter  time.Duration
	BatchSize    int
	PollInterval time.Duration
}

// NewExpireWorker - конструктор воркера сгорания баллов
func NewExpireWorker(accounts storage.AccountsStorage, cfg config.ExpireConfig) *ExpireWorker {
	return &ExpireWorker{
		Accounts:     accounts,
		Breaker:      InitCircuitBreaker(),
		QuitChan:     make(chan struct{}),
		ExpireAfter:  cfg.ExpireAfter,
		BatchSize:    cfg.BatchSize,
		PollInterval: cfg.PollInterval,
	}
}

// Start - запускает воркер в фоне. ExpireAfter = 0 отключает сгорание.
func (w *ExpireWorker) Start(ctx context.Context) {
	if w.ExpireAfter <= 0 {
		logger.Info("Points expiration disabled")
		return
	}
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *ExpireWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *ExpireWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("ExpireWorker signal stop")
			return
		case <-ticker.C:
			w.ExpirePoints(ctx)
		}
	}
}

// ExpirePoints - обработка пачки неактивных счетов
func (w *ExpireWorker) ExpirePoints(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("%s unavailable. Waiting...", w.Breaker.Name())
		return
	}

	cutoff := time.Now().Add(-w.ExpireAfter)

	expired, err := w.Breaker.Execute(func() (interface{}, error) {
		return w.Accounts.ExpireInactive(ctx, cutoff, w.BatchSize)
	})
	if err != nil {
		logger.Error("error expire points", err)
		return
	}

	if count := expired.(int); count > 0 {
		logger.Info("Expired points on inactive accounts:", count)
	}
}
