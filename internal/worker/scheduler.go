package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TelegramGateway/internal/domain"
)

var (
	// ErrNotScheduled возвращается при отмене неизвестной задачи
	ErrNotScheduled = errors.New("worker: message is not scheduled")

	// ErrNoScheduleTime возвращается, если у сообщения не задано время отправки
	ErrNoScheduleTime = errors.New("worker: message has no scheduled_for time")

	// ErrScheduleInPast возвращается, если время отправки уже прошло
	ErrScheduleInPast = errors.New("worker: scheduled_for time is in the past")
)

// sendTimeout таймаут отправки одного отложенного сообщения
const sendTimeout = 30 * time.Second

// Scheduler планировщик отложенных сообщений
// Задачи хранятся только в памяти процесса: перезапуск сервиса теряет
// незавершённые отложенные отправки
type Scheduler struct {
	sender    MessageSender
	logger    Logger
	metrics   SchedulerMetrics // Опционально, может быть nil
	scheduler *gocron.Scheduler
	jobs      map[string]*gocron.Job // message id -> job
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewScheduler создает новый экземпляр планировщика
func NewScheduler(sender MessageSender, logger Logger, metrics SchedulerMetrics) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		sender:    sender,
		logger:    logger,
		metrics:   metrics,
		scheduler: gocron.NewScheduler(time.UTC),
		jobs:      make(map[string]*gocron.Job),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start запускает планировщик
func (s *Scheduler) Start() {
	s.logger.Info("Starting message scheduler")
	s.scheduler.StartAsync()
}

// Stop останавливает планировщик
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping message scheduler")
	s.cancel()
	s.scheduler.Stop()
	s.logger.Info("Message scheduler stopped")
}

// Schedule планирует отправку сообщения на указанное время
func (s *Scheduler) Schedule(msg *domain.OutboundMessage) (*domain.ScheduledMessage, error) {
	if msg.ScheduledFor == nil {
		return nil, ErrNoScheduleTime
	}
	if msg.ScheduledFor.Before(time.Now()) {
		return nil, fmt.Errorf("%w: %s", ErrScheduleInPast, msg.ScheduledFor.Format(time.RFC3339))
	}

	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()

	job, err := s.scheduler.Every(1).StartAt(*msg.ScheduledFor).LimitRunsTo(1).Do(
		s.sendScheduled,
		id,
		msg,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule message %s: %w", id, err)
	}

	s.jobs[id] = job
	s.updateGauge()
	s.logger.Info("Scheduled message %s for %s (chat %d)", id, msg.ScheduledFor.Format(time.RFC3339), msg.ChatID)

	return &domain.ScheduledMessage{
		ID:      id,
		Message: msg,
		SendAt:  *msg.ScheduledFor,
	}, nil
}

// Cancel отменяет запланированную отправку
func (s *Scheduler) Cancel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, exists := s.jobs[id]
	if !exists {
		return ErrNotScheduled
	}

	s.scheduler.RemoveByReference(job)
	delete(s.jobs, id)
	s.updateGauge()

	s.logger.Info("Cancelled scheduled message %s", id)
	return nil
}

// Count возвращает количество ожидающих задач
func (s *Scheduler) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

// sendScheduled отправляет отложенное сообщение
// Вызывается планировщиком gocron в указанное время
func (s *Scheduler) sendScheduled(id string, msg *domain.OutboundMessage) {
	s.logger.Info("Executing scheduled message %s (chat %d)", id, msg.ChatID)

	ctx, cancel := context.WithTimeout(s.ctx, sendTimeout)
	defer cancel()

	if _, err := s.sender.Send(ctx, msg); err != nil {
		s.logger.Error("Failed to send scheduled message %s: %v", id, err)
	} else {
		s.logger.Info("Successfully sent scheduled message %s", id)
	}

	s.removeJob(id)
}

// removeJob удаляет задачу из внутреннего реестра (не из gocron)
func (s *Scheduler) removeJob(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.jobs, id)
	s.updateGauge()
}

// updateGauge обновляет метрику количества задач; вызывать под mu
func (s *Scheduler) updateGauge() {
	if s.metrics != nil {
		s.metrics.SetScheduledMessages(len(s.jobs))
	}
}
