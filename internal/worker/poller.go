package worker

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-TelegramGateway/pkg/tgclient"
)

const (
	// commandStart команда приветствия
	commandStart = "/start"

	// pollErrorDelay пауза перед следующим опросом после ошибки,
	// чтобы не крутить горячий цикл при недоступном API
	pollErrorDelay = 3 * time.Second
)

// Poller опрашивает входящие обновления Telegram в режиме long polling
// и передаёт команды /start в use case
type Poller struct {
	client              UpdatesClient
	startMessageUseCase StartMessageUseCase
	logger              Logger
	limit               int
	longPoll            bool

	offset *int64 // Следующий update_id; nil до первого полученного батча
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPoller создает новый poller входящих обновлений
func NewPoller(client UpdatesClient, startMessageUseCase StartMessageUseCase, logger Logger, limit int, longPoll bool) *Poller {
	ctx, cancel := context.WithCancel(context.Background())

	return &Poller{
		client:              client,
		startMessageUseCase: startMessageUseCase,
		logger:              logger,
		limit:               limit,
		longPoll:            longPoll,
		ctx:                 ctx,
		cancel:              cancel,
	}
}

// Start запускает опрос в отдельной goroutine
func (p *Poller) Start() {
	p.logger.Info("Starting Telegram update poller (limit: %d, longpoll: %v)", p.limit, p.longPoll)

	p.wg.Add(1)
	go p.run()
}

// Stop останавливает опрос и дожидается завершения текущей итерации
func (p *Poller) Stop() {
	p.logger.Info("Stopping Telegram update poller")
	p.cancel()
	p.wg.Wait()
	p.logger.Info("Telegram update poller stopped")
}

// run основной цикл опроса
func (p *Poller) run() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		default:
		}

		updates, err := p.client.GetUpdates(p.ctx, tgclient.UpdatesOptions{
			Offset:   p.offset,
			Limit:    p.limit,
			LongPoll: p.longPoll,
		})
		if err != nil {
			if p.ctx.Err() != nil {
				return
			}
			p.logger.Error("Failed to poll updates: %v", err)
			p.sleep(pollErrorDelay)
			continue
		}

		for _, update := range updates {
			p.advanceOffset(update.UpdateID)
			p.handleUpdate(p.ctx, update)
		}
	}
}

// advanceOffset сдвигает offset за обработанное обновление,
// чтобы Telegram не отдавал его повторно
func (p *Poller) advanceOffset(updateID int64) {
	next := updateID + 1
	if p.offset == nil || next > *p.offset {
		p.offset = &next
	}
}

// handleUpdate обрабатывает одно обновление от Telegram
func (p *Poller) handleUpdate(ctx context.Context, update tgclient.Update) {
	// Обрабатываем только текстовые сообщения
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Обрабатываем только команду /start
	if update.Message.Text != commandStart {
		return
	}

	chatID := update.Message.Chat.ID
	p.logger.Info("Received /start command (chat %d)", chatID)

	if err := p.startMessageUseCase.Execute(ctx, update.Message.From, chatID); err != nil {
		p.logger.Error("Failed to handle /start command (chat %d): %v", chatID, err)
		return
	}

	p.logger.Info("Successfully processed /start command (chat %d)", chatID)
}

// sleep ожидает указанное время или отмену контекста
func (p *Poller) sleep(d time.Duration) {
	select {
	case <-time.After(d):
	case <-p.ctx.Done():
	}
}
