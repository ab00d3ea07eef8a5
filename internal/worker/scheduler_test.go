package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TelegramGateway/internal/domain"
	"github.com/m04kA/SMC-TelegramGateway/pkg/ptr"
)

// fakeSender фиксирует отправленные сообщения
type fakeSender struct {
	mu   sync.Mutex
	sent []*domain.OutboundMessage
	done chan struct{}
}

func newFakeSender() *fakeSender {
	return &fakeSender{done: make(chan struct{}, 10)}
}

func (f *fakeSender) Send(ctx context.Context, msg *domain.OutboundMessage) (*domain.SentMessage, error) {
	f.mu.Lock()
	f.sent = append(f.sent, msg)
	f.mu.Unlock()
	f.done <- struct{}{}
	return &domain.SentMessage{MessageID: 1, ChatID: msg.ChatID, SentAt: time.Now()}, nil
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func TestScheduler_RequiresScheduleTime(t *testing.T) {
	s := NewScheduler(newFakeSender(), testLogger{}, nil)

	_, err := s.Schedule(&domain.OutboundMessage{ChatID: 7, Text: "hi"})

	assert.ErrorIs(t, err, ErrNoScheduleTime)
}

func TestScheduler_RejectsPastTime(t *testing.T) {
	s := NewScheduler(newFakeSender(), testLogger{}, nil)

	_, err := s.Schedule(&domain.OutboundMessage{
		ChatID:       7,
		Text:         "hi",
		ScheduledFor: ptr.Ptr(time.Now().Add(-time.Minute)),
	})

	assert.ErrorIs(t, err, ErrScheduleInPast)
}

func TestScheduler_SendsAtScheduledTime(t *testing.T) {
	sender := newFakeSender()
	s := NewScheduler(sender, testLogger{}, nil)
	s.Start()
	defer s.Stop()

	scheduled, err := s.Schedule(&domain.OutboundMessage{
		ChatID:       7,
		Text:         "delayed",
		ScheduledFor: ptr.Ptr(time.Now().Add(300 * time.Millisecond)),
	})
	require.NoError(t, err)
	require.NotEmpty(t, scheduled.ID)
	assert.Equal(t, 1, s.Count())

	select {
	case <-sender.done:
	case <-time.After(5 * time.Second):
		t.Fatal("отложенное сообщение не было отправлено")
	}

	assert.Equal(t, 1, sender.count())
	assert.Equal(t, "delayed", sender.sent[0].Text)

	// Задача удаляется из реестра после выполнения
	require.Eventually(t, func() bool {
		return s.Count() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestScheduler_Cancel(t *testing.T) {
	sender := newFakeSender()
	s := NewScheduler(sender, testLogger{}, nil)
	s.Start()
	defer s.Stop()

	scheduled, err := s.Schedule(&domain.OutboundMessage{
		ChatID:       7,
		Text:         "never sent",
		ScheduledFor: ptr.Ptr(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)

	require.NoError(t, s.Cancel(scheduled.ID))
	assert.Zero(t, s.Count())
	assert.Zero(t, sender.count())
}

func TestScheduler_CancelUnknownID(t *testing.T) {
	s := NewScheduler(newFakeSender(), testLogger{}, nil)

	err := s.Cancel("a3f1f8e0-0000-0000-0000-000000000000")

	assert.ErrorIs(t, err, ErrNotScheduled)
}
