package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to, subject, html string
}

// recordingSender stores every delivered message. When block is set it
// waits for ctx cancellation instead.
type recordingSender struct {
	mu    sync.Mutex
	sent  []sentMail
	err   error
	block bool
}

func (s *recordingSender) Send(ctx context.Context, to, subject, html string) error {
	if s.block {
		<-ctx.Done()
		return ctx.Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentMail{to: to, subject: subject, html: html})
	return s.err
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func newTestDispatcher(sender *recordingSender, size, workers int) *MailDispatcher {
	return NewMailDispatcher(sender, config.Workers{MailQueueSize: size, MailWorkers: workers}, logger.Nop())
}

func runDispatcher(ctx context.Context, d *MailDispatcher) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()
	return done
}

func TestMailDispatcher_DeliversQueuedMail(t *testing.T) {
	sender := &recordingSender{}
	d := newTestDispatcher(sender, 8, 2)

	ctx, cancel := context.WithCancel(context.Background())
	done := runDispatcher(ctx, d)

	require.NoError(t, d.Send(context.Background(), "a@x.com", "hello", "<p>1</p>"))
	require.NoError(t, d.Send(context.Background(), "b@x.com", "hello", "<p>2</p>"))

	assert.Eventually(t, func() bool { return sender.count() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestMailDispatcher_QueueFull(t *testing.T) {
	d := newTestDispatcher(&recordingSender{}, 1, 1)

	require.NoError(t, d.Send(context.Background(), "a@x.com", "s", "b"))
	err := d.Send(context.Background(), "b@x.com", "s", "b")

	assert.ErrorIs(t, err, ErrMailQueueFull)
}

func TestMailDispatcher_DefaultsForNonPositiveConfig(t *testing.T) {
	d := newTestDispatcher(&recordingSender{}, 0, -1)

	assert.Equal(t, 1, cap(d.queue))
	assert.Equal(t, 1, d.workers)
}

func TestMailDispatcher_DrainsOnShutdown(t *testing.T) {
	sender := &recordingSender{}
	d := newTestDispatcher(sender, 8, 1)

	for range 3 {
		require.NoError(t, d.Send(context.Background(), "a@x.com", "s", "b"))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	<-runDispatcher(ctx, d)

	assert.Equal(t, 3, sender.count())
}

func TestMailDispatcher_SendAfterShutdown(t *testing.T) {
	d := newTestDispatcher(&recordingSender{}, 8, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	<-runDispatcher(ctx, d)

	err := d.Send(context.Background(), "a@x.com", "s", "b")
	assert.ErrorIs(t, err, ErrDispatcherClosed)
}

func TestMailDispatcher_DrainDeadline(t *testing.T) {
	d := newTestDispatcher(&recordingSender{block: true}, 8, 1)
	d.drainTimeout = 20 * time.Millisecond

	require.NoError(t, d.Send(context.Background(), "a@x.com", "s", "b"))
	require.NoError(t, d.Send(context.Background(), "b@x.com", "s", "b"))

	ctx, cancel := context.WithCancel(context.Background())
	done := runDispatcher(ctx, d)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop after the drain deadline")
	}
}

func TestMailDispatcher_DeliveryFailureDoesNotStopWorker(t *testing.T) {
	sender := &recordingSender{err: errors.New("relay down")}
	d := newTestDispatcher(sender, 8, 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := runDispatcher(ctx, d)

	require.NoError(t, d.Send(context.Background(), "a@x.com", "s", "b"))
	require.NoError(t, d.Send(context.Background(), "b@x.com", "s", "b"))

	assert.Eventually(t, func() bool { return sender.count() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
