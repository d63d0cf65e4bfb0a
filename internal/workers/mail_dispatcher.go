// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/mailer"
	"github.com/rs/zerolog"
)

const defaultDrainTimeout = 5 * time.Second

type mailJob struct {
	to      string
	subject string
	html    string
	log     *logger.Logger
}

// MailDispatcher queues outgoing emails and delivers them in the background.
//
// It satisfies [mailer.Sender]: Send enqueues and returns immediately, so
// callers never wait on the relay. It is also a [Worker]: Run starts the
// delivery goroutines and, once ctx is cancelled, drains what is already
// queued for at most drainTimeout.
type MailDispatcher struct {
	sender       mailer.Sender
	queue        chan mailJob
	workers      int
	drainTimeout time.Duration

	mu     sync.RWMutex
	closed bool

	logger *logger.Logger
}

func NewMailDispatcher(sender mailer.Sender, cfg config.Workers, log *logger.Logger) *MailDispatcher {
	size := max(cfg.MailQueueSize, 1)
	workers := max(cfg.MailWorkers, 1)

	return &MailDispatcher{
		sender:       sender,
		queue:        make(chan mailJob, size),
		workers:      workers,
		drainTimeout: defaultDrainTimeout,
		logger:       log.WithComponent("mail-dispatcher"),
	}
}

// Send enqueues a message. It never blocks: a full queue yields
// [ErrMailQueueFull], a stopped dispatcher [ErrDispatcherClosed].
func (d *MailDispatcher) Send(ctx context.Context, to, subject, html string) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrDispatcherClosed
	}

	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled {
		log = d.logger
	}

	job := mailJob{to: to, subject: subject, html: html, log: log}
	select {
	case d.queue <- job:
		return nil
	default:
		return ErrMailQueueFull
	}
}

func (d *MailDispatcher) Run(ctx context.Context) {
	d.logger.Info().Int("workers", d.workers).Int("queue_size", cap(d.queue)).Msg("mail dispatcher started")

	deliveryCtx, cancelDelivery := context.WithCancel(context.Background())
	defer cancelDelivery()

	var wg sync.WaitGroup
	for range d.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range d.queue {
				d.deliver(deliveryCtx, job)
			}
		}()
	}

	<-ctx.Done()

	d.mu.Lock()
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info().Msg("mail dispatcher drained")
	case <-time.After(d.drainTimeout):
		d.logger.Warn().Int("pending", len(d.queue)).Msg("mail drain deadline exceeded, dropping pending emails")
		cancelDelivery()
		<-done
	}
}

func (d *MailDispatcher) deliver(ctx context.Context, job mailJob) {
	if err := ctx.Err(); err != nil {
		job.log.Warn().Str("to", job.to).Msg("email dropped on shutdown")
		return
	}

	start := time.Now()
	if err := d.sender.Send(ctx, job.to, job.subject, job.html); err != nil {
		job.log.Warn().Err(err).Str("to", job.to).Str("subject", job.subject).Msg("email delivery failed")
		return
	}

	job.log.Debug().
		Str("to", job.to).
		Str("subject", job.subject).
		Dur("duration", time.Since(start)).
		Msg("email delivered")
}
