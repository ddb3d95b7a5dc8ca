// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-micro-commerce/internal/adapter"
	"github.com/MKhiriev/go-micro-commerce/internal/config"
	"github.com/MKhiriev/go-micro-commerce/internal/logger"
	"github.com/MKhiriev/go-micro-commerce/internal/metrics"
	"github.com/MKhiriev/go-micro-commerce/models"
)

const defaultDrainTimeout = 5 * time.Second

// NotificationWorker delivers notifications through a NotificationAdapter
// from a bounded queue, one at a time. Producers never block: Enqueue drops
// the event when the queue is full.
type NotificationWorker struct {
	adapter adapter.NotificationAdapter
	queue   chan models.Notification

	// drainTimeout bounds delivery of events still queued at shutdown.
	drainTimeout time.Duration

	metrics *metrics.Metrics
	logger  *logger.Logger

	wg sync.WaitGroup
}

// NewNotificationWorker returns a stopped worker with a queue of
// cfg.NotificationQueueSize events. m may be nil.
func NewNotificationWorker(notificationAdapter adapter.NotificationAdapter, cfg config.Workers, m *metrics.Metrics, logger *logger.Logger) *NotificationWorker {
	size := cfg.NotificationQueueSize
	if size < 1 {
		size = 1
	}

	return &NotificationWorker{
		adapter:      notificationAdapter,
		queue:        make(chan models.Notification, size),
		drainTimeout: defaultDrainTimeout,
		metrics:      m,
		logger:       logger,
	}
}

// Enqueue schedules notification for delivery and reports whether it was
// accepted.
func (w *NotificationWorker) Enqueue(notification models.Notification) bool {
	select {
	case w.queue <- notification:
		return true
	default:
		w.metrics.ObserveNotification(metrics.OutcomeDropped)
		return false
	}
}

// Run starts the delivery loop. When ctx is canceled, events already queued
// are delivered within the drain timeout before the loop exits.
func (w *NotificationWorker) Run(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.logger.Info().Int("queue_size", cap(w.queue)).Msg("notification worker started")

		for {
			select {
			case <-ctx.Done():
				w.drain(context.WithoutCancel(ctx))
				w.logger.Info().Msg("notification worker stopped")
				return
			case notification := <-w.queue:
				if ctx.Err() != nil {
					w.drain(context.WithoutCancel(ctx), notification)
					w.logger.Info().Msg("notification worker stopped")
					return
				}
				w.deliver(ctx, notification)
			}
		}
	}()
}

func (w *NotificationWorker) Wait() {
	w.wg.Wait()
}

func (w *NotificationWorker) drain(ctx context.Context, pending ...models.Notification) {
	ctx, cancel := context.WithTimeout(ctx, w.drainTimeout)
	defer cancel()

	for _, notification := range pending {
		w.deliver(ctx, notification)
	}
	for {
		select {
		case notification := <-w.queue:
			w.deliver(ctx, notification)
		default:
			return
		}
	}
}

func (w *NotificationWorker) deliver(ctx context.Context, notification models.Notification) {
	if err := w.adapter.SendNotification(ctx, notification); err != nil {
		w.metrics.ObserveNotification(metrics.OutcomeFailed)
		w.logger.Warn().Err(err).
			Str("type", string(notification.Type)).
			Msg("notification delivery failed")
		return
	}
	w.metrics.ObserveNotification(metrics.OutcomeDelivered)
}
