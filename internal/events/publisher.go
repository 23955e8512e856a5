// Package events publishes engagement events to RabbitMQ after the
// corresponding database transaction has committed.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"blog-engagement/internal/domain"
	"blog-engagement/internal/logger"
	"blog-engagement/internal/metrics"
)

const (
	// DefaultPublishTimeout bounds a single broker publish.
	DefaultPublishTimeout = 5 * time.Second

	routingKeyPrefix = "engagement."
)

// Publisher delivers engagement events. Publish never blocks the caller on the
// broker and never fails the request that produced the event.
type Publisher interface {
	Publish(ctx context.Context, event domain.EngagementEvent)
	Close() error
}

// Channel is the subset of *amqp.Channel used for publishing.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitPublisher publishes events from a bounded queue using a worker pool.
type RabbitPublisher struct {
	channel  Channel
	exchange string
	timeout  time.Duration

	mu       sync.RWMutex
	closed   bool
	jobQueue chan publishTask
	wg       sync.WaitGroup
}

type publishTask struct {
	event     domain.EngagementEvent
	requestID string
}

// NewRabbitPublisher creates a RabbitPublisher and starts its workers.
func NewRabbitPublisher(channel Channel, exchange string, workerCount int) *RabbitPublisher {
	if workerCount < 1 {
		workerCount = 1
	}
	p := &RabbitPublisher{
		channel:  channel,
		exchange: exchange,
		timeout:  DefaultPublishTimeout,
		jobQueue: make(chan publishTask, workerCount*64),
	}

	for i := 0; i < workerCount; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return p
}

func (p *RabbitPublisher) worker() {
	defer p.wg.Done()

	for task := range p.jobQueue {
		metrics.EventsQueued.Dec()
		p.send(task)
	}
}

// Publish queues the event. When the queue is full or the publisher is closed
// the event is dropped and counted.
func (p *RabbitPublisher) Publish(ctx context.Context, event domain.EngagementEvent) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		metrics.ObserveEventPublished(string(event.Type), "dropped")
		return
	}

	task := publishTask{event: event, requestID: requestIDFrom(ctx)}
	select {
	case p.jobQueue <- task:
		metrics.EventsQueued.Inc()
	default:
		metrics.ObserveEventPublished(string(event.Type), "dropped")
		logger.WithFields(
			slog.String("type", string(event.Type)),
			slog.String("article_id", event.ArticleID),
			slog.String("request_id", task.requestID),
		).Warn("Event queue full, dropping event")
	}
}

func (p *RabbitPublisher) send(task publishTask) {
	body, err := json.Marshal(task.event)
	if err != nil {
		metrics.ObserveEventPublished(string(task.event.Type), "error")
		logger.Error("Failed to encode event", slog.String("error", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	timer := metrics.NewTimer()
	err = p.channel.PublishWithContext(ctx, p.exchange, RoutingKey(task.event.Type), false, false, amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		Timestamp:     task.event.OccurredAt,
		CorrelationId: task.requestID,
		Type:          string(task.event.Type),
		Body:          body,
	})
	timer.ObserveDuration(metrics.EventPublishDuration)
	if err != nil {
		metrics.ObserveEventPublished(string(task.event.Type), "error")
		logger.WithRequestID(task.requestID).Error("Failed to publish event",
			slog.String("type", string(task.event.Type)),
			slog.String("article_id", task.event.ArticleID),
			slog.String("error", err.Error()),
		)
		return
	}
	metrics.ObserveEventPublished(string(task.event.Type), "success")
}

// Close stops accepting events, publishes what is already queued and waits for
// the workers to exit.
func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.jobQueue)
	p.mu.Unlock()

	p.wg.Wait()
	return nil
}

// RoutingKey returns the routing key an event type is published with.
func RoutingKey(t domain.EventType) string {
	return fmt.Sprintf("%s%s", routingKeyPrefix, t)
}

type requestIDKey struct{}

// WithRequestID stores the request id used as the message correlation id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func requestIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// NopPublisher discards events. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.EngagementEvent) {}
func (NopPublisher) Close() error                                    { return nil }
