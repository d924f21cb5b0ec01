package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"tickettock/internal/infra"
	"tickettock/internal/pkg/config"
	"tickettock/internal/pkg/errs"
	"tickettock/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	defaultBufferSize     = 1024
	defaultDialTimeout    = 3 * time.Second
	defaultPublishTimeout = 2 * time.Second
)

var (
	errBufferFull       = errs.New("event buffer full")
	errPublisherStopped = errs.New("publisher stopped")
)

// Publisher sends seat events to a durable queue on the default exchange.
// Events are buffered and delivered by a single worker, so a slow or dead
// broker never holds up the request path. The worker owns the connection
// and redials after a failed publish.
type Publisher struct {
	url            string
	queue          string
	dialTimeout    time.Duration
	publishTimeout time.Duration

	events  chan amqp.Publishing
	stop    chan struct{}
	done    chan struct{}
	started atomic.Bool
	once    sync.Once

	// owned by the worker
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewPublisher(cfg config.EventsConfig) *Publisher {
	p := &Publisher{
		url:            cfg.AMQPURL,
		queue:          cfg.Queue,
		dialTimeout:    cfg.DialTimeout,
		publishTimeout: cfg.PublishTimeout,
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}
	if p.dialTimeout <= 0 {
		p.dialTimeout = defaultDialTimeout
	}
	if p.publishTimeout <= 0 {
		p.publishTimeout = defaultPublishTimeout
	}

	size := cfg.BufferSize
	if size <= 0 {
		size = defaultBufferSize
	}
	p.events = make(chan amqp.Publishing, size)
	return p
}

// Start launches the delivery worker. Calling it more than once is a no-op.
func (p *Publisher) Start() {
	if p.started.CompareAndSwap(false, true) {
		go p.run()
	}
}

// PublishSeatReserved enqueues the event and returns immediately. A full
// buffer or a stopped publisher drops the event with a BROKER_FAILURE.
func (p *Publisher) PublishSeatReserved(_ context.Context, evt commands.SeatReservedEvent) error {
	body, err := encodeEvent(evt)
	if err != nil {
		return infra.WrapRepoErr("failed to encode seat reserved event", err, infra.KindBrokerFailure)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    evt.EventID,
		Timestamp:    evt.ReservedAt.UTC(),
		Type:         "seat.reserved",
		Body:         body,
	}

	select {
	case <-p.stop:
		return infra.WrapRepoErr("seat reserved event dropped", errPublisherStopped, infra.KindBrokerFailure)
	default:
	}

	select {
	case p.events <- msg:
		return nil
	default:
		return infra.WrapRepoErr("seat reserved event dropped", errBufferFull, infra.KindBrokerFailure)
	}
}

// Close stops the worker after it flushes what is already buffered, or
// gives up when ctx ends first.
func (p *Publisher) Close(ctx context.Context) error {
	p.once.Do(func() { close(p.stop) })
	if !p.started.Load() {
		return nil
	}

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Publisher) run() {
	defer close(p.done)
	defer p.closeConn()

	for {
		select {
		case msg := <-p.events:
			p.deliver(msg)
		case <-p.stop:
			p.flush()
			return
		}
	}
}

// flush delivers buffered events until the first failure; the rest are dropped.
func (p *Publisher) flush() {
	for {
		select {
		case msg := <-p.events:
			if err := p.send(msg); err != nil {
				slog.Warn("broker unavailable on shutdown, dropping buffered events",
					"dropped", len(p.events)+1, "error", err)
				return
			}
		default:
			return
		}
	}
}

func (p *Publisher) deliver(msg amqp.Publishing) {
	if err := p.send(msg); err != nil {
		slog.Warn("seat reserved event dropped", "event_id", msg.MessageId, "error", err)
	}
}

func (p *Publisher) send(msg amqp.Publishing) error {
	ch, err := p.channel()
	if err != nil {
		return infra.WrapRepoErr("failed to open broker channel", err, infra.KindBrokerFailure)
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.publishTimeout)
	defer cancel()

	err = ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		msg,
	)
	if err != nil {
		p.closeConn()
		return infra.WrapRepoErr("failed to publish seat reserved event", err, infra.KindBrokerFailure)
	}
	return nil
}

func (p *Publisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.closeConn()

	// DefaultDial bounds both the TCP connect and the AMQP handshake.
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(p.dialTimeout),
	})
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	p.conn = conn
	p.ch = ch
	slog.Info("broker channel opened", "queue", p.queue)
	return ch, nil
}

func (p *Publisher) closeConn() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func encodeEvent(evt commands.SeatReservedEvent) ([]byte, error) {
	return json.Marshal(evt)
}

// NoopPublisher is used when events are disabled.
type NoopPublisher struct{}

func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

func (NoopPublisher) PublishSeatReserved(_ context.Context, _ commands.SeatReservedEvent) error {
	return nil
}
