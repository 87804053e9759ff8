package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpPublisher is the subset of *amqp.Channel the notifier uses.
type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// dialFunc opens a channel with the queue declared.
type dialFunc func(url, queue string) (amqpPublisher, func() error, error)

// AMQPNotifier publishes reset notices as persistent JSON messages to a durable queue.
// The connection is opened lazily and re-opened after a failed publish.
type AMQPNotifier struct {
	url    string
	queue  string
	logger *slog.Logger
	dial   dialFunc
	now    func() time.Time

	mu        sync.Mutex
	channel   amqpPublisher
	closeConn func() error
}

// NewAMQPNotifier is the constructor for AMQPNotifier.
func NewAMQPNotifier(cfg *config.AMQPConfig, logger *slog.Logger) *AMQPNotifier {
	return &AMQPNotifier{
		url:    cfg.URL,
		queue:  cfg.Queue,
		logger: logger,
		dial:   dialAMQP,
		now:    time.Now,
	}
}

func dialAMQP(url, queue string) (amqpPublisher, func() error, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, errors.Wrap(err, "amqp dial failed")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, nil, errors.Wrap(err, "amqp channel open failed")
	}

	// Durable so notices survive broker restarts.
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, nil, errors.Wrap(err, "amqp queue declare failed")
	}

	return ch, conn.Close, nil
}

func (n *AMQPNotifier) NotifyPasswordReset(ctx context.Context, notice service.PasswordResetNotice) error {
	body, err := json.Marshal(notice)
	if err != nil {
		return errors.Wrap(err, "failed to encode reset notice")
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.channel == nil {
		channel, closeConn, err := n.dial(n.url, n.queue)
		if err != nil {
			return err
		}
		n.channel, n.closeConn = channel, closeConn
	}

	err = n.channel.PublishWithContext(ctx, "", n.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    n.now().UTC(),
		Type:         "password_reset",
		Body:         body,
	})
	if err != nil {
		n.resetLocked()

		return errors.Wrap(err, "amqp publish failed")
	}

	n.logger.DebugContext(ctx, "Password reset notice published",
		slog.String("queue", n.queue),
		slog.String("user_id", notice.UserID.String()),
	)

	return nil
}

// Close releases the channel and connection.
func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.resetLocked()

	return nil
}

func (n *AMQPNotifier) resetLocked() {
	if n.channel != nil {
		_ = n.channel.Close()
	}
	if n.closeConn != nil {
		_ = n.closeConn()
	}
	n.channel, n.closeConn = nil, nil
}
