package notify

import (
	"context"
	"sync"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/logger"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/mail"
	"github.com/rs/zerolog"
)

const defaultQueueSize = 64

// Sender delivers a single welcome email.
type Sender interface {
	SendWelcome(to string, data mail.WelcomeData) error
}

// Notifier dispatches credential emails from a background worker so request
// handlers never block on SMTP. Delivery is best effort: a full queue or a
// send failure is logged and dropped.
type Notifier struct {
	sender Sender
	logg   *logger.Logger
	queue  chan job
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

type job struct {
	to   string
	data mail.WelcomeData
}

// New starts the worker goroutine. A nil sender yields a no-op notifier,
// which keeps call sites simple when SMTP is not configured. A nil logger
// is replaced with a disabled one so the worker can always log.
func New(sender Sender, logg *logger.Logger) *Notifier {
	if logg == nil {
		logg = logger.New(logger.Options{Level: zerolog.Disabled})
	}
	n := &Notifier{
		sender: sender,
		logg:   logg,
		queue:  make(chan job, defaultQueueSize),
	}
	if sender != nil {
		n.wg.Add(1)
		go n.run()
	}
	return n
}

func (n *Notifier) run() {
	defer n.wg.Done()
	for j := range n.queue {
		ctx := n.logg.WithField(context.Background(), "recipient", j.to)
		if err := n.sender.SendWelcome(j.to, j.data); err != nil {
			n.logg.Error(ctx, "welcome email delivery failed", err)
			continue
		}
		n.logg.Info(ctx, "welcome email sent")
	}
}

// EnqueueWelcome schedules a welcome email without blocking the caller.
func (n *Notifier) EnqueueWelcome(to string, data mail.WelcomeData) {
	if n.sender == nil || to == "" {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	select {
	case n.queue <- job{to: to, data: data}:
	default:
		n.logg.Warn(n.logg.WithField(context.Background(), "recipient", to),
			"notification queue full, dropping welcome email")
	}
}

// Close stops accepting new work and waits for queued emails to drain.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	n.mu.Unlock()

	close(n.queue)
	n.wg.Wait()
}
