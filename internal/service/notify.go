package service

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"marketofmanycards/market-api/internal/model"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

var (
	ErrNotifyQueueFull   = errors.New("notification queue full")
	ErrNotifyQueueClosed = errors.New("notification queue closed")
)

// Notifier tells a seller that one of their listings went live.
type Notifier interface {
	ListingCreated(seller *model.User, kind, title string, id uint) error
}

type MailNotifier struct {
	from   string
	domain string
	dialer *gomail.Dialer
}

func NewMailNotifier(host string, port int, from, password, domain string) *MailNotifier {
	return &MailNotifier{
		from:   from,
		domain: domain,
		dialer: gomail.NewDialer(host, port, from, password),
	}
}

func (n *MailNotifier) ListingCreated(seller *model.User, kind, title string, id uint) error {
	if seller.Email == n.from {
		return errors.New("invalid email address")
	}

	m := n.message(seller, kind, title, id)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send %s notification, %w", kind, err)
	}

	return nil
}

func (n *MailNotifier) message(seller *model.User, kind, title string, id uint) *gomail.Message {
	link := fmt.Sprintf("https://%v/api/%ss/%v", n.domain, kind, id)

	name := seller.FullName
	if name == "" {
		name = "there"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", seller.Email)
	m.SetHeader("Subject", fmt.Sprintf("Your %s \"%s\" is live", kind, title))
	m.SetBody("text/html", fmt.Sprintf("Hi %v,<br><br>Your %v <a href='%v'>%v</a> was listed successfully.", name, kind, link, title))

	return m
}

type notification struct {
	seller *model.User
	kind   string
	title  string
	id     uint
}

// NotifyQueue hands notifications to a fixed pool of workers so sending mail
// never holds up a request. When the queue is full the notification is
// dropped.
type NotifyQueue struct {
	next    Notifier
	jobs    chan notification
	workers int
	pending atomic.Int32
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewNotifyQueue(next Notifier, workers, size int) *NotifyQueue {
	if workers <= 0 {
		workers = 1
	}

	zap.L().Debug("Initializing notification queue", zap.Int("workers", workers), zap.Int("size", size))

	return &NotifyQueue{
		next:    next,
		jobs:    make(chan notification, size),
		workers: workers,
	}
}

func (q *NotifyQueue) StartWorkerPool() {
	for range q.workers {
		q.wg.Add(1)
		go q.worker()
	}
}

func (q *NotifyQueue) worker() {
	defer q.wg.Done()

	for n := range q.jobs {
		err := q.next.ListingCreated(n.seller, n.kind, n.title, n.id)

		q.pending.Add(-1)

		if err != nil {
			zap.L().Error("Notification finished with an error",
				zap.Uint("userID", n.seller.ID),
				zap.String("kind", n.kind),
				zap.Uint("listingID", n.id),
				zap.Error(err))
		}
	}
}

// ListingCreated enqueues the notification and returns right away.
func (q *NotifyQueue) ListingCreated(seller *model.User, kind, title string, id uint) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrNotifyQueueClosed
	}

	q.pending.Add(1)

	select {
	case q.jobs <- notification{seller: seller, kind: kind, title: title, id: id}:
		zap.L().Debug("New notification enqueued", zap.Int32("enqueued", q.pending.Load()))
		return nil
	default:
		q.pending.Add(-1)
		return ErrNotifyQueueFull
	}
}

// Close stops accepting work and waits for the queued notifications to go
// out. Notifications sent after Close are rejected with ErrNotifyQueueClosed.
func (q *NotifyQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	q.wg.Wait()
}

// Pending is the number of notifications enqueued but not yet handed off.
func (q *NotifyQueue) Pending() int {
	return int(q.pending.Load())
}
