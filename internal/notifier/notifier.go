package notifier

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/showprojectts/criativoio/internal/logger"
	"github.com/showprojectts/criativoio/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const channelPrefix = "credits:"

// Event is the payload pushed to a subscribed client view whenever the
// user's balance row changes.
type Event struct {
	Balance int64 `json:"balance"`
}

// Publisher is what the ledger-mutating services see. Publishing is
// fire-and-forget: a lost event is reconciled by pull on the next
// client refresh, never by blocking the request.
type Publisher interface {
	Publish(ctx context.Context, userID string, balance int64)
}

// Notifier bridges Redis pub/sub (one channel per user) to in-process
// subscriber channels. Per-user event order follows publish order, but
// publish happens after commit: two requests committing A then B can
// still publish B then A, so a subscriber treating the last event as
// the current balance may briefly show a stale value until it
// reconciles via GET /credits. There is no cross-user ordering and no
// backpressure — a slow subscriber drops events.
type Notifier struct {
	redis *redis.Client

	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

func New(redisAddr string) *Notifier {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: redisAddr}))
}

func NewWithClient(client *redis.Client) *Notifier {
	return &Notifier{
		redis: client,
		subs:  make(map[string]map[chan Event]struct{}),
	}
}

func (n *Notifier) Publish(ctx context.Context, userID string, balance int64) {
	data, err := json.Marshal(Event{Balance: balance})
	if err != nil {
		logger.Errorf("Failed to marshal balance event for %s: %v", userID, err)
		return
	}

	if err := n.redis.Publish(ctx, channelPrefix+userID, data).Err(); err != nil {
		logger.Errorf("Failed to publish balance event for %s: %v", userID, err)
	}
}

// Subscribe registers an in-process channel for one user's events.
// The returned cancel func must be called when the client goes away.
func (n *Notifier) Subscribe(userID string) (<-chan Event, func()) {
	ch := make(chan Event, 8)

	n.mu.Lock()
	if n.subs[userID] == nil {
		n.subs[userID] = make(map[chan Event]struct{})
	}
	n.subs[userID][ch] = struct{}{}
	n.mu.Unlock()

	metrics.RealtimeSubscribers.Inc()

	cancel := func() {
		n.mu.Lock()
		if set, ok := n.subs[userID]; ok {
			if _, ok := set[ch]; ok {
				delete(set, ch)
				metrics.RealtimeSubscribers.Dec()
			}
			if len(set) == 0 {
				delete(n.subs, userID)
			}
		}
		n.mu.Unlock()
	}

	return ch, cancel
}

// Start pumps Redis messages into local subscribers until ctx is done.
func (n *Notifier) Start(ctx context.Context) {
	logger.Info("Realtime notifier started")

	pubsub := n.redis.PSubscribe(ctx, channelPrefix+"*")
	defer pubsub.Close()

	msgs := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			logger.Info("Realtime notifier stopped")
			return
		case msg, ok := <-msgs:
			if !ok {
				logger.Error("Realtime notifier subscription closed")
				return
			}
			n.dispatch(msg.Channel, []byte(msg.Payload))
		}
	}
}

func (n *Notifier) dispatch(channel string, payload []byte) {
	userID := strings.TrimPrefix(channel, channelPrefix)

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		logger.Errorf("Bad balance event payload on %s: %v", channel, err)
		return
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	for ch := range n.subs[userID] {
		select {
		case ch <- event:
		default:
			// Subscriber is not keeping up; it reconciles by pull later.
		}
	}
}

func (n *Notifier) Close() error {
	return n.redis.Close()
}
