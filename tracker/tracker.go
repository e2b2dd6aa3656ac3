package tracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/yeremiapane/restaurant-storefront/client"
	"github.com/yeremiapane/restaurant-storefront/models"
	"github.com/yeremiapane/restaurant-storefront/utils"
)

// OrderFetcher is the slice of the upstream client the tracker needs.
type OrderFetcher interface {
	GetOrder(ctx context.Context, orderNumber string) (*models.Order, error)
}

// Update is one emission on a tracker's stream. Exactly one of Order and
// Err is set, except for the terminal NotFound update which sets both
// NotFound and Err.
type Update struct {
	Order    *models.Order
	Stage    int
	Err      error
	NotFound bool
}

// Service creates trackers that share one upstream client and interval.
type Service struct {
	orders   OrderFetcher
	interval time.Duration
}

func NewService(orders OrderFetcher, interval time.Duration) *Service {
	return &Service{orders: orders, interval: interval}
}

// Tracker polls a single order until the caller stops it or the upstream
// reports the order gone. Each successful poll replaces the snapshot
// wholesale; transient errors are surfaced but do not end the loop.
type Tracker struct {
	orderNumber string
	updates     chan Update
	cancel      context.CancelFunc
	done        chan struct{}

	mu      sync.Mutex
	stopped bool
}

// Track starts polling immediately: one fetch up front, then one per
// interval.
func (s *Service) Track(orderNumber string) *Tracker {
	ctx, cancel := context.WithCancel(context.Background())
	t := &Tracker{
		orderNumber: orderNumber,
		updates:     make(chan Update, 8),
		cancel:      cancel,
		done:        make(chan struct{}),
	}

	go t.run(ctx, s.orders, s.interval)
	return t
}

// Updates streams snapshots. The channel is closed when tracking ends,
// whether by Stop or by a terminal NotFound.
func (t *Tracker) Updates() <-chan Update {
	return t.updates
}

// Stop cancels tracking. Once Stop returns, no further update is
// delivered, even if a fetch was in flight. Safe to call more than once.
func (t *Tracker) Stop() {
	t.mu.Lock()
	if !t.stopped {
		t.stopped = true
		t.cancel()
	}
	t.mu.Unlock()
	<-t.done
}

func (t *Tracker) run(ctx context.Context, orders OrderFetcher, interval time.Duration) {
	defer close(t.done)
	defer close(t.updates)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if terminal := t.poll(ctx, orders); terminal {
		return
	}

	for {
		select {
		case <-ticker.C:
			if terminal := t.poll(ctx, orders); terminal {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// poll performs one fetch and emits the result. It reports true when the
// loop must stop scheduling further fetches.
func (t *Tracker) poll(ctx context.Context, orders OrderFetcher) bool {
	order, err := orders.GetOrder(ctx, t.orderNumber)

	switch {
	case err == nil:
		return !t.emit(Update{Order: order, Stage: order.Status.Stage()})
	case errors.Is(err, client.ErrOrderNotFound):
		utils.ErrorLogger.Printf("Order %s no longer exists upstream", t.orderNumber)
		t.emit(Update{Err: err, NotFound: true})
		return true
	case ctx.Err() != nil:
		// Cancelled mid-fetch; the emit gate below would drop the update
		// anyway, but there is nothing worth reporting.
		return true
	default:
		utils.ErrorLogger.Printf("Polling order %s: %v", t.orderNumber, err)
		return !t.emit(Update{Err: err})
	}
}

// emit delivers an update unless the tracker has been stopped. It reports
// whether the update was accepted. Delivery never blocks: when the caller
// has fallen behind, the oldest buffered update is dropped in favour of
// the newer snapshot.
func (t *Tracker) emit(u Update) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return false
	}

	for {
		select {
		case t.updates <- u:
			return true
		default:
			select {
			case <-t.updates:
			default:
			}
		}
	}
}
