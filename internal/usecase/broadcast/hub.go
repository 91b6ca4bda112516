// Package broadcast implements the live-news fan-out hub. One goroutine
// owns the set of open connections; registration, removal, and publishes
// are messages on its channels, so the set is never mutated concurrently
// and no lock is needed.
package broadcast

import (
	"context"
	"log/slog"
	"time"

	"globalnews/internal/domain/entity"
)

// Event names on the realtime wire.
const (
	// EventNewsPosted is emitted to every open connection after each
	// successful publish, carrying the full article.
	EventNewsPosted = "newsPosted"
	// EventLiveNews carries a single-element article list. It is emitted
	// on connect (point-in-time snapshot of the most recent live article)
	// and after any publish of a live article.
	EventLiveNews = "liveNews"
	// EventNewNews is the inbound publish event accepted from connections.
	EventNewNews = "newNews"
)

// Event is one message delivered to a viewer.
type Event struct {
	Name string
	Data any
}

// sendBuffer is the per-connection outbound queue length. A connection
// that cannot drain this many events is considered dead and dropped.
const sendBuffer = 16

// snapshotTimeout bounds the on-connect live query so a slow store cannot
// pin snapshot goroutines forever.
const snapshotTimeout = 10 * time.Second

// LiveSource returns the most recent live article, or (nil, nil) when the
// live set is empty.
type LiveSource func(ctx context.Context) (*entity.Article, error)

// Conn is one connected viewer. It is created by the hub and handed to the
// transport layer, which drains Events until the channel closes.
type Conn struct {
	send chan Event
}

// Events is the outbound event stream. It is closed exactly once, when the
// connection leaves the fan-out set.
func (c *Conn) Events() <-chan Event {
	return c.send
}

type snapshotResult struct {
	conn    *Conn
	article *entity.Article
}

// Hub owns the open-connection set and performs fan-out on publish.
type Hub struct {
	live   LiveSource
	logger *slog.Logger

	register   chan *Conn
	unregister chan *Conn
	publish    chan *entity.Article
	snapshots  chan snapshotResult
	done       chan struct{}
}

// NewHub creates a hub. live may be nil, in which case newly connected
// viewers receive no snapshot.
func NewHub(live LiveSource, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		live:       live,
		logger:     logger,
		register:   make(chan *Conn),
		unregister: make(chan *Conn),
		publish:    make(chan *entity.Article, 64),
		snapshots:  make(chan snapshotResult),
		done:       make(chan struct{}),
	}
}

// Connect creates a new connection and adds it to the fan-out set. The
// live snapshot is fetched asynchronously; the new connection is never
// blocked waiting for it.
func (h *Hub) Connect() *Conn {
	c := &Conn{send: make(chan Event, sendBuffer)}
	select {
	case h.register <- c:
	case <-h.done:
		// Hub already stopped; hand back a closed connection so the
		// transport exits immediately.
		close(c.send)
	}
	return c
}

// Disconnect removes the connection from the fan-out set. Disconnecting a
// connection that already left the set is a no-op.
func (h *Hub) Disconnect(c *Conn) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// PublishArticle fans an already-persisted article out to every open
// connection: a newsPosted event always, followed by a liveNews event when
// the article is flagged live. Delivery is best-effort per connection.
// PublishArticle satisfies the news service's Broadcaster contract.
func (h *Hub) PublishArticle(article *entity.Article) {
	select {
	case h.publish <- article:
	case <-h.done:
	}
}

// Run processes hub messages until ctx is canceled. All connection-set
// mutation happens on this goroutine.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	conns := make(map[*Conn]struct{})

	drop := func(c *Conn) {
		if _, ok := conns[c]; !ok {
			return
		}
		delete(conns, c)
		close(c.send)
		connectionsOpen.Dec()
	}

	// Hub-goroutine-only. Returns false when the connection's buffer is
	// full, which marks it dead: delivery is best-effort and one stuck
	// viewer must not hold up the rest.
	deliver := func(c *Conn, ev Event) bool {
		select {
		case c.send <- ev:
			eventsDelivered.WithLabelValues(ev.Name).Inc()
			return true
		default:
			eventsDropped.WithLabelValues(ev.Name).Inc()
			return false
		}
	}

	for {
		select {
		case <-ctx.Done():
			for c := range conns {
				drop(c)
			}
			return

		case c := <-h.register:
			conns[c] = struct{}{}
			connectionsOpen.Inc()
			if h.live != nil {
				go h.fetchSnapshot(ctx, c)
			}

		case c := <-h.unregister:
			drop(c)

		case res := <-h.snapshots:
			// The viewer may have disconnected while the query ran.
			if _, ok := conns[res.conn]; !ok || res.article == nil {
				continue
			}
			if !deliver(res.conn, Event{Name: EventLiveNews, Data: []*entity.Article{res.article}}) {
				drop(res.conn)
			}

		case article := <-h.publish:
			events := []Event{{Name: EventNewsPosted, Data: article}}
			if article.IsLive {
				events = append(events, Event{Name: EventLiveNews, Data: []*entity.Article{article}})
			}
			for c := range conns {
				for _, ev := range events {
					if !deliver(c, ev) {
						drop(c)
						break
					}
				}
			}
		}
	}
}

// fetchSnapshot queries the live set and reports back to the hub loop.
// A query failure is logged and the viewer simply receives nothing, the
// same as an empty live set.
func (h *Hub) fetchSnapshot(ctx context.Context, c *Conn) {
	qctx, cancel := context.WithTimeout(ctx, snapshotTimeout)
	defer cancel()

	article, err := h.live(qctx)
	if err != nil {
		h.logger.Error("live snapshot query failed", slog.Any("error", err))
		article = nil
	}

	select {
	case h.snapshots <- snapshotResult{conn: c, article: article}:
	case <-ctx.Done():
	}
}
