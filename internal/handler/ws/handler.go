// Package ws is the WebSocket transport for the live-news channel. Each
// connection gets a read pump (inbound newNews publishes) and a write pump
// draining the hub's event stream.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"globalnews/internal/domain/entity"
	"globalnews/internal/usecase/broadcast"
	newsUC "globalnews/internal/usecase/news"
)

const (
	// writeWait bounds a single frame write.
	writeWait = 10 * time.Second
	// pongWait is how long a connection may stay silent before it is
	// considered dead; pings go out at pingPeriod to keep it alive.
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	// maxMessageSize caps inbound frames.
	maxMessageSize = 8 << 10
	// publishTimeout bounds the store write for an inbound publish.
	publishTimeout = 10 * time.Second
)

// frame is the JSON envelope for every message on the socket.
type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// outFrame is the outbound counterpart; Data is marshaled in place.
type outFrame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// articleWire is the article shape on the socket, matching the REST DTO.
type articleWire struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Category     string    `json:"category"`
	Region       string    `json:"region"`
	Author       string    `json:"author"`
	IsLive       bool      `json:"isLive"`
	BreakingNews bool      `json:"breaking_news"`
	PopularNews  bool      `json:"popular_news"`
	Timestamp    time.Time `json:"timestamp"`
}

func toWire(a *entity.Article) articleWire {
	return articleWire{
		ID:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		Image:        a.Image,
		Category:     a.Category,
		Region:       a.Region,
		Author:       a.Author,
		IsLive:       a.IsLive,
		BreakingNews: a.BreakingNews,
		PopularNews:  a.PopularNews,
		Timestamp:    a.Timestamp,
	}
}

// wireData converts hub event payloads to their wire shape.
func wireData(data any) any {
	switch v := data.(type) {
	case *entity.Article:
		return toWire(v)
	case []*entity.Article:
		out := make([]articleWire, 0, len(v))
		for _, a := range v {
			out = append(out, toWire(a))
		}
		return out
	default:
		return data
	}
}

// Handler upgrades HTTP requests to WebSocket connections attached to the
// broadcast hub.
type Handler struct {
	Hub    *broadcast.Hub
	News   *newsUC.Service
	Logger *slog.Logger

	upgrader websocket.Upgrader
}

// NewHandler builds the live endpoint handler. Origin checks are left to
// the CORS layer; the upgrader accepts any origin.
func NewHandler(hub *broadcast.Hub, news *newsUC.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Hub:    hub,
		News:   news,
		Logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		h.Logger.Warn("websocket upgrade failed",
			slog.String("remote_addr", r.RemoteAddr),
			slog.Any("error", err))
		return
	}

	conn := h.Hub.Connect()
	h.Logger.Info("viewer connected", slog.String("remote_addr", r.RemoteAddr))

	go h.writePump(ws, conn)
	h.readPump(ws, conn, r.RemoteAddr)
}

// readPump consumes inbound frames until the connection dies. A newNews
// frame publishes exactly like POST /news: persist first, fan out on
// success. Unknown events are ignored.
func (h *Handler) readPump(ws *websocket.Conn, conn *broadcast.Conn, remoteAddr string) {
	defer func() {
		h.Hub.Disconnect(conn)
		_ = ws.Close()
		h.Logger.Info("viewer disconnected", slog.String("remote_addr", remoteAddr))
	}()

	ws.SetReadLimit(maxMessageSize)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var f frame
		if err := ws.ReadJSON(&f); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.Logger.Warn("websocket read failed",
					slog.String("remote_addr", remoteAddr),
					slog.Any("error", err))
			}
			return
		}

		if f.Event != broadcast.EventNewNews {
			continue
		}
		h.handleNewNews(f.Data, remoteAddr)
	}
}

func (h *Handler) handleNewNews(data json.RawMessage, remoteAddr string) {
	var payload struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Image        string `json:"image"`
		Category     string `json:"category"`
		Region       string `json:"region"`
		Author       string `json:"author"`
		IsLive       bool   `json:"isLive"`
		BreakingNews bool   `json:"breaking_news"`
		PopularNews  bool   `json:"popular_news"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		h.Logger.Warn("malformed newNews payload",
			slog.String("remote_addr", remoteAddr),
			slog.Any("error", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if _, err := h.News.Publish(ctx, newsUC.PublishInput{
		Title:        payload.Title,
		Description:  payload.Description,
		Image:        payload.Image,
		Category:     payload.Category,
		Region:       payload.Region,
		Author:       payload.Author,
		IsLive:       payload.IsLive,
		BreakingNews: payload.BreakingNews,
		PopularNews:  payload.PopularNews,
	}); err != nil {
		// Persistence failed: no fan-out happened, the error stays with
		// this publisher.
		h.Logger.Error("inbound publish failed",
			slog.String("remote_addr", remoteAddr),
			slog.Any("error", err))
	}
}

// writePump drains the hub event stream onto the socket and keeps the
// connection alive with pings. It exits when the hub closes the stream or a
// write fails.
func (h *Handler) writePump(ws *websocket.Conn, conn *broadcast.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = ws.Close()
	}()

	for {
		select {
		case ev, ok := <-conn.Events():
			_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := ws.WriteJSON(outFrame{Event: ev.Name, Data: wireData(ev.Data)}); err != nil {
				return
			}

		case <-ticker.C:
			_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
