package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	maxMsgSize = 16 * 1024
	sendBuffer = 64
)

// Client pumps messages between one websocket and its session.
type Client struct {
	session *Session
	conn    *websocket.Conn
	send    chan []byte
	log     *slog.Logger
}

// NewClient binds conn to s.
func NewClient(s *Session, conn *websocket.Conn, log *slog.Logger) *Client {
	return &Client{
		session: s,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		log:     log.With("session", s.ID),
	}
}

// ReadPump decodes client messages and hands them to the session until
// the connection closes or ctx is done. It closes the send channel on
// return, which stops WritePump.
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		close(c.send)
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.Send(c.session.Welcome()...)

	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return
			}
			c.log.Debug("read error", "error", err)
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.log.Warn("invalid message", "error", err)
			c.Send(Reply{Type: TypeError, Error: "invalid message: " + err.Error()})
			continue
		}
		c.Send(c.session.Handle(msg)...)
	}
}

// WritePump writes queued replies and keeps the connection alive with
// pings.
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				return
			}

			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Write(writeCtx, websocket.MessageText, message)
			cancel()
			if err != nil {
				c.log.Debug("write error", "error", err)
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

// Send queues replies for the client. Replies are dropped when the
// client is not keeping up.
func (c *Client) Send(replies ...Reply) {
	for _, r := range replies {
		data, err := json.Marshal(r)
		if err != nil {
			c.log.Error("marshal reply", "error", err)
			continue
		}
		select {
		case c.send <- data:
		default:
			c.log.Warn("send buffer full, dropping reply", "type", r.Type)
		}
	}
}

// Handler upgrades requests to websockets and runs one new session per
// connection. originPatterns is passed to websocket.AcceptOptions.
func Handler(hub *Hub, originPatterns []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: originPatterns,
		})
		if err != nil {
			hub.log.Error("websocket accept", "error", err)
			return
		}

		s := hub.Create()
		defer hub.Remove(s.ID)

		client := NewClient(s, conn, hub.log)
		ctx := r.Context()
		go client.WritePump(ctx)
		client.ReadPump(ctx)
	}
}
