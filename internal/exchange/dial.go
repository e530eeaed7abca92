package exchange

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
)

const (
	handshakeTimeout = 10 * time.Second
	readDeadline     = 30 * time.Second
	pingInterval     = 15 * time.Second
	maxMessageSize   = 1 << 20
)

// wsConn wraps a gorilla connection so Close also stops the ping loop.
type wsConn struct {
	*websocket.Conn
	stopPing context.CancelFunc
}

func (c *wsConn) Close() error {
	c.stopPing()
	return c.Conn.Close()
}

// gorillaDial opens a live websocket connection with the read-limit and
// ping/pong keepalive discipline the venue expects.
func gorillaDial(ctx context.Context, url string) (Conn, error) {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readDeadline))
	})

	pingCtx, pingCancel := context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-pingCtx.Done():
				return
			}
		}
	}()

	return &wsConn{Conn: conn, stopPing: pingCancel}, nil
}
