package exchange

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// stubDial fabricates a connection that emits deterministic synthetic trades,
// useful for tests and offline work. The symbol is recovered from the URL the
// session would have dialed.
func stubDial(_ context.Context, url string) (Conn, error) {
	symbol := parseStreamSymbol(url)
	if symbol == "" {
		return nil, fmt.Errorf("stub dial: no symbol in %q", url)
	}
	return &stubConn{symbol: symbol, closed: make(chan struct{})}, nil
}

type stubConn struct {
	symbol string
	seq    int64
	once   sync.Once
	closed chan struct{}
}

func (c *stubConn) ReadMessage() (int, []byte, error) {
	select {
	case <-c.closed:
		return 0, nil, net.ErrClosed
	case <-time.After(50 * time.Millisecond):
	}
	c.seq++
	now := time.Now().UnixMilli()
	// Price walks upward so downstream tiers vary between runs of any length.
	payload := fmt.Sprintf(
		`{"e":"aggTrade","E":%d,"s":%q,"a":%d,"p":"%d","q":"1","f":%d,"l":%d,"T":%d,"m":%v}`,
		now, c.symbol, c.seq, 100+c.seq, c.seq, c.seq, now, c.seq%2 == 0,
	)
	return websocket.TextMessage, []byte(payload), nil
}

func (c *stubConn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}
