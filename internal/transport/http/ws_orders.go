package http

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"slopbowl-service/internal/app"
)

// OrderTicker streams order-count updates to websocket clients.
type OrderTicker struct {
	orders   *app.OrderService
	upgrader websocket.Upgrader
}

func NewOrderTicker(orders *app.OrderService) *OrderTicker {
	return &OrderTicker{
		orders: orders,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// ServeWS upgrades the connection, sends the current count, then pushes every
// subsequent increment until the client goes away. Only this goroutine writes
// to the connection.
func (t *OrderTicker) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := t.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	updates, cancel := t.orders.Subscribe()
	defer cancel()

	if err := conn.WriteJSON(countResponse{Count: t.orders.Count(r.Context())}); err != nil {
		return
	}

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case count, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(countResponse{Count: count}); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
