package webchat

import (
	"net/http"
	"time"

	"golang.org/x/net/websocket"
)

// HandleWebSocket upgrades to WebSocket and drives the conversation over it.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, r)
	}).ServeHTTP(w, r)
}

func (h *Handler) serveWS(conn *websocket.Conn, r *http.Request) {
	id, s := h.getOrCreate(r.URL.Query().Get("session"), r.URL.Query().Get("lang"))

	// Session id first, then the current state so a reconnecting widget
	// repaints without a separate history call.
	_ = websocket.JSON.Send(conn, OutboundFrame{Type: "session", SessionID: id})

	snap := s.engine.Snapshot()
	frame := updateFrame(snap)
	frame.SessionID = id
	_ = websocket.JSON.Send(conn, frame)

	h.logger.Info("webchat: connection opened", "session_id", id)

	for {
		var ev InboundEvent
		if err := websocket.JSON.Receive(conn, &ev); err != nil {
			h.logger.Debug("webchat: connection closed", "session_id", id, "error", err)
			return
		}

		// Every inbound event, pings included, counts as activity for the
		// idle janitor.
		s.touch(time.Now())

		if ev.Type == EventPing {
			_ = websocket.JSON.Send(conn, OutboundFrame{Type: "pong"})
			continue
		}

		upd, err := h.dispatch(r.Context(), s, ev)
		if err != nil {
			_ = websocket.JSON.Send(conn, OutboundFrame{
				Type:  "error",
				Error: localizeError(s.engine, err),
			})
			continue
		}

		out := updateFrame(upd)
		_ = websocket.JSON.Send(conn, out)
	}
}
