package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/breakout/core"
	"github.com/lixenwraith/breakout/physics"
)

// handleWS streams a snapshot on connect and then whenever a new one is published, capped at BroadcastHz
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("spectator: upgrade error: %v", err)
		return
	}
	defer conn.Close()

	s.viewers.Add(1)
	defer s.viewers.Add(-1)

	// Spectators only listen; the read loop exists to notice the peer closing
	closed := make(chan struct{})
	core.Go(func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})

	ticker := time.NewTicker(time.Second / time.Duration(s.opts.BroadcastHz))
	defer ticker.Stop()

	var last *physics.Snapshot
	for {
		if snap := s.src.Snapshot(); snap != last {
			if err := s.write(conn, snap); err != nil {
				return
			}
			last = snap
		}

		select {
		case <-ticker.C:
		case <-closed:
			return
		case <-s.quit:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(s.opts.WriteWait))
			return
		}
	}
}

func (s *Server) write(conn *websocket.Conn, snap *physics.Snapshot) error {
	if err := conn.SetWriteDeadline(time.Now().Add(s.opts.WriteWait)); err != nil {
		return err
	}
	return conn.WriteJSON(snap)
}
