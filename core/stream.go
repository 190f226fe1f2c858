package core

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const streamWriteWait = 10 * time.Second

// ViewStream pushes a view's resolved API section to the browser that
// displayed it. The socket is the view's lifetime: when the browser goes
// away the view is unmounted and its fetch cancelled.
type ViewStream struct {
	registry *Registry
	renderer *Renderer
	upgrader websocket.Upgrader

	// OnResolved is called with the settled state after it has been sent.
	OnResolved func(State)
	Debug      bool
}

func NewViewStream(registry *Registry, renderer *Renderer) *ViewStream {
	return &ViewStream{
		registry: registry,
		renderer: renderer,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (s *ViewStream) Handler(w http.ResponseWriter, r *http.Request) {
	view, err := s.registry.Attach(r.URL.Query().Get("id"))
	if err != nil {
		if IsNotFoundError(err) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		http.Error(w, "Server error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer view.Unmount()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	select {
	case <-view.Done():
	case <-gone:
		if s.Debug {
			log.Printf("[stream] client left before view settled")
		}
		return
	}

	state := view.State()
	if PhaseOf(state) == PhasePending {
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderSection(&buf, state); err != nil {
		log.Printf("[stream] %v", err)
		return
	}

	conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	if err := conn.WriteMessage(websocket.TextMessage, buf.Bytes()); err != nil {
		return
	}
	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(streamWriteWait),
	)

	if s.OnResolved != nil {
		s.OnResolved(state)
	}
}
