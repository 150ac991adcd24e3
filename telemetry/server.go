package telemetry

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 1 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  maxMessageSize,
	WriteBufferSize: maxMessageSize,
}

// Server exposes a Hub over HTTP: a health endpoint and a websocket feed
// that streams every published TurnEvent to the connected spectator.
type Server struct {
	hub    *Hub
	logger *log.Logger
}

// NewServer returns a Server streaming events published to hub. logger
// defaults to log.Default() when nil.
func NewServer(hub *Hub, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{hub: hub, logger: logger}
}

// Router builds the mux.Router serving this Server's endpoints.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.serveHealth).Methods(http.MethodGet)
	r.HandleFunc("/turns", s.serveWebsocket).Methods(http.MethodGet)
	return r
}

func (s *Server) serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// serveWebsocket upgrades the connection and pushes every TurnEvent
// published to the hub until the client disconnects. Ping/pong handling
// mirrors a single-client realtime push server: a periodic ping keeps
// intermediaries from closing an idle connection, and a missed pong
// closes it from this side.
func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("telemetry: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	feed := s.hub.Subscribe()
	defer s.hub.Unsubscribe(feed)

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case ev, ok := <-feed:
			if !ok {
				return
			}
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, mustJSON(ev)); err != nil {
				s.logger.Printf("telemetry: write failed: %v", err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func mustJSON(ev TurnEvent) []byte {
	b, err := json.Marshal(ev)
	if err != nil {
		// TurnEvent's fields are all trivially marshalable; a failure here
		// would mean a programming error, not a runtime condition to
		// recover from.
		panic(err)
	}
	return b
}
