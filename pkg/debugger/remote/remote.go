// Package remote serves a debugger session over a websocket. Every text
// message received is executed as a single debugger command, and answered
// with a JSON encoded Reply.
package remote

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gbcore/pkg/debugger"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Reply is sent for every command received.
type Reply struct {
	Output string `json:"output"`
	PC     uint16 `json:"pc"`
	Error  string `json:"error,omitempty"`
	Quit   bool   `json:"quit,omitempty"`
}

// Server is an http.Handler upgrading every request to a websocket
// debugger session. All sessions share the same machine, and their
// commands are executed one at a time.
type Server struct {
	log.Logger

	mu       sync.Mutex
	machine  debugger.Machine
	debugger *debugger.Debugger
}

// NewServer returns a Server debugging m.
func NewServer(m debugger.Machine, logger log.Logger) *Server {
	return &Server{
		Logger:   logger,
		machine:  m,
		debugger: debugger.New(m),
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// upgrade the connection to a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	entry := s.WithField("remote", r.RemoteAddr)
	if tcp, ok := conn.UnderlyingConn().(*net.TCPConn); ok {
		if rtt, err := roundTrip(tcp); err == nil {
			entry = entry.WithField("rtt", rtt)
		}
	}
	entry.Info("debugger client connected")
	defer entry.Info("debugger client disconnected")

	for {
		kind, message, err := conn.ReadMessage()
		if err != nil {
			return // connection closed
		}
		if kind != websocket.TextMessage {
			continue
		}

		reply := s.exec(string(message))
		b, err := json.Marshal(reply)
		if err != nil {
			entry.WithError(err).Error("encoding reply")
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
			return
		}
		if reply.Quit {
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// exec runs a single command. Machine errors are reported in the reply
// and never end the session.
func (s *Server) exec(line string) Reply {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.debugger.Exec(line)
	reply := Reply{Output: out, PC: s.machine.Snapshot().PC}
	switch {
	case errors.Is(err, debugger.ErrQuit):
		reply.Quit = true
	case err != nil:
		reply.Error = err.Error()
		s.WithError(err).Debug("command failed")
	}
	return reply
}
