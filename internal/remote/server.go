package remote

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"shapes-demo/internal/commands"
)

const (
	// DefaultPublishInterval limits how often continuous changes (camera, light) are pushed.
	DefaultPublishInterval = 100 * time.Millisecond
	writeTimeout           = 2 * time.Second
	sendBuffer             = 16
)

// Poster accepts commands for the render loop. *commands.Queue satisfies it.
type Poster interface {
	Post(cmd commands.Command) error
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan Message
}

// trySend queues msg for the client's writer and reports false when the client is too slow.
func (c *client) trySend(msg Message) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// Server is the websocket remote control. Clients send command messages, which are posted to
// the render loop, and receive state snapshots published by it.
type Server struct {
	upgrader websocket.Upgrader
	queue    Poster
	names    []string
	log      *log.Logger
	interval time.Duration
	now      func() time.Time

	mu        sync.Mutex
	clients   map[*client]struct{}
	state     State
	hasState  bool
	published time.Time
}

// NewServer returns a server posting commands to queue. names lists the commands advertised to
// clients in the welcome message.
func NewServer(queue Poster, names []string, logger *log.Logger) *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		queue:    queue,
		names:    names,
		log:      logger,
		interval: DefaultPublishInterval,
		now:      time.Now,
		clients:  make(map[*client]struct{}),
	}
}

// SetPublishInterval changes the rate limit for continuous state changes.
func (s *Server) SetPublishInterval(d time.Duration) {
	s.mu.Lock()
	s.interval = d
	s.mu.Unlock()
}

// Clients returns the number of connected clients.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Publish records st and broadcasts it if it changed. Animation or color changes go out at once;
// camera and light movement at most once per publish interval. Safe to call every frame.
func (s *Server) Publish(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasState && s.state.equal(st) {
		return
	}
	discrete := !s.hasState || s.state.Animation != st.Animation || !sameColors(s.state.Colors, st.Colors)
	now := s.now()
	if !discrete && now.Sub(s.published) < s.interval {
		return
	}
	s.state = st
	s.hasState = true
	s.published = now

	msg := Message{Type: TypeState, State: &st}
	for c := range s.clients {
		if !c.trySend(msg) {
			s.log.Warn("remote client lagging, state dropped", "client", c.id)
		}
	}
}

func sameColors(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ServeHTTP upgrades the request to a websocket and serves the client until it disconnects.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan Message, sendBuffer),
	}
	go s.writeLoop(c)

	s.mu.Lock()
	s.clients[c] = struct{}{}
	welcome := Message{Type: TypeWelcome, ClientID: c.id, Commands: s.names}
	if s.hasState {
		st := s.state
		welcome.State = &st
	}
	c.trySend(welcome)
	s.mu.Unlock()
	s.log.Info("remote client connected", "client", c.id, "remote", r.RemoteAddr)

	s.readLoop(c)

	s.mu.Lock()
	delete(s.clients, c)
	close(c.send)
	s.mu.Unlock()
	s.log.Info("remote client disconnected", "client", c.id)
}

func (s *Server) readLoop(c *client) {
	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("remote read", "client", c.id, "err", err)
			}
			return
		}
		c.trySend(s.handle(c, msg))
	}
}

func (s *Server) handle(c *client, msg Message) Message {
	switch msg.Type {
	case TypePing:
		return Message{Type: TypePong}
	case TypeCommand:
		cmd, err := commands.Parse(msg.Command)
		if err != nil {
			return Message{Type: TypeError, Error: err.Error()}
		}
		if err := s.queue.Post(cmd); err != nil {
			return Message{Type: TypeError, Error: err.Error()}
		}
		s.log.Debug("remote command", "client", c.id, "command", cmd)
		return Message{Type: TypeCommand, Command: cmd.String()}
	default:
		return Message{Type: TypeError, Error: "unknown message type: " + msg.Type}
	}
}

func (s *Server) writeLoop(c *client) {
	defer c.conn.Close()
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteJSON(msg); err != nil {
			s.log.Debug("remote write", "client", c.id, "err", err)
			return
		}
	}
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeTimeout))
}

// ListenAndServe serves the websocket on addr at /ws until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", s)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("remote control listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
