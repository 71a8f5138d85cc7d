package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/jsonrpc2"
)

// Session is one connected client. Sessions share the application's
// single state store; there is no per-session state.
type Session struct {
	// ID is assigned at connection time and returned by app.connect.
	ID string
	// RemoteAddr is the client's network address.
	RemoteAddr string
	// ConnectedAt is when the websocket was accepted.
	ConnectedAt time.Time

	conn *jsonrpc2.Conn
}

func newSession(remoteAddr string) *Session {
	return &Session{
		ID:          uuid.NewString(),
		RemoteAddr:  remoteAddr,
		ConnectedAt: time.Now(),
	}
}

func (s *Server) addSession(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	s.byConn[sess.conn] = sess
}

func (s *Server) removeSession(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sess.ID)
	delete(s.byConn, sess.conn)
}

func (s *Server) sessionFor(conn *jsonrpc2.Conn) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byConn[conn]
}

// SessionCount returns the number of connected sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sessions returns a snapshot of the connected sessions.
func (s *Server) Sessions() []*Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	return out
}
