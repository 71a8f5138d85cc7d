// Package server exposes a weft application over HTTP: a static client
// page plus a websocket endpoint speaking JSON-RPC 2.0. All state
// mutation funnels through a single run loop, so application callbacks
// never see concurrent access to the store.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sourcegraph/jsonrpc2"
	websocketjsonrpc2 "github.com/sourcegraph/jsonrpc2/websocket"

	"github.com/go-weft/weft/pkg/dispatch"
	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/state"
	"github.com/go-weft/weft/pkg/ui"
)

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

// Options configure a Server.
type Options struct {
	// Addr is the host:port to bind. Use port 0 for an ephemeral port.
	Addr string
	// AppName is reported to clients in the app.connect reply.
	AppName string
	// Debug enables request logging.
	Debug bool
}

// TreeFunc returns the current serialized component tree. It is always
// invoked on the run loop.
type TreeFunc func() *ui.TreeNode

// Server hosts one application.
type Server struct {
	opts       Options
	store      *state.Store
	dispatcher *dispatch.Dispatcher
	tree       TreeFunc

	tasks chan func()

	mu       sync.Mutex
	sessions map[string]*Session
	byConn   map[*jsonrpc2.Conn]*Session
	frames   map[string]ViewFrameParams
	geometry map[string]ViewGeometryParams

	httpServer *http.Server
	listener   net.Listener

	upgrader websocket.Upgrader
}

// New returns a server for the given store and dispatcher. tree
// provides the component tree sent on connect; it may be nil before
// the UI is built.
func New(opts Options, store *state.Store, dispatcher *dispatch.Dispatcher, tree TreeFunc) *Server {
	return &Server{
		opts:       opts,
		store:      store,
		dispatcher: dispatcher,
		tree:       tree,
		tasks:      make(chan func()),
		sessions:   make(map[string]*Session),
		byConn:     make(map[*jsonrpc2.Conn]*Session),
		frames:     make(map[string]ViewFrameParams),
		geometry:   make(map[string]ViewGeometryParams),
		upgrader: websocket.Upgrader{
			// The page and the websocket are served from the same
			// origin; cross-origin tooling (curl, local dashboards)
			// is allowed for development use.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Handler returns the HTTP handler serving the client page and the
// websocket endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/health", handleHealth)
	return mux
}

// Start binds the listener and begins serving HTTP in the background.
// It returns the bound port, which differs from the requested one when
// Options.Addr asked for port 0.
func (s *Server) Start() (int, error) {
	listener, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return 0, fmt.Errorf("server listen: %w", err)
	}
	s.listener = listener
	s.httpServer = &http.Server{Handler: s.Handler()}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			errors.Report(&errors.WeftError{
				Op:   "server.Serve",
				Kind: errors.KindTransport,
				Err:  err,
			})
		}
	}()

	return listener.Addr().(*net.TCPAddr).Port, nil
}

// Run drives the run loop until ctx is cancelled. Every queued task
// runs to completion, then dirty state is flushed to all sessions as a
// single state.push.
func (s *Server) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case task := <-s.tasks:
			task()
			s.flush()
		}
	}
}

// Stop shuts the HTTP server down and closes all sessions.
func (s *Server) Stop() {
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(ctx)
	}
	for _, sess := range s.Sessions() {
		_ = sess.conn.Close()
	}
}

// Do runs f on the run loop and waits for it to finish. Dirty state
// accumulated by f is flushed before Do returns.
func (s *Server) Do(f func()) {
	done := make(chan struct{})
	s.tasks <- func() {
		defer close(done)
		f()
	}
	<-done
}

func (s *Server) flush() {
	s.store.Flush(func(changes map[string]state.Value) {
		s.Broadcast(MethodStatePush, StatePushParams{Values: changes})
	})
}

// Broadcast sends a notification to every connected session.
func (s *Server) Broadcast(method string, params any) {
	for _, sess := range s.Sessions() {
		if err := sess.conn.Notify(context.Background(), method, params); err != nil {
			errors.Report(&errors.WeftError{
				Op:   "server.Broadcast",
				Kind: errors.KindTransport,
				Key:  method,
				Err:  err,
			})
		}
	}
}

// PushFrame broadcasts a rendered view image. The latest frame per
// view is kept and replayed to sessions that connect later.
func (s *Server) PushFrame(view, image string, width, height int) {
	params := ViewFrameParams{View: view, Image: image, Width: width, Height: height}
	s.mu.Lock()
	s.frames[view] = params
	s.mu.Unlock()
	s.Broadcast(MethodViewFrame, params)
}

// PushGeometry broadcasts encoded mesh geometry for a local view. Like
// frames, the latest payload per view is replayed on connect.
func (s *Server) PushGeometry(view, payload string) {
	params := ViewGeometryParams{View: view, Payload: payload}
	s.mu.Lock()
	s.geometry[view] = params
	s.mu.Unlock()
	s.Broadcast(MethodViewGeometry, params)
}

// PushTree broadcasts a component tree replacement.
func (s *Server) PushTree(tree *ui.TreeNode) {
	s.Broadcast(MethodUITree, UITreeParams{Tree: tree})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	wsConn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		errors.Report(&errors.WeftError{
			Op:   "server.handleWS",
			Kind: errors.KindTransport,
			Err:  err,
		})
		return
	}

	sess := newSession(r.RemoteAddr)
	stream := websocketjsonrpc2.NewObjectStream(wsConn)
	sess.conn = jsonrpc2.NewConn(r.Context(), stream, s.rpcHandler())
	s.addSession(sess)
	s.logf("session %s connected from %s", sess.ID, sess.RemoteAddr)

	go func() {
		<-sess.conn.DisconnectNotify()
		s.removeSession(sess)
		s.logf("session %s disconnected", sess.ID)
	}()
}

type method func(ctx context.Context, conn *jsonrpc2.Conn, rawParams json.RawMessage) (any, error)

func (s *Server) rpcHandler() jsonrpc2.Handler {
	methods := map[string]method{
		MethodConnect:      s.connect,
		MethodStateUpdate:  s.stateUpdate,
		MethodEventTrigger: s.eventTrigger,
	}
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		var raw json.RawMessage
		if req.Params != nil {
			raw = *req.Params
		}
		return fn(ctx, conn, raw)
	})
}

// Handler implementations. Each hands its work to the run loop, so
// callbacks observe one mutation at a time no matter how many sessions
// are connected.

func (s *Server) connect(_ context.Context, conn *jsonrpc2.Conn, _ json.RawMessage) (any, error) {
	sess := s.sessionFor(conn)
	if sess == nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInternalError, Message: "no session"}
	}

	var result ConnectResult
	s.Do(func() {
		var tree *ui.TreeNode
		if s.tree != nil {
			tree = s.tree()
		}
		result = ConnectResult{
			Session: sess.ID,
			App:     s.opts.AppName,
			State:   s.store.Snapshot(),
			Tree:    tree,
		}
	})
	s.replayViews(conn)
	return &result, nil
}

// replayViews sends the latest cached frame and geometry of every view
// to one freshly connected session.
func (s *Server) replayViews(conn *jsonrpc2.Conn) {
	s.mu.Lock()
	frames := make([]ViewFrameParams, 0, len(s.frames))
	for _, f := range s.frames {
		frames = append(frames, f)
	}
	geometry := make([]ViewGeometryParams, 0, len(s.geometry))
	for _, g := range s.geometry {
		geometry = append(geometry, g)
	}
	s.mu.Unlock()

	for _, f := range frames {
		_ = conn.Notify(context.Background(), MethodViewFrame, f)
	}
	for _, g := range geometry {
		_ = conn.Notify(context.Background(), MethodViewGeometry, g)
	}
}

func (s *Server) stateUpdate(_ context.Context, _ *jsonrpc2.Conn, rawParams json.RawMessage) (any, error) {
	var params StateUpdateParams
	if json.Unmarshal(rawParams, &params) != nil || params.Key == "" {
		return nil, errInvalidParams
	}

	s.logf("state.update %s", params.Key)
	s.Do(func() {
		s.store.Set(params.Key, params.Value)
	})
	return nil, nil
}

func (s *Server) eventTrigger(_ context.Context, _ *jsonrpc2.Conn, rawParams json.RawMessage) (any, error) {
	var event dispatch.Event
	if json.Unmarshal(rawParams, &event) != nil || event.Name == "" {
		return nil, errInvalidParams
	}

	s.logf("event.trigger %s", event.Name)
	s.Do(func() {
		s.dispatcher.Fire(&event)
	})
	return nil, nil
}

func (s *Server) logf(format string, args ...any) {
	if s.opts.Debug {
		fmt.Printf("[weft server] "+format+"\n", args...)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
