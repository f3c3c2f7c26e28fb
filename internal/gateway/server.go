// Package gateway exposes the unified tool over a WebSocket debug surface.
// The MCP stdio transport is the primary interface; the gateway exists so
// operators can poke the catalog and run commands without an MCP client.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/soyeahso/roster/internal/catalog"
	"github.com/soyeahso/roster/internal/config"
	"github.com/soyeahso/roster/internal/logging"
	"github.com/soyeahso/roster/internal/safefs"
	"github.com/soyeahso/roster/internal/tool"
	"github.com/soyeahso/roster/internal/version"
)

const maxFrameBytes = 1 << 20

var gatewayMethods = []string{"health", "invoke", "catalog.agents", "catalog.workflows", "catalog.tasks", "sessions"}

// Server is the roster WebSocket gateway.
type Server struct {
	cfg   config.GatewayConfig
	auth  ResolvedAuth
	exec  *tool.Executor
	cat   *catalog.Catalog
	fs    *safefs.Root
	log   *logging.Logger
	store *SessionStore

	startedAt  time.Time
	httpServer *http.Server
	upgrader   websocket.Upgrader
}

// NewServer wires the gateway to a tool executor and its catalog.
func NewServer(cfg config.GatewayConfig, exec *tool.Executor, cat *catalog.Catalog, fs *safefs.Root, log *logging.Logger) *Server {
	if log == nil {
		log = logging.New(nil, "silent")
	}
	return &Server{
		cfg:       cfg,
		auth:      ResolveAuth(cfg.Auth),
		exec:      exec,
		cat:       cat,
		fs:        fs,
		log:       log.Sub("gateway"),
		store:     NewSessionStore(),
		startedAt: time.Now(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Addr returns the listen address derived from the bind mode and port.
func (s *Server) Addr() string {
	host := "127.0.0.1"
	if s.cfg.Bind == "lan" {
		host = "0.0.0.0"
	}
	return net.JoinHostPort(host, fmt.Sprintf("%d", s.cfg.Port))
}

// handler builds the HTTP routing table.
func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return mux
}

// Start runs the HTTP server until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.Addr(),
		Handler:           s.handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.httpServer.Addr).Msg("gateway listening")
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// handleHealthz is a plain HTTP liveness probe, no auth required.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"ok": true, "version": version.Version})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("upgrade failed")
		return
	}
	connID := uuid.NewString()
	connLog := s.log.WithConn(connID)
	connLog.Info().Str("remote", r.RemoteAddr).Msg("connection opened")

	defer func() {
		conn.Close()
		s.store.Drop(connID)
		connLog.Info().Msg("connection closed")
	}()

	conn.SetReadLimit(maxFrameBytes)

	// First frame must be a connect request. Everything else is rejected
	// until auth has passed.
	if !s.handshake(conn, connID, connLog) {
		return
	}
	s.store.Add(connID, r.RemoteAddr)

	for {
		var frame Frame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				connLog.Warn().Err(err).Msg("read failed")
			}
			return
		}
		if frame.Type != FrameTypeRequest {
			s.writeFrame(conn, NewErrorResponse(frame.ID, ErrorShape{
				Code:    "bad_frame",
				Message: "expected a request frame",
			}))
			continue
		}
		s.dispatch(conn, frame, connLog)
	}
}

func (s *Server) handshake(conn *websocket.Conn, connID string, connLog *logging.Logger) bool {
	var frame Frame
	if err := conn.ReadJSON(&frame); err != nil {
		return false
	}
	if frame.Type != FrameTypeRequest || frame.Method != "connect" {
		s.writeFrame(conn, NewErrorResponse(frame.ID, ErrorShape{
			Code:    "connect_required",
			Message: "first frame must be a connect request",
		}))
		return false
	}

	var params ConnectParams
	if len(frame.Params) > 0 {
		if err := json.Unmarshal(frame.Params, &params); err != nil {
			s.writeFrame(conn, NewErrorResponse(frame.ID, ErrorShape{
				Code:    "bad_params",
				Message: err.Error(),
			}))
			return false
		}
	}

	if result := Authorize(s.auth, params.Auth); !result.OK {
		connLog.Warn().Str("reason", result.Reason).Msg("auth rejected")
		s.writeFrame(conn, NewErrorResponse(frame.ID, ErrorShape{
			Code:    "unauthorized",
			Message: result.Reason,
		}))
		return false
	}

	hello := HelloOK{
		Server:  ServerInfo{Version: version.Version, ConnID: connID},
		Methods: gatewayMethods,
	}
	resp, err := NewResponse(frame.ID, hello)
	if err != nil {
		return false
	}
	s.writeFrame(conn, resp)
	return true
}

func (s *Server) dispatch(conn *websocket.Conn, frame Frame, connLog *logging.Logger) {
	connLog.Debug().Str("method", frame.Method).Str("id", frame.ID).Msg("request")

	var (
		payload any
		err     *ErrorShape
	)

	switch frame.Method {
	case "health":
		payload = HealthPayload{
			OK:            true,
			Version:       version.Version,
			CatalogRoot:   s.fs.Dir(),
			AgentCount:    len(s.cat.Agents()),
			WorkflowCount: len(s.cat.Workflows()),
			TaskCount:     len(s.cat.Tasks()),
			Connections:   s.store.Count(),
			UptimeMs:      time.Since(s.startedAt).Milliseconds(),
		}

	case "invoke":
		var params InvokeParams
		if len(frame.Params) > 0 {
			if uerr := json.Unmarshal(frame.Params, &params); uerr != nil {
				err = &ErrorShape{Code: "bad_params", Message: uerr.Error()}
				break
			}
		}
		payload = s.exec.Execute(params.Command)

	case "catalog.agents":
		payload = map[string]any{"agents": s.cat.Agents()}

	case "catalog.workflows":
		payload = map[string]any{"workflows": s.cat.Workflows()}

	case "catalog.tasks":
		payload = map[string]any{"tasks": s.cat.Tasks()}

	case "sessions":
		payload = map[string]any{"sessions": s.store.List()}

	default:
		err = &ErrorShape{
			Code:    "unknown_method",
			Message: fmt.Sprintf("unknown method: %s", frame.Method),
		}
	}

	if err != nil {
		s.writeFrame(conn, NewErrorResponse(frame.ID, *err))
		return
	}
	resp, merr := NewResponse(frame.ID, payload)
	if merr != nil {
		s.writeFrame(conn, NewErrorResponse(frame.ID, ErrorShape{
			Code:    "internal",
			Message: merr.Error(),
		}))
		return
	}
	s.writeFrame(conn, resp)
}

func (s *Server) writeFrame(conn *websocket.Conn, frame Frame) {
	if err := conn.WriteJSON(frame); err != nil {
		s.log.Warn().Err(err).Msg("write failed")
	}
}
