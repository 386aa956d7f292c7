package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"cardroom/internal/config"
	"cardroom/internal/store"
)

const joinTimeout = 30 * time.Second

// Server accepts websocket clients and hands them to the lobby. Each
// connection's first message must be a join.
type Server struct {
	cfg      *config.Config
	upgrader websocket.Upgrader
	lobby    *Lobby
	logger   *log.Logger
	http     *http.Server
}

// NewServer creates a server for the given configuration.
func NewServer(cfg *config.Config, db store.Store, logger *log.Logger) *Server {
	return &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		lobby:  NewLobby(cfg, db, logger, nil),
		logger: logger.WithPrefix("server"),
	}
}

// Start listens for connections and blocks until the listener fails or
// Stop is called.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	s.http = &http.Server{Addr: s.cfg.ListenAddress(), Handler: mux}
	s.logger.Info("listening", "addr", s.cfg.ListenAddress(), "tables", len(s.cfg.Tables))
	if err := s.http.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade", "err", err)
		return
	}

	conn := NewConnection(ws, s.logger)
	conn.Start()
	go s.awaitJoin(conn)
}

// awaitJoin reads the first client message and seats the player, or closes
// the connection.
func (s *Server) awaitJoin(conn *Connection) {
	var join JoinData
	select {
	case msg := <-conn.Receive():
		if msg.Type != MessageTypeJoin {
			s.reject(conn, "bad_request", fmt.Sprintf("expected %s, got %s", MessageTypeJoin, msg.Type))
			return
		}
		if err := msg.Decode(&join); err != nil {
			s.reject(conn, "bad_request", "malformed join payload")
			return
		}
	case <-time.After(joinTimeout):
		s.reject(conn, "timeout", "no join message received")
		return
	case <-conn.Done():
		return
	}

	if join.PlayerName == "" {
		s.reject(conn, "bad_request", "player name is required")
		return
	}

	joined, err := s.lobby.Join(conn, join.PlayerName, join.Table)
	if err != nil {
		s.reject(conn, "join_failed", err.Error())
		return
	}

	msg, err := NewMessage(MessageTypeJoined, joined)
	if err != nil {
		s.logger.Error("encode joined", "err", err)
		conn.Close()
		return
	}
	if err := conn.Send(msg); err != nil {
		s.logger.Debug("send joined", "err", err)
	}
}

func (s *Server) reject(conn *Connection, code, message string) {
	if msg, err := NewMessage(MessageTypeError, ErrorData{Code: code, Message: message}); err == nil {
		_ = conn.Send(msg)
	}
	conn.Close()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, "OK")
}
