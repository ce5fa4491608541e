// Package sshserve serves the snake game over SSH using Wish. Every session
// plays its own independent game.
package sshserve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/google/uuid"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/torsnake/internal/config"
	"github.com/vovakirdan/torsnake/internal/input"
	"github.com/vovakirdan/torsnake/internal/loop"
	"github.com/vovakirdan/torsnake/internal/render"
)

// Config holds configuration for the SSH server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.torsnake/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game configures every session's game.
	Game config.Config

	// Logger receives server and session logs. Defaults to stderr.
	Logger *log.Logger
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Game:        config.Default(),
	}
}

// Server wraps a Wish SSH server.
type Server struct {
	config Config
	server *ssh.Server
	logger *log.Logger
}

// New creates a new SSH server with the given configuration.
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "torsnake-ssh",
		})
	}

	srv := &Server{
		config: cfg,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("sshserve: cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".torsnake", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("sshserve: cannot create host key directory: %w", err)
	}

	// Middlewares run last to first.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			srv.gameMiddleware,
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("sshserve: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// gameMiddleware plays one game on the session.
func (s *Server) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.play(sess)
		next(sess)
	}
}

func (s *Server) play(sess ssh.Session) {
	logger := s.logger.With("session", uuid.NewString(), "user", sess.User())

	pty, _, _ := sess.Pty()
	if err := loop.Fit(s.config.Game, pty.Window.Width, pty.Window.Height); err != nil {
		wish.Fatalln(sess, err)
		return
	}

	src := input.NewStreamSource(sess)
	defer src.Close()

	sink := render.NewANSISink(sess, termenv.ANSI256)
	d, err := loop.New(s.config.Game, src, sink, logger)
	if err != nil {
		logger.Error("cannot start game", "error", err)
		wish.Fatalln(sess, err)
		return
	}
	if err := sink.Begin(); err != nil {
		logger.Warn("client gone before start", "error", err)
		return
	}

	res, err := d.Run(sess.Context())
	switch {
	case errors.Is(err, input.ErrSourceClosed):
		logger.Info("client disconnected", "ticks", res.Ticks)
		return
	case err != nil:
		logger.Error("game aborted", "error", err)
		return
	}

	if err := sink.End(d.Renderer.Height()); err != nil {
		return
	}
	wish.Printf(sess, "%s: length %d, score %d\r\n", res.Outcome, res.Length, res.Score)
}

// loggingMiddleware logs SSH session events.
func (s *Server) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
			done <- syscall.SIGTERM
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Serve accepts sessions on l until the server is shut down.
func (s *Server) Serve(l net.Listener) error {
	if err := s.server.Serve(l); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("sshserve: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
