// Package server serves the interactive carousel to remote clients: over SSH
// with wish and in the browser with sip. Every connection gets its own model.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/activeterm"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/Gaurav-Gosain/carousel/internal/config"
	"github.com/Gaurav-Gosain/carousel/pkg/carousel"
	"github.com/Gaurav-Gosain/carousel/pkg/carouselui"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/ssh"
)

// shutdownTimeout bounds how long open sessions get to close
const shutdownTimeout = 5 * time.Second

// SSHServerConfig configures the SSH server
type SSHServerConfig struct {
	Host    string
	Port    string
	KeyPath string // generated under the XDG data dir when empty
	Version string

	// Items are served to every session; empty gives generated slides
	Items []carousel.Item

	// UserConfig is shared by all sessions (default: config.DefaultConfig)
	UserConfig *config.UserConfig

	Logger *log.Logger
}

// StartSSHServer serves the carousel until ctx is cancelled
func StartSSHServer(ctx context.Context, cfg *SSHServerConfig) error {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	keyPath, err := hostKeyPath(cfg.KeyPath)
	if err != nil {
		return err
	}

	s, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(keyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(sessionHandler(cfg)),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		cfg.Logger.Info("SSH server listening", "addr", s.Addr, "version", cfg.Version)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	cfg.Logger.Info("stopping SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("failed to shut down SSH server: %w", err)
	}
	return nil
}

// sessionHandler builds a fresh carousel for every SSH session
func sessionHandler(cfg *SSHServerConfig) bubbletea.Handler {
	return func(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := sess.Pty()
		m := carouselui.New(
			carouselui.WithItems(cfg.Items...),
			carouselui.WithUserConfig(sessionConfig(cfg.UserConfig)),
			carouselui.WithSize(pty.Window.Width, pty.Window.Height),
			carouselui.WithLogger(cfg.Logger.With("user", sess.User())),
		)
		cfg.Logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"carousel", m.ShortID(),
		)
		return m, carouselui.ProgramOptions()
	}
}

// sessionConfig copies the shared config so sessions can change options independently
func sessionConfig(shared *config.UserConfig) *config.UserConfig {
	if shared == nil {
		return config.DefaultConfig()
	}
	cfg := *shared
	return &cfg
}

// hostKeyPath returns keyPath, or the default key location under XDG data
func hostKeyPath(keyPath string) (string, error) {
	if keyPath != "" {
		return keyPath, nil
	}
	path, err := xdg.DataFile("carousel/ssh_host_ed25519")
	if err != nil {
		return "", fmt.Errorf("failed to resolve host key path: %w", err)
	}
	return path, nil
}
