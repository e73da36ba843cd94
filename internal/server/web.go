package server

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"github.com/Gaurav-Gosain/carousel/internal/config"
	"github.com/Gaurav-Gosain/carousel/pkg/carousel"
	"github.com/Gaurav-Gosain/carousel/pkg/carouselui"
	"github.com/Gaurav-Gosain/sip"
)

// WebServerConfig configures the browser terminal server
type WebServerConfig struct {
	Host string
	Port string

	Items      []carousel.Item
	UserConfig *config.UserConfig
	Logger     *log.Logger
}

// StartWebServer serves the carousel in the browser until ctx is cancelled.
// Browser sessions report their size with the first resize message.
func StartWebServer(ctx context.Context, cfg *WebServerConfig) error {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	sipCfg := sip.DefaultConfig()
	if cfg.Host != "" {
		sipCfg.Host = cfg.Host
	}
	if cfg.Port != "" {
		sipCfg.Port = cfg.Port
	}

	srv := sip.NewServer(sipCfg)
	cfg.Logger.Info("web server listening", "host", sipCfg.Host, "port", sipCfg.Port)

	err := srv.Serve(ctx, func(sip.Session) (tea.Model, []tea.ProgramOption) {
		m := carouselui.New(
			carouselui.WithItems(cfg.Items...),
			carouselui.WithUserConfig(sessionConfig(cfg.UserConfig)),
			carouselui.WithLogger(cfg.Logger.With("transport", "web")),
		)
		cfg.Logger.Info("web session started", "carousel", m.ShortID())
		return m, carouselui.ProgramOptions()
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("web server error: %w", err)
	}
	return nil
}
