package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"github.com/Gaurav-Gosain/carousel/internal/app"
	"github.com/Gaurav-Gosain/carousel/internal/config"
	"github.com/Gaurav-Gosain/carousel/internal/input"
	"github.com/Gaurav-Gosain/carousel/internal/logging"
	"github.com/Gaurav-Gosain/carousel/internal/server"
	"github.com/Gaurav-Gosain/carousel/internal/tape"
	"github.com/Gaurav-Gosain/carousel/internal/theme"
	"github.com/Gaurav-Gosain/carousel/pkg/carousel"
	"github.com/spf13/cobra"
)

// loadConfig loads the user config and applies the command line overrides
func loadConfig(cmd *cobra.Command) *config.UserConfig {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}
	config.ApplyOverrides(flagOverrides(cmd), userConfig)
	if _, err := theme.Lookup(userConfig.Appearance.Theme); err != nil {
		log.Warn("failed to load theme", "theme", userConfig.Appearance.Theme, "err", err)
	}
	return userConfig
}

// flagOverrides collects the flags the user actually set
func flagOverrides(cmd *cobra.Command) config.Overrides {
	flags := cmd.Flags()
	changed := func(name string, v bool) *bool {
		if !flags.Changed(name) {
			return nil
		}
		return &v
	}
	return config.Overrides{
		ASCIIOnly:      asciiOnly,
		BorderStyle:    borderStyle,
		ShowClones:     showClones,
		ThemeName:      themeName,
		SlidesToShow:   slidesToShow,
		SlidesToScroll: slidesToScroll,
		Infinite:       changed("infinite", infinite),
		CenterMode:     changed("center", centerMode),
		RTL:            changed("rtl", rtl),
		Fade:           changed("fade", fade),
		Vertical:       changed("vertical", vertical),
		LazyLoad:       changed("lazy", lazyLoad),
		Autoplay:       changed("autoplay", autoplay),
	}
}

// setupLogger configures logging from the config. The interactive program
// owns the terminal, so it only logs to a file.
func setupLogger(userConfig *config.UserConfig, interactive bool) (*log.Logger, func() error, error) {
	opts := logging.Options{
		Level: userConfig.Server.LogLevel,
		File:  userConfig.Server.LogFile,
	}
	if debugMode {
		opts.Level = "debug"
	}
	if interactive {
		opts.Stderr = io.Discard
		if debugMode && opts.File == "" {
			opts.File = "default"
		}
	}
	return logging.Setup(opts)
}

// loadItems picks the slides: arguments, then --file, then --count generated ones
func loadItems(args []string) ([]carousel.Item, error) {
	if len(args) > 0 {
		return app.ItemsFromStrings(args), nil
	}
	if itemsFile != "" {
		var data []byte
		var err error
		if itemsFile == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			// #nosec G304 - the slide file is chosen by the user
			data, err = os.ReadFile(itemsFile)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read slides: %w", err)
		}
		items := app.ItemsFromStrings(strings.Split(string(data), "\n"))
		if len(items) == 0 {
			return nil, fmt.Errorf("%s contains no slides", itemsFile)
		}
		return items, nil
	}
	if itemCount < 0 {
		return nil, fmt.Errorf("--count must not be negative, got %d", itemCount)
	}
	if itemCount > 0 {
		return app.GenerateItems(itemCount), nil
	}
	return nil, nil
}

func runLocal(cmd *cobra.Command, args []string) error {
	return runProgram(cmd, args, nil)
}

// runProgram runs the interactive carousel, optionally playing a tape
func runProgram(cmd *cobra.Command, args []string, cmds []tape.Command) error {
	items, err := loadItems(args)
	if err != nil {
		return err
	}

	userConfig := loadConfig(cmd)
	logger, closeLog, err := setupLogger(userConfig, true)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	if debugMode {
		configPath, _ := config.GetConfigPath()
		logger.Debug("starting", "config", configPath, "version", version)
	}

	app.SetInputHandler(input.HandleInput)

	model := app.New(app.Options{
		Items:           items,
		Config:          userConfig,
		KeybindRegistry: config.NewKeybindRegistry(userConfig),
		Logger:          logger,
		Tape:            cmds,
	})

	p := tea.NewProgram(
		model,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	if final, ok := finalModel.(*app.Model); ok && final.Err() != nil && len(cmds) > 0 {
		return fmt.Errorf("tape failed: %w", final.Err())
	}
	return nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM
func signalContext(logger *log.Logger, what string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-c:
			logger.Info("shutting down " + what)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(c)
	}()
	return ctx, cancel
}

func runSSHServer(cmd *cobra.Command, args []string, sshHost, sshPort, sshKeyPath string) error {
	items, err := loadItems(args)
	if err != nil {
		return err
	}
	userConfig := loadConfig(cmd)
	logger, closeLog, err := setupLogger(userConfig, false)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	sc := userConfig.Server
	cfg := &server.SSHServerConfig{
		Host:       firstNonEmpty(sshHost, sc.SSHHost),
		Port:       firstNonEmpty(sshPort, sc.SSHPort),
		KeyPath:    firstNonEmpty(sshKeyPath, sc.SSHKeyPath),
		Version:    version,
		Items:      items,
		UserConfig: userConfig,
		Logger:     logger,
	}
	logger.Info("starting carousel SSH server", "host", cfg.Host, "port", cfg.Port)

	ctx, cancel := signalContext(logger, "SSH server")
	defer cancel()

	if err := server.StartSSHServer(ctx, cfg); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}

func runWebServer(cmd *cobra.Command, args []string, webHost, webPort string) error {
	items, err := loadItems(args)
	if err != nil {
		return err
	}
	userConfig := loadConfig(cmd)
	logger, closeLog, err := setupLogger(userConfig, false)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	ctx, cancel := signalContext(logger, "web server")
	defer cancel()

	return server.StartWebServer(ctx, &server.WebServerConfig{
		Host:       webHost,
		Port:       webPort,
		Items:      items,
		UserConfig: userConfig,
		Logger:     logger,
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
