package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inboxing/mailadm/internal/api"
	"github.com/inboxing/mailadm/internal/config"
	"github.com/inboxing/mailadm/internal/event"
	"github.com/inboxing/mailadm/internal/logging"
	"github.com/inboxing/mailadm/internal/panel"
	"github.com/inboxing/mailadm/internal/roster"
	"github.com/inboxing/mailadm/internal/session"
	"github.com/inboxing/mailadm/internal/tui"
	"github.com/inboxing/mailadm/internal/tui/styles"
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Open the interactive admin panel",
	Long: `Opens the interactive account roster. Requires a saved session;
run "mailadm login" first.`,
	RunE: runPanel,
}

func init() {
	rootCmd.AddCommand(panelCmd)
}

func runPanel(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	if err := styles.LoadCustomThemes(filepath.Join(config.ConfigDir(), "themes")); err != nil {
		logger.Warn("custom themes not loaded", "error", err)
	}
	if err := styles.SetTheme(cfg.TUI.Theme); err != nil {
		return err
	}

	client := newClient(cfg, logger)

	tokens := session.NewStore(cfg.Session.ResolveTokenFile())
	token, err := tokens.Load()
	if err != nil {
		return fmt.Errorf("no saved session, run \"mailadm login\" first: %w", err)
	}
	client.SetToken(token)

	bus := event.NewBus()
	busLog := logger.WithScreen("events")
	bus.SubscribeAll(func(e event.Event) {
		busLog.Debug("event", "type", e.EventType())
	})

	store := roster.NewStore()
	orch := panel.NewOrchestrator(client, store, bus, logger)

	logger.Info("panel starting", "base_url", cfg.API.BaseURL)
	return tui.Run(tui.Config{
		Orchestrator:   orch,
		Logger:         logger,
		PageSize:       cfg.TUI.PageSize,
		DetailPageSize: cfg.TUI.DetailPageSize,
		RequestTimeout: cfg.API.Timeout(),
	})
}

// newLogger builds the file logger, or a no-op logger when logging is
// disabled.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(config.ConfigDir(), cfg.Logging.Level)
}

// newClient builds the API client from the loaded configuration.
func newClient(cfg *config.Config, logger *logging.Logger) *api.Client {
	return api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout()),
		api.WithRetryCount(cfg.API.RetryCount),
		api.WithLogger(logger),
	)
}
