package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inboxing/mailadm/internal/config"
	"github.com/inboxing/mailadm/internal/session"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session and discard the saved token",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	tokens := session.NewStore(cfg.Session.ResolveTokenFile())

	// Tell the service first, best effort. The local token goes away
	// either way.
	if token, err := tokens.Load(); err == nil {
		client := newClient(cfg, logger)
		client.SetToken(token)
		if err := client.Logout(cmd.Context()); err != nil {
			logger.Warn("server-side logout failed", "error", err)
		}
	}

	if err := tokens.Clear(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
