package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/inboxing/mailadm/internal/config"
	"github.com/inboxing/mailadm/internal/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the saved session",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	tokens := session.NewStore(cfg.Session.ResolveTokenFile())
	token, err := tokens.Load()
	if err != nil {
		return fmt.Errorf("no saved session: %w", err)
	}

	claims, err := session.Inspect(token)
	if err != nil {
		return fmt.Errorf("saved token is malformed: %w", err)
	}

	fmt.Printf("User ID:    %d\n", claims.UserID)
	fmt.Printf("Token file: %s\n", tokens.Path())
	switch {
	case claims.ExpiresAt == nil:
		fmt.Println("Expires:    never")
	case claims.Expired(time.Now()):
		fmt.Printf("Expires:    %s (expired)\n", claims.ExpiresAt.Time.Format(time.RFC3339))
	default:
		fmt.Printf("Expires:    %s\n", claims.ExpiresAt.Time.Format(time.RFC3339))
	}
	return nil
}
