package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inboxing/mailadm/internal/config"
	"github.com/inboxing/mailadm/internal/session"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Print the delivery summary across all monitored addresses",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(cmd *cobra.Command, _ []string) error {
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
	token, err := tokens.Load()
	if err != nil {
		return fmt.Errorf("no saved session, run \"mailadm login\" first: %w", err)
	}

	client := newClient(cfg, logger)
	client.SetToken(token)

	ov, err := client.Overview(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Monitored addresses: %d\n", len(ov.Addresses))
	for _, a := range ov.Addresses {
		fmt.Printf("  %6d  %s\n", a.ID, a.Email)
	}
	fmt.Printf("Inbox total:  %d\n", ov.SumInbox)
	fmt.Printf("Spam total:   %d\n", ov.SumSpam)
	fmt.Printf("Inbox ratio:  %s\n", ov.Percent)
	return nil
}
