package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inboxing/mailadm/internal/config"
	"github.com/inboxing/mailadm/internal/session"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Authenticate and save a session token",
	Long: `Authenticates against the service and saves the session token for
later panel runs. The password is read from the terminal unless
--password is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	username := strings.TrimSpace(args[0])
	password := loginPassword
	if password == "" {
		password, err = session.PromptPassword("Password: ")
		if err != nil {
			return err
		}
	}

	client := newClient(cfg, logger)
	token, err := client.Login(cmd.Context(), username, password)
	if err != nil {
		return err
	}

	tokens := session.NewStore(cfg.Session.ResolveTokenFile())
	if err := tokens.Save(token); err != nil {
		return err
	}

	logger.Info("login succeeded", "username", username)
	fmt.Printf("Logged in as %s. Token saved to %s\n", username, tokens.Path())
	return nil
}
