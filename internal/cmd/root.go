package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inboxing/mailadm/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "mailadm",
	Short: "Admin panel for the mail account service",
	Long: `Mailadm is a terminal admin panel for a mail account service. It
browses the account roster with search and pagination, drills into
per-account mailbox lists, and performs create, update and delete
operations against the service API.

Run without a subcommand to open the interactive panel.`,
	RunE: runPanel,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/mailadm/config.yaml)")
	rootCmd.PersistentFlags().String("api-url", "", "service base URL (overrides api.base_url)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("api-url"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/mailadm")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("MAILADM")
	// Replace dots with underscores for nested keys in env vars
	// e.g., MAILADM_API_BASE_URL for api.base_url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
