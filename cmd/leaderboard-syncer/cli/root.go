package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/votewatch/leaderboard-syncer/pkg"
)

const (
	defaultConfigFileName = "config.yml"
	configPathEnv         = "LBSYNC_CONFIG"
)

var (
	cfgPath string
	rootCmd = &cobra.Command{
		Use:           "leaderboard-syncer",
		Short:         "Keeps a Discord message in sync with a vote leaderboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func Setup() error {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	defaultConfigPath := pkg.Getenv(configPathEnv, getDefaultConfigFile(homePath, defaultConfigFileName))

	rootCmd.AddCommand(StartServerCmd())
	rootCmd.AddCommand(SyncOnceCmd())
	rootCmd.AddCommand(ShowStateCmd())
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath, fmt.Sprintf("config file (default %s)", defaultConfigPath))

	return rootCmd.Execute()
}

func getDefaultConfigFile(homePath, filename string) string {
	return filepath.Join(homePath, filename)
}

func GetConfigPath() string {
	return cfgPath
}
