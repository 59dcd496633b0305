package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgillet/paceplan/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "paceplan",
	Short: "Plan daily work across competing projects",
	Long: `paceplan spreads full days of project work over a weekday horizon.
The paced method keeps every active project moving at its required rate;
the frontload method finishes projects one after another by priority.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configured file, falling back to built-in
// defaults when it does not exist.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		cfg := &config.Config{}
		cfg.SetDefaults()
		return cfg, nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
