package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mgillet/paceplan/infra/projects"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample project inventory",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing inventory")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := cfg.ProjectsFile
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	if err := projects.Save(path, projects.Sample(time.Now())); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Sample inventory written to %s\n", path)
	return nil
}
