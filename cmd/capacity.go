package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mgillet/paceplan/app"
	"github.com/mgillet/paceplan/core/analysis"
	"github.com/mgillet/paceplan/infra/logger"
)

var (
	capacityWeeks  int
	capacityMethod string
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Show week-by-week availability and per-project load",
	RunE:  runCapacity,
}

func init() {
	capacityCmd.Flags().IntVarP(&capacityWeeks, "weeks", "w", 0, "planning horizon in weeks (default from config)")
	capacityCmd.Flags().StringVarP(&capacityMethod, "method", "m", "", "allocation method: paced or frontload")
	rootCmd.AddCommand(capacityCmd)
}

func runCapacity(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("capacity-command").Errorf("service close: %v", err)
		}
	}()

	plan, err := svc.Plan(ctx, app.PlanOptions{
		Weeks:          capacityWeeks,
		Method:         capacityMethod,
		MinProbability: -1,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Availability by week (%s method):\n", plan.Method)
	for _, w := range analysis.WeeklyAvailability(plan.Schedule) {
		fmt.Fprintf(out, "  week of %s  %d assigned, %d free\n",
			w.WeekStart.Format("2006-01-02"), w.Assigned, w.Unassigned)
	}

	loads := analysis.WeeklyAllocation(plan.Schedule)
	if len(loads) > 0 {
		fmt.Fprintln(out, "\nSteady load per project (trailing 4-week mean):")
		for _, l := range loads {
			fmt.Fprintf(out, "  %-24s %.1f days/week\n", l.Project, l.Smoothed[len(l.Smoothed)-1])
		}
	}
	return nil
}
