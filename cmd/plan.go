package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mgillet/paceplan/app"
	"github.com/mgillet/paceplan/core/analysis"
	"github.com/mgillet/paceplan/core/scheduler"
	"github.com/mgillet/paceplan/infra/logger"
	"github.com/mgillet/paceplan/infra/render"
	"github.com/mgillet/paceplan/pkg/export"
)

var (
	planWeeks   int
	planMethod  string
	planMinProb float64
	planExport  string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Produce a schedule from the project inventory",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().IntVarP(&planWeeks, "weeks", "w", 0, "planning horizon in weeks (default from config)")
	planCmd.Flags().StringVarP(&planMethod, "method", "m", "", "allocation method: paced or frontload")
	planCmd.Flags().Float64Var(&planMinProb, "min-probability", -1, "drop projects below this probability")
	planCmd.Flags().StringVar(&planExport, "export", "", "write the schedule to a .json or .csv file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
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
			logger.New("plan-command").Errorf("service close: %v", err)
		}
	}()

	opts := app.PlanOptions{Weeks: planWeeks, Method: planMethod, MinProbability: planMinProb}
	selected, err := svc.Plan(ctx, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Schedule (%s method)\n", selected.Method)
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintln(out, render.Tiles(selected.Schedule, selected.Projects))
	fmt.Fprintln(out, render.StatsTable(selected))

	fmt.Fprintln(out, "Free capacity by month:")
	for _, m := range analysis.MonthlyUnassigned(selected.Schedule) {
		fmt.Fprintf(out, "  %s  %2d of %2d weekdays free\n",
			m.Month.Format("2006-01"), m.Unassigned, m.Total)
	}

	// The alternative method runs on the same inventory so both
	// statistic blocks can be compared side by side.
	other := app.PlanOptions{Weeks: planWeeks, MinProbability: planMinProb}
	if selected.Method == scheduler.MethodPaced {
		other.Method = string(scheduler.MethodFrontload)
	} else {
		other.Method = string(scheduler.MethodPaced)
	}
	alt, err := svc.Plan(ctx, other)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nFor comparison (%s method)\n", alt.Method)
	fmt.Fprintln(out, render.StatsTable(alt))

	if planExport != "" {
		if err := exportSchedule(planExport, selected); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nSchedule written to %s\n", planExport)
	}
	return nil
}

func exportSchedule(path string, plan *scheduler.Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	switch {
	case strings.HasSuffix(path, ".json"):
		return export.WriteJSON(f, plan.Schedule)
	case strings.HasSuffix(path, ".csv"):
		return export.WriteCSV(f, plan.Schedule)
	default:
		return fmt.Errorf("unsupported export format: %s", path)
	}
}
