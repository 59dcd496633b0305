package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mgillet/paceplan/app"
	"github.com/mgillet/paceplan/core/calendar"
	"github.com/mgillet/paceplan/infra/history"
	"github.com/mgillet/paceplan/infra/logger"
)

var (
	historyLimit  int
	historyMethod string
	historySince  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past scheduling runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to list")
	historyCmd.Flags().StringVar(&historyMethod, "method", "", "only runs using this method")
	historyCmd.Flags().StringVar(&historySince, "since", "", "only runs on or after this date (YYYY-MM-DD)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
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
			logger.New("history-command").Errorf("service close: %v", err)
		}
	}()

	q := history.Query{Method: historyMethod, Limit: historyLimit}
	if historySince != "" {
		since, err := time.Parse(calendar.DateFormat, historySince)
		if err != nil {
			return fmt.Errorf("invalid --since date %q: %w", historySince, err)
		}
		q.Start = since
	}

	recs, err := svc.History(ctx, q)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(recs) == 0 {
		fmt.Fprintln(out, "No recorded runs.")
		return nil
	}
	for _, r := range recs {
		fmt.Fprintf(out, "%s  %-9s  %2d weeks  %3d assigned  %3d free",
			r.Timestamp.Format("2006-01-02 15:04"), r.Method, r.NumWeeks, r.Assigned, r.Unassigned)
		if len(r.Misses) > 0 {
			fmt.Fprintf(out, "  %d miss(es)", len(r.Misses))
		}
		fmt.Fprintln(out)
	}
	return nil
}
