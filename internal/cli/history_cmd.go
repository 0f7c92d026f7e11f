package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/spotter/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Review recorded workouts",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryDeleteCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent workouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return fmt.Errorf("--days must be positive")
			}
			sessions, err := app.Workouts.ListRecent(cmd.Context(), days)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("Workouts, last %d days", days)
			writeLine(cmd.OutOrStdout(), formatter.RenderBox(title, formatter.FormatSessionList(sessions, time.Now())))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Number of recent days to show")
	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a recorded workout and its sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := app.Workouts.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatSessionDetail(detail.Session, detail.Sets))
			return nil
		},
	}
}

func newHistoryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a recorded workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Workouts.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), fmt.Sprintf("Deleted workout %s", args[0]))
			return nil
		},
	}
}

func newRecordsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "records",
		Short: "List personal records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.History.Records(cmd.Context())
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.RenderBox("Personal Records", formatter.FormatRecords(records, time.Now())))
			return nil
		},
	}
}
