package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/alexanderramin/spotter/internal/cli/formatter"
	"github.com/alexanderramin/spotter/internal/domain"
	"github.com/alexanderramin/spotter/internal/engine"
	"github.com/spf13/cobra"
)

func newPlatesCmd(app *App) *cobra.Command {
	var bar float64

	cmd := &cobra.Command{
		Use:   "plates WEIGHT",
		Short: "Show the plates to load on each side of the bar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := strconv.ParseFloat(args[0], 64)
			if err != nil || total < 0 {
				return fmt.Errorf("invalid weight %q", args[0])
			}
			if bar <= 0 {
				return fmt.Errorf("--bar must be positive")
			}
			loading := engine.CalculatePlateLoading(total, bar)
			writeLine(cmd.OutOrStdout(), formatter.FormatPlateReport(total, bar, loading))
			return nil
		},
	}

	addBarFlag(cmd.Flags(), &bar, app.Config.BarWeight)
	return cmd
}

func newRestCmd(app *App) *cobra.Command {
	var difficulty domain.Difficulty
	var rpe int

	cmd := &cobra.Command{
		Use:   "rest",
		Short: "Calculate smart rest time for a difficulty and RPE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writeLine(cmd.OutOrStdout(), formatter.FormatSmartRest(difficulty, rpe))
			return nil
		},
	}

	cmd.Flags().VarP(newDifficultyValue(domain.DifficultyIntermediate, &difficulty), "difficulty", "d", "Beginner, Intermediate or Advanced")
	cmd.Flags().VarP(newRPEValue(domain.DefaultRPE, &rpe), "rpe", "r", "Rate of perceived exertion, 1-10")

	cmd.AddCommand(newRestTimerCmd(app))
	return cmd
}

func newRestTimerCmd(app *App) *cobra.Command {
	var muted bool
	var warning int
	var tick time.Duration

	cmd := &cobra.Command{
		Use:   "timer [SECONDS]",
		Short: "Count down a rest period in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds := app.Config.Rest.DefaultRestTime
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid rest length %q", args[0])
				}
				seconds = n
			}

			settings := app.Config.Rest.Clone()
			settings.WarningTime = warning

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			finished, err := runRestTimer(ctx, cmd.OutOrStdout(), seconds, tick,
				engine.WithSettings(settings),
				engine.WithMuted(muted),
				engine.WithNotifier(app.notifier()),
			)
			if err != nil {
				return err
			}
			if !finished {
				writeLine(cmd.OutOrStdout(), formatter.Dim("Rest cancelled."))
			}
			return nil
		},
	}

	addMutedFlag(cmd.Flags(), &muted, app.Config.Muted)
	cmd.Flags().IntVar(&warning, "warning", app.Config.Rest.WarningTime, "Seconds left when the warning shows")
	cmd.Flags().DurationVar(&tick, "tick", time.Second, "Tick interval")
	_ = cmd.Flags().MarkHidden("tick")
	return cmd
}

// restTimerExercise is the placeholder plan a standalone timer runs against.
var restTimerExercise = domain.Exercise{ID: "rest-timer", Name: "Rest", Sets: 1, Reps: 1}

// runRestTimer counts down seconds on a fresh engine, redrawing one status
// line per tick. It reports whether the rest ran to zero.
func runRestTimer(ctx context.Context, w io.Writer, seconds int, tick time.Duration, opts ...engine.Option) (bool, error) {
	e, err := engine.New([]domain.Exercise{restTimerExercise}, opts...)
	if err != nil {
		return false, err
	}
	e.StartRest(seconds)

	draw := func(s engine.Snapshot) {
		fmt.Fprintf(w, "\r%s ", formatter.RenderRestBar(s.TimeLeft, s.RestDuration, s.RestWarning, s.IsPaused, 30))
	}
	draw(e.Snapshot())

	expired := make(chan struct{})
	r := engine.Start(ctx, e,
		engine.WithInterval(tick),
		engine.WithOnTick(func(s engine.Snapshot) {
			if s.IsResting {
				draw(s)
			}
		}),
		engine.WithOnExpire(func() { close(expired) }),
	)

	select {
	case <-expired:
		r.Stop()
		fmt.Fprintf(w, "\r%s\n", formatter.StyleGreen.Bold(true).Render("Rest over. Next set!"))
		return true, nil
	case <-ctx.Done():
		r.Stop()
		fmt.Fprintln(w)
		return false, nil
	}
}
