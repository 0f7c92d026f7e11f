package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/spotter/internal/catalog"
	"github.com/alexanderramin/spotter/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newWorkoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Run live workout sessions",
	}
	cmd.AddCommand(newWorkoutStartCmd(app))
	return cmd
}

func newWorkoutStartCmd(app *App) *cobra.Command {
	var planSel string
	var muted bool
	var bar float64

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a live workout session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("workout start needs an interactive terminal")
			}
			ctx := cmd.Context()

			if !cmd.Flags().Changed("plan") {
				sel, err := pickPlan(app.Plans)
				if err != nil {
					return err
				}
				planSel = sel
			}

			plan, eng, err := app.prepareSession(ctx, planSel,
				engine.WithMuted(muted),
				engine.WithBarWeight(bar),
			)
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(newSessionModel(app, plan.Name, eng),
				tea.WithAltScreen(),
				tea.WithContext(ctx),
			).Run()
			if err != nil {
				return fmt.Errorf("running session: %w", err)
			}
			if m, ok := final.(*sessionModel); ok {
				writeLine(cmd.OutOrStdout(), m.summary())
			}
			return nil
		},
	}

	addPlanFlag(cmd.Flags(), &planSel)
	addMutedFlag(cmd.Flags(), &muted, app.Config.Muted)
	addBarFlag(cmd.Flags(), &bar, app.Config.BarWeight)
	return cmd
}

// prepareSession resolves the plan, fills its history from the store and
// builds an engine configured from the app settings. opts apply last.
func (a *App) prepareSession(ctx context.Context, selector string, opts ...engine.Option) (*catalog.Plan, *engine.Engine, error) {
	plan, err := a.Plans.Resolve(selector)
	if err != nil {
		return nil, nil, err
	}

	exercises := plan.Exercises
	if a.History != nil {
		exercises, err = a.History.Hydrate(ctx, exercises)
		if err != nil {
			return nil, nil, err
		}
	}

	base := []engine.Option{
		engine.WithSettings(a.Config.Rest),
		engine.WithMuted(a.Config.Muted),
		engine.WithBarWeight(a.Config.BarWeight),
		engine.WithNotifier(a.notifier()),
	}
	eng, err := engine.New(exercises, append(base, opts...)...)
	if err != nil {
		return nil, nil, fmt.Errorf("starting %s: %w", plan.Name, err)
	}
	return plan, eng, nil
}

// pickPlan asks which plan to run.
func pickPlan(plans *catalog.Catalog) (string, error) {
	entries, err := plans.List()
	if err != nil {
		return "", err
	}

	options := make([]huh.Option[string], 0, len(entries))
	for _, e := range entries {
		label := fmt.Sprintf("%s (%d exercises)", e.Schema.Name, len(e.Schema.Exercises))
		options = append(options, huh.NewOption(label, fmt.Sprintf("%d", e.Index)))
	}

	choice := ""
	for _, e := range entries {
		if e.Schema.ID == catalog.DefaultPlan {
			choice = fmt.Sprintf("%d", e.Index)
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which plan?").
				Options(options...).
				Value(&choice),
		),
	).WithTheme(spotterHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("choosing plan: %w", err)
	}
	return choice, nil
}
