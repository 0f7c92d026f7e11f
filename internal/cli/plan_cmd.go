package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/spotter/internal/catalog"
	"github.com/alexanderramin/spotter/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Browse and check workout plans",
	}

	cmd.AddCommand(
		newPlanListCmd(app),
		newPlanShowCmd(app),
		newPlanValidateCmd(),
	)

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Plans.List()
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.RenderBox("Plans", formatter.FormatPlanList(entries)))
			return nil
		},
	}
}

func newPlanShowCmd(app *App) *cobra.Command {
	var hydrate bool

	cmd := &cobra.Command{
		Use:   "show [PLAN]",
		Short: "Show a plan's exercises",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector := ""
			if len(args) == 1 {
				selector = args[0]
			}
			plan, err := app.Plans.Resolve(selector)
			if err != nil {
				return err
			}
			if hydrate && app.History != nil {
				plan.Exercises, err = app.History.Hydrate(cmd.Context(), plan.Exercises)
				if err != nil {
					return err
				}
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatPlan(plan, app.Config.Rest.DefaultRestTime))
			return nil
		},
	}

	cmd.Flags().BoolVar(&hydrate, "history", true, "Fill personal records from workout history")
	return cmd
}

func newPlanValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check plan files for errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				schema, err := catalog.LoadPlanSchema(path)
				if err != nil {
					failed++
					writeLine(out, formatter.StyleRed.Render("✖ "+path)+"\n    "+err.Error())
					continue
				}
				errs := catalog.ValidatePlanSchema(schema)
				if len(errs) == 0 {
					writeLine(out, formatter.StyleGreen.Render("✔ "+path)+formatter.Dim(fmt.Sprintf("  %s, %d exercises", schema.Name, len(schema.Exercises))))
					continue
				}
				failed++
				writeLine(out, formatter.StyleRed.Render("✖ "+path))
				for _, e := range errs {
					writeLine(out, "    "+e.Error())
				}
			}
			if failed > 0 {
				return errors.New(pluralize(failed, "plan file", "plan files") + " failed validation")
			}
			return nil
		},
	}
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
