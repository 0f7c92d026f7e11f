package cli

import (
	"io"

	"github.com/alexanderramin/spotter/internal/catalog"
	"github.com/alexanderramin/spotter/internal/config"
	"github.com/alexanderramin/spotter/internal/engine"
	"github.com/alexanderramin/spotter/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and configuration used by CLI commands.
type App struct {
	Workouts service.WorkoutService
	History  service.HistoryService
	Plans    *catalog.Catalog

	Config     config.Config
	ConfigPath string

	// Notifier receives rest-expiry alerts during live sessions. Nil disables them.
	Notifier engine.Notifier

	// IsInteractive reports whether stdin is a terminal. Nil means yes.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive == nil || a.IsInteractive()
}

func (a *App) notifier() engine.Notifier {
	if a.Notifier == nil {
		return engine.NoopNotifier{}
	}
	return a.Notifier
}

// NewRootCmd creates the top-level "spotter" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "spotter",
		Short:         "Workout session timer and training log",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newWorkoutCmd(app),
		newPlanCmd(app),
		newHistoryCmd(app),
		newRecordsCmd(app),
		newPlatesCmd(app),
		newRestCmd(app),
		newSettingsCmd(app),
	)

	return root
}

func writeLine(w io.Writer, s string) {
	_, _ = io.WriteString(w, s+"\n")
}
