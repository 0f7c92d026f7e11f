package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/spotter/internal/cli/formatter"
	"github.com/alexanderramin/spotter/internal/config"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Edit rest timer settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("settings needs an interactive terminal; edit %s instead", app.ConfigPath)
			}

			values := newSettingsValues(app.Config)
			if err := settingsForm(values).Run(); err != nil {
				return fmt.Errorf("settings form: %w", err)
			}
			cfg, err := values.apply(app.Config)
			if err != nil {
				return err
			}
			if err := config.Save(app.ConfigPath, cfg); err != nil {
				return err
			}
			app.Config = cfg

			writeLine(cmd.OutOrStdout(), formatter.StyleGreen.Render("Saved settings to "+app.ConfigPath))
			return nil
		},
	}

	cmd.AddCommand(newSettingsShowCmd(app))
	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writeLine(cmd.OutOrStdout(), formatSettings(app.Config, app.ConfigPath))
			return nil
		},
	}
}

// settingsValues holds the form fields; numeric inputs are edited as text.
type settingsValues struct {
	defaultRest string
	warning     string
	barWeight   string
	sound       bool
	vibration   bool
	smartRest   bool
	muted       bool
	music       bool
}

func newSettingsValues(cfg config.Config) *settingsValues {
	return &settingsValues{
		defaultRest: strconv.Itoa(cfg.Rest.DefaultRestTime),
		warning:     strconv.Itoa(cfg.Rest.WarningTime),
		barWeight:   formatter.FormatWeight(cfg.BarWeight),
		sound:       cfg.Rest.SoundEnabled,
		vibration:   cfg.Rest.VibrationEnabled,
		smartRest:   cfg.Rest.SmartRest,
		muted:       cfg.Muted,
		music:       cfg.Rest.BackgroundMusic,
	}
}

// apply copies the form values onto cfg. Custom rest times are kept.
func (v *settingsValues) apply(cfg config.Config) (config.Config, error) {
	rest, err := strconv.Atoi(strings.TrimSpace(v.defaultRest))
	if err != nil {
		return cfg, fmt.Errorf("default rest: %w", err)
	}
	warning, err := strconv.Atoi(strings.TrimSpace(v.warning))
	if err != nil {
		return cfg, fmt.Errorf("warning time: %w", err)
	}
	bar, err := strconv.ParseFloat(strings.TrimSpace(v.barWeight), 64)
	if err != nil {
		return cfg, fmt.Errorf("bar weight: %w", err)
	}

	out := cfg
	out.Rest = cfg.Rest.Clone()
	out.Rest.DefaultRestTime = rest
	out.Rest.WarningTime = warning
	out.Rest.SoundEnabled = v.sound
	out.Rest.VibrationEnabled = v.vibration
	out.Rest.SmartRest = v.smartRest
	out.Rest.BackgroundMusic = v.music
	out.BarWeight = bar
	out.Muted = v.muted

	if err := out.Validate(); err != nil {
		return cfg, err
	}
	return out, nil
}

func settingsForm(v *settingsValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default rest (seconds)").
				Value(&v.defaultRest).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Warning before rest ends (seconds)").
				Value(&v.warning).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Bar weight").
				Value(&v.barWeight).
				Validate(validatePositiveFloat),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Smart rest").
				Description("Scale rest by exercise difficulty and RPE").
				Value(&v.smartRest),
			huh.NewConfirm().Title("Sound when rest ends").Value(&v.sound),
			huh.NewConfirm().Title("Vibrate when rest ends").Value(&v.vibration),
			huh.NewConfirm().Title("Start sessions muted").Value(&v.muted),
			huh.NewConfirm().Title("Background music").Value(&v.music),
		),
	).WithTheme(spotterHuhTheme()).WithShowHelp(false)
}

func formatSettings(cfg config.Config, path string) string {
	onOff := func(b bool) string {
		if b {
			return formatter.StyleGreen.Render("on")
		}
		return formatter.Dim("off")
	}

	rows := [][]string{
		{"Default rest", formatter.FormatClock(cfg.Rest.DefaultRestTime)},
		{"Warning", fmt.Sprintf("%ds", cfg.Rest.WarningTime)},
		{"Smart rest", onOff(cfg.Rest.SmartRest)},
		{"Sound", onOff(cfg.Rest.SoundEnabled)},
		{"Vibration", onOff(cfg.Rest.VibrationEnabled)},
		{"Muted", onOff(cfg.Muted)},
		{"Background music", onOff(cfg.Rest.BackgroundMusic)},
		{"Bar weight", formatter.FormatWeight(cfg.BarWeight)},
		{"Database", cfg.DBPath},
		{"Plans", cfg.PlansDir},
	}

	ids := make([]string, 0, len(cfg.Rest.CustomRestTimes))
	for id := range cfg.Rest.CustomRestTimes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		rows = append(rows, []string{"Rest: " + id, formatter.FormatClock(cfg.Rest.CustomRestTimes[id])})
	}

	body := formatter.RenderTable([]string{"SETTING", "VALUE"}, rows)
	if path != "" {
		body += "\n" + formatter.Dim(path)
	}
	return formatter.RenderBox("Settings", strings.TrimRight(body, "\n"))
}
