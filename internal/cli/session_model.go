package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/spotter/internal/engine"
	"github.com/alexanderramin/spotter/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	weightStep = 5.0
	restStep   = 30
)

// ── messages ─────────────────────────────────────────────────────────────────

// sessionTickMsg advances the engine by one second.
type sessionTickMsg time.Time

// sessionRecordedMsg carries the outcome of saving a finished session.
type sessionRecordedMsg struct {
	result *service.RecordResult
	err    error
}

func sessionTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return sessionTickMsg(t) })
}

// ── key map ──────────────────────────────────────────────────────────────────

type sessionKeyMap struct {
	Complete     key.Binding
	SkipSet      key.Binding
	PrevSet      key.Binding
	NextExercise key.Binding
	PrevExercise key.Binding
	SkipExercise key.Binding
	WeightUp     key.Binding
	WeightDown   key.Binding
	RepsUp       key.Binding
	RepsDown     key.Binding
	RPE          key.Binding
	Warmup       key.Binding
	DropSet      key.Binding
	Notes        key.Binding
	Pause        key.Binding
	StartRest    key.Binding
	SkipRest     key.Binding
	ExtendRest   key.Binding
	ShortenRest  key.Binding
	Mute         key.Binding
	Finish       key.Binding
	Abort        key.Binding
}

func newSessionKeyMap() sessionKeyMap {
	return sessionKeyMap{
		Complete:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		SkipSet:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip set")),
		PrevSet:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back")),
		NextExercise: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("←/→", "exercise")),
		PrevExercise: key.NewBinding(key.WithKeys("h", "left")),
		SkipExercise: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "skip exercise")),
		WeightUp:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "weight")),
		WeightDown:   key.NewBinding(key.WithKeys("-", "_")),
		RepsUp:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "reps")),
		RepsDown:     key.NewBinding(key.WithKeys("down", "j")),
		RPE:          key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"), key.WithHelp("0-9", "rpe")),
		Warmup:       key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "warmup")),
		DropSet:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "drop set")),
		Notes:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "note")),
		Pause:        key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		StartRest:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "rest")),
		SkipRest:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "end rest")),
		ExtendRest:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e/E", "±30s")),
		ShortenRest:  key.NewBinding(key.WithKeys("E")),
		Mute:         key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		Finish:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "finish")),
		Abort:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "discard")),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k sessionKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Complete, k.SkipSet, k.PrevSet, k.NextExercise, k.SkipExercise,
		k.WeightUp, k.RepsUp, k.RPE, k.Warmup, k.DropSet, k.Notes,
		k.Pause, k.StartRest, k.SkipRest, k.ExtendRest, k.Mute, k.Finish, k.Abort,
	}
}

// ── model ────────────────────────────────────────────────────────────────────

// sessionModel is the live workout screen. All session state lives in the
// engine; the model only translates keys and ticks into engine calls.
type sessionModel struct {
	app      *App
	planName string
	eng      *engine.Engine
	keys     sessionKeyMap

	notes   textinput.Model
	editing bool

	width     int
	totalSets int
	flash     string

	saving    bool
	saved     *service.RecordResult
	saveErr   error
	discarded bool
}

func newSessionModel(app *App, planName string, eng *engine.Engine) *sessionModel {
	ti := textinput.New()
	ti.Prompt = "note: "
	ti.CharLimit = 200
	ti.Placeholder = "how did it feel?"

	total := 0
	for _, ex := range eng.Exercises() {
		total += ex.Sets
	}

	return &sessionModel{
		app:       app,
		planName:  planName,
		eng:       eng,
		keys:      newSessionKeyMap(),
		notes:     ti,
		width:     80,
		totalSets: total,
	}
}

func (m *sessionModel) Init() tea.Cmd {
	return sessionTick()
}

func (m *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case sessionTickMsg:
		if m.eng.Completed() {
			return m, nil
		}
		res := m.eng.Tick()
		switch {
		case res.Expired:
			m.flash = "Rest over. Next set!"
		case res.Warned:
			m.flash = fmt.Sprintf("%ds of rest left", m.eng.Snapshot().TimeLeft)
		}
		return m, sessionTick()

	case sessionRecordedMsg:
		m.saving = false
		m.saved = msg.result
		m.saveErr = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateNotes(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *sessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Abort) {
		if !m.eng.Completed() {
			m.discarded = true
		}
		return m, tea.Quit
	}

	if m.eng.Completed() {
		if m.saving {
			return m, nil
		}
		if key.Matches(msg, m.keys.Finish, m.keys.Complete) {
			return m, tea.Quit
		}
		return m, nil
	}

	s := m.eng.Snapshot()
	m.flash = ""

	switch {
	case key.Matches(msg, m.keys.Complete):
		res := m.eng.CompleteSet()
		if res.PersonalRecord && s.Exercise.PersonalRecord != nil {
			m.flash = "New personal record!"
		}
		if res.Finished {
			return m, m.finish()
		}
	case key.Matches(msg, m.keys.SkipSet):
		if m.eng.SkipSet() {
			return m, m.finish()
		}
	case key.Matches(msg, m.keys.SkipExercise):
		if m.eng.SkipExercise() {
			return m, m.finish()
		}
	case key.Matches(msg, m.keys.Finish):
		m.eng.Finish()
		return m, m.finish()
	case key.Matches(msg, m.keys.PrevSet):
		m.eng.PreviousSet()
	case key.Matches(msg, m.keys.NextExercise):
		m.eng.NextExercise()
	case key.Matches(msg, m.keys.PrevExercise):
		m.eng.PreviousExercise()
	case key.Matches(msg, m.keys.WeightUp):
		m.eng.AdjustWeight(weightStep)
	case key.Matches(msg, m.keys.WeightDown):
		m.eng.AdjustWeight(-weightStep)
	case key.Matches(msg, m.keys.RepsUp):
		m.eng.AdjustReps(1)
	case key.Matches(msg, m.keys.RepsDown):
		m.eng.AdjustReps(-1)
	case key.Matches(msg, m.keys.RPE):
		rpe := int(msg.Runes[0] - '0')
		if rpe == 0 {
			rpe = 10
		}
		m.eng.SetRPE(rpe)
	case key.Matches(msg, m.keys.Warmup):
		m.eng.SetWarmup(!s.Warmup)
	case key.Matches(msg, m.keys.DropSet):
		m.eng.SetDropSet(!s.DropSet)
	case key.Matches(msg, m.keys.Notes):
		m.editing = true
		m.notes.SetValue(s.Notes)
		m.notes.CursorEnd()
		return m, m.notes.Focus()
	case key.Matches(msg, m.keys.Pause):
		if m.eng.TogglePause() {
			m.flash = "Paused"
		}
	case key.Matches(msg, m.keys.StartRest):
		m.eng.StartRest(m.eng.RestTime())
	case key.Matches(msg, m.keys.SkipRest):
		m.eng.SkipRest()
	case key.Matches(msg, m.keys.ExtendRest):
		m.eng.ExtendRest(restStep)
	case key.Matches(msg, m.keys.ShortenRest):
		m.eng.ExtendRest(-restStep)
	case key.Matches(msg, m.keys.Mute):
		m.eng.SetMuted(!s.Muted)
	}

	return m, nil
}

func (m *sessionModel) updateNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.eng.SetNotes(m.notes.Value())
		m.editing = false
		m.notes.Blur()
		return m, nil
	case tea.KeyEsc:
		m.editing = false
		m.notes.Blur()
		return m, nil
	case tea.KeyCtrlC:
		m.discarded = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)
	return m, cmd
}

// finish saves the finished session. Sessions without a completed set are
// not recorded.
func (m *sessionModel) finish() tea.Cmd {
	m.flash = ""
	if m.eng.Session().CompletedSets == 0 || m.app.Workouts == nil {
		m.discarded = true
		return nil
	}

	m.saving = true
	workouts, planName, eng := m.app.Workouts, m.planName, m.eng
	return func() tea.Msg {
		res, err := workouts.Record(context.Background(), planName, eng)
		return sessionRecordedMsg{result: res, err: err}
	}
}

// summary is printed after the program exits.
func (m *sessionModel) summary() string {
	switch {
	case m.saveErr != nil:
		return fmt.Sprintf("Workout not saved: %v", m.saveErr)
	case m.saved != nil:
		line := fmt.Sprintf("Saved workout %s: %d sets", m.saved.Session.ID, m.saved.SetCount)
		if n := len(m.saved.NewRecords); n > 0 {
			line += fmt.Sprintf(", %s", pluralize(n, "new record", "new records"))
		}
		return line
	default:
		return "Workout discarded."
	}
}
