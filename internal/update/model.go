package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/taskview/internal/model"
	"github.com/sandeepkv93/taskview/internal/store"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Add     string
	Toggle  string
	Remove  string
	Palette string
	Help    string
	Quit    string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// TaskFetcher is the one outbound dependency: the initial remote fetch.
type TaskFetcher interface {
	FetchTasks(ctx context.Context) ([]model.Task, error)
}

type Model struct {
	State       store.State
	Cursor      int
	Capture     bool
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool

	fetcher     TaskFetcher
	endpoint    string
	fetchCtx    context.Context
	fetchCancel context.CancelFunc

	addInput     textinput.Model
	commandInput textinput.Model
	loadSpinner  spinner.Model
	helpModel    help.Model

	lastID int64
}

// TasksLoadedMsg carries the fetch payload into the update loop.
type TasksLoadedMsg struct {
	Tasks []model.Task
}

// FetchFailedMsg carries the fetch failure into the update loop.
type FetchFailedMsg struct {
	Err error
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

func NewModel() Model {
	m := Model{
		State: store.Initial(),
		Keys: GlobalKeyMap{
			Add:     "a",
			Toggle:  "enter",
			Remove:  "x",
			Palette: "/",
			Help:    "?",
			Quit:    "q",
		},
	}
	m.initBubbleComponents()
	return m
}

// NewModelWithFetcher wires the remote fetch. The fetch context lives for
// the whole session and is cancelled on quit, so a resolution arriving
// after teardown is aborted rather than applied.
func NewModelWithFetcher(fetcher TaskFetcher, endpoint string) Model {
	m := NewModel()
	m.fetcher = fetcher
	m.endpoint = endpoint
	m.fetchCtx, m.fetchCancel = context.WithCancel(context.Background())
	return m
}

func (m *Model) initBubbleComponents() {
	m.addInput = textinput.New()
	m.addInput.Prompt = "add> "
	m.addInput.Placeholder = "task name"
	m.addInput.CharLimit = 256
	m.addInput.Width = 36

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 40

	m.loadSpinner = spinner.New()
	m.loadSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
}

// nextTaskID hands out client-side ids for added tasks: the current
// millisecond timestamp, bumped until it clears both the previous id and
// every id already in the list.
func (m *Model) nextTaskID() int64 {
	id := time.Now().UnixMilli()
	if id <= m.lastID {
		id = m.lastID + 1
	}
	for m.taskExists(id) {
		id++
	}
	m.lastID = id
	return id
}

func (m Model) taskExists(id int64) bool {
	for _, task := range m.State.Tasks {
		if task.ID == id {
			return true
		}
	}
	return false
}

// visibleTasks is the render order: the to-do projection followed by the
// done projection. The cursor walks this concatenation.
func (m Model) visibleTasks() []model.Task {
	toDo, done := m.State.Partition()
	out := make([]model.Task, 0, len(toDo)+len(done))
	out = append(out, toDo...)
	out = append(out, done...)
	return out
}

func (m Model) selectedTask() (model.Task, bool) {
	visible := m.visibleTasks()
	if len(visible) == 0 || m.Cursor < 0 || m.Cursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[m.Cursor], true
}

func (m *Model) clampCursor() {
	count := len(m.State.Tasks)
	if m.Cursor >= count {
		m.Cursor = count - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}
