package update

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskview/internal/store"
	"github.com/sandeepkv93/taskview/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadSpinner.Tick}
	if m.fetcher != nil {
		cmds = append(cmds, fetchTasksCmd(m.fetchCtx, m.fetcher))
	}
	return tea.Batch(cmds...)
}

func fetchTasksCmd(ctx context.Context, fetcher TaskFetcher) tea.Cmd {
	if ctx == nil {
		ctx = context.Background()
	}
	return func() tea.Msg {
		tasks, err := fetcher.FetchTasks(ctx)
		if err != nil {
			return FetchFailedMsg{Err: err}
		}
		return TasksLoadedMsg{Tasks: tasks}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case spinner.TickMsg:
		if m.State.Loading {
			var cmd tea.Cmd
			m.loadSpinner, cmd = m.loadSpinner.Update(typed)
			return m, cmd
		}
	case TasksLoadedMsg:
		if m.Quitting {
			return m, nil
		}
		m.State = store.Reduce(m.State, store.FetchSuccess{Tasks: typed.Tasks})
		m.Cursor = 0
		m.Status = StatusBar{Text: fmt.Sprintf("loaded %d tasks", len(typed.Tasks)), IsError: false}
		return m, nil
	case FetchFailedMsg:
		if m.Quitting {
			return m, nil
		}
		m.State = store.Reduce(m.State, store.FetchError{Message: typed.Err.Error()})
		m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	if keyStr == "ctrl+c" || (!m.Capture && !m.Palette.Active && keyStr == m.Keys.Quit) {
		return m.quit()
	}

	// Loading and error screens occlude everything interactive.
	if m.State.Loading || m.State.Err != "" {
		return m, nil
	}

	if m.Palette.Active {
		return m.handlePaletteKey(msg), nil
	}
	if m.Capture {
		return m.handleAddKey(msg), nil
	}

	switch keyStr {
	case m.Keys.Add:
		m.Capture = true
		m.addInput.Focus()
		m.Status = StatusBar{Text: "add mode", IsError: false}
		return m, nil
	case m.Keys.Palette:
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active", IsError: false}
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Cursor < len(m.State.Tasks)-1 {
			m.Cursor++
		}
		return m, nil
	case " ", m.Keys.Toggle:
		if task, ok := m.selectedTask(); ok {
			m.State = store.Reduce(m.State, store.ToggleTask{ID: task.ID})
			m.Status = StatusBar{Text: fmt.Sprintf("toggled task %d", task.ID), IsError: false}
		}
		return m, nil
	case m.Keys.Remove:
		if task, ok := m.selectedTask(); ok {
			m.State = store.Reduce(m.State, store.RemoveTask{ID: task.ID})
			m.clampCursor()
			m.Status = StatusBar{Text: fmt.Sprintf("removed task %d", task.ID), IsError: false}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleAddKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Capture = false
		m.addInput.Blur()
		m.Status = StatusBar{Text: "list mode", IsError: false}
		return m
	case "enter":
		return m.submitDraft()
	}
	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	_ = cmd
	return m
}

// submitDraft applies the add gesture: a draft that is empty after
// trimming is suppressed; otherwise the untrimmed draft becomes the task
// name and the draft is cleared.
func (m Model) submitDraft() Model {
	draft := m.addInput.Value()
	m = m.addTask(draft)
	if m.Status.IsError {
		return m
	}
	m.addInput.SetValue("")
	return m
}

func (m Model) addTask(draft string) Model {
	if isBlank(draft) {
		m.Status = StatusBar{Text: "empty task name ignored", IsError: true}
		return m
	}
	id := m.nextTaskID()
	m.State = store.Reduce(m.State, store.AddTask{
		Task: newTask(id, draft),
	})
	m.Status = StatusBar{Text: fmt.Sprintf("added task %d", id), IsError: false}
	return m
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Quitting = true
	if m.fetchCancel != nil {
		m.fetchCancel()
	}
	return m, tea.Quit
}

func (m Model) View() string {
	header := fmt.Sprintf("taskview | %d tasks", len(m.State.Tasks))
	footer := fmt.Sprintf("keys: %s add | space/%s toggle | %s remove | %s cmd | %s help | %s quit",
		m.Keys.Add, m.Keys.Toggle, m.Keys.Remove, m.Keys.Palette, m.Keys.Help, m.Keys.Quit)

	if m.State.Loading {
		return views.RenderOccluding(header, views.RenderLoadingPanel(views.LoadingPanelData{
			SpinnerView: m.loadSpinner.View(),
			Endpoint:    m.endpoint,
		}), fmt.Sprintf("keys: %s quit", m.Keys.Quit))
	}
	if m.State.Err != "" {
		return views.RenderOccluding(header, views.RenderErrorPanel(views.ErrorPanelData{
			Message: m.State.Err,
		}), fmt.Sprintf("keys: %s quit", m.Keys.Quit))
	}

	toDo, done := m.State.Partition()
	selectedID := int64(0)
	if task, ok := m.selectedTask(); ok {
		selectedID = task.ID
	}

	left := views.RenderAddBar(views.AddBarData{
		InputView:   m.addInput.View(),
		CaptureMode: m.Capture,
	}) + "\n\n" + views.RenderTaskListPanel(views.TaskListPanelData{
		Title:      "to do",
		Items:      taskItems(toDo),
		SelectedID: selectedID,
	})

	right := views.RenderTaskListPanel(views.TaskListPanelData{
		Title:      "done",
		Items:      taskItems(done),
		SelectedID: selectedID,
	})
	right += views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
	if m.HelpVisible {
		right += "\n" + m.renderHelpView()
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	return views.RenderApp(views.AppData{
		Header:     header,
		LeftPane:   left,
		RightPane:  right,
		StatusLine: status,
		Footer:     footer,
	})
}
