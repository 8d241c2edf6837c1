// Package store holds the authoritative in-memory task list and the pure
// transition function that advances it. All state changes in the client go
// through Reduce, one action at a time.
package store

import "github.com/sandeepkv93/taskview/internal/model"

// State is the full client state: the task list in insertion order, the
// initial-fetch flag, and the fetch failure message (empty means none).
type State struct {
	Tasks   []model.Task
	Loading bool
	Err     string
}

// Initial returns the state at process start: empty list, waiting on the
// one remote fetch.
func Initial() State {
	return State{Loading: true}
}

// Action describes an intent to change state. The concrete types below are
// the only ones Reduce acts on; anything else leaves the state untouched.
type Action interface {
	isAction()
}

// FetchSuccess replaces the task list with the fetched payload and ends the
// loading phase. Terminal success transition; there is no re-fetch path.
type FetchSuccess struct {
	Tasks []model.Task
}

// FetchError records the fetch failure message and ends the loading phase.
type FetchError struct {
	Message string
}

// ToggleTask flips the done flag on the task with the given id.
type ToggleTask struct {
	ID int64
}

// AddTask appends a fully-formed task. The caller owns id generation and
// name validation; Reduce applies it as-is.
type AddTask struct {
	Task model.Task
}

// RemoveTask drops the task with the given id.
type RemoveTask struct {
	ID int64
}

func (FetchSuccess) isAction() {}
func (FetchError) isAction()   {}
func (ToggleTask) isAction()   {}
func (AddTask) isAction()      {}
func (RemoveTask) isAction()   {}

// Reduce maps (state, action) to the next state. It never mutates its
// input: task slices are copied before any write, so callers may hold on
// to a previous State safely. Unknown actions return the state unchanged.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case FetchSuccess:
		s.Tasks = act.Tasks
		s.Loading = false
		return s
	case FetchError:
		s.Err = act.Message
		s.Loading = false
		return s
	case ToggleTask:
		for i, task := range s.Tasks {
			if task.ID == act.ID {
				next := make([]model.Task, len(s.Tasks))
				copy(next, s.Tasks)
				next[i].Done = !next[i].Done
				s.Tasks = next
				return s
			}
		}
		return s
	case AddTask:
		next := make([]model.Task, 0, len(s.Tasks)+1)
		next = append(next, s.Tasks...)
		next = append(next, act.Task)
		s.Tasks = next
		return s
	case RemoveTask:
		for i, task := range s.Tasks {
			if task.ID == act.ID {
				next := make([]model.Task, 0, len(s.Tasks)-1)
				next = append(next, s.Tasks[:i]...)
				next = append(next, s.Tasks[i+1:]...)
				s.Tasks = next
				return s
			}
		}
		return s
	default:
		return s
	}
}

// Partition splits the task list into the to-do and done projections,
// preserving relative order within each. Every task lands in exactly one
// of the two slices.
func (s State) Partition() (toDo, done []model.Task) {
	for _, task := range s.Tasks {
		if task.Done {
			done = append(done, task)
		} else {
			toDo = append(toDo, task)
		}
	}
	return toDo, done
}
