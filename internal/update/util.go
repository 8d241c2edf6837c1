package update

import (
	"strings"

	"github.com/sandeepkv93/taskview/internal/model"
	"github.com/sandeepkv93/taskview/internal/views"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func newTask(id int64, name string) model.Task {
	return model.Task{ID: id, Name: name}
}

func taskItems(tasks []model.Task) []views.TaskItemData {
	out := make([]views.TaskItemData, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, views.TaskItemData{
			ID:   task.ID,
			Name: task.Name,
			Done: task.Done,
		})
	}
	return out
}
