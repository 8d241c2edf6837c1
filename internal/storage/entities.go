package storage

import "time"

type Task struct {
	ID        int64
	Name      string
	Done      bool
	CreatedAt time.Time
}

type TaskListFilter struct {
	Done   *bool
	Limit  int
	Offset int
}
