package model

import (
	"errors"
	"strings"
)

var (
	ErrMissingID   = errors.New("model: task id is required")
	ErrMissingName = errors.New("model: task name is required")
)

// Task is a single tracked item. The JSON shape matches the wire format
// served by the remote task endpoint.
type Task struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}

func (t Task) Validate() error {
	if t.ID == 0 {
		return ErrMissingID
	}
	if strings.TrimSpace(t.Name) == "" {
		return ErrMissingName
	}
	return nil
}
