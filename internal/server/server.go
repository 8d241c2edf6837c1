// Package server is the development fixture behind the client's one
// outbound call: GET /tasks over a SQLite-backed task table. It exposes no
// write endpoints; local client mutations are never synchronized back.
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/sandeepkv93/taskview/internal/model"
	"github.com/sandeepkv93/taskview/internal/storage"
)

type Handler struct {
	repo storage.Repository
}

func NewHandler(repo storage.Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/tasks" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stored, err := h.repo.ListTasks(r.Context(), storage.TaskListFilter{})
	if err != nil {
		log.Printf("list tasks: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]model.Task, 0, len(stored))
	for _, task := range stored {
		out = append(out, model.Task{
			ID:   task.ID,
			Name: task.Name,
			Done: task.Done,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Printf("encode tasks: %v", err)
	}
}
