package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "taskview-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func TestTaskCRUDAndList(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	id, err := repo.CreateTask(ctx, Task{Name: "Buy milk", CreatedAt: created})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if id == 0 {
		t.Fatal("expected autoincrement id")
	}

	got, err := repo.GetTask(ctx, id)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Name != "Buy milk" || got.Done {
		t.Fatalf("unexpected task: %#v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected created_at: %v", got.CreatedAt)
	}

	got.Name = "Buy oat milk"
	got.Done = true
	if err := repo.UpdateTask(ctx, got); err != nil {
		t.Fatalf("update task: %v", err)
	}

	done := true
	completed, err := repo.ListTasks(ctx, TaskListFilter{Done: &done})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != id || !completed[0].Done {
		t.Fatalf("unexpected done list: %#v", completed)
	}

	if err := repo.DeleteTask(ctx, id); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if _, err := repo.GetTask(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestListTasksPreservesInsertionOrder(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	names := []string{"first", "second", "third"}
	for _, name := range names {
		if _, err := repo.CreateTask(ctx, Task{Name: name, CreatedAt: now}); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}

	tasks, err := repo.ListTasks(ctx, TaskListFilter{})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i, name := range names {
		if tasks[i].Name != name {
			t.Fatalf("order broken at %d: got %q, want %q", i, tasks[i].Name, name)
		}
	}
}

func TestListTasksPagination(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		if _, err := repo.CreateTask(ctx, Task{Name: "task", CreatedAt: now}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	page, err := repo.ListTasks(ctx, TaskListFilter{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected page of 2, got %d", len(page))
	}
	if page[0].ID != 3 || page[1].ID != 4 {
		t.Fatalf("unexpected page ids: %d, %d", page[0].ID, page[1].ID)
	}
}

func TestUpdateAndDeleteMissingTask(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	err := repo.UpdateTask(ctx, Task{ID: 99, Name: "ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got: %v", err)
	}
	if err := repo.DeleteTask(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got: %v", err)
	}
}
