// taskviewd is the development fixture server for the taskview client. It
// serves GET /tasks from a local SQLite database.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/sandeepkv93/taskview/internal/server"
	"github.com/sandeepkv93/taskview/internal/storage"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dbPath := flag.String("db", "taskview.db", "sqlite database path")
	seed := flag.Bool("seed", false, "insert sample tasks into an empty database")
	flag.Parse()

	repo, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer repo.Close()

	if err := storage.MigrateUp(repo.DB()); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if *seed {
		if err := seedTasks(context.Background(), repo); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	log.Printf("taskviewd listening on %s (db: %s)", *addr, *dbPath)
	if err := http.ListenAndServe(*addr, server.NewHandler(repo)); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

func seedTasks(ctx context.Context, repo storage.Repository) error {
	existing, err := repo.ListTasks(ctx, storage.TaskListFilter{Limit: 1})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	now := time.Now().UTC()
	samples := []storage.Task{
		{Name: "Buy milk", CreatedAt: now},
		{Name: "Write report", Done: true, CreatedAt: now},
		{Name: "Call plumber", CreatedAt: now},
	}
	for _, task := range samples {
		if _, err := repo.CreateTask(ctx, task); err != nil {
			return err
		}
	}
	return nil
}
