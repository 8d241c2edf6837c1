package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewRequiresEndpoint(t *testing.T) {
	if _, err := New("", 0); err == nil {
		t.Fatal("expected error for empty endpoint")
	}
}

func TestFetchTasksDecodesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Buy milk","done":false},{"id":2,"name":"Ship","done":true}]`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	tasks, err := c.FetchTasks(context.Background())
	if err != nil {
		t.Fatalf("fetch tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != 1 || tasks[0].Name != "Buy milk" || tasks[0].Done {
		t.Fatalf("unexpected first task: %#v", tasks[0])
	}
	if tasks[1].ID != 2 || !tasks[1].Done {
		t.Fatalf("unexpected second task: %#v", tasks[1])
	}
}

func TestFetchTasksEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, _ := New(srv.URL, time.Second)
	tasks, err := c.FetchTasks(context.Background())
	if err != nil {
		t.Fatalf("fetch tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty list, got %d", len(tasks))
	}
}

func TestFetchTasksNon2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, _ := New(srv.URL, time.Second)
	if _, err := c.FetchTasks(context.Background()); err == nil {
		t.Fatal("expected error for 500 response")
	} else if !strings.Contains(err.Error(), "unexpected status") {
		t.Fatalf("unexpected error text: %v", err)
	}
}

func TestFetchTasksMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	c, _ := New(srv.URL, time.Second)
	if _, err := c.FetchTasks(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchTasksHonorsContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c, _ := New(srv.URL, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.FetchTasks(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
