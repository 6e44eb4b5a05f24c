package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"iljeong/internal/api"
	"iljeong/internal/model"
	"iljeong/internal/storage"
)

func newTestServer(t *testing.T) (*httptest.Server, *[]model.Event) {
	t.Helper()

	events := []model.Event{
		{
			ID: "1", Title: "기존 회의", Date: "2024-10-15",
			StartTime: "09:00", EndTime: "10:00",
			Description: "기존 팀 미팅", Location: "회의실 B", Category: "업무",
			Repeat: model.NoRepeat(), NotificationTime: 10,
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/events", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{"events": events})
		case http.MethodPost:
			var e model.Event
			if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			e.ID = "2"
			events = append(events, e)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(e)
		}
	})
	mux.HandleFunc("/api/events/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/api/events/"):]
		for i := range events {
			if events[i].ID == id {
				switch r.Method {
				case http.MethodPut:
					var e model.Event
					if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
						http.Error(w, err.Error(), http.StatusBadRequest)
						return
					}
					e.ID = id
					events[i] = e
					json.NewEncoder(w).Encode(e)
				case http.MethodDelete:
					events = append(events[:i], events[i+1:]...)
					w.WriteHeader(http.StatusNoContent)
				}
				return
			}
		}
		http.NotFound(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &events
}

func TestClientList(t *testing.T) {
	server, _ := newTestServer(t)
	client := api.NewClient(server.URL)

	events, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("List errored: %s", err)
	}
	if len(events) != 1 || events[0].Title != "기존 회의" {
		t.Fatalf("List returned %v", events)
	}
}

func TestClientCreate(t *testing.T) {
	server, stored := newTestServer(t)
	client := api.NewClient(server.URL)

	created, err := client.Create(context.Background(), model.Event{
		Title: "새 이벤트", Date: "2024-11-04", StartTime: "14:00", EndTime: "15:00",
		Repeat: model.NoRepeat(), NotificationTime: 10,
	})
	if err != nil {
		t.Fatalf("Create errored: %s", err)
	}
	if created.ID == "" {
		t.Fatal("Create returned no ID")
	}
	if len(*stored) != 2 {
		t.Fatalf("server holds %d events", len(*stored))
	}
}

func TestClientUpdate(t *testing.T) {
	server, stored := newTestServer(t)
	client := api.NewClient(server.URL)

	updated, err := client.Update(context.Background(), "1", model.Event{
		ID: "1", Title: "수정된 회의", Date: "2024-10-15", StartTime: "09:00", EndTime: "11:00",
		Repeat: model.NoRepeat(), NotificationTime: 10,
	})
	if err != nil {
		t.Fatalf("Update errored: %s", err)
	}
	if updated.Title != "수정된 회의" {
		t.Fatalf("Update returned %+v", updated)
	}
	if (*stored)[0].EndTime != "11:00" {
		t.Fatal("server state not updated")
	}
}

func TestClientDelete(t *testing.T) {
	server, stored := newTestServer(t)
	client := api.NewClient(server.URL)

	if err := client.Delete(context.Background(), "1"); err != nil {
		t.Fatalf("Delete errored: %s", err)
	}
	if len(*stored) != 0 {
		t.Fatal("server state not deleted")
	}
}

func TestClientErrors(t *testing.T) {
	{
		// unknown IDs surface as ErrNotFound
		server, _ := newTestServer(t)
		client := api.NewClient(server.URL)

		if err := client.Delete(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Delete of missing ID: got %v", err)
		}
	}
	{
		// a server failure is an error, not silently empty data
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer failing.Close()
		client := api.NewClient(failing.URL)

		if _, err := client.List(context.Background()); err == nil {
			t.Error("List against failing server should error")
		}
		if _, err := client.Create(context.Background(), model.Event{Title: "x"}); err == nil {
			t.Error("Create against failing server should error")
		}
	}
}
