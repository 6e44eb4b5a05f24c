package providers_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"iljeong/internal/model"
	"iljeong/internal/storage"
	"iljeong/internal/storage/providers"
)

func testEvent(title string) model.Event {
	return model.Event{
		Title:            title,
		Date:             "2024-11-03",
		StartTime:        "10:00",
		EndTime:          "11:00",
		Repeat:           model.NoRepeat(),
		NotificationTime: 10,
	}
}

func TestFileProviderCRUD(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.json")
	p := providers.NewFileProvider(path)

	// an absent store lists as empty, not as an error
	events, err := p.List(ctx)
	if err != nil {
		t.Fatalf("List on missing file errored: %s", err)
	}
	if len(events) != 0 {
		t.Fatalf("List on missing file returned %d events", len(events))
	}

	created, err := p.Create(ctx, testEvent("회의"))
	if err != nil {
		t.Fatalf("Create errored: %s", err)
	}
	if created.ID == "" {
		t.Fatal("Create did not assign an ID")
	}

	events, err = p.List(ctx)
	if err != nil || len(events) != 1 || events[0].Title != "회의" {
		t.Fatalf("List after Create: %v (%v)", events, err)
	}

	created.Title = "수정된 회의"
	updated, err := p.Update(ctx, created.ID, created)
	if err != nil {
		t.Fatalf("Update errored: %s", err)
	}
	if updated.Title != "수정된 회의" || updated.ID != created.ID {
		t.Fatalf("Update returned %+v", updated)
	}

	// a second provider over the same path sees the persisted state
	p2 := providers.NewFileProvider(path)
	events, err = p2.List(ctx)
	if err != nil || len(events) != 1 || events[0].Title != "수정된 회의" {
		t.Fatalf("List via new provider: %v (%v)", events, err)
	}

	if err := p.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete errored: %s", err)
	}
	events, _ = p.List(ctx)
	if len(events) != 0 {
		t.Fatalf("List after Delete returned %d events", len(events))
	}
}

func TestFileProviderNotFound(t *testing.T) {
	ctx := context.Background()
	p := providers.NewFileProvider(filepath.Join(t.TempDir(), "events.json"))

	if _, err := p.Update(ctx, "missing", testEvent("회의")); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Update of missing ID: got %v", err)
	}
	if err := p.Delete(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Delete of missing ID: got %v", err)
	}
}

func TestFileProviderNormalizesRepeat(t *testing.T) {
	ctx := context.Background()
	p := providers.NewFileProvider(filepath.Join(t.TempDir(), "events.json"))

	e := testEvent("회의")
	e.Repeat = model.RepeatInfo{Type: model.RepeatNone, Interval: 7, EndDate: "2025-01-01"}

	created, err := p.Create(ctx, e)
	if err != nil {
		t.Fatalf("Create errored: %s", err)
	}
	if created.Repeat != model.NoRepeat() {
		t.Errorf("stored repeat not normalized: %+v", created.Repeat)
	}
}
