// Package providers holds concrete EventProvider implementations.
package providers

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"iljeong/internal/model"
	"iljeong/internal/storage"
)

// FileProvider stores events as a JSON document on disk. It is meant for
// single-user local use; a mutex serializes access, and writes go through
// a temp file plus rename so a failed write never corrupts the store.
type FileProvider struct {
	path string
	mu   sync.Mutex
}

type fileDocument struct {
	Events []model.Event `json:"events"`
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) List(_ context.Context) ([]model.Event, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.load()
}

func (p *FileProvider) Create(_ context.Context, e model.Event) (model.Event, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	events, err := p.load()
	if err != nil {
		return model.Event{}, err
	}

	e.ID = uuid.NewString()
	e.Repeat = e.Repeat.Normalized()
	events = append(events, e)

	if err := p.save(events); err != nil {
		return model.Event{}, err
	}
	return e, nil
}

func (p *FileProvider) Update(_ context.Context, id string, e model.Event) (model.Event, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	events, err := p.load()
	if err != nil {
		return model.Event{}, err
	}

	for i := range events {
		if events[i].ID == id {
			e.ID = id
			e.Repeat = e.Repeat.Normalized()
			events[i] = e
			if err := p.save(events); err != nil {
				return model.Event{}, err
			}
			return e, nil
		}
	}
	return model.Event{}, storage.ErrNotFound
}

func (p *FileProvider) Delete(_ context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	events, err := p.load()
	if err != nil {
		return err
	}

	for i := range events {
		if events[i].ID == id {
			events = append(events[:i], events[i+1:]...)
			return p.save(events)
		}
	}
	return storage.ErrNotFound
}

func (p *FileProvider) load() ([]model.Event, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// first run, nothing stored yet
			return []model.Event{}, nil
		}
		return nil, err
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Events == nil {
		doc.Events = []model.Event{}
	}
	return doc.Events, nil
}

func (p *FileProvider) save(events []model.Event) error {
	data, err := json.MarshalIndent(fileDocument{Events: events}, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".iljeong-events-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, p.path)
}
