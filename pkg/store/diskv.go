package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/todo/pkg/todo"
)

// todosKey is the single storage key; the stored value is a JSON array of
// todo records.
const todosKey = "todos"

// ErrCorrupt indicates the stored blob did not decode into a todo list.
var ErrCorrupt = errors.New("store: corrupt todo list")

// Persistence defines the persistence contract for the todo list.
type Persistence interface {
	Load(ctx context.Context) ([]todo.Todo, error)
	Save(list []todo.Todo) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Open creates a Persistence backed by diskv using the provided config. A
// nil config resolves via LoadConfig.
func Open(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Load(ctx context.Context) ([]todo.Todo, error) {
	if !p.d.Has(todosKey) {
		return []todo.Todo{}, nil
	}
	data, err := p.d.Read(todosKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []todo.Todo{}, nil
		}
		return nil, fmt.Errorf("store: read %q: %w", todosKey, err)
	}
	return decodeList(data)
}

func (p *persistence) Save(list []todo.Todo) error {
	if list == nil {
		list = []todo.Todo{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("store: marshal todo list: %w", err)
	}
	if err := p.d.Write(todosKey, data); err != nil {
		return fmt.Errorf("store: write %q: %w", todosKey, err)
	}
	return nil
}

// record mirrors the wire shape with optional fields so a missing field is
// caught at the boundary instead of surfacing later as a zero value.
type record struct {
	ID        *int64  `json:"id"`
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func decodeList(data []byte) ([]todo.Todo, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	list := make([]todo.Todo, 0, len(records))
	for i, r := range records {
		if r.ID == nil || r.Title == nil || r.Completed == nil {
			return nil, fmt.Errorf("%w: record %d is missing required fields", ErrCorrupt, i)
		}
		list = append(list, todo.Todo{ID: *r.ID, Title: *r.Title, Completed: *r.Completed})
	}
	return list, nil
}
