// Package todo defines the task record and its identifier allocation.
package todo

import (
	"strings"
	"sync"
	"time"
)

// Todo is a single task. The JSON shape is the storage contract: a stored
// list is an array of exactly these three fields.
type Todo struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// New builds a pending todo with a freshly allocated ID and a trimmed title.
func New(title string) Todo {
	return Todo{
		ID:    NextID(),
		Title: strings.TrimSpace(title),
	}
}

// Toggled returns a copy with the completion flag flipped. The receiver is
// unchanged.
func (t Todo) Toggled() Todo {
	t.Completed = !t.Completed
	return t
}

// Retitled returns a copy with the trimmed replacement title.
func (t Todo) Retitled(title string) Todo {
	t.Title = strings.TrimSpace(title)
	return t
}

var idMu sync.Mutex
var lastID int64

// NextID allocates a todo identifier. IDs are creation-time Unix
// milliseconds, bumped past the previous allocation when two todos are
// created within the same millisecond. Uniqueness is process-local; the
// store has a single writer.
func NextID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
