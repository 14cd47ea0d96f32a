package inmemdb

import (
	"strconv"
	"sync"
	"time"

	"github.com/edustack/studyhub/core/chat"
	"github.com/edustack/studyhub/core/material"
	"github.com/edustack/studyhub/core/meeting"
	"github.com/edustack/studyhub/core/mentoring"
)

// table is the shared shape of every in-memory collection: a newest-first
// ordered slice behind a lock, with a wall-clock-seeded primary key counter
// so ids sort by recency across restarts.
type table[T any] struct {
	mutex sync.RWMutex
	rows  []T
	pk    int64
}

func newTable[T any]() *table[T] {
	return &table[T]{pk: time.Now().UnixMilli()}
}

// nextID must be called with the write lock held.
func (t *table[T]) nextID() string {
	t.pk++
	return strconv.FormatInt(t.pk, 10)
}

// prepend must be called with the write lock held. Creation prepends:
// default listing order is newest-first.
func (t *table[T]) prepend(row T) {
	t.rows = append([]T{row}, t.rows...)
}

// all must be called with (at least) the read lock held.
func (t *table[T]) all() []T {
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

// DB owns one table per collection. Each table is private to its repository;
// no entity is shared by reference across them.
type DB struct {
	materials *table[material.Material]
	meetings  *table[meeting.Meeting]
	mentors   *table[mentoring.Mentor]
	sessions  *table[mentoring.MentorSession]
	messages  *table[chat.Message]
}

// Open returns a fresh, empty in-memory DB. State lives for the process
// lifetime only. Callers that want the demo fixtures run Seed next.
func Open() (*DB, error) {
	return &DB{
		materials: newTable[material.Material](),
		meetings:  newTable[meeting.Meeting](),
		mentors:   newTable[mentoring.Mentor](),
		sessions:  newTable[mentoring.MentorSession](),
		messages:  newTable[chat.Message](),
	}, nil
}
