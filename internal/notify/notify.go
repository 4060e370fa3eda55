// Package notify implements the transient notification queue shown as toasts.
//
// The queue only owns the data operations: insertion-ordered iteration and
// O(1) removal by id. Auto-expiry is driven by the caller (the UI schedules a
// fire-once timer per notification and removes it when the timer fires).
package notify

import (
	"container/list"
	"sync"
	"time"
)

// Kind classifies a notification's severity.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// DisplayDuration is how long a notification stays visible before the UI
// expires it.
const DisplayDuration = 4 * time.Second

// Notification is one queued message.
type Notification struct {
	ID        int64
	Message   string
	Kind      Kind
	CreatedAt time.Time
}

// Queue holds pending notifications in insertion order. The zero value is
// ready to use.
type Queue struct {
	mu     sync.Mutex
	nextID int64
	order  list.List // of Notification
	byID   map[int64]*list.Element
}

// Add appends a notification and returns its freshly assigned id. Unknown or
// empty kinds fall back to info.
func (q *Queue) Add(message string, kind Kind) int64 {
	switch kind {
	case KindInfo, KindSuccess, KindError:
	default:
		kind = KindInfo
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.byID == nil {
		q.byID = make(map[int64]*list.Element)
		q.order.Init()
	}
	q.nextID++
	id := q.nextID
	q.byID[id] = q.order.PushBack(Notification{
		ID:        id,
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
	})
	return id
}

// Remove deletes the notification with the given id. Absent ids are a no-op.
func (q *Queue) Remove(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if el, ok := q.byID[id]; ok {
		q.order.Remove(el)
		delete(q.byID, id)
	}
}

// Pending returns the queued notifications in insertion order.
func (q *Queue) Pending() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.order.Len() == 0 {
		return nil
	}
	out := make([]Notification, 0, q.order.Len())
	for el := q.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(Notification))
	}
	return out
}

// Len returns the number of pending notifications.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.byID)
}
